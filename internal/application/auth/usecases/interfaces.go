package usecases

import (
	"gavel/internal/domain/user"
)

// TokenIssuer mints signed session credentials. There is no revoke: tokens
// end by expiry only, and logout merely clears the client cookie.
type TokenIssuer interface {
	Issue(userSID string, role user.Role) (string, int64, error)
}
