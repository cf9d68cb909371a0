package user

import (
	"context"
	"time"

	"gavel/internal/domain/geo"
)

// Repository persists user accounts.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetBySID(ctx context.Context, sid string) (*User, error)
	// GetByEmail returns (nil, nil) when no account matches.
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// UpdateLastSeen writes only the last-seen columns. Concurrent logins for
	// the same user may interleave; the last write wins.
	UpdateLastSeen(ctx context.Context, id uint, ipAddress, userAgent string, record geo.Record, at time.Time) error
	List(ctx context.Context, page, pageSize int) ([]*User, int64, error)
	Count(ctx context.Context) (int64, error)
}
