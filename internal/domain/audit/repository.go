package audit

import "context"

// Repository appends and reads login events. There is no update or delete:
// the trail is immutable. Duplicate events from an upstream retry are
// acceptable; there is no uniqueness constraint.
type Repository interface {
	Create(ctx context.Context, event *LoginEvent) error
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*LoginEvent, int64, error)
	List(ctx context.Context, page, pageSize int) ([]*LoginEvent, int64, error)
	Count(ctx context.Context) (int64, error)
}
