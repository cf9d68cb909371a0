// Package audit holds the immutable login provenance trail. Events are
// append-only facts: one per successful login or signup, never updated or
// deleted by the application.
package audit

import (
	"fmt"
	"time"

	"gavel/internal/domain/geo"
)

// LoginEvent records one authentication occurrence.
type LoginEvent struct {
	id        uint
	userID    uint
	ipAddress string
	userAgent string
	location  geo.Record
	loginAt   time.Time
}

// NewLoginEvent creates an event for the given user. The geo record is
// normalized so the stored snapshot is always fully populated.
func NewLoginEvent(userID uint, ipAddress, userAgent string, location geo.Record, at time.Time) (*LoginEvent, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}
	return &LoginEvent{
		userID:    userID,
		ipAddress: ipAddress,
		userAgent: userAgent,
		location:  location.Normalized(),
		loginAt:   at,
	}, nil
}

// Reconstruct rebuilds an event from persisted state.
func Reconstruct(id, userID uint, ipAddress, userAgent string, location geo.Record, loginAt time.Time) *LoginEvent {
	return &LoginEvent{
		id:        id,
		userID:    userID,
		ipAddress: ipAddress,
		userAgent: userAgent,
		location:  location.Normalized(),
		loginAt:   loginAt,
	}
}

func (e *LoginEvent) ID() uint             { return e.id }
func (e *LoginEvent) UserID() uint         { return e.userID }
func (e *LoginEvent) IPAddress() string    { return e.ipAddress }
func (e *LoginEvent) UserAgent() string    { return e.userAgent }
func (e *LoginEvent) Location() geo.Record { return e.location }
func (e *LoginEvent) LoginAt() time.Time   { return e.loginAt }

// SetID is called by the repository after the insert.
func (e *LoginEvent) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("login event ID already set")
	}
	e.id = id
	return nil
}
