package models

import (
	"time"

	"gavel/internal/domain/audit"
	"gavel/internal/domain/geo"
)

// LoginEventModel is the persistence model for the login audit trail.
// Rows are insert-only; there is no updated_at on purpose.
type LoginEventModel struct {
	ID         uint      `gorm:"primarykey"`
	UserID     uint      `gorm:"not null;index:idx_login_events_user_id"`
	IPAddress  string    `gorm:"size:45"`
	UserAgent  string    `gorm:"size:512"`
	GeoCountry string    `gorm:"size:100"`
	GeoRegion  string    `gorm:"size:100"`
	GeoCity    string    `gorm:"size:100"`
	GeoISP     string    `gorm:"size:200"`
	LoginAt    time.Time `gorm:"not null;index:idx_login_events_login_at"`
}

// TableName specifies the table name for GORM
func (LoginEventModel) TableName() string {
	return "login_events"
}

// NewLoginEventModel maps a domain event onto the persistence model.
func NewLoginEventModel(e *audit.LoginEvent) *LoginEventModel {
	g := e.Location()
	return &LoginEventModel{
		ID:         e.ID(),
		UserID:     e.UserID(),
		IPAddress:  e.IPAddress(),
		UserAgent:  e.UserAgent(),
		GeoCountry: g.Country,
		GeoRegion:  g.Region,
		GeoCity:    g.City,
		GeoISP:     g.ISP,
		LoginAt:    e.LoginAt(),
	}
}

// ToEntity maps the persistence model back to the domain event.
func (m *LoginEventModel) ToEntity() *audit.LoginEvent {
	return audit.Reconstruct(
		m.ID,
		m.UserID,
		m.IPAddress,
		m.UserAgent,
		geo.Record{
			Country: m.GeoCountry,
			Region:  m.GeoRegion,
			City:    m.GeoCity,
			ISP:     m.GeoISP,
		},
		m.LoginAt,
	)
}
