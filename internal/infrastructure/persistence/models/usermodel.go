package models

import (
	"time"

	"gavel/internal/domain/geo"
	"gavel/internal/domain/user"
)

// UserModel is the persistence model for users. It is the anti-corruption
// layer between the domain entity and the database schema.
type UserModel struct {
	ID            uint   `gorm:"primarykey"`
	SID           string `gorm:"uniqueIndex;not null;size:20"`
	Name          string `gorm:"not null;size:100"`
	Email         string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash  string `gorm:"not null;size:255"`
	Role          string `gorm:"not null;default:user;size:20"`
	AvatarURL     string `gorm:"size:500"`
	LastIPAddress string `gorm:"size:45"`
	LastUserAgent string `gorm:"size:512"`
	GeoCountry    string `gorm:"size:100"`
	GeoRegion     string `gorm:"size:100"`
	GeoCity       string `gorm:"size:100"`
	GeoISP        string `gorm:"size:200"`
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// NewUserModel maps a domain entity onto the persistence model.
func NewUserModel(u *user.User) *UserModel {
	g := u.LastGeo()
	return &UserModel{
		ID:            u.ID(),
		SID:           u.SID(),
		Name:          u.Name(),
		Email:         u.Email(),
		PasswordHash:  u.PasswordHash(),
		Role:          string(u.Role()),
		AvatarURL:     u.AvatarURL(),
		LastIPAddress: u.LastIPAddress(),
		LastUserAgent: u.LastUserAgent(),
		GeoCountry:    g.Country,
		GeoRegion:     g.Region,
		GeoCity:       g.City,
		GeoISP:        g.ISP,
		LastLoginAt:   u.LastLoginAt(),
		CreatedAt:     u.CreatedAt(),
		UpdatedAt:     u.UpdatedAt(),
	}
}

// ToEntity maps the persistence model back to the domain entity.
func (m *UserModel) ToEntity() *user.User {
	return user.Reconstruct(
		m.ID,
		m.SID,
		m.Name,
		m.Email,
		m.PasswordHash,
		user.Role(m.Role),
		m.AvatarURL,
		m.LastIPAddress,
		m.LastUserAgent,
		geo.Record{
			Country: m.GeoCountry,
			Region:  m.GeoRegion,
			City:    m.GeoCity,
			ISP:     m.GeoISP,
		},
		m.LastLoginAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
