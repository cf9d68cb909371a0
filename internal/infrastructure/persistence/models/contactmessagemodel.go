package models

import (
	"time"

	"gavel/internal/domain/contact"
)

// ContactMessageModel is the persistence model for contact submissions.
type ContactMessageModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:100"`
	Email     string `gorm:"not null;size:255"`
	Subject   string `gorm:"not null;size:200"`
	Body      string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

// NewContactMessageModel maps a domain message onto the persistence model.
func NewContactMessageModel(m *contact.Message) *ContactMessageModel {
	return &ContactMessageModel{
		ID:        m.ID(),
		Name:      m.Name(),
		Email:     m.Email(),
		Subject:   m.Subject(),
		Body:      m.Body(),
		CreatedAt: m.CreatedAt(),
	}
}

// ToEntity maps the persistence model back to the domain message.
func (m *ContactMessageModel) ToEntity() *contact.Message {
	return contact.ReconstructMessage(m.ID, m.Name, m.Email, m.Subject, m.Body, m.CreatedAt)
}
