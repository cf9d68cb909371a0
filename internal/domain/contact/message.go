// Package contact holds contact-form submissions from the public site.
package contact

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Message is one contact-form submission.
type Message struct {
	id        uint
	name      string
	email     string
	subject   string
	body      string
	createdAt time.Time
}

// NewMessage validates and creates a submission.
func NewMessage(name, email, subject, body string) (*Message, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	subject = strings.TrimSpace(subject)
	body = strings.TrimSpace(body)

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if body == "" {
		return nil, fmt.Errorf("message is required")
	}
	if len(body) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}

	return &Message{
		name:      name,
		email:     email,
		subject:   subject,
		body:      body,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructMessage rebuilds a submission from persisted state.
func ReconstructMessage(id uint, name, email, subject, body string, createdAt time.Time) *Message {
	return &Message{
		id:        id,
		name:      name,
		email:     email,
		subject:   subject,
		body:      body,
		createdAt: createdAt,
	}
}

func (m *Message) ID() uint             { return m.id }
func (m *Message) Name() string         { return m.name }
func (m *Message) Email() string        { return m.email }
func (m *Message) Subject() string      { return m.subject }
func (m *Message) Body() string         { return m.body }
func (m *Message) CreatedAt() time.Time { return m.createdAt }

// SetID is called by the repository after the insert.
func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID already set")
	}
	m.id = id
	return nil
}

// Repository persists contact messages.
type Repository interface {
	Create(ctx context.Context, m *Message) error
	List(ctx context.Context, page, pageSize int) ([]*Message, int64, error)
}
