package user

import (
	"fmt"
	"strings"
	"time"

	"gavel/internal/domain/geo"
)

// Role determines which routes a session token can reach.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// DefaultAvatarURL is assigned to users who never uploaded an avatar.
const DefaultAvatarURL = "https://avatar.iran.liara.run/public/7"

// PasswordHasher is the one-way credential transform used by the user entity.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is the account aggregate. The password hash never leaves the entity
// except through the persistence mapper.
type User struct {
	id           uint
	sid          string
	name         string
	email        string
	passwordHash string
	role         Role
	avatarURL    string

	lastIPAddress string
	lastUserAgent string
	lastGeo       geo.Record
	lastLoginAt   *time.Time

	createdAt time.Time
	updatedAt time.Time
}

// NormalizeEmail applies the canonical address form used for storage and
// lookups: trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser creates an account pending its first credential.
func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email format")
	}

	now := time.Now().UTC()
	return &User{
		name:      name,
		email:     email,
		role:      RoleUser,
		avatarURL: DefaultAvatarURL,
		lastGeo:   geo.DefaultRecord(),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a user from persisted state.
func Reconstruct(
	id uint,
	sid string,
	name string,
	email string,
	passwordHash string,
	role Role,
	avatarURL string,
	lastIPAddress string,
	lastUserAgent string,
	lastGeo geo.Record,
	lastLoginAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		sid:           sid,
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		avatarURL:     avatarURL,
		lastIPAddress: lastIPAddress,
		lastUserAgent: lastUserAgent,
		lastGeo:       lastGeo.Normalized(),
		lastLoginAt:   lastLoginAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *User) ID() uint              { return u.id }
func (u *User) SID() string           { return u.sid }
func (u *User) Name() string          { return u.name }
func (u *User) Email() string         { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) AvatarURL() string     { return u.avatarURL }
func (u *User) LastIPAddress() string { return u.lastIPAddress }
func (u *User) LastUserAgent() string { return u.lastUserAgent }
func (u *User) LastGeo() geo.Record   { return u.lastGeo }
func (u *User) LastLoginAt() *time.Time {
	return u.lastLoginAt
}
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID is called by the repository after the initial insert.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	u.id = id
	return nil
}

// SetSID assigns the external identifier. Set once at creation time.
func (u *User) SetSID(sid string) error {
	if u.sid != "" {
		return fmt.Errorf("user SID already set")
	}
	u.sid = sid
	return nil
}

// SetPassword hashes and stores the credential, replacing any prior hash.
func (u *User) SetPassword(plaintext string, hasher PasswordHasher) error {
	if plaintext == "" {
		return fmt.Errorf("password is required")
	}
	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

// VerifyPassword checks the plaintext against the stored hash.
func (u *User) VerifyPassword(plaintext string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("no password set")
	}
	return hasher.Verify(plaintext, u.passwordHash)
}

// RecordLogin updates the mutable last-seen fields. The immutable audit
// trail is written separately; this only mirrors the latest occurrence.
func (u *User) RecordLogin(ipAddress, userAgent string, record geo.Record, at time.Time) {
	u.lastIPAddress = ipAddress
	u.lastUserAgent = userAgent
	u.lastGeo = record.Normalized()
	u.lastLoginAt = &at
	u.updatedAt = at
}

// PromoteToAdmin elevates the account role.
func (u *User) PromoteToAdmin() {
	u.role = RoleAdmin
	u.updatedAt = time.Now().UTC()
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// DisplayInfo returns the client-safe projection of the account.
// The password hash is deliberately absent.
func (u *User) DisplayInfo() map[string]interface{} {
	info := map[string]interface{}{
		"id":         u.sid,
		"name":       u.name,
		"email":      u.email,
		"role":       string(u.role),
		"avatar":     u.avatarURL,
		"location":   u.lastGeo,
		"created_at": u.createdAt,
	}
	if u.lastLoginAt != nil {
		info["last_login"] = *u.lastLoginAt
	}
	return info
}
