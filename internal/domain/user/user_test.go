package user

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gavel/internal/domain/geo"
)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

func TestNewUser(t *testing.T) {
	u, err := NewUser("Alice", "Alice@Example.COM ")
	require.NoError(t, err)

	// Email is normalized at the domain boundary.
	assert.Equal(t, "alice@example.com", u.Email())
	assert.Equal(t, RoleUser, u.Role())
	assert.Equal(t, DefaultAvatarURL, u.AvatarURL())
	assert.True(t, u.LastGeo().IsDefault())
	assert.Nil(t, u.LastLoginAt())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "bob@example.com", NormalizeEmail("  Bob@Example.COM "))
	assert.Equal(t, "bob@example.com", NormalizeEmail("bob@example.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
	}{
		{"empty name", "", "a@b.com"},
		{"long name", strings.Repeat("x", 101), "a@b.com"},
		{"empty email", "Alice", ""},
		{"email without at", "Alice", "not-an-email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.userName, tt.email)
			assert.Error(t, err)
		})
	}
}

func TestUser_SetPasswordAndVerify(t *testing.T) {
	u, err := NewUser("Alice", "alice@example.com")
	require.NoError(t, err)

	// No password yet.
	assert.Error(t, u.VerifyPassword("anything", fakeHasher{}))

	require.NoError(t, u.SetPassword("secret123", fakeHasher{}))
	assert.NoError(t, u.VerifyPassword("secret123", fakeHasher{}))
	assert.Error(t, u.VerifyPassword("wrong", fakeHasher{}))

	assert.Error(t, u.SetPassword("", fakeHasher{}))
}

func TestUser_RecordLogin(t *testing.T) {
	u, err := NewUser("Alice", "alice@example.com")
	require.NoError(t, err)

	at := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	u.RecordLogin("203.0.113.7", "agent/1.0", geo.Record{Country: "France"}, at)

	assert.Equal(t, "203.0.113.7", u.LastIPAddress())
	assert.Equal(t, "agent/1.0", u.LastUserAgent())
	assert.Equal(t, "France", u.LastGeo().Country)
	// Missing geo fields picked up the unknown placeholder.
	assert.Equal(t, geo.Unknown, u.LastGeo().City)
	require.NotNil(t, u.LastLoginAt())
	assert.Equal(t, at, *u.LastLoginAt())

	// A later login overwrites the mirror.
	later := at.Add(time.Hour)
	u.RecordLogin("198.51.100.4", "agent/2.0", geo.DefaultRecord(), later)
	assert.Equal(t, "198.51.100.4", u.LastIPAddress())
	assert.Equal(t, later, *u.LastLoginAt())
}

func TestUser_SetIDAndSIDOnce(t *testing.T) {
	u, err := NewUser("Alice", "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, u.SetID(1))
	assert.Error(t, u.SetID(2))
	require.NoError(t, u.SetSID("usr_abc"))
	assert.Error(t, u.SetSID("usr_def"))
}

func TestUser_PromoteToAdmin(t *testing.T) {
	u, err := NewUser("Alice", "alice@example.com")
	require.NoError(t, err)

	assert.False(t, u.IsAdmin())
	u.PromoteToAdmin()
	assert.True(t, u.IsAdmin())
	assert.Equal(t, RoleAdmin, u.Role())
}

func TestUser_DisplayInfoOmitsPasswordHash(t *testing.T) {
	u, err := NewUser("Alice", "alice@example.com")
	require.NoError(t, err)
	require.NoError(t, u.SetPassword("secret123", fakeHasher{}))
	require.NoError(t, u.SetSID("usr_abc"))

	info := u.DisplayInfo()

	assert.Equal(t, "usr_abc", info["id"])
	assert.Equal(t, "alice@example.com", info["email"])
	for key := range info {
		assert.NotContains(t, strings.ToLower(key), "password")
		assert.NotContains(t, strings.ToLower(key), "hash")
	}
	// No login recorded yet.
	_, ok := info["last_login"]
	assert.False(t, ok)
}
