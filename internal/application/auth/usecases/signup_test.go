package usecases

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gavel/internal/domain/geo"
	"gavel/internal/domain/user"
	"gavel/internal/interfaces/http/handlers/testutil"
	"gavel/internal/shared/errors"
)

func newSignupFixture() (*SignupUseCase, *mockUserRepo, *mockAuditRepo, *mockTokenIssuer, *mockGeoResolver) {
	userRepo := newMockUserRepo()
	auditRepo := &mockAuditRepo{}
	issuer := &mockTokenIssuer{token: "signed-token", expiresIn: 604800}
	resolver := &mockGeoResolver{}
	uc := NewSignupUseCase(userRepo, auditRepo, &mockHasher{}, issuer, resolver, testutil.NewMockLogger())
	return uc, userRepo, auditRepo, issuer, resolver
}

func TestSignupUseCase_Success(t *testing.T) {
	uc, userRepo, auditRepo, _, resolver := newSignupFixture()
	resolver.record = geo.Record{Country: "Japan", Region: "Tokyo", City: "Tokyo", ISP: "NTT"}

	result, err := uc.Execute(context.Background(), SignupCommand{
		Name:      "Bob",
		Email:     "bob@example.com",
		Password:  "secret123",
		IPAddress: "198.51.100.4",
		UserAgent: "test-agent",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)

	created := userRepo.createdUser
	require.NotNil(t, created)
	assert.Equal(t, "bob@example.com", created.Email())
	assert.Equal(t, user.RoleUser, created.Role())
	assert.True(t, strings.HasPrefix(created.SID(), "usr_"))
	assert.Equal(t, "hashed:secret123", created.PasswordHash())

	// Signup counts as the first login: last-seen fields are already set.
	assert.Equal(t, "198.51.100.4", created.LastIPAddress())
	assert.Equal(t, "Japan", created.LastGeo().Country)
	require.NotNil(t, created.LastLoginAt())

	// and the audit trail has the first event.
	require.Len(t, auditRepo.events, 1)
	assert.Equal(t, created.ID(), auditRepo.events[0].UserID())
}

func TestSignupUseCase_EmailTaken(t *testing.T) {
	uc, userRepo, _, issuer, _ := newSignupFixture()
	seedUser(t, userRepo, "bob@example.com", "other")

	_, err := uc.Execute(context.Background(), SignupCommand{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Zero(t, issuer.calls)
}

func TestSignupUseCase_EmailTakenMixedCase(t *testing.T) {
	uc, userRepo, _, issuer, _ := newSignupFixture()
	seedUser(t, userRepo, "bob@example.com", "other")

	// The pre-check must catch an existing account regardless of the
	// casing the caller types.
	_, err := uc.Execute(context.Background(), SignupCommand{
		Name:     "Bob",
		Email:    "Bob@Example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Zero(t, issuer.calls)
	assert.Nil(t, userRepo.createdUser)
}

func TestSignupUseCase_DuplicateRace(t *testing.T) {
	uc, userRepo, _, _, _ := newSignupFixture()
	userRepo.createErr = fmt.Errorf("Error 1062: Duplicate entry 'bob@example.com' for key 'email'")

	_, err := uc.Execute(context.Background(), SignupCommand{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret123",
	})

	// Losing the insert race maps to the same error as the upfront check.
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "user already exists", appErr.Message)
}

func TestSignupUseCase_InvalidName(t *testing.T) {
	uc, _, _, _, _ := newSignupFixture()

	_, err := uc.Execute(context.Background(), SignupCommand{
		Name:     "",
		Email:    "bob@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestSignupUseCase_GeoFailureUsesDefaults(t *testing.T) {
	uc, userRepo, _, _, _ := newSignupFixture()

	_, err := uc.Execute(context.Background(), SignupCommand{
		Name:      "Bob",
		Email:     "bob@example.com",
		Password:  "secret123",
		IPAddress: "127.0.0.1",
	})

	require.NoError(t, err)
	assert.Equal(t, geo.Unknown, userRepo.createdUser.LastGeo().Country)
}

func TestSignupUseCase_AuditFailureDoesNotFailSignup(t *testing.T) {
	uc, userRepo, auditRepo, _, _ := newSignupFixture()
	auditRepo.createErr = fmt.Errorf("table is full")

	result, err := uc.Execute(context.Background(), SignupCommand{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotNil(t, userRepo.createdUser)
}
