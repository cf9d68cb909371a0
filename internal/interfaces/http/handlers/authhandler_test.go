package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gavel/internal/application/auth/usecases"
	"gavel/internal/domain/geo"
	"gavel/internal/domain/user"
	"gavel/internal/interfaces/http/handlers/testutil"
	"gavel/internal/shared/config"
	"gavel/internal/shared/errors"
	"gavel/internal/shared/utils"
)

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
	gotCmd usecases.LoginCommand
	called bool
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	m.called = true
	m.gotCmd = cmd
	return m.result, m.err
}

type mockSignupUC struct {
	result *usecases.SignupResult
	err    error
	called bool
}

func (m *mockSignupUC) Execute(ctx context.Context, cmd usecases.SignupCommand) (*usecases.SignupResult, error) {
	m.called = true
	return m.result, m.err
}

func testUser(t *testing.T) *user.User {
	t.Helper()
	return user.Reconstruct(
		1, "usr_test12345678", "Alice", "alice@example.com", "hash",
		user.RoleUser, "", "", "", geo.DefaultRecord(), nil,
		time.Now().UTC(), time.Now().UTC(),
	)
}

func testCookieConfig() config.CookieConfig {
	return config.CookieConfig{Path: "/", SameSite: "Lax"}
}

func authCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == utils.AuthTokenCookie {
			return ck
		}
	}
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	loginUC := &mockLoginUC{result: &usecases.LoginResult{
		User:      testUser(t),
		Token:     "signed-token",
		ExpiresIn: 604800,
	}}
	h := NewAuthHandler(loginUC, &mockSignupUC{}, testutil.NewMockLogger(), testCookieConfig())

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	c.Request.Header.Set("User-Agent", "test-agent")

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "login successful", resp.Message)

	// The command carries request provenance.
	assert.Equal(t, "alice@example.com", loginUC.gotCmd.Email)
	assert.Equal(t, "test-agent", loginUC.gotCmd.UserAgent)

	ck := authCookie(t, w)
	require.NotNil(t, ck)
	assert.Equal(t, "signed-token", ck.Value)
	assert.Equal(t, 604800, ck.MaxAge)
	assert.True(t, ck.HttpOnly)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	loginUC := &mockLoginUC{}
	h := NewAuthHandler(loginUC, &mockSignupUC{}, testutil.NewMockLogger(), testCookieConfig())

	tests := []struct {
		name string
		body map[string]string
	}{
		{"no body fields", map[string]string{}},
		{"missing password", map[string]string{"email": "alice@example.com"}},
		{"missing email", map[string]string{"password": "secret123"}},
		{"malformed email", map[string]string{"email": "nope", "password": "secret123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", tt.body)

			h.Login(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, authCookie(t, w))
		})
	}
	assert.False(t, loginUC.called)
}

func TestAuthHandler_Login_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown user", errors.NewUserNotFoundError(), http.StatusBadRequest},
		{"wrong password", errors.NewInvalidCredentialsError(), http.StatusUnauthorized},
		{"internal failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockLoginUC{err: tt.err}, &mockSignupUC{}, testutil.NewMockLogger(), testCookieConfig())

			c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{
				"email":    "alice@example.com",
				"password": "secret123",
			})

			h.Login(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Nil(t, authCookie(t, w))

			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.False(t, resp.Success)
		})
	}
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	signupUC := &mockSignupUC{result: &usecases.SignupResult{
		User:      testUser(t),
		Token:     "signed-token",
		ExpiresIn: 604800,
	}}
	h := NewAuthHandler(&mockLoginUC{}, signupUC, testutil.NewMockLogger(), testCookieConfig())

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/signup", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	h.Signup(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	ck := authCookie(t, w)
	require.NotNil(t, ck)
	assert.Equal(t, "signed-token", ck.Value)
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	signupUC := &mockSignupUC{}
	h := NewAuthHandler(&mockLoginUC{}, signupUC, testutil.NewMockLogger(), testCookieConfig())

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/signup", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "short",
	})

	h.Signup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, signupUC.called)
}

func TestAuthHandler_Signup_EmailTaken(t *testing.T) {
	h := NewAuthHandler(&mockLoginUC{}, &mockSignupUC{err: errors.NewEmailTakenError()}, testutil.NewMockLogger(), testCookieConfig())

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/signup", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	h.Signup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "user already exists", resp.Error.Message)
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&mockLoginUC{}, &mockSignupUC{}, testutil.NewMockLogger(), testCookieConfig())

	// Logout needs no valid session, only the clear-cookie response.
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/logout", nil)

	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)

	ck := authCookie(t, w)
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
	assert.Negative(t, ck.MaxAge)
}
