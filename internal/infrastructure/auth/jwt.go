package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gavel/internal/domain/user"
)

// Claims is the session token payload. Validity derives solely from the
// signature and expiry: there is no server-side session record, so logout
// cannot invalidate an outstanding token before it expires.
type Claims struct {
	UserSID string    `json:"user_sid"`
	Role    user.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService mints and verifies HS256 session tokens with a fixed lifetime.
type JWTService struct {
	secret         []byte
	sessionExpDays int
}

func NewJWTService(secret string, sessionExpDays int) *JWTService {
	return &JWTService{
		secret:         []byte(secret),
		sessionExpDays: sessionExpDays,
	}
}

// Issue produces a signed token for the given user identity and role.
// It returns the token string and its lifetime in seconds.
func (s *JWTService) Issue(userSID string, role user.Role) (string, int64, error) {
	now := time.Now().UTC()
	lifetime := time.Duration(s.sessionExpDays) * 24 * time.Hour

	claims := &Claims{
		UserSID: userSID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, int64(lifetime.Seconds()), nil
}

// Verify parses and validates a session token.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// SessionMaxAge returns the cookie lifetime in seconds.
func (s *JWTService) SessionMaxAge() int {
	return s.sessionExpDays * 24 * 60 * 60
}
