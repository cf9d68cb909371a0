package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gavel/internal/domain/user"
	"gavel/internal/infrastructure/auth"
	"gavel/internal/shared/logger"
	"gavel/internal/shared/utils"
)

const (
	ContextKeyUserSID  = "user_sid"
	ContextKeyUserRole = "user_role"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// tokenFromRequest reads the session token from the auth cookie, falling
// back to a Bearer header for non-browser clients.
func tokenFromRequest(c *gin.Context) string {
	if token := utils.GetTokenFromCookie(c, utils.AuthTokenCookie); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserSID, claims.UserSID)
		c.Set(ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok || role != string(user.RoleAdmin) {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth sets the identity keys when a valid token is present but
// never rejects the request.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err == nil {
			c.Set(ContextKeyUserSID, claims.UserSID)
			c.Set(ContextKeyUserRole, string(claims.Role))
		}

		c.Next()
	}
}

// GetUserSID returns the authenticated user's SID from the request context.
func GetUserSID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextKeyUserSID)
	if !exists {
		return "", false
	}
	sid, ok := v.(string)
	return sid, ok && sid != ""
}

// GetUserRole returns the authenticated user's role from the request context.
func GetUserRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextKeyUserRole)
	if !exists {
		return "", false
	}
	role, ok := v.(string)
	return role, ok && role != ""
}
