package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gavel/internal/application/auth/usecases"
	"gavel/internal/shared/config"
	"gavel/internal/shared/logger"
	"gavel/internal/shared/utils"
)

// Use-case interfaces keep the handler testable without real dependencies.
type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type signupUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignupCommand) (*usecases.SignupResult, error)
}

type AuthHandler struct {
	loginUseCase  loginUseCase
	signupUseCase signupUseCase
	logger        logger.Interface
	cookieConfig  config.CookieConfig
}

func NewAuthHandler(
	loginUC loginUseCase,
	signupUC signupUseCase,
	logger logger.Interface,
	cookieConfig config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:  loginUC,
		signupUseCase: signupUC,
		logger:        logger,
		cookieConfig:  cookieConfig,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Login authenticates a user and attaches the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "all fields are required")
		return
	}

	cmd := usecases.LoginCommand{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAuthCookie(c, h.cookieConfig, result.Token, int(result.ExpiresIn))

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user":       result.User.DisplayInfo(),
		"expires_in": result.ExpiresIn,
	})
}

// Signup registers a new user and attaches the session cookie.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "all fields are required")
		return
	}

	cmd := usecases.SignupCommand{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	result, err := h.signupUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("signup failed", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAuthCookie(c, h.cookieConfig, result.Token, int(result.ExpiresIn))

	utils.SuccessResponse(c, http.StatusCreated, "user registered successfully", gin.H{
		"user":       result.User.DisplayInfo(),
		"expires_in": result.ExpiresIn,
	})
}

// Logout clears the session cookie. No credential validation happens here:
// the session is stateless, so clearing the cookie is the whole operation.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookie(c, h.cookieConfig)

	utils.SuccessResponse(c, http.StatusOK, "logged out successfully", nil)
}
