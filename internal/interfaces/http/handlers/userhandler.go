package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gavel/internal/domain/audit"
	"gavel/internal/domain/user"
	"gavel/internal/interfaces/http/middleware"
	"gavel/internal/shared/errors"
	"gavel/internal/shared/logger"
	"gavel/internal/shared/utils"
)

type UserHandler struct {
	userRepo  user.Repository
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewUserHandler(userRepo user.Repository, auditRepo audit.Repository, logger logger.Interface) *UserHandler {
	return &UserHandler{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// GetCurrentUser returns the profile of the authenticated user.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	sid, ok := middleware.GetUserSID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	u, err := h.userRepo.GetBySID(c.Request.Context(), sid)
	if err != nil {
		h.logger.Errorw("failed to load current user", "error", err, "user_sid", sid)
		utils.ErrorResponseWithError(c, errors.NewInternalError("internal server error"))
		return
	}
	if u == nil {
		// Token refers to a user that no longer exists.
		utils.ErrorResponseWithError(c, errors.NewUserNotFoundError())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user retrieved successfully", u.DisplayInfo())
}

// GetLoginHistory returns the authenticated user's login audit trail,
// newest first.
func (h *UserHandler) GetLoginHistory(c *gin.Context) {
	sid, ok := middleware.GetUserSID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	u, err := h.userRepo.GetBySID(c.Request.Context(), sid)
	if err != nil {
		h.logger.Errorw("failed to load current user", "error", err, "user_sid", sid)
		utils.ErrorResponseWithError(c, errors.NewInternalError("internal server error"))
		return
	}
	if u == nil {
		utils.ErrorResponseWithError(c, errors.NewUserNotFoundError())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	events, total, err := h.auditRepo.ListByUserID(c.Request.Context(), u.ID(), page, pageSize)
	if err != nil {
		h.logger.Errorw("failed to list login events", "error", err, "user_id", u.ID())
		utils.ErrorResponseWithError(c, errors.NewInternalError("internal server error"))
		return
	}

	items := make([]gin.H, 0, len(events))
	for _, ev := range events {
		items = append(items, gin.H{
			"ip_address": ev.IPAddress(),
			"user_agent": ev.UserAgent(),
			"location":   ev.Location(),
			"login_at":   ev.LoginAt(),
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "login history retrieved successfully", gin.H{
		"logins":    items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
