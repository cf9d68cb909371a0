package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gavel/internal/application/admin/usecases"
	"gavel/internal/shared/logger"
	"gavel/internal/shared/utils"
)

type AdminHandler struct {
	dashboardUseCase  *usecases.GetDashboardUseCase
	listUsersUseCase  *usecases.ListUsersUseCase
	listLoginsUseCase *usecases.ListLoginEventsUseCase
	logger            logger.Interface
}

func NewAdminHandler(
	dashboardUC *usecases.GetDashboardUseCase,
	listUsersUC *usecases.ListUsersUseCase,
	listLoginsUC *usecases.ListLoginEventsUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		dashboardUseCase:  dashboardUC,
		listUsersUseCase:  listUsersUC,
		listLoginsUseCase: listLoginsUC,
		logger:            logger,
	}
}

// GetDashboard returns the aggregate counters for the admin landing page.
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats, err := h.dashboardUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "dashboard retrieved successfully", stats)
}

// ListUsers returns a page of registered users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := paginationParams(c)

	users, total, err := h.listUsersUseCase.Execute(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]map[string]interface{}, 0, len(users))
	for _, u := range users {
		info := u.DisplayInfo()
		info["last_ip_address"] = u.LastIPAddress()
		info["last_user_agent"] = u.LastUserAgent()
		info["last_geo"] = u.LastGeo()
		info["last_login_at"] = u.LastLoginAt()
		items = append(items, info)
	}

	utils.ListSuccessResponse(c, items, total, page, pageSize)
}

// ListLoginEvents returns the login audit trail, optionally filtered to a
// single user via the user_id query parameter.
func (h *AdminHandler) ListLoginEvents(c *gin.Context) {
	page, pageSize := paginationParams(c)

	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 64)

	query := usecases.ListLoginEventsQuery{
		UserID:   uint(userID),
		Page:     page,
		PageSize: pageSize,
	}

	events, total, err := h.listLoginsUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(events))
	for _, ev := range events {
		items = append(items, gin.H{
			"user_id":    ev.UserID(),
			"ip_address": ev.IPAddress(),
			"user_agent": ev.UserAgent(),
			"location":   ev.Location(),
			"login_at":   ev.LoginAt(),
		})
	}

	utils.ListSuccessResponse(c, items, total, page, pageSize)
}

func paginationParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
