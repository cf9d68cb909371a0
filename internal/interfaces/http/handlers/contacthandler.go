package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gavel/internal/application/contact/usecases"
	"gavel/internal/shared/logger"
	"gavel/internal/shared/utils"
)

type ContactHandler struct {
	submitUseCase *usecases.SubmitMessageUseCase
	logger        logger.Interface
}

func NewContactHandler(submitUC *usecases.SubmitMessageUseCase, logger logger.Interface) *ContactHandler {
	return &ContactHandler{
		submitUseCase: submitUC,
		logger:        logger,
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=3,max=200"`
	Message string `json:"message" binding:"required,min=10,max=5000"`
}

// Submit stores a contact form submission. Public.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "all fields are required")
		return
	}

	cmd := usecases.SubmitMessageCommand{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if _, err := h.submitUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "message received successfully", nil)
}
