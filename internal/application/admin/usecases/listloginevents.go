package usecases

import (
	"context"
	"fmt"

	"gavel/internal/domain/audit"
	"gavel/internal/shared/logger"
)

type ListLoginEventsQuery struct {
	UserID   uint // 0 means all users
	Page     int
	PageSize int
}

// ListLoginEventsUseCase exposes the audit trail to the admin panel,
// optionally filtered to a single user.
type ListLoginEventsUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewListLoginEventsUseCase(auditRepo audit.Repository, logger logger.Interface) *ListLoginEventsUseCase {
	return &ListLoginEventsUseCase{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (uc *ListLoginEventsUseCase) Execute(ctx context.Context, query ListLoginEventsQuery) ([]*audit.LoginEvent, int64, error) {
	var events []*audit.LoginEvent
	var total int64
	var err error

	if query.UserID != 0 {
		events, total, err = uc.auditRepo.ListByUserID(ctx, query.UserID, query.Page, query.PageSize)
	} else {
		events, total, err = uc.auditRepo.List(ctx, query.Page, query.PageSize)
	}
	if err != nil {
		uc.logger.Errorw("failed to list login events", "error", err)
		return nil, 0, fmt.Errorf("failed to list login events: %w", err)
	}

	return events, total, nil
}
