package usecases

import (
	"context"
	"fmt"

	"gavel/internal/domain/user"
	"gavel/internal/shared/logger"
)

// ListUsersUseCase returns a page of accounts for the admin panel.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	users, total, err := uc.userRepo.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}
