package usecases

import (
	"context"
	"fmt"

	"gavel/internal/domain/auction"
	"gavel/internal/domain/audit"
	"gavel/internal/domain/user"
	"gavel/internal/shared/logger"
)

type DashboardStats struct {
	UserCount    int64 `json:"user_count"`
	AuctionCount int64 `json:"auction_count"`
	LoginCount   int64 `json:"login_count"`
}

// GetDashboardUseCase aggregates the counters shown on the admin landing page.
type GetDashboardUseCase struct {
	userRepo    user.Repository
	auctionRepo auction.Repository
	auditRepo   audit.Repository
	logger      logger.Interface
}

func NewGetDashboardUseCase(
	userRepo user.Repository,
	auctionRepo auction.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		userRepo:    userRepo,
		auctionRepo: auctionRepo,
		auditRepo:   auditRepo,
		logger:      logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*DashboardStats, error) {
	users, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	auctions, err := uc.auctionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count auctions: %w", err)
	}
	logins, err := uc.auditRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count login events: %w", err)
	}

	return &DashboardStats{
		UserCount:    users,
		AuctionCount: auctions,
		LoginCount:   logins,
	}, nil
}
