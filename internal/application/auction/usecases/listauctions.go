package usecases

import (
	"context"
	"fmt"

	"gavel/internal/domain/auction"
	"gavel/internal/shared/logger"
)

type ListAuctionsQuery struct {
	Status   auction.Status
	SellerID uint
	Page     int
	PageSize int
}

// ListAuctionsUseCase returns a filtered page of listings.
type ListAuctionsUseCase struct {
	auctionRepo auction.Repository
	logger      logger.Interface
}

func NewListAuctionsUseCase(auctionRepo auction.Repository, logger logger.Interface) *ListAuctionsUseCase {
	return &ListAuctionsUseCase{
		auctionRepo: auctionRepo,
		logger:      logger,
	}
}

func (uc *ListAuctionsUseCase) Execute(ctx context.Context, query ListAuctionsQuery) ([]*auction.Auction, int64, error) {
	auctions, total, err := uc.auctionRepo.List(ctx, auction.ListFilter{
		Status:   query.Status,
		SellerID: query.SellerID,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list auctions", "error", err)
		return nil, 0, fmt.Errorf("failed to list auctions: %w", err)
	}
	return auctions, total, nil
}
