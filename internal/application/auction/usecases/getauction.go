package usecases

import (
	"context"
	"fmt"

	"gavel/internal/domain/auction"
	"gavel/internal/shared/errors"
	"gavel/internal/shared/logger"
)

type AuctionDetail struct {
	Auction *auction.Auction
	Bids    []*auction.Bid
}

// GetAuctionUseCase loads one listing with its bid history.
type GetAuctionUseCase struct {
	auctionRepo auction.Repository
	logger      logger.Interface
}

func NewGetAuctionUseCase(auctionRepo auction.Repository, logger logger.Interface) *GetAuctionUseCase {
	return &GetAuctionUseCase{
		auctionRepo: auctionRepo,
		logger:      logger,
	}
}

func (uc *GetAuctionUseCase) Execute(ctx context.Context, sid string) (*AuctionDetail, error) {
	found, err := uc.auctionRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get auction", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get auction: %w", err)
	}
	if found == nil {
		return nil, errors.NewNotFoundError("auction not found")
	}

	bids, err := uc.auctionRepo.ListBids(ctx, found.ID())
	if err != nil {
		uc.logger.Errorw("failed to list bids", "auction_id", found.ID(), "error", err)
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}

	return &AuctionDetail{Auction: found, Bids: bids}, nil
}
