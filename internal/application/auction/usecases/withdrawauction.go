package usecases

import (
	"context"
	"fmt"
	"time"

	"gavel/internal/domain/auction"
	"gavel/internal/shared/errors"
	"gavel/internal/shared/logger"
)

type WithdrawAuctionCommand struct {
	AuctionSID  string
	RequesterID uint
	IsAdmin     bool
}

// WithdrawAuctionUseCase removes a bid-free listing. Only the seller or an
// admin may withdraw.
type WithdrawAuctionUseCase struct {
	auctionRepo auction.Repository
	logger      logger.Interface
}

func NewWithdrawAuctionUseCase(auctionRepo auction.Repository, logger logger.Interface) *WithdrawAuctionUseCase {
	return &WithdrawAuctionUseCase{
		auctionRepo: auctionRepo,
		logger:      logger,
	}
}

func (uc *WithdrawAuctionUseCase) Execute(ctx context.Context, cmd WithdrawAuctionCommand) error {
	found, err := uc.auctionRepo.GetBySID(ctx, cmd.AuctionSID)
	if err != nil {
		uc.logger.Errorw("failed to get auction", "sid", cmd.AuctionSID, "error", err)
		return fmt.Errorf("failed to get auction: %w", err)
	}
	if found == nil {
		return errors.NewNotFoundError("auction not found")
	}

	if found.SellerID() != cmd.RequesterID && !cmd.IsAdmin {
		return errors.NewForbiddenError("only the seller can withdraw this auction")
	}

	if err := found.Withdraw(time.Now().UTC()); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.auctionRepo.Update(ctx, found); err != nil {
		uc.logger.Errorw("failed to withdraw auction", "auction_id", found.ID(), "error", err)
		return fmt.Errorf("failed to withdraw auction: %w", err)
	}

	uc.logger.Infow("auction withdrawn", "auction_id", found.ID(), "requester_id", cmd.RequesterID)
	return nil
}
