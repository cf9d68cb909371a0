package usecases

import (
	"context"
	"fmt"
	"time"

	"gavel/internal/domain/auction"
	"gavel/internal/shared/errors"
	"gavel/internal/shared/id"
	"gavel/internal/shared/logger"
	"gavel/internal/shared/services/markdown"
)

type CreateAuctionCommand struct {
	SellerID      uint
	Title         string
	Description   string
	StartingPrice float64
	EndsAt        time.Time
}

// CreateAuctionUseCase opens a new listing. The description is markdown and
// is sanitized before storage so it can be served to browsers as-is.
type CreateAuctionUseCase struct {
	auctionRepo auction.Repository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewCreateAuctionUseCase(auctionRepo auction.Repository, markdown markdown.Service, logger logger.Interface) *CreateAuctionUseCase {
	return &CreateAuctionUseCase{
		auctionRepo: auctionRepo,
		markdown:    markdown,
		logger:      logger,
	}
}

func (uc *CreateAuctionUseCase) Execute(ctx context.Context, cmd CreateAuctionCommand) (*auction.Auction, error) {
	description := cmd.Description
	if description != "" {
		rendered, err := uc.markdown.ToHTMLSanitized(description)
		if err != nil {
			return nil, errors.NewValidationError("invalid description markup")
		}
		description = rendered
	}

	newAuction, err := auction.NewAuction(cmd.SellerID, cmd.Title, description, cmd.StartingPrice, cmd.EndsAt)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newAuction.SetSID(id.MustGenerateWithPrefix(id.PrefixAuction, id.DefaultLength)); err != nil {
		return nil, fmt.Errorf("failed to assign auction SID: %w", err)
	}

	if err := uc.auctionRepo.Create(ctx, newAuction); err != nil {
		uc.logger.Errorw("failed to create auction", "error", err)
		return nil, fmt.Errorf("failed to create auction: %w", err)
	}

	return newAuction, nil
}
