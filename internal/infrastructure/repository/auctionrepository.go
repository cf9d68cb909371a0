package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gavel/internal/domain/auction"
	"gavel/internal/infrastructure/persistence/models"
	"gavel/internal/shared/logger"
)

// AuctionRepository implements auction.Repository on gorm.
type AuctionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAuctionRepository(db *gorm.DB, logger logger.Interface) auction.Repository {
	return &AuctionRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new listing and writes the generated ID back.
func (r *AuctionRepository) Create(ctx context.Context, entity *auction.Auction) error {
	model := models.NewAuctionModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create auction", "error", err)
		return fmt.Errorf("failed to create auction: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set auction ID: %w", err)
	}

	r.logger.Infow("auction created", "id", model.ID, "sid", model.SID)
	return nil
}

// GetBySID retrieves a listing by external short ID. Returns (nil, nil) when absent.
func (r *AuctionRepository) GetBySID(ctx context.Context, sid string) (*auction.Auction, error) {
	var model models.AuctionModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get auction by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get auction: %w", err)
	}

	return model.ToEntity(), nil
}

// Update persists the mutable listing columns.
func (r *AuctionRepository) Update(ctx context.Context, entity *auction.Auction) error {
	updates := map[string]interface{}{
		"current_price": entity.CurrentPrice(),
		"bid_count":     entity.BidCount(),
		"status":        string(entity.Status()),
		"updated_at":    entity.UpdatedAt(),
	}

	result := r.db.WithContext(ctx).Model(&models.AuctionModel{}).Where("id = ?", entity.ID()).Updates(updates)
	if result.Error != nil {
		r.logger.Errorw("failed to update auction", "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update auction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("auction %d not found", entity.ID())
	}
	return nil
}

// List returns a filtered page of listings with the total count.
func (r *AuctionRepository) List(ctx context.Context, filter auction.ListFilter) ([]*auction.Auction, int64, error) {
	page := filter.Page
	pageSize := filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := r.db.WithContext(ctx).Model(&models.AuctionModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.SellerID != 0 {
		query = query.Where("seller_id = ?", filter.SellerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count auctions: %w", err)
	}

	var auctionModels []*models.AuctionModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&auctionModels).Error
	if err != nil {
		r.logger.Errorw("failed to list auctions", "error", err)
		return nil, 0, fmt.Errorf("failed to list auctions: %w", err)
	}

	auctions := make([]*auction.Auction, 0, len(auctionModels))
	for _, model := range auctionModels {
		auctions = append(auctions, model.ToEntity())
	}

	return auctions, total, nil
}

// Count returns the total number of listings.
func (r *AuctionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AuctionModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count auctions: %w", err)
	}
	return count, nil
}

// CreateBid appends a bid row and writes the generated ID back.
func (r *AuctionRepository) CreateBid(ctx context.Context, bid *auction.Bid) error {
	model := models.NewBidModel(bid)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create bid", "auction_id", bid.AuctionID(), "error", err)
		return fmt.Errorf("failed to create bid: %w", err)
	}

	if err := bid.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set bid ID: %w", err)
	}
	return nil
}

// ListBids returns an auction's bids, highest first.
func (r *AuctionRepository) ListBids(ctx context.Context, auctionID uint) ([]*auction.Bid, error) {
	var bidModels []*models.BidModel
	err := r.db.WithContext(ctx).
		Where("auction_id = ?", auctionID).
		Order("amount DESC").
		Find(&bidModels).Error
	if err != nil {
		r.logger.Errorw("failed to list bids", "auction_id", auctionID, "error", err)
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}

	bids := make([]*auction.Bid, 0, len(bidModels))
	for _, model := range bidModels {
		bids = append(bids, model.ToEntity())
	}
	return bids, nil
}
