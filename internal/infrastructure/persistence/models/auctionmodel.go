package models

import (
	"time"

	"gavel/internal/domain/auction"
)

// AuctionModel is the persistence model for auction listings.
type AuctionModel struct {
	ID            uint      `gorm:"primarykey"`
	SID           string    `gorm:"uniqueIndex;not null;size:20"`
	SellerID      uint      `gorm:"not null;index:idx_auctions_seller_id"`
	Title         string    `gorm:"not null;size:200"`
	Description   string    `gorm:"type:text"`
	StartingPrice float64   `gorm:"not null"`
	CurrentPrice  float64   `gorm:"not null"`
	BidCount      int       `gorm:"not null;default:0"`
	Status        string    `gorm:"not null;default:open;size:20;index:idx_auctions_status"`
	EndsAt        time.Time `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (AuctionModel) TableName() string {
	return "auctions"
}

// BidModel is the persistence model for bids. Rows are insert-only.
type BidModel struct {
	ID        uint      `gorm:"primarykey"`
	SID       string    `gorm:"uniqueIndex;not null;size:20"`
	AuctionID uint      `gorm:"not null;index:idx_bids_auction_id"`
	BidderID  uint      `gorm:"not null;index:idx_bids_bidder_id"`
	Amount    float64   `gorm:"not null"`
	PlacedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (BidModel) TableName() string {
	return "bids"
}

// NewAuctionModel maps a domain entity onto the persistence model.
func NewAuctionModel(a *auction.Auction) *AuctionModel {
	return &AuctionModel{
		ID:            a.ID(),
		SID:           a.SID(),
		SellerID:      a.SellerID(),
		Title:         a.Title(),
		Description:   a.Description(),
		StartingPrice: a.StartingPrice(),
		CurrentPrice:  a.CurrentPrice(),
		BidCount:      a.BidCount(),
		Status:        string(a.Status()),
		EndsAt:        a.EndsAt(),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
}

// ToEntity maps the persistence model back to the domain entity.
func (m *AuctionModel) ToEntity() *auction.Auction {
	return auction.Reconstruct(
		m.ID,
		m.SID,
		m.SellerID,
		m.Title,
		m.Description,
		m.StartingPrice,
		m.CurrentPrice,
		m.BidCount,
		auction.Status(m.Status),
		m.EndsAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// NewBidModel maps a bid onto the persistence model.
func NewBidModel(b *auction.Bid) *BidModel {
	return &BidModel{
		ID:        b.ID(),
		SID:       b.SID(),
		AuctionID: b.AuctionID(),
		BidderID:  b.BidderID(),
		Amount:    b.Amount(),
		PlacedAt:  b.PlacedAt(),
	}
}

// ToEntity maps the persistence model back to the bid entity.
func (m *BidModel) ToEntity() *auction.Bid {
	return auction.ReconstructBid(m.ID, m.SID, m.AuctionID, m.BidderID, m.Amount, m.PlacedAt)
}
