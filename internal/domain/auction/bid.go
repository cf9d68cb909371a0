package auction

import (
	"fmt"
	"time"
)

// Bid is an immutable offer on an auction. Rows are append-only; the winning
// state is derived from the auction's current price, not mutated here.
type Bid struct {
	id        uint
	sid       string
	auctionID uint
	bidderID  uint
	amount    float64
	placedAt  time.Time
}

// NewBid creates a bid fact. Validation against the auction's price rules
// happens in Auction.PlaceBid.
func NewBid(auctionID, bidderID uint, amount float64, at time.Time) (*Bid, error) {
	if auctionID == 0 {
		return nil, fmt.Errorf("auction ID is required")
	}
	if bidderID == 0 {
		return nil, fmt.Errorf("bidder ID is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("bid amount must be positive")
	}
	return &Bid{
		auctionID: auctionID,
		bidderID:  bidderID,
		amount:    amount,
		placedAt:  at,
	}, nil
}

// ReconstructBid rebuilds a bid from persisted state.
func ReconstructBid(id uint, sid string, auctionID, bidderID uint, amount float64, placedAt time.Time) *Bid {
	return &Bid{
		id:        id,
		sid:       sid,
		auctionID: auctionID,
		bidderID:  bidderID,
		amount:    amount,
		placedAt:  placedAt,
	}
}

func (b *Bid) ID() uint            { return b.id }
func (b *Bid) SID() string         { return b.sid }
func (b *Bid) AuctionID() uint     { return b.auctionID }
func (b *Bid) BidderID() uint      { return b.bidderID }
func (b *Bid) Amount() float64     { return b.amount }
func (b *Bid) PlacedAt() time.Time { return b.placedAt }

// SetID is called by the repository after the insert.
func (b *Bid) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("bid ID already set")
	}
	b.id = id
	return nil
}

// SetSID assigns the external identifier. Set once at creation time.
func (b *Bid) SetSID(sid string) error {
	if b.sid != "" {
		return fmt.Errorf("bid SID already set")
	}
	b.sid = sid
	return nil
}
