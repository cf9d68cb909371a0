package auction

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a listing.
type Status string

const (
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusWithdrawn Status = "withdrawn"
)

func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusClosed || s == StatusWithdrawn
}

// Auction is a listing put up by a seller. CurrentPrice tracks the highest
// accepted bid; concurrent bids resolve last-write-wins on that column while
// the bid rows themselves remain an append-only history.
type Auction struct {
	id            uint
	sid           string
	sellerID      uint
	title         string
	description   string
	startingPrice float64
	currentPrice  float64
	bidCount      int
	status        Status
	endsAt        time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewAuction creates an open listing.
func NewAuction(sellerID uint, title, description string, startingPrice float64, endsAt time.Time) (*Auction, error) {
	if sellerID == 0 {
		return nil, fmt.Errorf("seller ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 10000 {
		return nil, fmt.Errorf("description exceeds maximum length of 10000 characters")
	}
	if startingPrice <= 0 {
		return nil, fmt.Errorf("starting price must be positive")
	}
	now := time.Now().UTC()
	if !endsAt.After(now) {
		return nil, fmt.Errorf("end time must be in the future")
	}

	return &Auction{
		sellerID:      sellerID,
		title:         title,
		description:   description,
		startingPrice: startingPrice,
		currentPrice:  startingPrice,
		status:        StatusOpen,
		endsAt:        endsAt,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reconstruct rebuilds an auction from persisted state.
func Reconstruct(
	id uint,
	sid string,
	sellerID uint,
	title string,
	description string,
	startingPrice float64,
	currentPrice float64,
	bidCount int,
	status Status,
	endsAt time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *Auction {
	return &Auction{
		id:            id,
		sid:           sid,
		sellerID:      sellerID,
		title:         title,
		description:   description,
		startingPrice: startingPrice,
		currentPrice:  currentPrice,
		bidCount:      bidCount,
		status:        status,
		endsAt:        endsAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (a *Auction) ID() uint               { return a.id }
func (a *Auction) SID() string            { return a.sid }
func (a *Auction) SellerID() uint         { return a.sellerID }
func (a *Auction) Title() string          { return a.title }
func (a *Auction) Description() string    { return a.description }
func (a *Auction) StartingPrice() float64 { return a.startingPrice }
func (a *Auction) CurrentPrice() float64  { return a.currentPrice }
func (a *Auction) BidCount() int          { return a.bidCount }
func (a *Auction) Status() Status         { return a.status }
func (a *Auction) EndsAt() time.Time      { return a.endsAt }
func (a *Auction) CreatedAt() time.Time   { return a.createdAt }
func (a *Auction) UpdatedAt() time.Time   { return a.updatedAt }

// SetID is called by the repository after the initial insert.
func (a *Auction) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("auction ID already set")
	}
	a.id = id
	return nil
}

// SetSID assigns the external identifier. Set once at creation time.
func (a *Auction) SetSID(sid string) error {
	if a.sid != "" {
		return fmt.Errorf("auction SID already set")
	}
	a.sid = sid
	return nil
}

// IsOpen reports whether the listing still accepts bids at the given time.
func (a *Auction) IsOpen(now time.Time) bool {
	return a.status == StatusOpen && now.Before(a.endsAt)
}

// PlaceBid validates a bid against the listing rules and, on success,
// advances the current price and bid count.
func (a *Auction) PlaceBid(bidderID uint, amount float64, now time.Time) (*Bid, error) {
	if !a.IsOpen(now) {
		return nil, fmt.Errorf("auction is not open for bidding")
	}
	if bidderID == a.sellerID {
		return nil, fmt.Errorf("seller cannot bid on own auction")
	}
	if a.bidCount == 0 {
		if amount < a.startingPrice {
			return nil, fmt.Errorf("bid must be at least the starting price of %.2f", a.startingPrice)
		}
	} else if amount <= a.currentPrice {
		return nil, fmt.Errorf("bid must exceed the current price of %.2f", a.currentPrice)
	}

	bid, err := NewBid(a.id, bidderID, amount, now)
	if err != nil {
		return nil, err
	}

	a.currentPrice = amount
	a.bidCount++
	a.updatedAt = now
	return bid, nil
}

// Withdraw removes a listing that received no bids. Sellers may withdraw
// their own listings; admins may withdraw any.
func (a *Auction) Withdraw(now time.Time) error {
	if a.status != StatusOpen {
		return fmt.Errorf("only open auctions can be withdrawn")
	}
	if a.bidCount > 0 {
		return fmt.Errorf("auction with bids cannot be withdrawn")
	}
	a.status = StatusWithdrawn
	a.updatedAt = now
	return nil
}

// Close marks an expired listing as closed.
func (a *Auction) Close(now time.Time) error {
	if a.status != StatusOpen {
		return fmt.Errorf("auction is not open")
	}
	a.status = StatusClosed
	a.updatedAt = now
	return nil
}
