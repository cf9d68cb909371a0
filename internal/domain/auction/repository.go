package auction

import "context"

// ListFilter narrows auction listings.
type ListFilter struct {
	Status   Status
	SellerID uint
	Page     int
	PageSize int
}

// Repository persists auctions and their bids.
type Repository interface {
	Create(ctx context.Context, a *Auction) error
	GetBySID(ctx context.Context, sid string) (*Auction, error)
	// Update persists the mutable listing columns (price, bid count, status).
	Update(ctx context.Context, a *Auction) error
	List(ctx context.Context, filter ListFilter) ([]*Auction, int64, error)
	Count(ctx context.Context) (int64, error)

	CreateBid(ctx context.Context, b *Bid) error
	ListBids(ctx context.Context, auctionID uint) ([]*Bid, error)
}
