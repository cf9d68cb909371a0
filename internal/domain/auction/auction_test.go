package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAuction(t *testing.T) *Auction {
	t.Helper()
	a, err := NewAuction(1, "Vintage clock", "A clock.", 100, time.Now().UTC().Add(24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, a.SetID(10))
	return a
}

func TestNewAuction_Validation(t *testing.T) {
	future := time.Now().UTC().Add(time.Hour)

	tests := []struct {
		name          string
		sellerID      uint
		title         string
		startingPrice float64
		endsAt        time.Time
		wantErr       bool
	}{
		{"valid", 1, "Clock", 10, future, false},
		{"missing seller", 0, "Clock", 10, future, true},
		{"empty title", 1, "", 10, future, true},
		{"zero price", 1, "Clock", 0, future, true},
		{"negative price", 1, "Clock", -5, future, true},
		{"ends in the past", 1, "Clock", 10, time.Now().UTC().Add(-time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAuction(tt.sellerID, tt.title, "desc", tt.startingPrice, tt.endsAt)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusOpen, a.Status())
			assert.Equal(t, tt.startingPrice, a.CurrentPrice())
			assert.Zero(t, a.BidCount())
		})
	}
}

func TestAuction_PlaceBid_FirstBidAtStartingPrice(t *testing.T) {
	a := openAuction(t)
	now := time.Now().UTC()

	// The first bid may equal the starting price.
	bid, err := a.PlaceBid(2, 100, now)
	require.NoError(t, err)
	assert.Equal(t, float64(100), bid.Amount())
	assert.Equal(t, uint(10), bid.AuctionID())
	assert.Equal(t, float64(100), a.CurrentPrice())
	assert.Equal(t, 1, a.BidCount())
}

func TestAuction_PlaceBid_FirstBidBelowStartingPrice(t *testing.T) {
	a := openAuction(t)

	_, err := a.PlaceBid(2, 99.99, time.Now().UTC())
	assert.Error(t, err)
	assert.Zero(t, a.BidCount())
}

func TestAuction_PlaceBid_MustExceedCurrentPrice(t *testing.T) {
	a := openAuction(t)
	now := time.Now().UTC()

	_, err := a.PlaceBid(2, 100, now)
	require.NoError(t, err)

	// Matching the current price is not enough after the first bid.
	_, err = a.PlaceBid(3, 100, now)
	assert.Error(t, err)

	bid, err := a.PlaceBid(3, 100.01, now)
	require.NoError(t, err)
	assert.Equal(t, float64(100.01), bid.Amount())
	assert.Equal(t, 2, a.BidCount())
}

func TestAuction_PlaceBid_SellerCannotBid(t *testing.T) {
	a := openAuction(t)

	_, err := a.PlaceBid(1, 200, time.Now().UTC())
	assert.Error(t, err)
}

func TestAuction_PlaceBid_AfterEnd(t *testing.T) {
	a := openAuction(t)

	_, err := a.PlaceBid(2, 200, a.EndsAt().Add(time.Second))
	assert.Error(t, err)
}

func TestAuction_PlaceBid_OnWithdrawn(t *testing.T) {
	a := openAuction(t)
	require.NoError(t, a.Withdraw(time.Now().UTC()))

	_, err := a.PlaceBid(2, 200, time.Now().UTC())
	assert.Error(t, err)
}

func TestAuction_Withdraw(t *testing.T) {
	a := openAuction(t)

	require.NoError(t, a.Withdraw(time.Now().UTC()))
	assert.Equal(t, StatusWithdrawn, a.Status())

	// Already withdrawn.
	assert.Error(t, a.Withdraw(time.Now().UTC()))
}

func TestAuction_Withdraw_WithBids(t *testing.T) {
	a := openAuction(t)
	now := time.Now().UTC()
	_, err := a.PlaceBid(2, 150, now)
	require.NoError(t, err)

	assert.Error(t, a.Withdraw(now))
	assert.Equal(t, StatusOpen, a.Status())
}

func TestAuction_Close(t *testing.T) {
	a := openAuction(t)

	require.NoError(t, a.Close(time.Now().UTC()))
	assert.Equal(t, StatusClosed, a.Status())
	assert.Error(t, a.Close(time.Now().UTC()))
}

func TestAuction_SetIDOnce(t *testing.T) {
	a, err := NewAuction(1, "Clock", "", 10, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, a.SetID(5))
	assert.Error(t, a.SetID(6))

	require.NoError(t, a.SetSID("auc_abc"))
	assert.Error(t, a.SetSID("auc_def"))
}
