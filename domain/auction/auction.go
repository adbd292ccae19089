package auction

import (
	"time"

	"github.com/mahtab89/hypixel-notifier/base/ctx"
)

// Mode selects which side of the auction house a lookup reads.
type Mode string

const (
	// ModeAuctions reads listings the player created
	ModeAuctions Mode = "auctions"
	// ModeBids reads listings the player placed bids on
	ModeBids Mode = "bids"
)

// Status of a listing, computed once at normalization time. Consumers read
// this field instead of re-deriving it from EndTime.
type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

// StatusOf derives a listing status. The upstream claimed flag is
// authoritative; a listing that is past its end instant counts as ended even
// when the flag is absent.
func StatusOf(claimed bool, end time.Time, now time.Time) Status {
	if claimed || !end.After(now) {
		return StatusEnded
	}
	return StatusActive
}

// Auction is one normalized auction-house listing. Immutable after
// normalization; a fresh fetch replaces the whole slice.
type Auction struct {
	ID              string `json:"id"`
	ItemName        string `json:"itemName"`
	CurrentBid      int64  `json:"currentBid"`
	StartingBid     int64  `json:"startingBid"`
	EndTime         int64  `json:"endTime"` // epoch milliseconds
	Status          Status `json:"status"`
	SellerUUID      string `json:"sellerId"`
	SellerName      string `json:"sellerName"`
	Tier            string `json:"tier"`
	Category        string `json:"category"`
	IsBuyItNow      bool   `json:"isBuyItNow"`
	ItemDescription string `json:"itemDescription,omitempty"`
}

// UseCase drives the lookup pipeline for the delivery layer.
type UseCase interface {
	GetPlayerAuctions(ctx.Ctx, string) ([]*Auction, error)
	GetPlayerBids(ctx.Ctx, string) ([]*Auction, error)
	CheckUsername(ctx.Ctx, string) (bool, error)
}
