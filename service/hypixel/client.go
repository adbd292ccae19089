package hypixel

import (
	"encoding/json"
	"net/http"
	"time"

	bCtx "github.com/mahtab89/hypixel-notifier/base/ctx"
	"github.com/mahtab89/hypixel-notifier/domain/auction"
)

// Client reads the SkyBlock auction house. Queries are always scoped to a
// single player; fetching the full auction book is never attempted.
type Client interface {
	// GetAuctions returns the player's listings (ModeAuctions) or the
	// listings the player bid on (ModeBids), normalized. An empty slice is
	// a valid result, not an error.
	GetAuctions(c bCtx.Ctx, playerUUID string, mode auction.Mode) ([]*auction.Auction, error)
	// HasPlayer reports whether a username is known to the network
	HasPlayer(c bCtx.Ctx, username string) (bool, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Apikey     string
	// Url overrides the production endpoint, used by tests
	Url string
}

// rawAuction mirrors one upstream auction record; every field may be absent
type rawAuction struct {
	UUID             string `json:"uuid"`
	ItemName         string `json:"item_name"`
	HighestBidAmount int64  `json:"highest_bid_amount"`
	StartingBid      int64  `json:"starting_bid"`
	End              int64  `json:"end"` // epoch milliseconds
	Claimed          bool   `json:"claimed"`
	Auctioneer       string `json:"auctioneer"`
	AuctioneerName   string `json:"auctioneer_name"`
	Tier             string `json:"tier"`
	Category         string `json:"category"`
	Bin              bool   `json:"bin"`
	ItemLore         string `json:"item_lore"`
}

type auctionsResp struct {
	Success  bool         `json:"success"`
	Cause    string       `json:"cause"`
	Auctions []rawAuction `json:"auctions"`
}

type playerResp struct {
	Success bool            `json:"success"`
	Cause   string          `json:"cause"`
	Player  json.RawMessage `json:"player"`
}
