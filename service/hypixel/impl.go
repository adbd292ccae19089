package hypixel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	bCtx "github.com/mahtab89/hypixel-notifier/base/ctx"
	"github.com/mahtab89/hypixel-notifier/base/log"
	"github.com/mahtab89/hypixel-notifier/domain"
	"github.com/mahtab89/hypixel-notifier/domain/auction"
)

const (
	api          = "https://api.hypixel.net"
	apikeyHeader = "API-Key"

	defaultItemName = "Unknown Item"
	defaultTier     = "COMMON"
	defaultCategory = "unknown"
)

func NewClient(cfg *ClientCfg) Client {
	u := cfg.Url
	if u == "" {
		u = api
	}
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		apikey:  cfg.Apikey,
		url:     u,
	}
}

type client struct {
	client  http.Client
	timeout time.Duration
	apikey  string
	url     string
}

func (c *client) GetAuctions(ctx bCtx.Ctx, playerUUID string, mode auction.Mode) ([]*auction.Auction, error) {
	if playerUUID == "" {
		return nil, domain.ErrBadParamInput
	}

	// one endpoint serves both sides, the mode only switches which party
	// the query is scoped to
	param := "player"
	if mode == auction.ModeBids {
		param = "bidder"
	}
	params := url.Values{param: {playerUUID}}
	reqUrl := fmt.Sprintf("%s/skyblock/auction?%s", c.url, params.Encode())

	data, err := c.get(ctx, reqUrl)
	if err != nil {
		return nil, err
	}

	resp := auctionsResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, domain.ErrUpstreamError
	}
	if !resp.Success {
		ctx.WithField("cause", resp.Cause).Error("auction api reported failure")
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstreamError, resp.Cause)
	}

	now := time.Now()
	auctions := make([]*auction.Auction, 0, len(resp.Auctions))
	for _, raw := range resp.Auctions {
		auctions = append(auctions, normalize(raw, now))
	}
	return auctions, nil
}

func (c *client) HasPlayer(ctx bCtx.Ctx, username string) (bool, error) {
	if username == "" {
		return false, domain.ErrBadParamInput
	}

	params := url.Values{"name": {username}}
	reqUrl := fmt.Sprintf("%s/player?%s", c.url, params.Encode())

	data, err := c.get(ctx, reqUrl)
	if err != nil {
		return false, err
	}

	resp := playerResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return false, domain.ErrUpstreamError
	}
	if !resp.Success {
		ctx.WithField("cause", resp.Cause).Error("player api reported failure")
		return false, fmt.Errorf("%w: %s", domain.ErrUpstreamError, resp.Cause)
	}

	// the api returns player: null for unknown names
	exists := len(resp.Player) > 0 && !bytes.Equal(resp.Player, []byte("null"))
	return exists, nil
}

// normalize maps a raw upstream record to an immutable Auction, applying the
// documented defaults for absent fields. Status is computed here, once, so
// no consumer re-derives it.
func normalize(raw rawAuction, now time.Time) *auction.Auction {
	itemName := raw.ItemName
	if itemName == "" {
		itemName = defaultItemName
	}
	tier := raw.Tier
	if tier == "" {
		tier = defaultTier
	}
	category := raw.Category
	if category == "" {
		category = defaultCategory
	}

	end := raw.End
	if end == 0 {
		end = now.UnixMilli()
	}
	currentBid := raw.HighestBidAmount
	if currentBid < 0 {
		currentBid = 0
	}
	startingBid := raw.StartingBid
	if startingBid < 0 {
		startingBid = 0
	}

	return &auction.Auction{
		ID:              raw.UUID,
		ItemName:        itemName,
		CurrentBid:      currentBid,
		StartingBid:     startingBid,
		EndTime:         end,
		Status:          auction.StatusOf(raw.Claimed, time.UnixMilli(end), now),
		SellerUUID:      raw.Auctioneer,
		SellerName:      raw.AuctioneerName,
		Tier:            tier,
		Category:        category,
		IsBuyItNow:      raw.Bin,
		ItemDescription: raw.ItemLore,
	}
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	cctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(cctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, domain.ErrUpstreamError
	}
	req.Header.Set(apikeyHeader, c.apikey)
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, domain.ErrUpstreamError
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, domain.ErrUpstreamError
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, domain.ErrUpstreamError
	}
	return body, nil
}
