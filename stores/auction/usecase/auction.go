package usecase

import (
	"strings"

	"github.com/mahtab89/hypixel-notifier/base/ctx"
	"github.com/mahtab89/hypixel-notifier/base/log"
	"github.com/mahtab89/hypixel-notifier/domain"
	"github.com/mahtab89/hypixel-notifier/domain/auction"
	"github.com/mahtab89/hypixel-notifier/service/cache"
	"github.com/mahtab89/hypixel-notifier/service/hypixel"
	"github.com/mahtab89/hypixel-notifier/service/mojang"
)

type AuctionUseCaseCfg struct {
	Mojang  mojang.Client
	Hypixel hypixel.Client
	// AuctionsCache and BidsCache carry distinct key prefixes over the same
	// provider, so the two modes can never serve each other's entries
	AuctionsCache cache.Service
	BidsCache     cache.Service
}

type impl struct {
	mojang        mojang.Client
	hypixel       hypixel.Client
	auctionsCache cache.Service
	bidsCache     cache.Service
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	return &impl{
		mojang:        cfg.Mojang,
		hypixel:       cfg.Hypixel,
		auctionsCache: cfg.AuctionsCache,
		bidsCache:     cfg.BidsCache,
	}
}

func (im *impl) GetPlayerAuctions(c ctx.Ctx, username string) ([]*auction.Auction, error) {
	return im.lookup(c, username, auction.ModeAuctions, im.auctionsCache)
}

func (im *impl) GetPlayerBids(c ctx.Ctx, username string) ([]*auction.Auction, error) {
	return im.lookup(c, username, auction.ModeBids, im.bidsCache)
}

// lookup runs the pipeline: validate, consult the cache, resolve the
// identity, fetch and normalize, stamp the canonical seller name, cache
// non-empty results.
func (im *impl) lookup(c ctx.Ctx, username string, mode auction.Mode, store cache.Service) ([]*auction.Auction, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrBadParamInput
	}

	key := strings.ToLower(username)

	cached := []*auction.Auction{}
	err := store.Get(c, key, &cached)
	if err == nil {
		// cache hit, no upstream calls
		return cached, nil
	}
	if err != cache.ErrNotFound {
		// a degraded cache must not fail the lookup
		c.WithFields(log.Fields{"err": err, "key": key}).Warn("cache.Get failed")
	}

	profile, err := im.mojang.GetProfile(c, username)
	if err != nil {
		// NotFound and upstream failures propagate unchanged
		return nil, err
	}

	auctions, err := im.hypixel.GetAuctions(c, profile.UUID, mode)
	if err != nil {
		return nil, err
	}

	// upstream seller names can be stale or missing, the resolved identity wins
	for _, a := range auctions {
		a.SellerName = profile.Name
		if a.SellerUUID == "" {
			a.SellerUUID = profile.UUID
		}
	}

	// zero-result responses are likely transient, never pin them in cache
	if len(auctions) > 0 {
		if err := store.Set(c, key, auctions); err != nil {
			c.WithFields(log.Fields{"err": err, "key": key}).Warn("cache.Set failed")
		}
	}

	return auctions, nil
}

func (im *impl) CheckUsername(c ctx.Ctx, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, domain.ErrBadParamInput
	}
	return im.hypixel.HasPlayer(c, username)
}
