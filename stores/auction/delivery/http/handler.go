package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/mahtab89/hypixel-notifier/base/ctx"
	"github.com/mahtab89/hypixel-notifier/base/delivery"
	"github.com/mahtab89/hypixel-notifier/base/validator"
	"github.com/mahtab89/hypixel-notifier/domain"
	"github.com/mahtab89/hypixel-notifier/domain/auction"
)

type handler struct {
	auctionUseCase auction.UseCase
	// debug gates upstream error detail in 500 responses
	debug bool
}

// New registers the auction lookup routes
func New(e *echo.Echo, auctionUseCase auction.UseCase, debug bool) {
	h := &handler{auctionUseCase, debug}

	g := e.Group("/api")

	g.GET("/auctions/:username", h.getPlayerAuctions)
	g.GET("/bids/:username", h.getPlayerBids)
	g.GET("/check-username/:username", h.checkUsername)
}

// getPlayerAuctions
//
//	@Summary		List a player's auctions
//	@Description	Resolve a username and return the auctions the player listed
//	@Produce		json
//	@Param			username	path		string	true	"Minecraft username"	example(Notch)
//	@Success		200			{object}	[]auction.Auction
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/api/auctions/{username} [get]
func (h *handler) getPlayerAuctions(c echo.Context) error {
	return h.lookup(c, h.auctionUseCase.GetPlayerAuctions)
}

// getPlayerBids
//
//	@Summary		List a player's bids
//	@Description	Resolve a username and return the auctions the player bid on
//	@Produce		json
//	@Param			username	path		string	true	"Minecraft username"	example(Notch)
//	@Success		200			{object}	[]auction.Auction
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/api/bids/{username} [get]
func (h *handler) getPlayerBids(c echo.Context) error {
	return h.lookup(c, h.auctionUseCase.GetPlayerBids)
}

func (h *handler) lookup(c echo.Context, fn func(bCtx.Ctx, string) ([]*auction.Auction, error)) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Username string `param:"username" validate:"required"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !validator.IsValidUsername(p.Username) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	res, err := fn(ctx, p.Username)
	if err != nil {
		return h.mapError(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// checkUsername
//
//	@Summary		Check whether a username exists
//	@Produce		json
//	@Param			username	path	string	true	"Minecraft username"	example(Notch)
//	@Success		200
//	@Failure		500
//	@Router			/api/check-username/{username} [get]
func (h *handler) checkUsername(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	username := c.Param("username")
	if !validator.IsValidUsername(username) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	exists, err := h.auctionUseCase.CheckUsername(ctx, username)
	if err != nil {
		return h.mapError(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, map[string]bool{"exists": exists})
}

func (h *handler) mapError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrBadParamInput) {
		// MakeJsonResp remaps these to 404/400
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if h.debug {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusInternalServerError, domain.ErrInternalServerError)
}
