package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/holderauction/base/amount"
	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/delivery"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/auction"
	authMiddleware "github.com/x-xyz/holderauction/stores/auth/delivery/http/middleware"
)

const maxLimit = 100

type handler struct {
	auction   auction.Usecase
	formatter amount.Formatter
	clock     domain.Clock
}

func New(e *echo.Echo, auction auction.Usecase, formatter amount.Formatter, clock domain.Clock, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{auction, formatter, clock}

	g := e.Group("/listings")
	g.GET("", h.getAll)
	g.POST("", h.listItem, authMiddleware.Auth())
	g.GET("/:id", h.get)
	g.GET("/:id/activities", h.getActivities)
	g.POST("/:id/bids", h.bid, authMiddleware.Auth())
	g.POST("/:id/claim", h.claim, authMiddleware.Auth())

	e.GET("/activities", h.getActivityFeed)
}

// listingView adds display amounts and the derived state to a listing
type listingView struct {
	*auction.Listing
	StartingPriceDisplay decimal.Decimal `json:"startingPriceDisplay"`
	BidStepDisplay       decimal.Decimal `json:"bidStepDisplay"`
	HighestBidDisplay    decimal.Decimal `json:"highestBidDisplay"`
	MinNextBid           domain.Amount   `json:"minNextBid"`
	MinNextBidDisplay    decimal.Decimal `json:"minNextBidDisplay"`
	DurationSeconds      int64           `json:"durationSeconds"`
	Expired              bool            `json:"expired"`
}

func (h *handler) view(l *auction.Listing) listingView {
	return listingView{
		Listing:              l,
		StartingPriceDisplay: h.formatter.Display(l.StartingPrice),
		BidStepDisplay:       h.formatter.Display(l.BidStep),
		HighestBidDisplay:    h.formatter.Display(l.HighestBid),
		MinNextBid:           l.MinNextBid(),
		MinNextBidDisplay:    h.formatter.Display(l.MinNextBid()),
		DurationSeconds:      int64(l.Duration / time.Second),
		Expired:              l.IsExpired(h.clock.Now()),
	}
}

type pageParams struct {
	Offset int `query:"offset" validate:"min=0"`
	Limit  int `query:"limit" validate:"min=0,max=100"`
}

func (p *pageParams) limit() int {
	if p.Limit == 0 {
		return maxLimit
	}
	return p.Limit
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &pageParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	listings, err := h.auction.FindAll(ctx, p.Offset, p.limit())
	if err != nil {
		ctx.WithField("err", err).Error("auction.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := make([]listingView, 0, len(listings))
	for _, l := range listings {
		res = append(res, h.view(l))
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) listItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Collection domain.Address `json:"collection" validate:"required,address"`
		TokenId    domain.TokenId `json:"tokenId" validate:"required,uint256"`
		// Duration in seconds
		Duration      int64  `json:"duration" validate:"gt=0"`
		BidStep       string `json:"bidStep" validate:"required,amount"`
		StartingPrice string `json:"startingPrice" validate:"required,amount"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	bidStep, err := h.formatter.Parse(p.BidStep)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	startingPrice, err := h.formatter.Parse(p.StartingPrice)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	listing, err := h.auction.ListItem(ctx, caller, auction.ListItemParams{
		Collection:    p.Collection,
		TokenId:       p.TokenId,
		Duration:      time.Duration(p.Duration) * time.Second,
		BidStep:       bidStep,
		StartingPrice: startingPrice,
	})
	if err != nil {
		ctx.WithField("err", err).Error("auction.ListItem failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, h.view(listing))
}

type idParams struct {
	Id int64 `param:"id" validate:"min=0"`
}

func (h *handler) bindId(c echo.Context) (int64, error) {
	p := &idParams{}
	if err := (&echo.DefaultBinder{}).BindPathParams(c, p); err != nil {
		return 0, err
	}
	if err := c.Validate(p); err != nil {
		return 0, err
	}
	return p.Id, nil
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := h.bindId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	listing, err := h.auction.Get(ctx, id)
	if err != nil {
		ctx.WithField("err", err).Error("auction.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.view(listing))
}

func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := h.bindId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := &pageParams{}
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.Activities(ctx, id, p.Offset, p.limit())
	if err != nil {
		ctx.WithField("err", err).Error("auction.Activities failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getActivityFeed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &pageParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.ActivityFeed(ctx, p.Offset, p.limit())
	if err != nil {
		ctx.WithField("err", err).Error("auction.ActivityFeed failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := h.bindId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type payload struct {
		Amount string `json:"amount" validate:"required,amount"`
	}

	p := &payload{}
	if err := (&echo.DefaultBinder{}).BindBody(c, p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	amt, err := h.formatter.Parse(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	listing, err := h.auction.BidOnItem(ctx, caller, id, amt)
	if err != nil {
		ctx.WithField("err", err).Warn("auction.BidOnItem failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.view(listing))
}

func (h *handler) claim(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := h.bindId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	listing, err := h.auction.ClaimNFT(ctx, caller, id)
	if err != nil {
		ctx.WithField("err", err).Warn("auction.ClaimNFT failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.view(listing))
}
