package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/delivery"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/allowlist"
	"github.com/x-xyz/holderauction/middleware"
	authMiddleware "github.com/x-xyz/holderauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	allowlist allowlist.Usecase
}

func New(e *echo.Echo, allowlist allowlist.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{allowlist}

	e.GET("/collections", h.getAll)

	e.POST("/collections/add", h.add, authMiddleware.Auth())

	e.POST("/collections/remove", h.remove, authMiddleware.Auth())

	e.GET("/holders/:address", h.isHolder, middleware.IsValidAddress("address"))
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.allowlist.FindAll(ctx); err != nil {
		ctx.WithField("err", err).Error("allowlist.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

type payload struct {
	Address domain.Address `json:"address" validate:"required,address"`
}

func (h *handler) add(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.allowlist.Add(ctx, caller, p.Address); err != nil {
		ctx.WithField("err", err).Error("allowlist.Add failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.allowlist.Remove(ctx, caller, p.Address); err != nil {
		ctx.WithField("err", err).Error("allowlist.Remove failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) isHolder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	res, err := h.allowlist.IsHolder(ctx, address)
	if err != nil {
		ctx.WithField("err", err).Error("allowlist.IsHolder failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		Address  domain.Address `json:"address"`
		IsHolder bool           `json:"isHolder"`
	}{address.ToLower(), res})
}
