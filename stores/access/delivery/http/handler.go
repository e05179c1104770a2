package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/delivery"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/access"
	authMiddleware "github.com/x-xyz/holderauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	access access.Usecase
}

func New(e *echo.Echo, access access.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{access}

	e.GET("/admin", h.get)
	e.POST("/admin", h.update, authMiddleware.Auth())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.access.Admin(ctx); err != nil {
		ctx.WithField("err", err).Error("access.Admin failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Address domain.Address `json:"address" validate:"required,address"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.access.UpdateAdmin(ctx, caller, p.Address); err != nil {
		ctx.WithField("err", err).Error("access.UpdateAdmin failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, p.Address.ToLower())
}
