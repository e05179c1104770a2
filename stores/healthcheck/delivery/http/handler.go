package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/delivery"
	"github.com/x-xyz/holderauction/domain/healthcheck"
)

type handler struct {
	healthcheck healthcheck.Usecase
}

func New(e *echo.Echo, us healthcheck.Usecase) {
	h := &handler{healthcheck: us}
	e.GET("/healthcheck", h.check)
}

// check answers 503 with the full report as soon as one store is down
func (h *handler) check(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	report := h.healthcheck.Check(ctx)
	if !report.Healthy() {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, report)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, report)
}
