package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain/healthcheck"
	"github.com/x-xyz/holderauction/middleware"
	"github.com/x-xyz/holderauction/service/cache/provider/primitive"
	"github.com/x-xyz/holderauction/stores/healthcheck/repository"
	"github.com/x-xyz/holderauction/stores/healthcheck/usecase"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

type downCache struct {
	healthcheck.Repo
}

func (downCache) PingCache(c ctx.Ctx) error {
	return errors.New("cache full")
}

type checkResp struct {
	Data   healthcheck.Report `json:"data"`
	Status string             `json:"status"`
}

func serve(t *testing.T, repo healthcheck.Repo) (int, checkResp) {
	e := echo.New()
	e.Use(middleware.InitMiddleware().AddContext())
	New(e, usecase.New(repo, fixedClock{time.Unix(1700000000, 0)}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	resp := checkResp{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestCheck(t *testing.T) {
	repo := repository.New(nil, primitive.NewPrimitive("hc", 1))

	code, resp := serve(t, repo)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, healthcheck.StatusDisabled, resp.Data.Storage)
	assert.Equal(t, healthcheck.StatusUp, resp.Data.Cache)
	assert.Equal(t, int64(1700000000), resp.Data.CheckedAt.Unix())

	code, resp = serve(t, downCache{repo})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, healthcheck.StatusDown, resp.Data.Cache)
}
