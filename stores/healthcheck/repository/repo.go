package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/database/mongoclient"
	"github.com/x-xyz/holderauction/domain/healthcheck"
	"github.com/x-xyz/holderauction/domain/keys"
	"github.com/x-xyz/holderauction/service/cache/provider"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mgoClient *mongoclient.Client
	cache     provider.Provider
}

// New creates a healthcheck.Repo, mgoClient is nil when running on memory storage
func New(mgoClient *mongoclient.Client, cache provider.Provider) healthcheck.Repo {
	return &impl{
		mgoClient: mgoClient,
		cache:     cache,
	}
}

func (im *impl) PingStorage(c ctx.Ctx) (healthcheck.Status, error) {
	if im.mgoClient == nil {
		return healthcheck.StatusDisabled, nil
	}
	tc, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()
	if err := im.mgoClient.Ping(tc, readpref.Primary()); err != nil {
		return healthcheck.StatusDown, err
	}
	return healthcheck.StatusUp, nil
}

// PingCache round trips a short lived key through the nonce cache
func (im *impl) PingCache(c ctx.Ctx) error {
	key := keys.CacheKey(keys.PfxHealthCheck, "ping")
	if err := im.cache.Set(c, key, []byte("1"), 30*time.Second); err != nil {
		return err
	}
	_, err := im.cache.Take(c, key)
	return err
}
