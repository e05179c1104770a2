package repository

import (
	"time"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/keys"
	"github.com/x-xyz/holderauction/service/cache/provider"
)

type nonceRepo struct {
	cache provider.Provider
}

func NewNonceRepo(cache provider.Provider) domain.NonceRepo {
	return &nonceRepo{cache}
}

func key(address domain.Address) string {
	return keys.CacheKey(keys.PfxNonce, address.ToLowerStr())
}

func (r *nonceRepo) Put(c ctx.Ctx, address domain.Address, nonce string, ttl time.Duration) error {
	if err := r.cache.Set(c, key(address), []byte(nonce), ttl); err != nil {
		c.WithField("err", err).Error("cache.Set failed")
		return err
	}
	return nil
}

func (r *nonceRepo) Take(c ctx.Ctx, address domain.Address) (string, error) {
	val, err := r.cache.Take(c, key(address))
	if err == provider.ErrNotFound {
		return "", domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("cache.Take failed")
		return "", err
	}
	return string(val), nil
}
