package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/holderauction/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// raw cache implementation
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	// Take returns the value and removes it, only one caller gets a value
	Take(c ctx.Ctx, key string) ([]byte, error)
	Del(c ctx.Ctx, key string) error
}
