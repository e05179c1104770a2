package repository

import (
	"sync"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/access"
)

type memory struct {
	mu    sync.RWMutex
	admin *access.Admin
}

// NewMemory returns a process local admin store
func NewMemory() access.Repo {
	return &memory{}
}

func (im *memory) Get(c ctx.Ctx) (*access.Admin, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	if im.admin == nil {
		return nil, domain.ErrNotFound
	}
	res := *im.admin
	return &res, nil
}

func (im *memory) Set(c ctx.Ctx, admin access.Admin) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	admin.Address = admin.Address.ToLower()
	im.admin = &admin
	return nil
}
