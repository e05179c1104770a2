package repository

import (
	"sort"
	"sync"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/allowlist"
)

type memory struct {
	mu          sync.RWMutex
	collections map[domain.Address]allowlist.QualifyingCollection
}

// NewMemory returns a process local allow-list
func NewMemory() allowlist.Repo {
	return &memory{collections: map[domain.Address]allowlist.QualifyingCollection{}}
}

// FindAll returns entries ordered by the time they were added
func (im *memory) FindAll(c ctx.Ctx) ([]*allowlist.QualifyingCollection, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	res := make([]*allowlist.QualifyingCollection, 0, len(im.collections))
	for _, v := range im.collections {
		v := v
		res = append(res, &v)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].AddedAt.Equal(res[j].AddedAt) {
			return res[i].Address < res[j].Address
		}
		return res[i].AddedAt.Before(res[j].AddedAt)
	})
	return res, nil
}

func (im *memory) Exists(c ctx.Ctx, address domain.Address) (bool, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	_, ok := im.collections[address.ToLower()]
	return ok, nil
}

// Upsert keeps the first AddedAt/AddedBy of an entry that is already present
func (im *memory) Upsert(c ctx.Ctx, value allowlist.QualifyingCollection) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	value.Address = value.Address.ToLower()
	if _, ok := im.collections[value.Address]; ok {
		return nil
	}
	im.collections[value.Address] = value
	return nil
}

func (im *memory) Delete(c ctx.Ctx, address domain.Address) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.collections, address.ToLower())
	return nil
}
