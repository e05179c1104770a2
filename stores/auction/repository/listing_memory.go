package repository

import (
	"sync"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/auction"
)

type listingMemory struct {
	mu       sync.RWMutex
	listings []auction.Listing
}

// NewListingMemory returns a process local listing store, ids are slice indexes
func NewListingMemory() auction.ListingRepo {
	return &listingMemory{}
}

func (im *listingMemory) Create(c ctx.Ctx, listing *auction.Listing) (int64, error) {
	im.mu.Lock()
	defer im.mu.Unlock()
	listing.Id = int64(len(im.listings))
	im.listings = append(im.listings, *listing)
	return listing.Id, nil
}

func (im *listingMemory) FindOne(c ctx.Ctx, id int64) (*auction.Listing, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	if id < 0 || id >= int64(len(im.listings)) {
		return nil, nil
	}
	res := im.listings[id]
	return &res, nil
}

func (im *listingMemory) FindAll(c ctx.Ctx, offset, limit int) ([]*auction.Listing, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	res := []*auction.Listing{}
	if offset < 0 {
		offset = 0
	}
	for i := offset; i < len(im.listings); i++ {
		if limit > 0 && len(res) >= limit {
			break
		}
		l := im.listings[i]
		res = append(res, &l)
	}
	return res, nil
}

func (im *listingMemory) Count(c ctx.Ctx) (int, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return len(im.listings), nil
}

func (im *listingMemory) Update(c ctx.Ctx, listing auction.Listing) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	if listing.Id < 0 || listing.Id >= int64(len(im.listings)) {
		return domain.ErrNotFound
	}
	im.listings[listing.Id] = listing
	return nil
}
