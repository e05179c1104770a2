package repository

import (
	"sync"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain/auction"
)

type activityMemory struct {
	mu         sync.RWMutex
	activities []auction.Activity
}

func NewActivityMemory() auction.ActivityRepo {
	return &activityMemory{}
}

func (im *activityMemory) Insert(c ctx.Ctx, activity auction.Activity) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.activities = append(im.activities, activity)
	return nil
}

// FindByListing returns activities of a listing, oldest first
func (im *activityMemory) FindByListing(c ctx.Ctx, listingId int64, offset, limit int) ([]*auction.Activity, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	res := []*auction.Activity{}
	skipped := 0
	for _, a := range im.activities {
		if a.ListingId == nil || *a.ListingId != listingId {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(res) >= limit {
			break
		}
		a := a
		res = append(res, &a)
	}
	return res, nil
}

func (im *activityMemory) FindAll(c ctx.Ctx, offset, limit int) ([]*auction.Activity, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	res := []*auction.Activity{}
	if offset < 0 {
		offset = 0
	}
	for i := offset; i < len(im.activities); i++ {
		if limit > 0 && len(res) >= limit {
			break
		}
		a := im.activities[i]
		res = append(res, &a)
	}
	return res, nil
}
