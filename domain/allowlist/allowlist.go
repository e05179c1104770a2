package allowlist

import (
	"time"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
)

// QualifyingCollection is a collection whose holders may bid.
type QualifyingCollection struct {
	Address domain.Address `json:"address" bson:"address"`
	AddedBy domain.Address `json:"addedBy" bson:"addedBy"`
	AddedAt time.Time      `json:"addedAt" bson:"addedAt"`
}

type Repo interface {
	FindAll(c ctx.Ctx) ([]*QualifyingCollection, error)
	Exists(c ctx.Ctx, address domain.Address) (bool, error)
	// Upsert and Delete are idempotent
	Upsert(c ctx.Ctx, value QualifyingCollection) error
	Delete(c ctx.Ctx, address domain.Address) error
}

type Usecase interface {
	FindAll(c ctx.Ctx) ([]*QualifyingCollection, error)
	Contains(c ctx.Ctx, address domain.Address) (bool, error)
	Add(c ctx.Ctx, caller, address domain.Address) error
	Remove(c ctx.Ctx, caller, address domain.Address) error
	// IsHolder reports whether address holds any asset of a collection that
	// is allow-listed right now
	IsHolder(c ctx.Ctx, address domain.Address) (bool, error)
}
