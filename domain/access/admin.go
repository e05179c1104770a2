package access

import (
	"time"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
)

// Admin is the single identity allowed to run privileged operations.
type Admin struct {
	Address   domain.Address `json:"address" bson:"address"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	// Get returns domain.ErrNotFound before any admin is stored
	Get(c ctx.Ctx) (*Admin, error)
	Set(c ctx.Ctx, admin Admin) error
}

type Usecase interface {
	// Init stores the configured admin unless one is recorded already
	Init(c ctx.Ctx, admin domain.Address) error
	Admin(c ctx.Ctx) (domain.Address, error)
	IsAdmin(c ctx.Ctx, address domain.Address) (bool, error)
	// RequireAdmin fails with domain.ErrNotAdmin for anyone else
	RequireAdmin(c ctx.Ctx, address domain.Address) error
	UpdateAdmin(c ctx.Ctx, caller, newAdmin domain.Address) error
}
