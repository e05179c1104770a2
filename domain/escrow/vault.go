package escrow

import (
	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
)

// Vault holds settlement token amounts on behalf of listings. The amount held
// for a listing is its highest bid, the vault keeps no per listing state.
type Vault interface {
	Address() domain.Address
	// Escrow pulls amount from payer into the vault
	Escrow(c ctx.Ctx, listingId int64, payer domain.Address, amount domain.Amount) error
	// Release pays amount out of the vault
	Release(c ctx.Ctx, listingId int64, payee domain.Address, amount domain.Amount) error
	Holdings(c ctx.Ctx) (domain.Amount, error)
}
