package erc721

import (
	"errors"
	"math/big"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
)

var (
	ErrUnknownCollection   = errors.New("unknown collection")
	ErrNonexistentToken    = errors.New("erc721: nonexistent token")
	ErrNotOwnerNorApproved = errors.New("erc721: caller is not token owner nor approved")
	ErrInvalidReceiver     = errors.New("erc721: transfer to the zero address")
	ErrTokenExists         = errors.New("erc721: token already minted")
	ErrReadOnly            = errors.New("erc721: read-only collection")
)

// Collection is the custody collaborator, ERC-721 semantics. Every mutating
// call names its caller explicitly (msg.sender).
type Collection interface {
	Address() domain.Address
	OwnerOf(c ctx.Ctx, tokenId domain.TokenId) (domain.Address, error)
	BalanceOf(c ctx.Ctx, owner domain.Address) (*big.Int, error)
	GetApproved(c ctx.Ctx, tokenId domain.TokenId) (domain.Address, error)
	IsApprovedForAll(c ctx.Ctx, owner, operator domain.Address) (bool, error)
	Approve(c ctx.Ctx, caller, spender domain.Address, tokenId domain.TokenId) error
	SetApprovalForAll(c ctx.Ctx, caller, operator domain.Address, approved bool) error
	TransferFrom(c ctx.Ctx, caller, from, to domain.Address, tokenId domain.TokenId) error
}

// Registry resolves collection addresses, ErrUnknownCollection if absent.
type Registry interface {
	Collection(c ctx.Ctx, address domain.Address) (Collection, error)
}

// Holdings is the read-only balance query used for bidder eligibility.
type Holdings interface {
	BalanceOf(c ctx.Ctx, collection, owner domain.Address) (*big.Int, error)
}
