package erc20

import (
	"errors"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
)

var (
	ErrInsufficientBalance   = errors.New("erc20: transfer amount exceeds balance")
	ErrInsufficientAllowance = errors.New("erc20: insufficient allowance")
	ErrInvalidReceiver       = errors.New("erc20: transfer to the zero address")
)

// Token is the settlement token collaborator, ERC-20 semantics. A failed
// transfer is reported synchronously and leaves every balance untouched.
type Token interface {
	Address() domain.Address
	BalanceOf(c ctx.Ctx, owner domain.Address) (domain.Amount, error)
	Allowance(c ctx.Ctx, owner, spender domain.Address) (domain.Amount, error)
	Approve(c ctx.Ctx, caller, spender domain.Address, amount domain.Amount) error
	Transfer(c ctx.Ctx, caller, to domain.Address, amount domain.Amount) error
	TransferFrom(c ctx.Ctx, caller, from, to domain.Address, amount domain.Amount) error
}
