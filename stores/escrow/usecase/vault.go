package usecase

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/log"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/erc20"
	"github.com/x-xyz/holderauction/domain/escrow"
)

type vault struct {
	address domain.Address
	token   erc20.Token
}

// New returns a vault whose funds are the token balance of address
func New(address domain.Address, token erc20.Token) escrow.Vault {
	return &vault{address: address.ToLower(), token: token}
}

func (v *vault) Address() domain.Address {
	return v.address
}

func (v *vault) Escrow(c ctx.Ctx, listingId int64, payer domain.Address, amount domain.Amount) error {
	if amount.IsZero() {
		return nil
	}
	if err := v.token.TransferFrom(c, v.address, payer, v.address, amount); err != nil {
		c.WithFields(log.Fields{
			"listingId": listingId,
			"payer":     payer,
			"amount":    amount.String(),
			"err":       err,
		}).Error("token.TransferFrom failed")
		return xerrors.Errorf("escrow %s from %s: %v: %w", amount, payer, err, domain.ErrEscrowTransferFailed)
	}
	return nil
}

func (v *vault) Release(c ctx.Ctx, listingId int64, payee domain.Address, amount domain.Amount) error {
	if amount.IsZero() {
		return nil
	}
	if err := v.token.Transfer(c, v.address, payee, amount); err != nil {
		c.WithFields(log.Fields{
			"listingId": listingId,
			"payee":     payee,
			"amount":    amount.String(),
			"err":       err,
		}).Error("token.Transfer failed")
		return xerrors.Errorf("release %s to %s: %v: %w", amount, payee, err, domain.ErrEscrowTransferFailed)
	}
	return nil
}

func (v *vault) Holdings(c ctx.Ctx) (domain.Amount, error) {
	bal, err := v.token.BalanceOf(c, v.address)
	if err != nil {
		c.WithField("err", err).Error("token.BalanceOf failed")
		return domain.ZeroAmount, err
	}
	return bal, nil
}
