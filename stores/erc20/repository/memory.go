package repository

import (
	"math/big"
	"sync"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/erc20"
)

// Token is an in-memory ERC-20 ledger, all addresses are stored lower-cased.
type Token struct {
	address domain.Address

	// mutex protected members
	mutex      sync.RWMutex
	balances   map[domain.Address]*big.Int
	allowances map[domain.Address]map[domain.Address]*big.Int
}

func NewToken(address domain.Address) *Token {
	return &Token{
		address:    address.ToLower(),
		balances:   make(map[domain.Address]*big.Int),
		allowances: make(map[domain.Address]map[domain.Address]*big.Int),
	}
}

func (t *Token) Address() domain.Address {
	return t.address
}

// Mint seeds a balance, only used to set up sandbox and test ledgers.
func (t *Token) Mint(to domain.Address, amount domain.Amount) error {
	if to.IsEmpty() {
		return erc20.ErrInvalidReceiver
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.credit(to.ToLower(), amount.Big())
	return nil
}

func (t *Token) BalanceOf(c ctx.Ctx, owner domain.Address) (domain.Amount, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return domain.AmountFromBig(t.balances[owner.ToLower()])
}

func (t *Token) Allowance(c ctx.Ctx, owner, spender domain.Address) (domain.Amount, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return domain.AmountFromBig(t.allowances[owner.ToLower()][spender.ToLower()])
}

func (t *Token) Approve(c ctx.Ctx, caller, spender domain.Address, amount domain.Amount) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	caller = caller.ToLower()
	if t.allowances[caller] == nil {
		t.allowances[caller] = make(map[domain.Address]*big.Int)
	}
	t.allowances[caller][spender.ToLower()] = amount.Big()
	return nil
}

func (t *Token) Transfer(c ctx.Ctx, caller, to domain.Address, amount domain.Amount) error {
	if to.IsEmpty() {
		return erc20.ErrInvalidReceiver
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.move(caller.ToLower(), to.ToLower(), amount.Big())
}

func (t *Token) TransferFrom(c ctx.Ctx, caller, from, to domain.Address, amount domain.Amount) error {
	if to.IsEmpty() {
		return erc20.ErrInvalidReceiver
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()

	caller, from, to = caller.ToLower(), from.ToLower(), to.ToLower()
	value := amount.Big()

	allowance := t.allowances[from][caller]
	if caller != from && (allowance == nil || allowance.Cmp(value) < 0) {
		return erc20.ErrInsufficientAllowance
	}
	if err := t.move(from, to, value); err != nil {
		return err
	}
	if caller != from {
		allowance.Sub(allowance, value)
	}
	return nil
}

// move must be called with the write lock held
func (t *Token) move(from, to domain.Address, value *big.Int) error {
	bal := t.balances[from]
	if bal == nil {
		bal = new(big.Int)
		t.balances[from] = bal
	}
	if bal.Cmp(value) < 0 {
		return erc20.ErrInsufficientBalance
	}
	bal.Sub(bal, value)
	t.credit(to, value)
	return nil
}

func (t *Token) credit(to domain.Address, value *big.Int) {
	if t.balances[to] == nil {
		t.balances[to] = new(big.Int)
	}
	t.balances[to].Add(t.balances[to], value)
}
