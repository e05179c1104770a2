package repository

import (
	"math/big"
	"sync"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/erc721"
)

// Collection is an in-memory ERC-721 ledger. All addresses are stored
// lower-cased.
type Collection struct {
	address domain.Address

	// mutex protected members
	mutex     sync.RWMutex
	owners    map[domain.TokenId]domain.Address
	balances  map[domain.Address]int64
	approved  map[domain.TokenId]domain.Address
	operators map[domain.Address]map[domain.Address]bool
}

func NewCollection(address domain.Address) *Collection {
	return &Collection{
		address:   address.ToLower(),
		owners:    make(map[domain.TokenId]domain.Address),
		balances:  make(map[domain.Address]int64),
		approved:  make(map[domain.TokenId]domain.Address),
		operators: make(map[domain.Address]map[domain.Address]bool),
	}
}

func (col *Collection) Address() domain.Address {
	return col.address
}

// Mint seeds a token, only used to set up sandbox and test ledgers.
func (col *Collection) Mint(to domain.Address, tokenId domain.TokenId) error {
	if to.IsEmpty() {
		return erc721.ErrInvalidReceiver
	}
	if _, err := tokenId.ToBig(); err != nil {
		return err
	}
	col.mutex.Lock()
	defer col.mutex.Unlock()
	if _, ok := col.owners[tokenId]; ok {
		return erc721.ErrTokenExists
	}
	to = to.ToLower()
	col.owners[tokenId] = to
	col.balances[to]++
	return nil
}

func (col *Collection) OwnerOf(c ctx.Ctx, tokenId domain.TokenId) (domain.Address, error) {
	col.mutex.RLock()
	defer col.mutex.RUnlock()
	owner, ok := col.owners[tokenId]
	if !ok {
		return "", erc721.ErrNonexistentToken
	}
	return owner, nil
}

func (col *Collection) BalanceOf(c ctx.Ctx, owner domain.Address) (*big.Int, error) {
	col.mutex.RLock()
	defer col.mutex.RUnlock()
	return big.NewInt(col.balances[owner.ToLower()]), nil
}

func (col *Collection) GetApproved(c ctx.Ctx, tokenId domain.TokenId) (domain.Address, error) {
	col.mutex.RLock()
	defer col.mutex.RUnlock()
	if _, ok := col.owners[tokenId]; !ok {
		return "", erc721.ErrNonexistentToken
	}
	return col.approved[tokenId], nil
}

func (col *Collection) IsApprovedForAll(c ctx.Ctx, owner, operator domain.Address) (bool, error) {
	col.mutex.RLock()
	defer col.mutex.RUnlock()
	return col.operators[owner.ToLower()][operator.ToLower()], nil
}

func (col *Collection) Approve(c ctx.Ctx, caller, spender domain.Address, tokenId domain.TokenId) error {
	col.mutex.Lock()
	defer col.mutex.Unlock()
	owner, ok := col.owners[tokenId]
	if !ok {
		return erc721.ErrNonexistentToken
	}
	caller = caller.ToLower()
	if caller != owner && !col.operators[owner][caller] {
		return erc721.ErrNotOwnerNorApproved
	}
	col.approved[tokenId] = spender.ToLower()
	return nil
}

func (col *Collection) SetApprovalForAll(c ctx.Ctx, caller, operator domain.Address, approved bool) error {
	col.mutex.Lock()
	defer col.mutex.Unlock()
	caller = caller.ToLower()
	if col.operators[caller] == nil {
		col.operators[caller] = make(map[domain.Address]bool)
	}
	col.operators[caller][operator.ToLower()] = approved
	return nil
}

func (col *Collection) TransferFrom(c ctx.Ctx, caller, from, to domain.Address, tokenId domain.TokenId) error {
	if to.IsEmpty() {
		return erc721.ErrInvalidReceiver
	}
	col.mutex.Lock()
	defer col.mutex.Unlock()

	owner, ok := col.owners[tokenId]
	if !ok {
		return erc721.ErrNonexistentToken
	}
	caller, from, to = caller.ToLower(), from.ToLower(), to.ToLower()
	if owner != from {
		return erc721.ErrNotOwnerNorApproved
	}
	if caller != from && col.approved[tokenId] != caller && !col.operators[from][caller] {
		return erc721.ErrNotOwnerNorApproved
	}

	delete(col.approved, tokenId)
	col.balances[from]--
	col.balances[to]++
	col.owners[tokenId] = to
	return nil
}

// Registry is an in-memory set of collections, it also answers holdings
// queries for eligibility checks.
type Registry struct {
	mutex       sync.RWMutex
	collections map[domain.Address]erc721.Collection
}

func NewRegistry(collections ...erc721.Collection) *Registry {
	r := &Registry{collections: make(map[domain.Address]erc721.Collection)}
	for _, col := range collections {
		r.Add(col)
	}
	return r
}

func (r *Registry) Add(col erc721.Collection) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.collections[col.Address().ToLower()] = col
}

func (r *Registry) Collection(c ctx.Ctx, address domain.Address) (erc721.Collection, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	col, ok := r.collections[address.ToLower()]
	if !ok {
		return nil, erc721.ErrUnknownCollection
	}
	return col, nil
}

// BalanceOf reports zero for collections the registry does not know.
func (r *Registry) BalanceOf(c ctx.Ctx, collection, owner domain.Address) (*big.Int, error) {
	col, err := r.Collection(c, collection)
	if err == erc721.ErrUnknownCollection {
		return new(big.Int), nil
	} else if err != nil {
		return nil, err
	}
	return col.BalanceOf(c, owner)
}
