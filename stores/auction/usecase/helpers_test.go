package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/x-xyz/holderauction/base/amount"
	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/auction"
	erc20repo "github.com/x-xyz/holderauction/stores/erc20/repository"
)

var (
	errPaused  = errors.New("token paused")
	errStorage = errors.New("storage unavailable")

	formatter = amount.NewFormatter(18)
)

// eth parses a display amount of an 18 decimals token
func eth(display string) domain.Amount {
	a, err := formatter.Parse(display)
	if err != nil {
		panic(err)
	}
	return a
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// faultyToken fails the next n transfers paid to an address
type faultyToken struct {
	*erc20repo.Token
	mu   sync.Mutex
	fail map[domain.Address]int
}

func newFaultyToken(address domain.Address) *faultyToken {
	return &faultyToken{Token: erc20repo.NewToken(address), fail: map[domain.Address]int{}}
}

func (f *faultyToken) FailTransfersTo(to domain.Address, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[to.ToLower()] = n
}

func (f *faultyToken) shouldFail(to domain.Address) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[to.ToLower()] > 0 {
		f.fail[to.ToLower()]--
		return true
	}
	return false
}

func (f *faultyToken) Transfer(c ctx.Ctx, caller, to domain.Address, amount domain.Amount) error {
	if f.shouldFail(to) {
		return errPaused
	}
	return f.Token.Transfer(c, caller, to, amount)
}

func (f *faultyToken) TransferFrom(c ctx.Ctx, caller, from, to domain.Address, amount domain.Amount) error {
	if f.shouldFail(to) {
		return errPaused
	}
	return f.Token.TransferFrom(c, caller, from, to, amount)
}

// faultyListings fails the next Create or, after passUpdates more successful
// ones, the next failUpdates Updates
type faultyListings struct {
	auction.ListingRepo
	mu          sync.Mutex
	failCreate  bool
	passUpdates int
	failUpdates int
}

func (f *faultyListings) Create(c ctx.Ctx, listing *auction.Listing) (int64, error) {
	f.mu.Lock()
	fail := f.failCreate
	f.failCreate = false
	f.mu.Unlock()
	if fail {
		return 0, errStorage
	}
	return f.ListingRepo.Create(c, listing)
}

func (f *faultyListings) Update(c ctx.Ctx, listing auction.Listing) error {
	f.mu.Lock()
	fail := false
	switch {
	case f.passUpdates > 0:
		f.passUpdates--
	case f.failUpdates > 0:
		f.failUpdates--
		fail = true
	}
	f.mu.Unlock()
	if fail {
		return errStorage
	}
	return f.ListingRepo.Update(c, listing)
}
