package usecase

import (
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/log"
	"github.com/x-xyz/holderauction/base/serial"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/access"
	"github.com/x-xyz/holderauction/domain/allowlist"
	"github.com/x-xyz/holderauction/domain/auction"
	"github.com/x-xyz/holderauction/domain/erc721"
)

// balance lookups running at once in IsHolder
const holderCheckWorkers = 8

type AllowlistUseCaseCfg struct {
	Repo     allowlist.Repo
	Access   access.Usecase
	Holdings erc721.Holdings
	Serial   *serial.Executor
	Clock    domain.Clock
	Activity auction.ActivityRecorder
}

type impl struct {
	repo     allowlist.Repo
	access   access.Usecase
	holdings erc721.Holdings
	serial   *serial.Executor
	clock    domain.Clock
	activity auction.ActivityRecorder
}

func New(cfg *AllowlistUseCaseCfg) allowlist.Usecase {
	return &impl{
		repo:     cfg.Repo,
		access:   cfg.Access,
		holdings: cfg.Holdings,
		serial:   cfg.Serial,
		clock:    cfg.Clock,
		activity: cfg.Activity,
	}
}

func (im *impl) FindAll(c ctx.Ctx) ([]*allowlist.QualifyingCollection, error) {
	res, err := im.repo.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Contains(c ctx.Ctx, address domain.Address) (bool, error) {
	ok, err := im.repo.Exists(c, address)
	if err != nil {
		c.WithField("err", err).Error("repo.Exists failed")
		return false, err
	}
	return ok, nil
}

func (im *impl) Add(c ctx.Ctx, caller, address domain.Address) error {
	c = ctx.WithFields(c, log.Fields{"caller": caller, "collection": address})
	return im.serial.Do(c, func(c ctx.Ctx) error {
		if err := im.access.RequireAdmin(c, caller); err != nil {
			return err
		}
		if address.IsEmpty() {
			return xerrors.Errorf("empty collection: %w", domain.ErrBadParamInput)
		}
		now := im.clock.Now()
		if err := im.repo.Upsert(c, allowlist.QualifyingCollection{
			Address: address.ToLower(),
			AddedBy: caller.ToLower(),
			AddedAt: now,
		}); err != nil {
			c.WithField("err", err).Error("repo.Upsert failed")
			return err
		}
		im.activity.Record(c, auction.Activity{
			Type:    auction.ActivityTypeCollectionAdded,
			Account: caller.ToLower(),
			Target:  address.ToLower(),
			Time:    now,
		})
		return nil
	})
}

func (im *impl) Remove(c ctx.Ctx, caller, address domain.Address) error {
	c = ctx.WithFields(c, log.Fields{"caller": caller, "collection": address})
	return im.serial.Do(c, func(c ctx.Ctx) error {
		if err := im.access.RequireAdmin(c, caller); err != nil {
			return err
		}
		if err := im.repo.Delete(c, address); err != nil {
			c.WithField("err", err).Error("repo.Delete failed")
			return err
		}
		im.activity.Record(c, auction.Activity{
			Type:    auction.ActivityTypeCollectionRemoved,
			Account: caller.ToLower(),
			Target:  address.ToLower(),
			Time:    im.clock.Now(),
		})
		return nil
	})
}

// IsHolder asks every allow-listed collection for the balance of address.
// One positive balance is enough, lookup failures only matter when no
// collection says yes.
func (im *impl) IsHolder(c ctx.Ctx, address domain.Address) (bool, error) {
	if address.IsEmpty() {
		return false, nil
	}
	collections, err := im.repo.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return false, err
	}
	if len(collections) == 0 {
		return false, nil
	}

	b := goroutines.NewBatch(holderCheckWorkers, goroutines.WithBatchSize(len(collections)))
	defer b.Close()
	for i := range collections {
		col := collections[i].Address
		b.Queue(func() (interface{}, error) {
			bal, err := im.holdings.BalanceOf(c, col, address)
			if err != nil {
				return false, err
			}
			return bal != nil && bal.Sign() > 0, nil
		})
	}
	b.QueueComplete()

	var lookupErr error
	holder := false
	for ret := range b.Results() {
		if ret.Error() != nil {
			lookupErr = ret.Error()
			continue
		}
		if ret.Value().(bool) {
			holder = true
		}
	}
	if holder {
		return true, nil
	}
	if lookupErr != nil {
		c.WithFields(log.Fields{"address": address, "err": lookupErr}).Error("holdings.BalanceOf failed")
		return false, lookupErr
	}
	return false, nil
}
