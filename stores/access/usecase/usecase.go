package usecase

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/log"
	"github.com/x-xyz/holderauction/base/serial"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/access"
	"github.com/x-xyz/holderauction/domain/auction"
)

type AccessUseCaseCfg struct {
	Repo     access.Repo
	Serial   *serial.Executor
	Clock    domain.Clock
	Activity auction.ActivityRecorder
}

type impl struct {
	repo     access.Repo
	serial   *serial.Executor
	clock    domain.Clock
	activity auction.ActivityRecorder
}

func New(cfg *AccessUseCaseCfg) access.Usecase {
	return &impl{
		repo:     cfg.Repo,
		serial:   cfg.Serial,
		clock:    cfg.Clock,
		activity: cfg.Activity,
	}
}

func (im *impl) Init(c ctx.Ctx, admin domain.Address) error {
	if admin.IsEmpty() {
		return xerrors.Errorf("empty admin: %w", domain.ErrBadParamInput)
	}
	return im.serial.Do(c, func(c ctx.Ctx) error {
		if cur, err := im.repo.Get(c); err == nil {
			c.WithField("admin", cur.Address).Info("admin already recorded")
			return nil
		} else if !xerrors.Is(err, domain.ErrNotFound) {
			c.WithField("err", err).Error("repo.Get failed")
			return err
		}
		if err := im.repo.Set(c, access.Admin{Address: admin.ToLower(), UpdatedAt: im.clock.Now()}); err != nil {
			c.WithField("err", err).Error("repo.Set failed")
			return err
		}
		c.WithField("admin", admin).Info("admin initialized")
		return nil
	})
}

func (im *impl) Admin(c ctx.Ctx) (domain.Address, error) {
	res, err := im.repo.Get(c)
	if err != nil {
		if !xerrors.Is(err, domain.ErrNotFound) {
			c.WithField("err", err).Error("repo.Get failed")
		}
		return "", err
	}
	return res.Address, nil
}

func (im *impl) IsAdmin(c ctx.Ctx, address domain.Address) (bool, error) {
	admin, err := im.Admin(c)
	if xerrors.Is(err, domain.ErrNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return !address.IsEmpty() && admin.Equals(address), nil
}

func (im *impl) RequireAdmin(c ctx.Ctx, address domain.Address) error {
	ok, err := im.IsAdmin(c, address)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotAdmin
	}
	return nil
}

func (im *impl) UpdateAdmin(c ctx.Ctx, caller, newAdmin domain.Address) error {
	c = ctx.WithFields(c, log.Fields{"caller": caller, "newAdmin": newAdmin})
	return im.serial.Do(c, func(c ctx.Ctx) error {
		if err := im.RequireAdmin(c, caller); err != nil {
			return err
		}
		if newAdmin.IsEmpty() {
			return xerrors.Errorf("empty new admin: %w", domain.ErrBadParamInput)
		}
		now := im.clock.Now()
		if err := im.repo.Set(c, access.Admin{Address: newAdmin.ToLower(), UpdatedAt: now}); err != nil {
			c.WithField("err", err).Error("repo.Set failed")
			return err
		}
		im.activity.Record(c, auction.Activity{
			Type:    auction.ActivityTypeAdminUpdated,
			Account: caller.ToLower(),
			Target:  newAdmin.ToLower(),
			Time:    now,
		})
		c.Info("admin updated")
		return nil
	})
}
