package usecase

import (
	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/healthcheck"
)

type impl struct {
	repo  healthcheck.Repo
	clock domain.Clock
}

func New(repo healthcheck.Repo, clock domain.Clock) healthcheck.Usecase {
	return &impl{
		repo:  repo,
		clock: clock,
	}
}

func (im *impl) Check(c ctx.Ctx) *healthcheck.Report {
	res := &healthcheck.Report{CheckedAt: im.clock.Now()}

	status, err := im.repo.PingStorage(c)
	if err != nil {
		c.WithField("err", err).Error("repo.PingStorage failed")
	}
	res.Storage = status

	res.Cache = healthcheck.StatusUp
	if err := im.repo.PingCache(c); err != nil {
		c.WithField("err", err).Error("repo.PingCache failed")
		res.Cache = healthcheck.StatusDown
	}
	return res
}
