package healthcheck

import (
	"time"

	"github.com/x-xyz/holderauction/base/ctx"
)

type Status string

const (
	StatusUp       Status = "up"
	StatusDown     Status = "down"
	StatusDisabled Status = "disabled"
)

// Report is the state of every backing store the service depends on
type Report struct {
	Storage   Status    `json:"storage"`
	Cache     Status    `json:"cache"`
	CheckedAt time.Time `json:"checkedAt"`
}

func (r *Report) Healthy() bool {
	return r.Storage != StatusDown && r.Cache != StatusDown
}

type Usecase interface {
	Check(c ctx.Ctx) *Report
}

type Repo interface {
	// PingStorage returns StatusDisabled when listings live in memory
	PingStorage(c ctx.Ctx) (Status, error)
	PingCache(c ctx.Ctx) error
}
