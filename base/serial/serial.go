/*
Package serial runs state mutating operations one at a time.

All usecases that mutate auction state share one Executor, which gives the
total admission order the auction relies on: an operation either runs to
completion alone or does not run at all.
*/
package serial

import (
	"github.com/x-xyz/holderauction/base/ctx"
)

// Executor hands out a single token; whoever holds it may mutate state.
type Executor struct {
	token chan struct{}
}

func New() *Executor {
	e := &Executor{token: make(chan struct{}, 1)}
	e.token <- struct{}{}
	return e
}

// Do waits for the token and runs fn with it. If c is done before the token
// is acquired, fn never runs and c.Err() is returned.
func (e *Executor) Do(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	if err := c.Err(); err != nil {
		return err
	}
	select {
	case <-c.Done():
		return c.Err()
	case <-e.token:
	}
	defer func() { e.token <- struct{}{} }()

	return fn(c)
}
