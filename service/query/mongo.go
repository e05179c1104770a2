package query

/*
	Description:
		Package `query` wraps https://github.com/mongodb/mongo-go-driver with
		the handful of operations the auction repositories need. Every call
		logs its failures and reports slow queries.
*/

import (
	"fmt"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")
)

// Mongo abstract the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne get data from the table, ErrNotFound if nothing matches
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count return counting for matched entry in the table
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert replaces the entry matching selector, or inserts it
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sort order by `sort` argument (ex "timestamp" ascending, or "-timestamp" descending)
	// if `sort` is "", the sort action is skipped
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Remove removes entries matching selector, missing entries are not an error
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// Increment increases field by inc and decodes the updated entry into result.
	// If entry not exist, insert it.
	Increment(context ctx.Ctx, table domain.Table, selector, result interface{}, field string, inc interface{}) error

	// RunWithTransaction runs `run` in a session transaction, everything
	// written through the given ctx is rolled back if run fails
	RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error

	// EnsureUniqueIndex creates a unique ascending index on fields
	EnsureUniqueIndex(context ctx.Ctx, table domain.Table, fields ...string) error
}
