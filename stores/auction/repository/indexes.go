package repository

import (
	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/service/query"
)

// EnsureIndexes creates the unique keys the auction tables rely on
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	for table, field := range map[domain.Table]string{
		domain.TableListings:              "id",
		domain.TableCounters:              "key",
		domain.TableAdmins:                "key",
		domain.TableQualifyingCollections: "address",
		domain.TableListingActivities:     "id",
	} {
		if err := q.EnsureUniqueIndex(c, table, field); err != nil {
			return err
		}
	}
	return nil
}
