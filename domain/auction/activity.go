package auction

import (
	"time"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
)

type ActivityType string

const (
	ActivityTypeListed            ActivityType = "listed"
	ActivityTypeBid               ActivityType = "bid"
	ActivityTypeRefunded          ActivityType = "refunded"
	ActivityTypeClaimed           ActivityType = "claimed"
	ActivityTypeAdminUpdated      ActivityType = "adminUpdated"
	ActivityTypeCollectionAdded   ActivityType = "collectionAdded"
	ActivityTypeCollectionRemoved ActivityType = "collectionRemoved"
)

// Activity is an append-only record of a committed state transition.
type Activity struct {
	Id        string         `json:"id" bson:"id"`
	Type      ActivityType   `json:"type" bson:"type"`
	ListingId *int64         `json:"listingId,omitempty" bson:"listingId,omitempty"`
	Account   domain.Address `json:"account" bson:"account"`
	// Target is the other side: refunded bidder, new admin, collection...
	Target domain.Address `json:"target,omitempty" bson:"target,omitempty"`
	Amount domain.Amount  `json:"amount" bson:"amount"`
	Time   time.Time      `json:"time" bson:"time"`
}

type ActivityRepo interface {
	Insert(c ctx.Ctx, activity Activity) error
	FindByListing(c ctx.Ctx, listingId int64, offset, limit int) ([]*Activity, error)
	// FindAll returns every activity, oldest first
	FindAll(c ctx.Ctx, offset, limit int) ([]*Activity, error)
}

// ActivityRecorder stamps and stores activities. Recording happens after
// the transition committed, a failure is logged and never undoes it.
type ActivityRecorder interface {
	Record(c ctx.Ctx, activity Activity)
}
