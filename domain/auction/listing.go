package auction

import (
	"time"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
)

type Listing struct {
	Id            int64          `json:"id" bson:"id"`
	Collection    domain.Address `json:"collection" bson:"collection"`
	TokenId       domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller        domain.Address `json:"seller" bson:"seller"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
	Duration      time.Duration  `json:"duration" bson:"duration"`
	EndTime       time.Time      `json:"endTime" bson:"endTime"`
	BidStep       domain.Amount  `json:"bidStep" bson:"bidStep"`
	StartingPrice domain.Amount  `json:"startingPrice" bson:"startingPrice"`
	HighestBidder domain.Address `json:"highestBidder" bson:"highestBidder"`
	HighestBid    domain.Amount  `json:"highestBid" bson:"highestBid"`

	// settlement progress, Settled is set once both legs are done
	AssetReleased    bool       `json:"assetReleased" bson:"assetReleased"`
	ProceedsReleased bool       `json:"proceedsReleased" bson:"proceedsReleased"`
	Settled          bool       `json:"settled" bson:"settled"`
	SettledAt        *time.Time `json:"settledAt,omitempty" bson:"settledAt,omitempty"`
}

func (l *Listing) HasBids() bool {
	return !l.HighestBidder.IsEmpty()
}

// IsExpired reports whether bidding is closed at now. The end time itself
// already counts as expired.
func (l *Listing) IsExpired(now time.Time) bool {
	return !now.Before(l.EndTime)
}

// MinNextBid is the smallest amount the next bid may offer. Later bids always
// beat the highest bid, a zero bid step still asks for one more base unit.
func (l *Listing) MinNextBid() domain.Amount {
	if !l.HasBids() {
		return l.StartingPrice
	}
	step := l.BidStep
	if step.IsZero() {
		step = domain.NewAmount(1)
	}
	return l.HighestBid.Add(step)
}

type ListItemParams struct {
	Collection    domain.Address
	TokenId       domain.TokenId
	Duration      time.Duration
	BidStep       domain.Amount
	StartingPrice domain.Amount
}

type ListingRepo interface {
	// Create assigns the next dense id to listing and stores it
	Create(c ctx.Ctx, listing *Listing) (int64, error)
	// FindOne returns nil without error if the listing does not exist
	FindOne(c ctx.Ctx, id int64) (*Listing, error)
	FindAll(c ctx.Ctx, offset, limit int) ([]*Listing, error)
	Count(c ctx.Ctx) (int, error)
	Update(c ctx.Ctx, listing Listing) error
}

type Usecase interface {
	ListItem(c ctx.Ctx, caller domain.Address, params ListItemParams) (*Listing, error)
	BidOnItem(c ctx.Ctx, caller domain.Address, listingId int64, amount domain.Amount) (*Listing, error)
	ClaimNFT(c ctx.Ctx, caller domain.Address, listingId int64) (*Listing, error)

	Get(c ctx.Ctx, listingId int64) (*Listing, error)
	FindAll(c ctx.Ctx, offset, limit int) ([]*Listing, error)
	Activities(c ctx.Ctx, listingId int64, offset, limit int) ([]*Activity, error)
	// ActivityFeed lists activities of every kind, oldest first
	ActivityFeed(c ctx.Ctx, offset, limit int) ([]*Activity, error)
}
