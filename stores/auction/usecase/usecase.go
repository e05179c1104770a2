package usecase

import (
	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/metrics"
	"github.com/x-xyz/holderauction/base/serial"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/access"
	"github.com/x-xyz/holderauction/domain/allowlist"
	"github.com/x-xyz/holderauction/domain/auction"
	"github.com/x-xyz/holderauction/domain/erc721"
	"github.com/x-xyz/holderauction/domain/escrow"
)

type AuctionUseCaseCfg struct {
	Listings   auction.ListingRepo
	Activities auction.ActivityRepo
	Activity   auction.ActivityRecorder
	Access     access.Usecase
	Allowlist  allowlist.Usecase
	Registry   erc721.Registry
	Vault      escrow.Vault
	// Custody holds listed assets, the vault address when empty
	Custody domain.Address
	Serial  *serial.Executor
	Clock   domain.Clock
	Metrics metrics.Service
}

type impl struct {
	listings   auction.ListingRepo
	activities auction.ActivityRepo
	activity   auction.ActivityRecorder
	access     access.Usecase
	allowlist  allowlist.Usecase
	registry   erc721.Registry
	vault      escrow.Vault
	custody    domain.Address
	serial     *serial.Executor
	clock      domain.Clock
	metrics    metrics.Service
}

func New(cfg *AuctionUseCaseCfg) auction.Usecase {
	custody := cfg.Custody
	if custody.IsEmpty() {
		custody = cfg.Vault.Address()
	}
	return &impl{
		listings:   cfg.Listings,
		activities: cfg.Activities,
		activity:   cfg.Activity,
		access:     cfg.Access,
		allowlist:  cfg.Allowlist,
		registry:   cfg.Registry,
		vault:      cfg.Vault,
		custody:    custody.ToLower(),
		serial:     cfg.Serial,
		clock:      cfg.Clock,
		metrics:    cfg.Metrics,
	}
}

// findListing is FindOne with a missing listing turned into ErrListingNotFound
func (im *impl) findListing(c ctx.Ctx, id int64) (*auction.Listing, error) {
	res, err := im.listings.FindOne(c, id)
	if err != nil {
		c.WithField("err", err).Error("listings.FindOne failed")
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrListingNotFound
	}
	return res, nil
}

func (im *impl) Get(c ctx.Ctx, listingId int64) (*auction.Listing, error) {
	return im.findListing(c, listingId)
}

func (im *impl) FindAll(c ctx.Ctx, offset, limit int) ([]*auction.Listing, error) {
	res, err := im.listings.FindAll(c, offset, limit)
	if err != nil {
		c.WithField("err", err).Error("listings.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Activities(c ctx.Ctx, listingId int64, offset, limit int) ([]*auction.Activity, error) {
	if _, err := im.findListing(c, listingId); err != nil {
		return nil, err
	}
	res, err := im.activities.FindByListing(c, listingId, offset, limit)
	if err != nil {
		c.WithField("err", err).Error("activities.FindByListing failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) ActivityFeed(c ctx.Ctx, offset, limit int) ([]*auction.Activity, error) {
	res, err := im.activities.FindAll(c, offset, limit)
	if err != nil {
		c.WithField("err", err).Error("activities.FindAll failed")
		return nil, err
	}
	return res, nil
}

// errCode tags rejection metrics
func errCode(err error) string {
	if ae, ok := domain.AsAuctionError(err); ok {
		return ae.Code
	}
	return "internal"
}
