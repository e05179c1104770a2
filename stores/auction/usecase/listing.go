package usecase

import (
	"go.uber.org/multierr"
	"golang.org/x/xerrors"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/log"
	"github.com/x-xyz/holderauction/base/ptr"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/auction"
)

// ListItem moves the asset from the admin into custody and opens the
// auction. A listing that fails to persist hands the asset back.
func (im *impl) ListItem(c ctx.Ctx, caller domain.Address, params auction.ListItemParams) (*auction.Listing, error) {
	defer im.metrics.BumpTime("list.time").End()
	c = ctx.WithFields(c, log.Fields{
		"caller":     caller,
		"collection": params.Collection,
		"tokenId":    params.TokenId,
	})

	var res *auction.Listing
	err := im.serial.Do(c, func(c ctx.Ctx) error {
		if err := im.access.RequireAdmin(c, caller); err != nil {
			return err
		}
		if params.Duration <= 0 {
			return xerrors.Errorf("duration %s: %w", params.Duration, domain.ErrBadParamInput)
		}
		if params.Collection.IsEmpty() {
			return xerrors.Errorf("empty collection: %w", domain.ErrBadParamInput)
		}
		if _, err := params.TokenId.ToBig(); err != nil {
			return xerrors.Errorf("token id: %v: %w", err, domain.ErrBadParamInput)
		}

		col, err := im.registry.Collection(c, params.Collection)
		if err != nil {
			c.WithField("err", err).Error("registry.Collection failed")
			return xerrors.Errorf("resolve collection: %v: %w", err, domain.ErrAssetTransferDenied)
		}
		seller := caller.ToLower()
		if err := col.TransferFrom(c, im.custody, seller, im.custody, params.TokenId); err != nil {
			c.WithField("err", err).Error("collection.TransferFrom failed")
			return xerrors.Errorf("take custody: %v: %w", err, domain.ErrAssetTransferDenied)
		}

		now := im.clock.Now()
		listing := &auction.Listing{
			Collection:    params.Collection.ToLower(),
			TokenId:       params.TokenId,
			Seller:        seller,
			CreatedAt:     now,
			Duration:      params.Duration,
			EndTime:       now.Add(params.Duration),
			BidStep:       params.BidStep,
			StartingPrice: params.StartingPrice,
		}
		id, err := im.listings.Create(c, listing)
		if err != nil {
			c.WithField("err", err).Error("listings.Create failed")
			if rerr := col.TransferFrom(c, im.custody, im.custody, seller, params.TokenId); rerr != nil {
				c.WithField("err", rerr).Error("return asset to seller failed")
				err = multierr.Append(err, rerr)
			}
			return err
		}

		im.activity.Record(c, auction.Activity{
			Type:      auction.ActivityTypeListed,
			ListingId: ptr.Int64(id),
			Account:   seller,
			Target:    listing.Collection,
			Amount:    listing.StartingPrice,
			Time:      now,
		})
		im.metrics.BumpSum("listing.created", 1)
		c.WithField("listingId", id).Info("listing created")
		res = listing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
