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

// BidOnItem admits a bid when the caller holds a qualifying asset, the
// listing is still open and the amount clears the minimum. The new funds are
// escrowed before the previous bidder is refunded, so the vault never holds
// less than the highest bid.
func (im *impl) BidOnItem(c ctx.Ctx, caller domain.Address, listingId int64, amount domain.Amount) (*auction.Listing, error) {
	defer im.metrics.BumpTime("bid.time").End()
	c = ctx.WithFields(c, log.Fields{
		"caller":    caller,
		"listingId": listingId,
		"amount":    amount.String(),
	})

	var res *auction.Listing
	err := im.serial.Do(c, func(c ctx.Ctx) error {
		listing, err := im.findListing(c, listingId)
		if err != nil {
			return err
		}
		if err := im.admitBid(c, caller, listing, amount); err != nil {
			return err
		}
		updated, err := im.placeBid(c, caller, listing, amount)
		if err != nil {
			return err
		}
		res = updated
		return nil
	})
	if err != nil {
		im.metrics.BumpSum("bid.rejected", 1, "code", errCode(err))
		return nil, err
	}
	im.metrics.BumpSum("bid.accepted", 1)
	return res, nil
}

// admitBid runs the eligibility, timing and price checks in that order
func (im *impl) admitBid(c ctx.Ctx, caller domain.Address, listing *auction.Listing, amount domain.Amount) error {
	holder, err := im.allowlist.IsHolder(c, caller)
	if err != nil {
		c.WithField("err", err).Error("allowlist.IsHolder failed")
		return err
	}
	if !holder {
		return domain.ErrNotHolder
	}
	if listing.IsExpired(im.clock.Now()) {
		return domain.ErrListingExpired
	}
	if floor := listing.MinNextBid(); amount.Cmp(floor) < 0 {
		return xerrors.Errorf("bid %s below %s: %w", amount, floor, domain.ErrBidTooLow)
	}
	return nil
}

func (im *impl) placeBid(c ctx.Ctx, caller domain.Address, prev *auction.Listing, amount domain.Amount) (*auction.Listing, error) {
	bidder := caller.ToLower()
	if err := im.vault.Escrow(c, prev.Id, bidder, amount); err != nil {
		return nil, err
	}

	updated := *prev
	updated.HighestBidder = bidder
	updated.HighestBid = amount
	if err := im.listings.Update(c, updated); err != nil {
		c.WithField("err", err).Error("listings.Update failed")
		if rerr := im.vault.Release(c, prev.Id, bidder, amount); rerr != nil {
			c.WithField("err", rerr).Error("return bid to bidder failed")
			err = multierr.Append(err, rerr)
		}
		return nil, err
	}

	if prev.HasBids() {
		if err := im.vault.Release(c, prev.Id, prev.HighestBidder, prev.HighestBid); err != nil {
			c.WithFields(log.Fields{"err": err, "prevBidder": prev.HighestBidder}).Error("refund previous bidder failed")
			if rerr := im.listings.Update(c, *prev); rerr != nil {
				c.WithField("err", rerr).Error("restore listing failed")
				err = multierr.Append(err, rerr)
			}
			if rerr := im.vault.Release(c, prev.Id, bidder, amount); rerr != nil {
				c.WithField("err", rerr).Error("return bid to bidder failed")
				err = multierr.Append(err, rerr)
			}
			return nil, xerrors.Errorf("refund: %v: %w", err, domain.ErrEscrowTransferFailed)
		}
	}

	now := im.clock.Now()
	im.activity.Record(c, auction.Activity{
		Type:      auction.ActivityTypeBid,
		ListingId: ptr.Int64(prev.Id),
		Account:   bidder,
		Amount:    amount,
		Time:      now,
	})
	if prev.HasBids() {
		im.activity.Record(c, auction.Activity{
			Type:      auction.ActivityTypeRefunded,
			ListingId: ptr.Int64(prev.Id),
			Account:   prev.HighestBidder,
			Target:    bidder,
			Amount:    prev.HighestBid,
			Time:      now,
		})
	}
	c.Info("bid accepted")
	return &updated, nil
}
