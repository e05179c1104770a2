package usecase

import (
	"go.uber.org/multierr"
	"golang.org/x/xerrors"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/log"
	"github.com/x-xyz/holderauction/base/ptr"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/auction"
	"github.com/x-xyz/holderauction/domain/erc721"
)

// ClaimNFT settles an expired listing for its highest bidder: the asset goes
// to the winner, then the escrowed bid to the seller. Progress is stored per
// leg so a claim that failed halfway can be retried without paying twice.
func (im *impl) ClaimNFT(c ctx.Ctx, caller domain.Address, listingId int64) (*auction.Listing, error) {
	defer im.metrics.BumpTime("claim.time").End()
	c = ctx.WithFields(c, log.Fields{
		"caller":    caller,
		"listingId": listingId,
	})

	var res *auction.Listing
	err := im.serial.Do(c, func(c ctx.Ctx) error {
		listing, err := im.findListing(c, listingId)
		if err != nil {
			return err
		}
		if !listing.HasBids() || !listing.HighestBidder.Equals(caller) {
			return domain.ErrNotHighestBidder
		}
		if listing.Settled {
			return domain.ErrAlreadySettled
		}
		if !listing.IsExpired(im.clock.Now()) {
			return domain.ErrListingNotExpired
		}

		col, err := im.registry.Collection(c, listing.Collection)
		if err != nil {
			c.WithField("err", err).Error("registry.Collection failed")
			return xerrors.Errorf("resolve collection: %v: %w", err, domain.ErrAssetTransferDenied)
		}
		if err := im.preflight(c, col, listing); err != nil {
			return err
		}

		if !listing.AssetReleased {
			if err := col.TransferFrom(c, im.custody, im.custody, listing.HighestBidder, listing.TokenId); err != nil {
				c.WithField("err", err).Error("collection.TransferFrom failed")
				return xerrors.Errorf("release asset: %v: %w", err, domain.ErrAssetTransferDenied)
			}
			listing.AssetReleased = true
			if err := im.listings.Update(c, *listing); err != nil {
				c.WithField("err", err).Error("listings.Update failed")
				return err
			}
		}

		if !listing.ProceedsReleased {
			if err := im.releaseProceeds(c, listing); err != nil {
				return err
			}
		}

		now := im.clock.Now()
		listing.Settled = true
		listing.SettledAt = ptr.Time(now)
		if err := im.listings.Update(c, *listing); err != nil {
			// both legs are stored already, a retry only settles
			c.WithField("err", err).Error("listings.Update failed")
			return err
		}

		im.activity.Record(c, auction.Activity{
			Type:      auction.ActivityTypeClaimed,
			ListingId: ptr.Int64(listing.Id),
			Account:   listing.HighestBidder,
			Target:    listing.Seller,
			Amount:    listing.HighestBid,
			Time:      now,
		})
		im.metrics.BumpSum("claim.settled", 1)
		c.Info("listing settled")
		res = listing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// releaseProceeds stores the proceeds leg as done before paying the seller
// and clears it again if the payout fails. A payout whose bookkeeping cannot
// be restored stays marked as paid and is logged for manual settlement.
func (im *impl) releaseProceeds(c ctx.Ctx, listing *auction.Listing) error {
	listing.ProceedsReleased = true
	if err := im.listings.Update(c, *listing); err != nil {
		c.WithField("err", err).Error("listings.Update failed")
		listing.ProceedsReleased = false
		return err
	}
	if err := im.vault.Release(c, listing.Id, listing.Seller, listing.HighestBid); err != nil {
		listing.ProceedsReleased = false
		if rerr := im.listings.Update(c, *listing); rerr != nil {
			c.WithFields(log.Fields{"err": rerr, "listing": listing}).Error("restore proceeds leg failed, seller unpaid")
			err = multierr.Append(err, rerr)
		}
		return err
	}
	return nil
}

// preflight checks that every pending leg can be paid before any runs. An
// asset already sitting with the winner counts as released, that covers a
// transfer whose bookkeeping was lost. The vault is shared by all listings,
// so it has to cover every unpaid highest bid, not only this one.
func (im *impl) preflight(c ctx.Ctx, col erc721.Collection, listing *auction.Listing) error {
	if !listing.AssetReleased {
		owner, err := col.OwnerOf(c, listing.TokenId)
		if err != nil {
			c.WithField("err", err).Error("collection.OwnerOf failed")
			return xerrors.Errorf("asset owner: %v: %w", err, domain.ErrAssetTransferDenied)
		}
		switch {
		case owner.Equals(im.custody):
		case owner.Equals(listing.HighestBidder):
			listing.AssetReleased = true
		default:
			return xerrors.Errorf("asset held by %s: %w", owner, domain.ErrAssetTransferDenied)
		}
	}
	if !listing.ProceedsReleased {
		owed, err := im.escrowOwed(c)
		if err != nil {
			return err
		}
		held, err := im.vault.Holdings(c)
		if err != nil {
			return xerrors.Errorf("vault holdings: %v: %w", err, domain.ErrEscrowTransferFailed)
		}
		if held.Cmp(owed) < 0 {
			return xerrors.Errorf("vault holds %s, owes %s: %w", held, owed, domain.ErrEscrowTransferFailed)
		}
	}
	return nil
}

const escrowScanPage = 100

// escrowOwed sums the highest bids the vault still has to pay out
func (im *impl) escrowOwed(c ctx.Ctx) (domain.Amount, error) {
	owed := domain.ZeroAmount
	for offset := 0; ; offset += escrowScanPage {
		page, err := im.listings.FindAll(c, offset, escrowScanPage)
		if err != nil {
			c.WithField("err", err).Error("listings.FindAll failed")
			return domain.ZeroAmount, err
		}
		for _, l := range page {
			if l.HasBids() && !l.ProceedsReleased {
				owed = owed.Add(l.HighestBid)
			}
		}
		if len(page) < escrowScanPage {
			return owed, nil
		}
	}
}
