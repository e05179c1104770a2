package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/auction"
	"github.com/x-xyz/holderauction/service/query"
)

const listingCounterKey = "listings"

type counter struct {
	Key string `bson:"key"`
	Seq int64  `bson:"seq"`
}

type listingImpl struct {
	q query.Mongo
}

func NewListing(q query.Mongo) auction.ListingRepo {
	return &listingImpl{q}
}

// Create bumps the listing counter and inserts in one transaction, an
// aborted insert gives the id back.
func (im *listingImpl) Create(c ctx.Ctx, listing *auction.Listing) (int64, error) {
	var id int64
	err := im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		cnt := &counter{}
		if err := im.q.Increment(c, domain.TableCounters, bson.M{"key": listingCounterKey}, cnt, "seq", int64(1)); err != nil {
			c.WithField("err", err).Error("q.Increment failed")
			return err
		}
		id = cnt.Seq - 1
		doc := *listing
		doc.Id = id
		if err := im.q.Insert(c, domain.TableListings, doc); err != nil {
			c.WithField("err", err).Error("q.Insert failed")
			return err
		}
		return nil
	})
	if err != nil {
		c.WithField("err", err).Error("q.RunWithTransaction failed")
		return 0, err
	}
	listing.Id = id
	return id, nil
}

func (im *listingImpl) FindOne(c ctx.Ctx, id int64) (*auction.Listing, error) {
	res := &auction.Listing{}
	if err := im.q.FindOne(c, domain.TableListings, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *listingImpl) FindAll(c ctx.Ctx, offset, limit int) ([]*auction.Listing, error) {
	res := []*auction.Listing{}
	qry := bson.M{"id": bson.M{"$exists": true}}
	if err := im.q.Search(c, domain.TableListings, offset, limit, "id", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *listingImpl) Count(c ctx.Ctx) (int, error) {
	n, err := im.q.Count(c, domain.TableListings, bson.M{})
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}

func (im *listingImpl) Update(c ctx.Ctx, listing auction.Listing) error {
	if n, err := im.q.Count(c, domain.TableListings, bson.M{"id": listing.Id}); err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return err
	} else if n == 0 {
		return domain.ErrNotFound
	}
	if err := im.q.Upsert(c, domain.TableListings, bson.M{"id": listing.Id}, listing); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
