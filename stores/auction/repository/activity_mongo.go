package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/auction"
	"github.com/x-xyz/holderauction/service/query"
)

type activityImpl struct {
	q query.Mongo
}

func NewActivity(q query.Mongo) auction.ActivityRepo {
	return &activityImpl{q}
}

func (im *activityImpl) Insert(c ctx.Ctx, activity auction.Activity) error {
	if err := im.q.Insert(c, domain.TableListingActivities, activity); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *activityImpl) FindByListing(c ctx.Ctx, listingId int64, offset, limit int) ([]*auction.Activity, error) {
	res := []*auction.Activity{}
	if err := im.q.Search(c, domain.TableListingActivities, offset, limit, "time", bson.M{"listingId": listingId}, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *activityImpl) FindAll(c ctx.Ctx, offset, limit int) ([]*auction.Activity, error) {
	res := []*auction.Activity{}
	qry := bson.M{"id": bson.M{"$exists": true}}
	if err := im.q.Search(c, domain.TableListingActivities, offset, limit, "time", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
