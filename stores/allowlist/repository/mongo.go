package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/allowlist"
	"github.com/x-xyz/holderauction/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) allowlist.Repo {
	return &impl{q}
}

func (im *impl) FindAll(c ctx.Ctx) ([]*allowlist.QualifyingCollection, error) {
	res := []*allowlist.QualifyingCollection{}

	// to prevent scancol error
	qry := bson.M{"address": bson.M{"$exists": true}}

	if err := im.q.Search(c, domain.TableQualifyingCollections, 0, 0, "addedAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Exists(c ctx.Ctx, address domain.Address) (bool, error) {
	n, err := im.q.Count(c, domain.TableQualifyingCollections, bson.M{"address": address.ToLowerStr()})
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return false, err
	}
	return n > 0, nil
}

// Upsert keeps the first AddedAt/AddedBy of an entry that is already present
func (im *impl) Upsert(c ctx.Ctx, value allowlist.QualifyingCollection) error {
	value.Address = value.Address.ToLower()
	if ok, err := im.Exists(c, value.Address); err != nil {
		return err
	} else if ok {
		return nil
	}
	if err := im.q.Insert(c, domain.TableQualifyingCollections, value); err != nil && err != query.ErrDuplicateKey {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) Delete(c ctx.Ctx, address domain.Address) error {
	if err := im.q.Remove(c, domain.TableQualifyingCollections, bson.M{"address": address.ToLowerStr()}); err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
