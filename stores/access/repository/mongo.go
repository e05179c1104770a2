package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/access"
	"github.com/x-xyz/holderauction/service/query"
)

// the admins table holds a single document under this key
const adminKey = "admin"

type adminDoc struct {
	Key          string `bson:"key"`
	access.Admin `bson:",inline"`
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) access.Repo {
	return &impl{q}
}

func (im *impl) Get(c ctx.Ctx) (*access.Admin, error) {
	res := &adminDoc{}
	if err := im.q.FindOne(c, domain.TableAdmins, bson.M{"key": adminKey}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &res.Admin, nil
}

func (im *impl) Set(c ctx.Ctx, admin access.Admin) error {
	admin.Address = admin.Address.ToLower()
	doc := adminDoc{Key: adminKey, Admin: admin}
	if err := im.q.Upsert(c, domain.TableAdmins, bson.M{"key": adminKey}, doc); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
