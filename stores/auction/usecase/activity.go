package usecase

import (
	"github.com/google/uuid"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/log"
	"github.com/x-xyz/holderauction/domain/auction"
)

type activityRecorder struct {
	repo auction.ActivityRepo
}

func NewActivityRecorder(repo auction.ActivityRepo) auction.ActivityRecorder {
	return &activityRecorder{repo: repo}
}

func (im *activityRecorder) Record(c ctx.Ctx, activity auction.Activity) {
	if activity.Id == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			c.WithField("err", err).Error("uuid.NewRandom failed")
			return
		}
		activity.Id = id.String()
	}
	if err := im.repo.Insert(c, activity); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"activity": activity.Type,
		}).Error("activity.Insert failed")
	}
}
