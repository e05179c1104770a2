package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/database/mongotest"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/allowlist"
)

type repoSuite struct {
	suite.Suite
	newRepo func() allowlist.Repo
	repo    allowlist.Repo
}

func TestMemory(t *testing.T) {
	suite.Run(t, &repoSuite{newRepo: NewMemory})
}

func TestMongo(t *testing.T) {
	q := mongotest.Connect(t)
	suite.Run(t, &repoSuite{newRepo: func() allowlist.Repo { return New(q) }})
}

func (s *repoSuite) SetupTest() {
	s.repo = s.newRepo()
	all, err := s.repo.FindAll(ctx.Background())
	s.Require().NoError(err)
	for _, v := range all {
		s.Require().NoError(s.repo.Delete(ctx.Background(), v.Address))
	}
}

func (s *repoSuite) TestSetSemantics() {
	c := ctx.Background()
	t0 := time.Unix(1700000000, 0).UTC()

	s.Require().NoError(s.repo.Upsert(c, allowlist.QualifyingCollection{Address: "0xAA", AddedBy: "0xadmin", AddedAt: t0}))
	s.Require().NoError(s.repo.Upsert(c, allowlist.QualifyingCollection{Address: "0xbb", AddedBy: "0xadmin", AddedAt: t0.Add(time.Second)}))
	// re-adding keeps the original entry
	s.Require().NoError(s.repo.Upsert(c, allowlist.QualifyingCollection{Address: "0xaa", AddedBy: "0xother", AddedAt: t0.Add(time.Hour)}))

	all, err := s.repo.FindAll(c)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(domain.Address("0xaa"), all[0].Address)
	s.Equal(domain.Address("0xadmin"), all[0].AddedBy)
	s.Equal(domain.Address("0xbb"), all[1].Address)

	ok, err := s.repo.Exists(c, "0xAa")
	s.NoError(err)
	s.True(ok)

	s.Require().NoError(s.repo.Delete(c, "0xAA"))
	s.Require().NoError(s.repo.Delete(c, "0xaa"))

	ok, err = s.repo.Exists(c, "0xaa")
	s.NoError(err)
	s.False(ok)
}
