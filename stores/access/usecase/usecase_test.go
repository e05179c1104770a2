package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/serial"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/access"
	"github.com/x-xyz/holderauction/domain/auction"
	"github.com/x-xyz/holderauction/stores/access/repository"
	auctionrepo "github.com/x-xyz/holderauction/stores/auction/repository"
	auctionuc "github.com/x-xyz/holderauction/stores/auction/usecase"
)

const (
	admin   = domain.Address("0xadmin")
	manager = domain.Address("0xmanager")
	alice   = domain.Address("0xalice")
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

type accessSuite struct {
	suite.Suite
	activities auction.ActivityRepo
	uc         access.Usecase
}

func TestAccess(t *testing.T) {
	suite.Run(t, new(accessSuite))
}

func (s *accessSuite) SetupTest() {
	s.activities = auctionrepo.NewActivityMemory()
	s.uc = New(&AccessUseCaseCfg{
		Repo:     repository.NewMemory(),
		Serial:   serial.New(),
		Clock:    fixedClock{time.Unix(1700000000, 0)},
		Activity: auctionuc.NewActivityRecorder(s.activities),
	})
	s.Require().NoError(s.uc.Init(ctx.Background(), admin))
}

func (s *accessSuite) TestInitOnlyOnce() {
	c := ctx.Background()
	s.Require().NoError(s.uc.Init(c, alice))
	got, err := s.uc.Admin(c)
	s.Require().NoError(err)
	s.Equal(admin, got)

	s.ErrorIs(s.uc.Init(c, ""), domain.ErrBadParamInput)
}

func (s *accessSuite) TestUpdateAdmin() {
	c := ctx.Background()
	cases := []struct {
		name     string
		caller   domain.Address
		newAdmin domain.Address
		wantErr  error
		want     domain.Address
	}{
		{name: "non admin", caller: alice, newAdmin: alice, wantErr: domain.ErrNotAdmin, want: admin},
		{name: "empty caller", caller: "", newAdmin: alice, wantErr: domain.ErrNotAdmin, want: admin},
		{name: "empty new admin", caller: admin, newAdmin: "", wantErr: domain.ErrBadParamInput, want: admin},
		{name: "admin hands over", caller: "0xADMIN", newAdmin: manager, want: manager},
		{name: "old admin lost rights", caller: admin, newAdmin: admin, wantErr: domain.ErrNotAdmin, want: manager},
		{name: "new admin hands back", caller: manager, newAdmin: admin, want: admin},
	}
	for _, cs := range cases {
		err := s.uc.UpdateAdmin(c, cs.caller, cs.newAdmin)
		if cs.wantErr != nil {
			s.ErrorIs(err, cs.wantErr, cs.name)
		} else {
			s.NoError(err, cs.name)
		}
		got, err := s.uc.Admin(c)
		s.Require().NoError(err)
		s.Equal(cs.want, got, cs.name)
	}
}

func (s *accessSuite) TestIsAdmin() {
	c := ctx.Background()
	ok, err := s.uc.IsAdmin(c, "0xAdmin")
	s.NoError(err)
	s.True(ok)

	ok, err = s.uc.IsAdmin(c, alice)
	s.NoError(err)
	s.False(ok)

	s.NoError(s.uc.RequireAdmin(c, admin))
	s.ErrorIs(s.uc.RequireAdmin(c, alice), domain.ErrNotAdmin)
}

func (s *accessSuite) TestNoAdminRecorded() {
	uc := New(&AccessUseCaseCfg{
		Repo:     repository.NewMemory(),
		Serial:   serial.New(),
		Clock:    fixedClock{},
		Activity: auctionuc.NewActivityRecorder(auctionrepo.NewActivityMemory()),
	})
	ok, err := uc.IsAdmin(ctx.Background(), admin)
	s.NoError(err)
	s.False(ok)
	s.ErrorIs(uc.UpdateAdmin(ctx.Background(), admin, alice), domain.ErrNotAdmin)
}

func (s *accessSuite) TestUpdateRecordsActivity() {
	c := ctx.Background()
	s.Require().NoError(s.uc.UpdateAdmin(c, admin, manager))
	s.ErrorIs(s.uc.UpdateAdmin(c, admin, alice), domain.ErrNotAdmin)

	res, err := s.activities.FindAll(c, 0, 0)
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal(auction.ActivityTypeAdminUpdated, res[0].Type)
	s.Equal(admin, res[0].Account)
	s.Equal(manager, res[0].Target)
}
