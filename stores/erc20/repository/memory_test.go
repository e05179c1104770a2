package repository

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/erc20"
)

var (
	mockCtx = ctx.Background()

	alice   = domain.Address("0x00000000000000000000000000000000000a11ce")
	bob     = domain.Address("0x0000000000000000000000000000000000000b0b")
	spender = domain.Address("0x0000000000000000000000000000000000005e11")
)

type tokenSuite struct {
	suite.Suite
	token *Token
}

func TestTokenSuite(t *testing.T) {
	suite.Run(t, new(tokenSuite))
}

func (s *tokenSuite) SetupTest() {
	s.token = NewToken("0x00000000000000000000000000000000000000AA")
	s.Require().NoError(s.token.Mint(alice, domain.NewAmount(100)))
}

func (s *tokenSuite) balance(a domain.Address) int64 {
	bal, err := s.token.BalanceOf(mockCtx, a)
	s.Require().NoError(err)
	return bal.Big().Int64()
}

func (s *tokenSuite) TestTransfer() {
	cases := []struct {
		desc      string
		amount    int64
		to        domain.Address
		err       error
		wantAlice int64
		wantBob   int64
	}{
		{"moves funds", 40, bob, nil, 60, 40},
		{"exceeds balance", 61, bob, erc20.ErrInsufficientBalance, 60, 40},
		{"zero address", 1, domain.EmptyAddress, erc20.ErrInvalidReceiver, 60, 40},
		{"zero amount", 0, bob, nil, 60, 40},
	}
	for _, c := range cases {
		err := s.token.Transfer(mockCtx, alice, c.to, domain.NewAmount(c.amount))
		s.Equal(c.err, err, c.desc)
		s.Equal(c.wantAlice, s.balance(alice), c.desc)
		s.Equal(c.wantBob, s.balance(bob), c.desc)
	}
}

func (s *tokenSuite) TestTransferFromNeedsAllowance() {
	err := s.token.TransferFrom(mockCtx, spender, alice, spender, domain.NewAmount(10))
	s.Equal(erc20.ErrInsufficientAllowance, err)

	s.NoError(s.token.Approve(mockCtx, alice, spender, domain.NewAmount(30)))
	s.NoError(s.token.TransferFrom(mockCtx, spender, alice, spender, domain.NewAmount(10)))
	s.Equal(int64(90), s.balance(alice))
	s.Equal(int64(10), s.balance(spender))

	left, err := s.token.Allowance(mockCtx, alice, spender)
	s.NoError(err)
	s.Equal("20", left.String())

	err = s.token.TransferFrom(mockCtx, spender, alice, spender, domain.NewAmount(21))
	s.Equal(erc20.ErrInsufficientAllowance, err)
}

func (s *tokenSuite) TestTransferFromFailureLeavesAllowance() {
	s.NoError(s.token.Approve(mockCtx, bob, spender, domain.NewAmount(50)))
	err := s.token.TransferFrom(mockCtx, spender, bob, spender, domain.NewAmount(50))
	s.Equal(erc20.ErrInsufficientBalance, err)

	left, err := s.token.Allowance(mockCtx, bob, spender)
	s.NoError(err)
	s.Equal("50", left.String())
}

func (s *tokenSuite) TestAddressesAreCaseInsensitive() {
	upper := domain.Address("0x00000000000000000000000000000000000A11CE")
	s.Equal(int64(100), s.balance(upper))
}
