package usecase_test

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/service/cache/provider/primitive"
	"github.com/x-xyz/holderauction/stores/auth/repository"
	"github.com/x-xyz/holderauction/stores/auth/usecase"
)

type authSuite struct {
	suite.Suite
	auth    domain.AuthUsecase
	address domain.Address
	sign    func(msg string) string
}

func TestAuth(t *testing.T) {
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupTest() {
	s.auth = usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret:          "jwt-secret",
		SigningMsgTemplate: "Sign in to auction, nonce: %s",
		Nonces:             repository.NewNonceRepo(primitive.NewPrimitive("nonce", 1)),
	})

	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	s.address = domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex())
	s.sign = func(msg string) string {
		sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
		s.Require().NoError(err)
		return hexutil.Encode(sig)
	}
}

func (s *authSuite) TestSignAndParseToken() {
	c := ctx.Background()
	nonce, err := s.auth.IssueNonce(c, s.address)
	s.Require().NoError(err)
	s.NotEmpty(nonce)

	tkn, err := s.auth.SignToken(c, s.address, s.sign(s.auth.SigningMessage(nonce)))
	s.Require().NoError(err)
	s.NotEmpty(tkn)

	ads, err := s.auth.ParseToken(c, tkn)
	s.NoError(err)
	s.Equal(s.address.ToLowerStr(), ads)
}

func (s *authSuite) TestNonceIsSingleUse() {
	c := ctx.Background()
	nonce, err := s.auth.IssueNonce(c, s.address)
	s.Require().NoError(err)
	sig := s.sign(s.auth.SigningMessage(nonce))

	_, err = s.auth.SignToken(c, s.address, sig)
	s.Require().NoError(err)

	_, err = s.auth.SignToken(c, s.address, sig)
	s.ErrorIs(err, domain.ErrUnauthorized)
}

func (s *authSuite) TestRejectsBadSignatures() {
	c := ctx.Background()
	cases := []struct {
		Desc string
		Sig  func(nonce string) string
	}{
		{
			Desc: "other message",
			Sig:  func(nonce string) string { return s.sign("something else") },
		},
		{
			Desc: "not hex",
			Sig:  func(nonce string) string { return "zz" },
		},
		{
			Desc: "short",
			Sig:  func(nonce string) string { return "0x1234" },
		},
	}

	for _, tc := range cases {
		nonce, err := s.auth.IssueNonce(c, s.address)
		s.Require().NoError(err, tc.Desc)
		_, err = s.auth.SignToken(c, s.address, tc.Sig(nonce))
		s.ErrorIs(err, domain.ErrInvalidSignature, tc.Desc)
	}
}

func (s *authSuite) TestStaleNonceRejected() {
	c := ctx.Background()
	old, err := s.auth.IssueNonce(c, s.address)
	s.Require().NoError(err)
	_, err = s.auth.IssueNonce(c, s.address)
	s.Require().NoError(err)

	_, err = s.auth.SignToken(c, s.address, s.sign(s.auth.SigningMessage(old)))
	s.ErrorIs(err, domain.ErrInvalidSignature)
}

func (s *authSuite) TestParseRejectsForeignTokens() {
	c := ctx.Background()
	other := usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret:          "another-secret",
		SigningMsgTemplate: "%s",
		Nonces:             repository.NewNonceRepo(primitive.NewPrimitive("nonce", 1)),
	})
	nonce, err := other.IssueNonce(c, s.address)
	s.Require().NoError(err)
	tkn, err := other.SignToken(c, s.address, s.sign(other.SigningMessage(nonce)))
	s.Require().NoError(err)

	_, err = s.auth.ParseToken(c, tkn)
	s.Error(err)

	_, err = s.auth.ParseToken(c, "garbage")
	s.Error(err)
}

type frozenClock time.Time

func (f frozenClock) Now() time.Time { return time.Time(f) }

func (s *authSuite) TestExpiredToken() {
	c := ctx.Background()
	past := usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret:          "jwt-secret",
		SigningMsgTemplate: "%s",
		Nonces:             repository.NewNonceRepo(primitive.NewPrimitive("nonce", 1)),
		Clock:              frozenClock(time.Now().Add(-48 * time.Hour)),
		TokenTTL:           time.Hour,
	})
	nonce, err := past.IssueNonce(c, s.address)
	s.Require().NoError(err)
	tkn, err := past.SignToken(c, s.address, s.sign(past.SigningMessage(nonce)))
	s.Require().NoError(err)

	_, err = s.auth.ParseToken(c, tkn)
	s.Error(err)
}
