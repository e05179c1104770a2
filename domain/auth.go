package domain

import (
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/holderauction/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

// NonceRepo keeps the one-time login nonces handed out to wallets.
type NonceRepo interface {
	Put(c ctx.Ctx, address Address, nonce string, ttl time.Duration) error
	// Take consumes the pending nonce of address, ErrNotFound if there is none
	Take(c ctx.Ctx, address Address) (string, error)
}

type AuthUsecase interface {
	// IssueNonce returns the nonce the wallet has to sign, replacing any
	// pending one
	IssueNonce(ctx ctx.Ctx, address Address) (string, error)
	// SignToken verifies signature over the signing message of the pending
	// nonce and returns a bearer token for address
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
	SigningMessage(nonce string) string
}
