// Package authtest serves handler tests that need authenticated requests.
package authtest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/service/cache/provider/primitive"
	"github.com/x-xyz/holderauction/stores/auth/delivery/http/middleware"
	"github.com/x-xyz/holderauction/stores/auth/repository"
	"github.com/x-xyz/holderauction/stores/auth/usecase"
)

const secret = "authtest-secret"

func NewMiddleware() *middleware.AuthMiddleware {
	return middleware.New(usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret:          secret,
		SigningMsgTemplate: "%s",
		Nonces:             repository.NewNonceRepo(primitive.NewPrimitive("authtest", 1)),
	}))
}

// Bearer returns an Authorization header value accepted by NewMiddleware
func Bearer(t *testing.T, address domain.Address) string {
	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + ss
}
