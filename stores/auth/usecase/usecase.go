package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/ethereum"
	"github.com/x-xyz/holderauction/domain"
)

const (
	defaultTokenTTL = 24 * time.Hour
	defaultNonceTTL = 5 * time.Minute
)

type AuthUseCaseCfg struct {
	JwtSecret string
	// SigningMsgTemplate holds one %s for the nonce
	SigningMsgTemplate string
	Nonces             domain.NonceRepo
	Clock              domain.Clock
	TokenTTL           time.Duration
	NonceTTL           time.Duration
}

type impl struct {
	jwtSecret []byte
	template  string
	nonces    domain.NonceRepo
	clock     domain.Clock
	tokenTTL  time.Duration
	nonceTTL  time.Duration
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	im := &impl{
		jwtSecret: []byte(cfg.JwtSecret),
		template:  cfg.SigningMsgTemplate,
		nonces:    cfg.Nonces,
		clock:     cfg.Clock,
		tokenTTL:  cfg.TokenTTL,
		nonceTTL:  cfg.NonceTTL,
	}
	if im.clock == nil {
		im.clock = domain.SystemClock
	}
	if im.tokenTTL <= 0 {
		im.tokenTTL = defaultTokenTTL
	}
	if im.nonceTTL <= 0 {
		im.nonceTTL = defaultNonceTTL
	}
	return im
}

func (im *impl) SigningMessage(nonce string) string {
	return fmt.Sprintf(im.template, nonce)
}

func (im *impl) IssueNonce(c ctx.Ctx, address domain.Address) (string, error) {
	if address.IsEmpty() {
		return "", domain.ErrInvalidAddress
	}
	nonce := uuid.NewString()
	if err := im.nonces.Put(c, address, nonce, im.nonceTTL); err != nil {
		c.WithField("err", err).Error("nonces.Put failed")
		return "", err
	}
	return nonce, nil
}

func (im *impl) SignToken(c ctx.Ctx, address domain.Address, signature string) (string, error) {
	c = ctx.WithFields(c, map[string]interface{}{"address": address})

	nonce, err := im.nonces.Take(c, address)
	if err == domain.ErrNotFound {
		return "", xerrors.Errorf("no pending nonce: %w", domain.ErrUnauthorized)
	} else if err != nil {
		c.WithField("err", err).Error("nonces.Take failed")
		return "", err
	}

	msg := []byte(im.SigningMessage(nonce))
	if ok, err := ethereum.ValidateMsgSignature(msg, signature, string(address)); err != nil {
		c.WithField("err", err).Warn("ValidateMsgSignature failed")
		return "", xerrors.Errorf("%v: %w", err, domain.ErrInvalidSignature)
	} else if !ok {
		return "", domain.ErrInvalidSignature
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  im.clock.Now().Unix(),
			ExpiresAt: im.clock.Now().Add(im.tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})

	if token != nil {
		if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
			return claims.Address, nil
		}
	}
	if err == nil {
		err = domain.ErrUnauthorized
	}
	return "", err
}
