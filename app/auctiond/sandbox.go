package main

import (
	"github.com/x-xyz/holderauction/base/amount"
	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/domain"
	erc20repo "github.com/x-xyz/holderauction/stores/erc20/repository"
	erc721repo "github.com/x-xyz/holderauction/stores/erc721/repository"
)

// sandboxCfg seeds the in-memory ledgers, there is no api to mint
type sandboxCfg struct {
	Token string `mapstructure:"token"`
	// Balances maps holders to display amounts
	Balances    map[string]string      `mapstructure:"balances"`
	Collections []sandboxCollectionCfg `mapstructure:"collections"`
}

type sandboxCollectionCfg struct {
	Address string `mapstructure:"address"`
	// Tokens maps token ids to their owners
	Tokens map[string]string `mapstructure:"tokens"`
}

type sandbox struct {
	token    *erc20repo.Token
	registry *erc721repo.Registry
}

// seedSandbox mints the configured balances and tokens. Every holder
// approves custody up front, so listing and bidding need no extra calls.
func seedSandbox(c ctx.Ctx, cfg sandboxCfg, formatter amount.Formatter, custody domain.Address) (*sandbox, error) {
	token := erc20repo.NewToken(domain.Address(cfg.Token).ToLower())
	for holder, display := range cfg.Balances {
		a, err := formatter.Parse(display)
		if err != nil {
			c.WithFields(map[string]interface{}{"err": err, "holder": holder}).Error("formatter.Parse failed")
			return nil, err
		}
		if err := token.Mint(domain.Address(holder), a); err != nil {
			c.WithField("err", err).Error("token.Mint failed")
			return nil, err
		}
		if err := token.Approve(c, domain.Address(holder), custody, a); err != nil {
			c.WithField("err", err).Error("token.Approve failed")
			return nil, err
		}
	}

	registry := erc721repo.NewRegistry()
	for _, colCfg := range cfg.Collections {
		col := erc721repo.NewCollection(domain.Address(colCfg.Address))
		for tokenId, owner := range colCfg.Tokens {
			if err := col.Mint(domain.Address(owner), domain.TokenId(tokenId)); err != nil {
				c.WithFields(map[string]interface{}{"err": err, "collection": colCfg.Address, "tokenId": tokenId}).Error("collection.Mint failed")
				return nil, err
			}
			if err := col.SetApprovalForAll(c, domain.Address(owner), custody, true); err != nil {
				c.WithField("err", err).Error("collection.SetApprovalForAll failed")
				return nil, err
			}
		}
		registry.Add(col)
	}

	c.WithFields(map[string]interface{}{
		"holders":     len(cfg.Balances),
		"collections": len(cfg.Collections),
	}).Info("sandbox seeded")
	return &sandbox{token: token, registry: registry}, nil
}
