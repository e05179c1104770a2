package usecase

import (
	"math/big"

	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/log"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/erc721"
	"github.com/x-xyz/holderauction/service/chain/contract"
)

type chainHoldings struct {
	chainId  domain.ChainId
	contract contract.Erc721Contract
}

// NewChainHoldings reads balances from erc721 contracts on chainId
func NewChainHoldings(chainId domain.ChainId, c contract.Erc721Contract) erc721.Holdings {
	return &chainHoldings{chainId: chainId, contract: c}
}

func (im *chainHoldings) BalanceOf(c ctx.Ctx, collection, owner domain.Address) (*big.Int, error) {
	bal, err := im.contract.BalanceOf(c, int32(im.chainId), collection.ToLowerStr(), owner.ToLowerStr())
	if err != nil {
		c.WithFields(log.Fields{
			"chainId":    im.chainId,
			"collection": collection,
			"owner":      owner,
			"err":        err,
		}).Error("contract.BalanceOf failed")
		return nil, err
	}
	return bal, nil
}
