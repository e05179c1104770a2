package chain

import (
	"errors"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/ethereum"
	"github.com/x-xyz/holderauction/base/log"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

type ClientCfg struct {
	RpcUrls map[int32]string
	// MaxInflight bounds concurrent calls per chain
	MaxInflight int
}

type Client interface {
	Call(c bCtx.Ctx, chainId int32, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
}

type clientImpl struct {
	callers map[int32]ethereum.ContractCaller
}

// NewClient dials every configured rpc. A chain that fails to dial is left
// out and reported, the other chains stay usable.
func NewClient(c bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	callers := make(map[int32]ethereum.ContractCaller)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(c, url)
		if err != nil {
			anyerr = err
			c.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			continue
		}
		callers[chainId] = ethereum.NewThrottledClient(client, cfg.MaxInflight)
	}
	return NewClientWithCallers(callers), anyerr
}

// NewClientWithCallers wires already connected callers, used by tests
func NewClientWithCallers(callers map[int32]ethereum.ContractCaller) Client {
	return &clientImpl{callers: callers}
}

func (im *clientImpl) Call(c bCtx.Ctx, chainId int32, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	caller, ok := im.callers[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		c.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := geth.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := caller.CallContract(c, msg, nil)
	if err != nil {
		c.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		c.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}
