package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/holderauction/base/abi"
	bCtx "github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/service/chain"
)

type Erc721Contract interface {
	Supports721Interface(ctx bCtx.Ctx, chainId int32, addr string) (bool, error)
	BalanceOf(ctx bCtx.Ctx, chainId int32, addr, owner string) (*big.Int, error)
	OwnerOf(ctx bCtx.Ctx, chainId int32, addr string, tokenId *big.Int) (string, error)
}

type Erc721 struct {
	chainService      chain.Client
	abi               ethabi.ABI
	erc721InterfaceId [4]byte
}

func NewErc721(chainService chain.Client) *Erc721 {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("80ac58cd"))
	return &Erc721{
		abi:               baseabi.ERC721ABI,
		chainService:      chainService,
		erc721InterfaceId: interfaceId,
	}
}

func (e *Erc721) Supports721Interface(ctx bCtx.Ctx, chainId int32, addr string) (bool, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), e.abi, "supportsInterface", e.erc721InterfaceId)
	if err != nil {
		return false, err
	}
	res, ok := unpacked[0].(bool)
	if !ok {
		return false, xerrors.Errorf("unexpected supportsInterface output %T", unpacked[0])
	}
	return res, nil
}

func (e *Erc721) BalanceOf(ctx bCtx.Ctx, chainId int32, addr, owner string) (*big.Int, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), e.abi, "balanceOf", common.HexToAddress(owner))
	if err != nil {
		return nil, err
	}
	res, ok := unpacked[0].(*big.Int)
	if !ok {
		return nil, xerrors.Errorf("unexpected balanceOf output %T", unpacked[0])
	}
	return res, nil
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, chainId int32, addr string, tokenId *big.Int) (string, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), e.abi, "ownerOf", tokenId)
	if err != nil {
		return "", err
	}
	res, ok := unpacked[0].(common.Address)
	if !ok {
		return "", xerrors.Errorf("unexpected ownerOf output %T", unpacked[0])
	}
	return res.String(), nil
}
