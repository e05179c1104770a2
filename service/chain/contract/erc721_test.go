package contract

import (
	"bytes"
	"context"
	"math/big"
	"testing"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	baseabi "github.com/x-xyz/holderauction/base/abi"
	bCtx "github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/ethereum"
	"github.com/x-xyz/holderauction/service/chain"
)

// fakeNode answers eth_call with abi encoded canned results
type fakeNode struct {
	t        *testing.T
	balances map[common.Address]*big.Int
	owner    common.Address
}

func (f *fakeNode) CallContract(ctx context.Context, msg geth.CallMsg, number *big.Int) ([]byte, error) {
	abi := baseabi.ERC721ABI
	method, err := abi.MethodById(msg.Data[:4])
	require.NoError(f.t, err)
	args, err := method.Inputs.Unpack(msg.Data[4:])
	require.NoError(f.t, err)

	switch method.Name {
	case "balanceOf":
		bal, ok := f.balances[args[0].(common.Address)]
		if !ok {
			bal = big.NewInt(0)
		}
		return method.Outputs.Pack(bal)
	case "ownerOf":
		return method.Outputs.Pack(f.owner)
	case "supportsInterface":
		id := args[0].([4]byte)
		return method.Outputs.Pack(bytes.Equal(id[:], common.Hex2Bytes("80ac58cd")))
	}
	f.t.Fatalf("unexpected method %s", method.Name)
	return nil, nil
}

func TestErc721(t *testing.T) {
	req := require.New(t)
	holder := common.HexToAddress("0x939ae6A4C8dfDBB1f7085189574F0A938013952A")
	node := &fakeNode{
		t:        t,
		balances: map[common.Address]*big.Int{holder: big.NewInt(3)},
		owner:    holder,
	}
	e := NewErc721(chain.NewClientWithCallers(map[int32]ethereum.ContractCaller{1: node}))
	ctx := bCtx.Background()
	collection := "0x71c4658acc7b53ee814a29ce31100ff85ca23ca7"

	ok, err := e.Supports721Interface(ctx, 1, collection)
	req.NoError(err)
	req.True(ok)

	bal, err := e.BalanceOf(ctx, 1, collection, holder.Hex())
	req.NoError(err)
	req.Equal(int64(3), bal.Int64())

	bal, err = e.BalanceOf(ctx, 1, collection, "0x94EaD797046c7b654cab82C1c27ad223b6501f1f")
	req.NoError(err)
	req.Zero(bal.Sign())

	owner, err := e.OwnerOf(ctx, 1, collection, big.NewInt(7))
	req.NoError(err)
	req.Equal(holder.Hex(), owner)

	_, err = e.BalanceOf(ctx, 56, collection, holder.Hex())
	req.ErrorIs(err, chain.ErrUnsupportedChain)
}
