package ethereum

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMsgSignature(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(privateKey.PublicKey).Hex()
	message := []byte("sign in to holder auction, nonce 123456")
	signature, err := crypto.Sign(accounts.TextHash(message), privateKey)
	require.NoError(t, err)

	res, err := ValidateMsgSignature(message, hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.True(t, res)

	// wallets that report v as 27/28
	legacy := append([]byte{}, signature...)
	legacy[crypto.RecoveryIDOffset] += 27
	res, err = ValidateMsgSignature(message, hexutil.Encode(legacy), address)
	assert.NoError(t, err)
	assert.True(t, res)

	// incorrect message
	res, err = ValidateMsgSignature([]byte("654321"), hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.False(t, res)

	// incorrect signer
	other, err := crypto.GenerateKey()
	require.NoError(t, err)
	res, err = ValidateMsgSignature(message, hexutil.Encode(signature), crypto.PubkeyToAddress(other.PublicKey).Hex())
	assert.NoError(t, err)
	assert.False(t, res)

	_, err = ValidateMsgSignature(message, "0x1234", address)
	assert.Error(t, err)
	_, err = ValidateMsgSignature(message, "not hex", address)
	assert.Error(t, err)
}

type slowCaller struct {
	inflight int32
	peak     int32
}

func (s *slowCaller) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	n := atomic.AddInt32(&s.inflight, 1)
	for {
		p := atomic.LoadInt32(&s.peak)
		if n <= p || atomic.CompareAndSwapInt32(&s.peak, p, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	atomic.AddInt32(&s.inflight, -1)
	return []byte{1}, nil
}

func TestThrottledClient(t *testing.T) {
	caller := &slowCaller{}
	c := NewThrottledClient(caller, 2)

	done := make(chan struct{})
	for i := 0; i < 6; i++ {
		go func() {
			_, err := c.CallContract(context.Background(), ethereum.CallMsg{}, nil)
			assert.NoError(t, err)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 6; i++ {
		<-done
	}
	assert.LessOrEqual(t, atomic.LoadInt32(&caller.peak), int32(2))

	// every token is taken, a cancelled ctx gives up
	<-c.tokens
	<-c.tokens
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.CallContract(ctx, ethereum.CallMsg{}, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}
