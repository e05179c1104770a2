package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"

	"github.com/x-xyz/holderauction/base/log"
)

// ContractCaller is the read-only slice of ethclient.Client the service uses
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error)
}

// ThrottledClient bounds the number of in-flight rpc calls
type ThrottledClient struct {
	caller ContractCaller
	tokens chan int
}

func NewThrottledClient(caller ContractCaller, n int) *ThrottledClient {
	if n < 1 {
		n = 1
	}
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &ThrottledClient{
		caller: caller,
		tokens: tokens,
	}
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	token, err := c.before(ctx)
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.caller.CallContract(ctx, msg, number)
}

func (c *ThrottledClient) before(ctx context.Context) (int, error) {
	now := time.Now()
	select {
	case <-ctx.Done():
		log.Log().WithField("waited", time.Since(now).String()).Warn("throttle ctx done")
		return 0, ctx.Err()
	case token := <-c.tokens:
		if waited := time.Since(now); waited > time.Second {
			log.Log().WithFields(log.Fields{"token": token, "waited": waited.String()}).Warn("throttle slow")
		}
		return token, nil
	}
}

func (c *ThrottledClient) after(token int) {
	c.tokens <- token
}
