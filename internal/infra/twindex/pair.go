package twindex

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/fleshka4/twindex-reader/internal/apperrors"
)

// TotalLPSupply returns the LP token supply of a pair.
func (c *ethClientImpl) TotalLPSupply(ctx context.Context, pair common.Address) (*big.Int, error) {
	supply, err := c.callBigInt(ctx, c.abis.pair, pair, methodTotalSupply)
	if err != nil {
		return nil, errors.Wrap(err, "c.callBigInt")
	}
	return supply, nil
}

// PairTokens returns the addresses of token0 and token1 for a given pair contract.
func (c *ethClientImpl) PairTokens(ctx context.Context, pair common.Address) (common.Address, common.Address, error) {
	const numTokens = 2

	type tokenResult struct {
		token  common.Address
		err    error
		method string
	}

	var wg sync.WaitGroup
	ch := make(chan tokenResult, numTokens)

	getToken := func(method string) {
		defer wg.Done()

		select {
		case <-ctx.Done():
			ch <- tokenResult{err: errors.Wrap(ctx.Err(), "context cancelled before call")}
			return
		default:
		}

		out, err := c.callValues(ctx, c.abis.pair, pair, method)
		if err != nil {
			ch <- tokenResult{err: errors.Wrapf(err, "failed to call %s", method)}
			return
		}

		addr, ok := out[0].(common.Address)
		if !ok {
			ch <- tokenResult{err: errors.Wrapf(apperrors.ErrRemoteCall, "failed to cast %s result to address", method)}
			return
		}

		ch <- tokenResult{token: addr, method: method}
	}

	wg.Add(numTokens)
	go getToken(methodToken0)
	go getToken(methodToken1)

	go func() {
		wg.Wait()
		close(ch)
	}()

	var (
		token0, token1 common.Address
		combinedErr    error
	)

	for result := range ch {
		if result.err != nil {
			combinedErr = multierr.Append(combinedErr, result.err)
			continue
		}

		switch result.method {
		case methodToken0:
			token0 = result.token
		case methodToken1:
			token1 = result.token
		}
	}

	if combinedErr != nil {
		return common.Address{}, common.Address{}, errors.Wrap(combinedErr, "failed to get pair tokens")
	}

	return token0, token1, nil
}

// Reserves returns the current reserves of token0 and token1 for a given pair contract.
func (c *ethClientImpl) Reserves(ctx context.Context, pair common.Address) (Reserves, error) {
	var r Reserves
	if err := c.callInto(ctx, c.abis.pair, pair, methodGetReserves, &r); err != nil {
		return Reserves{}, errors.Wrap(err, "c.callInto")
	}
	return r, nil
}

// LPBalance returns the LP tokens a wallet holds directly.
func (c *ethClientImpl) LPBalance(ctx context.Context, pair, wallet common.Address) (*big.Int, error) {
	balance, err := c.callBigInt(ctx, c.abis.pair, pair, methodBalanceOf, wallet)
	if err != nil {
		return nil, errors.Wrap(err, "c.callBigInt")
	}
	return balance, nil
}
