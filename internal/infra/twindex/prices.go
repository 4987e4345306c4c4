package twindex

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/twindex-reader/internal/apperrors"
)

// AmountsOut quotes a swap of amountIn along path through the router. The
// result has one amount per path element.
func (c *ethClientImpl) AmountsOut(ctx context.Context, amountIn *big.Int, path []common.Address) ([]*big.Int, error) {
	if len(path) < 2 {
		return nil, errors.Wrapf(apperrors.ErrInvalidArgument, "swap path needs at least 2 tokens, got %d", len(path))
	}

	out, err := c.callValues(ctx, c.abis.router, c.reg.Contracts().Router, methodGetAmountsOut, amountIn, path)
	if err != nil {
		return nil, errors.Wrap(err, "c.callValues")
	}

	amounts, ok := out[0].([]*big.Int)
	if !ok {
		return nil, errors.Wrap(apperrors.ErrRemoteCall, "failed to cast getAmountsOut result to []*big.Int")
	}
	if len(amounts) == 0 {
		return nil, errors.Wrap(apperrors.ErrRemoteCall, "empty getAmountsOut result")
	}
	return amounts, nil
}

// QueryRate returns the PriceFeeds rate of src denominated in dst.
func (c *ethClientImpl) QueryRate(ctx context.Context, src, dst common.Address) (OracleRate, error) {
	var rate OracleRate
	err := c.callInto(ctx, c.abis.priceFeeds, c.reg.Contracts().PriceFeeds, methodQueryRate, &rate, src, dst)
	if err != nil {
		return OracleRate{}, errors.Wrap(err, "c.callInto")
	}
	return rate, nil
}

// LatestAnswer returns the DOLLY reference price from the external oracle.
func (c *ethClientImpl) LatestAnswer(ctx context.Context) (*big.Int, error) {
	price, err := c.callBigInt(ctx, c.abis.oracle, c.reg.Contracts().DollyOracle, methodLatestAnswer)
	if err != nil {
		return nil, errors.Wrap(err, "c.callBigInt")
	}
	return price, nil
}
