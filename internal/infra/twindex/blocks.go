package twindex

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/fleshka4/twindex-reader/internal/apperrors"
)

// BlockTime is the average BNB Smart Chain block interval.
const BlockTime = 3 * time.Second

// DurationUntilBlock estimates the time between two block heights. The order
// of the arguments does not matter.
func DurationUntilBlock(current, target uint64) time.Duration {
	diff := target - current
	if current > target {
		diff = current - target
	}
	return time.Duration(diff) * BlockTime
}

// CurrentBlockNumber returns the latest block height.
func (c *ethClientImpl) CurrentBlockNumber(ctx context.Context) (uint64, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	n, err := c.caller.BlockNumber(ctx)
	if err != nil {
		return 0, errors.Wrap(apperrors.Remote(err), "c.caller.BlockNumber")
	}
	return n, nil
}

// VerifyNetwork checks that the endpoint serves the expected chain.
func (c *ethClientImpl) VerifyNetwork(ctx context.Context, chainID uint64) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	id, err := c.caller.ChainID(ctx)
	if err != nil {
		return errors.Wrap(apperrors.Remote(err), "c.caller.ChainID")
	}
	if !id.IsUint64() || id.Uint64() != chainID {
		return errors.Wrapf(apperrors.ErrWrongNetwork, "expected chain %d, got %s", chainID, id)
	}
	return nil
}
