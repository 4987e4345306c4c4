package twindex

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// PendingTwin returns unclaimed TWIN rewards of a wallet in a FairLaunch pool.
// Without a wallet it returns zero and makes no call.
func (c *ethClientImpl) PendingTwin(ctx context.Context, poolID uint64, wallet *common.Address) (*big.Int, error) {
	if wallet == nil {
		return new(big.Int), nil
	}

	pending, err := c.callBigInt(
		ctx,
		c.abis.fairLaunch,
		c.reg.Contracts().FairLaunch,
		methodPendingTwin,
		new(big.Int).SetUint64(poolID),
		*wallet,
	)
	if err != nil {
		return nil, errors.Wrap(err, "c.callBigInt")
	}
	return pending, nil
}

// UserInfo returns the FairLaunch position of a wallet in a pool.
func (c *ethClientImpl) UserInfo(ctx context.Context, poolID uint64, wallet common.Address) (UserInfo, error) {
	var info UserInfo
	err := c.callInto(
		ctx,
		c.abis.fairLaunch,
		c.reg.Contracts().FairLaunch,
		methodUserInfo,
		&info,
		new(big.Int).SetUint64(poolID),
		wallet,
	)
	if err != nil {
		return UserInfo{}, errors.Wrap(err, "c.callInto")
	}
	return info, nil
}
