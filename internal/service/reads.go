package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/twindex-reader/internal/apperrors"
	"github.com/fleshka4/twindex-reader/internal/infra/twindex"
	"github.com/fleshka4/twindex-reader/internal/registry"
	"github.com/fleshka4/twindex-reader/internal/service/dto"
)

// BlockCountdown estimates the time until target from the latest block.
func (s *DashboardService) BlockCountdown(ctx context.Context, target uint64) (dto.BlockCountdown, error) {
	current, err := s.cli.CurrentBlockNumber(ctx)
	if err != nil {
		return dto.BlockCountdown{}, errors.Wrap(err, "s.cli.CurrentBlockNumber")
	}

	return dto.BlockCountdown{
		Current:   current,
		Target:    target,
		Remaining: twindex.DurationUntilBlock(current, target),
	}, nil
}

// Pools lists the staked pairs.
func (s *DashboardService) Pools() []registry.Pair {
	return s.reg.Pairs()
}

// PoolID resolves the FairLaunch pool of a pair.
func (s *DashboardService) PoolID(pair common.Address) (uint64, error) {
	id, ok := s.reg.PoolIDFromPairAddress(pair)
	if !ok {
		return 0, errors.Wrapf(apperrors.ErrPoolNotFound, "pair %s", pair.Hex())
	}
	return id, nil
}

// LockedTwin returns the locked TWIN of a wallet.
func (s *DashboardService) LockedTwin(ctx context.Context, wallet *common.Address) (*big.Int, error) {
	amount, err := s.cli.LockedTwinAmount(ctx, wallet)
	if err != nil {
		return nil, errors.Wrap(err, "s.cli.LockedTwinAmount")
	}
	return amount, nil
}

// UserLoans returns the loans of a wallet.
func (s *DashboardService) UserLoans(ctx context.Context, wallet common.Address) ([]twindex.Loan, error) {
	loans, err := s.cli.UserLoans(ctx, wallet)
	if err != nil {
		return nil, errors.Wrap(err, "s.cli.UserLoans")
	}
	return loans, nil
}

// PendingTwin returns unclaimed rewards of a wallet in a pool.
func (s *DashboardService) PendingTwin(ctx context.Context, poolID uint64, wallet *common.Address) (*big.Int, error) {
	amount, err := s.cli.PendingTwin(ctx, poolID, wallet)
	if err != nil {
		return nil, errors.Wrap(err, "s.cli.PendingTwin")
	}
	return amount, nil
}
