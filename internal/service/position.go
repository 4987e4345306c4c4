package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/fleshka4/twindex-reader/internal/fixedpoint"
	"github.com/fleshka4/twindex-reader/internal/infra/twindex"
	"github.com/fleshka4/twindex-reader/internal/service/dto"
)

// WalletPlusStakedLPAmount returns the LP tokens a wallet holds plus those it
// staked in FairLaunch. Without a wallet it returns zero and makes no call.
func (s *DashboardService) WalletPlusStakedLPAmount(
	ctx context.Context,
	pair common.Address,
	wallet *common.Address,
) (*big.Int, error) {
	if wallet == nil {
		return new(big.Int), nil
	}

	poolID, err := s.PoolID(pair)
	if err != nil {
		return nil, err
	}

	var (
		inWallet *big.Int
		staked   twindex.UserInfo
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inWallet, err = s.cli.LPBalance(gCtx, pair, *wallet)
		return errors.Wrap(err, "s.cli.LPBalance")
	})
	g.Go(func() error {
		var err error
		staked, err = s.cli.UserInfo(gCtx, poolID, *wallet)
		return errors.Wrap(err, "s.cli.UserInfo")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := new(big.Int).Set(inWallet)
	if staked.Amount != nil {
		total.Add(total, staked.Amount)
	}
	return total, nil
}

// LPPosition reads a pair's tokens, reserves and supply and, when a wallet is
// given, the wallet's LP amount and its underlying token split.
func (s *DashboardService) LPPosition(ctx context.Context, pair common.Address, wallet *common.Address) (dto.LPPosition, error) {
	poolID, err := s.PoolID(pair)
	if err != nil {
		return dto.LPPosition{}, err
	}

	pos := dto.LPPosition{Pair: pair, PoolID: poolID}

	var reserves twindex.Reserves

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pos.Token0, pos.Token1, err = s.cli.PairTokens(gCtx, pair)
		return errors.Wrap(err, "s.cli.PairTokens")
	})
	g.Go(func() error {
		var err error
		reserves, err = s.cli.Reserves(gCtx, pair)
		return errors.Wrap(err, "s.cli.Reserves")
	})
	g.Go(func() error {
		var err error
		pos.TotalSupply, err = s.cli.TotalLPSupply(gCtx, pair)
		return errors.Wrap(err, "s.cli.TotalLPSupply")
	})
	g.Go(func() error {
		var err error
		pos.LPAmount, err = s.WalletPlusStakedLPAmount(gCtx, pair, wallet)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.LPPosition{}, err
	}

	pos.Reserve0 = reserves.Reserve0
	pos.Reserve1 = reserves.Reserve1
	pos.BlockTimestampLast = reserves.BlockTimestampLast

	if pos.TotalSupply.Sign() == 0 {
		pos.Underlying0, pos.Underlying1 = new(big.Int), new(big.Int)
		return pos, nil
	}

	pos.Underlying0, pos.Underlying1, err = fixedpoint.UnderlyingAssets(pos.TotalSupply, pos.LPAmount, pos.Reserve0, pos.Reserve1)
	if err != nil {
		return dto.LPPosition{}, errors.Wrap(err, "fixedpoint.UnderlyingAssets")
	}
	return pos, nil
}
