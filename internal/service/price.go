package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/twindex-reader/internal/apperrors"
	"github.com/fleshka4/twindex-reader/internal/fixedpoint"
	"github.com/fleshka4/twindex-reader/internal/registry"
	"github.com/fleshka4/twindex-reader/internal/service/dto"
	"github.com/fleshka4/twindex-reader/internal/service/validate"
)

// TokenPrice prices a token along the requested route.
func (s *DashboardService) TokenPrice(ctx context.Context, req dto.TokenPriceRequest) (*big.Int, error) {
	if err := validate.TokenPriceRequestValidate(req); err != nil {
		return nil, err
	}

	if req.Route == dto.RouteDop {
		return s.TokenPriceViaDop(ctx, req.Token, req.DollyPrice)
	}
	return s.TokenPriceViaDolly(ctx, req.Token, req.DollyPrice)
}

// TokenPriceViaDolly prices a token through its direct DOLLY pair.
func (s *DashboardService) TokenPriceViaDolly(ctx context.Context, token common.Address, dollyPrice *big.Int) (*big.Int, error) {
	dolly, err := s.token(registry.DOLLY)
	if err != nil {
		return nil, err
	}
	return s.PriceFromRouter(ctx, []common.Address{token, dolly}, dollyPrice)
}

// TokenPriceViaDop prices a token through DOP and then DOLLY.
func (s *DashboardService) TokenPriceViaDop(ctx context.Context, token common.Address, dollyPrice *big.Int) (*big.Int, error) {
	dop, err := s.token(registry.DOP)
	if err != nil {
		return nil, err
	}
	dolly, err := s.token(registry.DOLLY)
	if err != nil {
		return nil, err
	}
	return s.PriceFromRouter(ctx, []common.Address{token, dop, dolly}, dollyPrice)
}

// PriceFromRouter quotes a swap of one whole token along path and converts
// the DOLLY received into value: amountOut*dollyPrice/One.
func (s *DashboardService) PriceFromRouter(ctx context.Context, path []common.Address, dollyPrice *big.Int) (*big.Int, error) {
	if err := validate.PathValidate(path); err != nil {
		return nil, err
	}
	if err := validate.PriceValidate("dolly price", dollyPrice); err != nil {
		return nil, err
	}

	amounts, err := s.cli.AmountsOut(ctx, fixedpoint.One, path)
	if err != nil {
		return nil, errors.Wrap(err, "s.cli.AmountsOut")
	}

	amountOut := amounts[len(amounts)-1]
	price := fixedpoint.ScaleByPrice(amountOut, dollyPrice)

	s.log.Debug().
		Int("hops", len(path)-1).
		Str("amount_out", amountOut.String()).
		Str("price", price.String()).
		Msg("router price")

	return price, nil
}

// OracleStockPrice converts the PriceFeeds stock/DOLLY rate into value:
// rate*dollyPrice/precision.
func (s *DashboardService) OracleStockPrice(ctx context.Context, stock common.Address, dollyPrice *big.Int) (*big.Int, error) {
	if stock == (common.Address{}) {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "stock address cannot be empty")
	}
	if err := validate.PriceValidate("dolly price", dollyPrice); err != nil {
		return nil, err
	}

	dolly, err := s.token(registry.DOLLY)
	if err != nil {
		return nil, err
	}

	rate, err := s.cli.QueryRate(ctx, stock, dolly)
	if err != nil {
		return nil, errors.Wrap(err, "s.cli.QueryRate")
	}

	price, err := fixedpoint.MulDiv(rate.Rate, dollyPrice, rate.Precision)
	if err != nil {
		return nil, errors.Wrap(err, "oracle precision")
	}
	return price, nil
}

// OracleDollyPrice returns the DOLLY reference price as reported.
func (s *DashboardService) OracleDollyPrice(ctx context.Context) (*big.Int, error) {
	price, err := s.cli.LatestAnswer(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "s.cli.LatestAnswer")
	}
	return price, nil
}

// PairLPPrice prices one LP token of a pair from its supply and reserves.
func (s *DashboardService) PairLPPrice(ctx context.Context, req dto.LPPriceRequest) (*big.Int, error) {
	if err := validate.LPPriceRequestValidate(req); err != nil {
		return nil, err
	}

	supply, err := s.cli.TotalLPSupply(ctx, req.Pair)
	if err != nil {
		return nil, errors.Wrap(err, "s.cli.TotalLPSupply")
	}
	reserves, err := s.cli.Reserves(ctx, req.Pair)
	if err != nil {
		return nil, errors.Wrap(err, "s.cli.Reserves")
	}

	price, err := fixedpoint.LPPrice(supply, req.Price0, req.Price1, reserves.Reserve0, reserves.Reserve1)
	if err != nil {
		return nil, errors.Wrap(err, "fixedpoint.LPPrice")
	}
	return price, nil
}

func (s *DashboardService) token(symbol string) (common.Address, error) {
	addr, ok := s.reg.Token(symbol)
	if !ok {
		return common.Address{}, errors.Errorf("token %s is not registered", symbol)
	}
	return addr, nil
}
