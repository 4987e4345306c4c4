package validate

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/twindex-reader/internal/apperrors"
	"github.com/fleshka4/twindex-reader/internal/service/dto"
)

// TokenPriceRequestValidate validates a token price request.
func TokenPriceRequestValidate(req dto.TokenPriceRequest) error {
	if req.Token == (common.Address{}) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "token address cannot be empty")
	}

	switch req.Route {
	case dto.RouteDolly, dto.RouteDop:
	default:
		return errors.Wrapf(apperrors.ErrInvalidArgument, "unknown route %q", req.Route)
	}

	return PriceValidate("dolly price", req.DollyPrice)
}

// LPPriceRequestValidate validates an LP price request.
func LPPriceRequestValidate(req dto.LPPriceRequest) error {
	if req.Pair == (common.Address{}) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "pair address cannot be empty")
	}
	if err := PriceValidate("price0", req.Price0); err != nil {
		return err
	}
	return PriceValidate("price1", req.Price1)
}

// PathValidate validates a router swap path.
func PathValidate(path []common.Address) error {
	if len(path) < 2 {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "swap path needs at least 2 tokens, got %d", len(path))
	}
	for i, token := range path {
		if token == (common.Address{}) {
			return errors.Wrapf(apperrors.ErrInvalidArgument, "swap path token %d cannot be empty", i)
		}
	}
	return nil
}

// PriceValidate checks that a scaled price is present and not negative.
func PriceValidate(name string, price *big.Int) error {
	if price == nil || price.Sign() < 0 {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "%s cannot be empty or negative", name)
	}
	return nil
}
