package validate

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleshka4/twindex-reader/internal/apperrors"
	"github.com/fleshka4/twindex-reader/internal/service/dto"
)

func TestTokenPriceRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.TokenPriceRequest
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "valid dolly route",
			req:     createValidTokenPriceRequest(),
			wantErr: assert.NoError,
		},
		{
			name: "valid dop route",
			req: dto.TokenPriceRequest{
				Token:      common.HexToAddress("0x123"),
				DollyPrice: big.NewInt(1),
				Route:      dto.RouteDop,
			},
			wantErr: assert.NoError,
		},
		{
			name: "zero token address",
			req: dto.TokenPriceRequest{
				Token:      common.Address{},
				DollyPrice: big.NewInt(1),
				Route:      dto.RouteDolly,
			},
			wantErr: assert.Error,
		},
		{
			name: "unknown route",
			req: dto.TokenPriceRequest{
				Token:      common.HexToAddress("0x123"),
				DollyPrice: big.NewInt(1),
				Route:      "busd",
			},
			wantErr: assert.Error,
		},
		{
			name: "nil dolly price",
			req: dto.TokenPriceRequest{
				Token: common.HexToAddress("0x123"),
				Route: dto.RouteDolly,
			},
			wantErr: assert.Error,
		},
		{
			name: "negative dolly price",
			req: dto.TokenPriceRequest{
				Token:      common.HexToAddress("0x123"),
				DollyPrice: big.NewInt(-1),
				Route:      dto.RouteDolly,
			},
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := TokenPriceRequestValidate(tt.req)
			tt.wantErr(t, err)
			if err != nil {
				require.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
			}
		})
	}
}

func TestLPPriceRequestValidate(t *testing.T) {
	t.Parallel()

	pair := common.HexToAddress("0x789")

	tests := []struct {
		name    string
		req     dto.LPPriceRequest
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "valid request",
			req:     dto.LPPriceRequest{Pair: pair, Price0: big.NewInt(1), Price1: big.NewInt(0)},
			wantErr: assert.NoError,
		},
		{
			name:    "zero pair address",
			req:     dto.LPPriceRequest{Price0: big.NewInt(1), Price1: big.NewInt(1)},
			wantErr: assert.Error,
		},
		{
			name:    "nil price0",
			req:     dto.LPPriceRequest{Pair: pair, Price1: big.NewInt(1)},
			wantErr: assert.Error,
		},
		{
			name:    "negative price1",
			req:     dto.LPPriceRequest{Pair: pair, Price0: big.NewInt(1), Price1: big.NewInt(-5)},
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.wantErr(t, LPPriceRequestValidate(tt.req))
		})
	}
}

func TestPathValidate(t *testing.T) {
	t.Parallel()

	a := common.HexToAddress("0x1")
	b := common.HexToAddress("0x2")

	require.NoError(t, PathValidate([]common.Address{a, b}))
	require.NoError(t, PathValidate([]common.Address{a, b, a}))
	require.Error(t, PathValidate(nil))
	require.Error(t, PathValidate([]common.Address{a}))
	require.Error(t, PathValidate([]common.Address{a, {}}))
}

func createValidTokenPriceRequest() dto.TokenPriceRequest {
	return dto.TokenPriceRequest{
		Token:      common.HexToAddress("0x123"),
		DollyPrice: big.NewInt(1000000000000000000),
		Route:      dto.RouteDolly,
	}
}
