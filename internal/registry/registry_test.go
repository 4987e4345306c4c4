package registry

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validate(t *testing.T) {
	t.Parallel()

	r := Default()
	require.NoError(t, r.Validate())
	require.Same(t, r, Default())
}

func TestFlip(t *testing.T) {
	t.Parallel()

	a := common.HexToAddress("0x01")
	b := common.HexToAddress("0x02")

	t.Run("unique values", func(t *testing.T) {
		t.Parallel()

		got, ok := Flip(map[string]common.Address{"A": a, "B": b})
		require.True(t, ok)
		require.Equal(t, map[common.Address]string{a: "A", b: "B"}, got)
	})

	t.Run("duplicate values", func(t *testing.T) {
		t.Parallel()

		got, ok := Flip(map[string]common.Address{"A": a, "B": a})
		require.False(t, ok)
		require.Nil(t, got)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		got, ok := Flip(nil)
		require.True(t, ok)
		require.Empty(t, got)
	})
}

func TestPairKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TSLA_DOLLY", PairKey("TSLA", DOLLY))
	assert.Equal(t, "DOP_AAPL", PairKey("dop", "aapl"))
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	r := Default()
	tokens := r.Tokens()
	delete(tokens, TWIN)

	_, ok := r.Token(TWIN)
	require.True(t, ok)
}

func TestPairs(t *testing.T) {
	t.Parallel()

	pairs := Default().Pairs()
	require.Len(t, pairs, 9)

	for i, p := range pairs {
		require.Equal(t, uint64(i), p.PoolID, "pairs are ordered by pool id")
	}

	require.Equal(t, "DOP_AAPL", pairs[2].Name)
	require.Equal(t, "AAPL", pairs[2].Symbol)
	require.Equal(t, DOP, pairs[2].Pairing)
	require.Equal(t, common.HexToAddress("0x2D4980c63962d4B9156a8974AEA7C7fd3121913A"), pairs[2].Address)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	pair := common.HexToAddress("0x10")

	tests := []struct {
		name    string
		tables  Tables
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "valid",
			tables: Tables{
				DollyPairs: map[string]common.Address{"TSLA": pair},
				PoolIDs:    map[string]uint64{"TSLA_DOLLY": 0},
			},
			wantErr: assert.NoError,
		},
		{
			name: "missing pool id",
			tables: Tables{
				DollyPairs: map[string]common.Address{"TSLA": pair},
				PoolIDs:    map[string]uint64{},
			},
			wantErr: assert.Error,
		},
		{
			name: "both spellings registered",
			tables: Tables{
				DopPairs: map[string]common.Address{"TSLA": pair},
				PoolIDs:  map[string]uint64{"TSLA_DOP": 0, "DOP_TSLA": 1},
			},
			wantErr: assert.Error,
		},
		{
			name: "duplicate pool id",
			tables: Tables{
				PoolIDs: map[string]uint64{"TSLA_DOP": 3, "AMZN_DOP": 3},
			},
			wantErr: assert.Error,
		},
		{
			name: "duplicate pair address",
			tables: Tables{
				DopPairs: map[string]common.Address{"TSLA": pair, "AMZN": pair},
				PoolIDs:  map[string]uint64{"TSLA_DOP": 0, "AMZN_DOP": 1},
			},
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.wantErr(t, New(tt.tables).Validate())
		})
	}
}
