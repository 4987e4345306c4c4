package fixedpoint

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/fleshka4/twindex-reader/internal/apperrors"
)

func bi(s string) *big.Int {
	z, _ := new(big.Int).SetString(s, 10)
	return z
}

func TestOne(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1000000000000000000", One.String())
	require.Equal(t, "3000000000000000000", Ether(3).String())
}

func TestMulDiv(t *testing.T) {
	t.Parallel()

	got, err := MulDiv(bi("10"), bi("7"), bi("3"))
	require.NoError(t, err)
	require.Equal(t, "23", got.String()) // 70/3 = 23.3 -> 23

	_, err = MulDiv(bi("1"), bi("1"), bi("0"))
	require.True(t, errors.Is(err, apperrors.ErrDivisionByZero))
}

func TestScaleByPrice(t *testing.T) {
	t.Parallel()

	half := bi("500000000000000000")
	require.Equal(t, Ether(2).String(), ScaleByPrice(Ether(4), half).String())
}

func TestUnderlyingAssets(t *testing.T) {
	t.Parallel()

	a0, a1, err := UnderlyingAssets(Ether(100), Ether(10), Ether(1000), Ether(2000))
	require.NoError(t, err)
	require.Equal(t, 0, a0.Cmp(Ether(100)))
	require.Equal(t, 0, a1.Cmp(Ether(200)))
}

func TestUnderlyingAssets_Truncates(t *testing.T) {
	t.Parallel()

	a0, a1, err := UnderlyingAssets(bi("3"), bi("1"), bi("10"), bi("11"))
	require.NoError(t, err)
	require.Equal(t, "3", a0.String())
	require.Equal(t, "3", a1.String())
}

func TestUnderlyingAssets_ZeroSupply(t *testing.T) {
	t.Parallel()

	_, _, err := UnderlyingAssets(bi("0"), Ether(1), Ether(1), Ether(1))
	require.True(t, errors.Is(err, apperrors.ErrDivisionByZero))
}

func TestLPPrice(t *testing.T) {
	t.Parallel()

	got, err := LPPrice(One, Ether(2), Ether(3), One, One)
	require.NoError(t, err)
	require.Equal(t, 0, got.Cmp(Ether(5)))
}

func TestLPPrice_Pool(t *testing.T) {
	t.Parallel()

	// 1000 TSLA @ 700 + 700000 DOLLY @ 1 over 26457 LP.
	got, err := LPPrice(Ether(26457), Ether(700), One, Ether(1000), Ether(700000))
	require.NoError(t, err)
	require.Equal(t, "52916052462486298522", got.String())
}

func TestLPPrice_ZeroSupply(t *testing.T) {
	t.Parallel()

	_, err := LPPrice(bi("0"), Ether(2), Ether(3), One, One)
	require.True(t, errors.Is(err, apperrors.ErrDivisionByZero))
}

func BenchmarkLPPrice(b *testing.B) {
	supply := bi("1234567890000000000000")
	r0 := bi("987654321000000000000000")
	r1 := bi("123456789000000000000000")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := LPPrice(supply, One, One, r0, r1); err != nil {
			b.Fatal(err)
		}
	}
}
