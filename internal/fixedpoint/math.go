// Package fixedpoint implements arithmetic on amounts scaled by 10^18.
package fixedpoint

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/fleshka4/twindex-reader/internal/apperrors"
)

// Decimals is the number of decimal places of a scaled amount.
const Decimals = 18

// One is 1.0 as a scaled amount.
var One = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// Ether returns n whole units as a scaled amount.
func Ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), One)
}

// MulDiv returns a*b/c truncated toward zero.
func MulDiv(a, b, c *big.Int) (*big.Int, error) {
	if c.Sign() == 0 {
		return nil, apperrors.ErrDivisionByZero
	}
	num := new(big.Int).Mul(a, b)
	return num.Quo(num, c), nil
}

// ScaleByPrice converts a scaled amount into value: amount*price/One.
func ScaleByPrice(amount, price *big.Int) *big.Int {
	v := new(big.Int).Mul(amount, price)
	return v.Quo(v, One)
}

// UnderlyingAssets splits lpAmount of a pair into token0 and token1 amounts:
// lpAmount*reserve/totalSupply for each reserve. Rounding loss grows with
// lpAmount/totalSupply.
func UnderlyingAssets(totalSupply, lpAmount, reserve0, reserve1 *big.Int) (*big.Int, *big.Int, error) {
	amount0, err := MulDiv(lpAmount, reserve0, totalSupply)
	if err != nil {
		return nil, nil, errors.Wrap(err, "token0 share")
	}
	amount1, err := MulDiv(lpAmount, reserve1, totalSupply)
	if err != nil {
		return nil, nil, errors.Wrap(err, "token1 share")
	}
	return amount0, amount1, nil
}

// LPPrice returns the fair price of one LP token:
// (price0*reserve0/One + price1*reserve1/One) * One / lpSupply.
func LPPrice(lpSupply, price0, price1, reserve0, reserve1 *big.Int) (*big.Int, error) {
	total := ScaleByPrice(reserve0, price0)
	total.Add(total, ScaleByPrice(reserve1, price1))

	price, err := MulDiv(total, One, lpSupply)
	if err != nil {
		return nil, errors.Wrap(err, "lp supply")
	}
	return price, nil
}
