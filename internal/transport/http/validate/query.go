package validate

import (
	"math/big"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Method rejects everything but GET.
func Method(r *http.Request) (int, error) {
	if r.Method != http.MethodGet {
		return http.StatusMethodNotAllowed, errors.Errorf("method %s not allowed", r.Method)
	}
	return 0, nil
}

// Address parses a required hex address parameter.
func Address(q url.Values, name string) (common.Address, error) {
	v := q.Get(name)
	if v == "" {
		return common.Address{}, errors.Errorf("missing %s", name)
	}
	if !common.IsHexAddress(v) {
		return common.Address{}, errors.Errorf("bad %s address format", name)
	}
	return common.HexToAddress(v), nil
}

// OptionalAddress parses a hex address parameter that may be absent.
func OptionalAddress(q url.Values, name string) (*common.Address, error) {
	if q.Get(name) == "" {
		return nil, nil
	}
	addr, err := Address(q, name)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// Amount parses a required non-negative decimal integer parameter.
func Amount(q url.Values, name string) (*big.Int, error) {
	v := q.Get(name)
	if v == "" {
		return nil, errors.Errorf("missing %s", name)
	}
	a, ok := new(big.Int).SetString(v, 10)
	if !ok || a.Sign() < 0 {
		return nil, errors.Errorf("bad %s", name)
	}
	return a, nil
}

// Uint parses a required unsigned integer parameter.
func Uint(q url.Values, name string) (uint64, error) {
	v := q.Get(name)
	if v == "" {
		return 0, errors.Errorf("missing %s", name)
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, errors.Errorf("bad %s", name)
	}
	return n, nil
}
