package validate

import (
	"net/http"

	"github.com/fleshka4/twindex-reader/internal/transport/http/dto"
)

// GetValidate accepts parameterless GET requests.
func GetValidate(r *http.Request) (int, error) {
	return Method(r)
}

// BlockRequestValidate validates /block request and returns dto.
func BlockRequestValidate(r *http.Request) (*dto.BlockRequest, int, error) {
	if code, err := Method(r); err != nil {
		return nil, code, err
	}

	target, err := Uint(r.URL.Query(), "target")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &dto.BlockRequest{Target: target}, 0, nil
}

// PairRequestValidate validates requests carrying a required pair.
func PairRequestValidate(r *http.Request) (*dto.PairRequest, int, error) {
	if code, err := Method(r); err != nil {
		return nil, code, err
	}

	pair, err := Address(r.URL.Query(), "pair")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &dto.PairRequest{Pair: pair}, 0, nil
}

// WalletRequestValidate validates wallet requests. When required is false an
// absent wallet yields a nil Wallet.
func WalletRequestValidate(r *http.Request, required bool) (*dto.WalletRequest, int, error) {
	if code, err := Method(r); err != nil {
		return nil, code, err
	}

	q := r.URL.Query()
	if required {
		wallet, err := Address(q, "wallet")
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		return &dto.WalletRequest{Wallet: &wallet}, 0, nil
	}

	wallet, err := OptionalAddress(q, "wallet")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &dto.WalletRequest{Wallet: wallet}, 0, nil
}

// PendingRequestValidate validates /wallet/pending request and returns dto.
func PendingRequestValidate(r *http.Request) (*dto.PendingRequest, int, error) {
	if code, err := Method(r); err != nil {
		return nil, code, err
	}

	q := r.URL.Query()
	poolID, err := Uint(q, "pool_id")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	wallet, err := OptionalAddress(q, "wallet")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &dto.PendingRequest{PoolID: poolID, Wallet: wallet}, 0, nil
}

// LPPositionRequestValidate validates /lp/position request and returns dto.
func LPPositionRequestValidate(r *http.Request) (*dto.LPPositionRequest, int, error) {
	if code, err := Method(r); err != nil {
		return nil, code, err
	}

	q := r.URL.Query()
	pair, err := Address(q, "pair")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	wallet, err := OptionalAddress(q, "wallet")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &dto.LPPositionRequest{Pair: pair, Wallet: wallet}, 0, nil
}

// LPPriceRequestValidate validates /lp/price request and returns dto.
func LPPriceRequestValidate(r *http.Request) (*dto.LPPriceRequest, int, error) {
	if code, err := Method(r); err != nil {
		return nil, code, err
	}

	q := r.URL.Query()
	pair, err := Address(q, "pair")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	price0, err := Amount(q, "price0")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	price1, err := Amount(q, "price1")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &dto.LPPriceRequest{Pair: pair, Price0: price0, Price1: price1}, 0, nil
}

// TokenPriceRequestValidate validates /price/token request and returns dto.
// The route defaults to dolly.
func TokenPriceRequestValidate(r *http.Request) (*dto.TokenPriceRequest, int, error) {
	if code, err := Method(r); err != nil {
		return nil, code, err
	}

	q := r.URL.Query()
	token, err := Address(q, "token")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	dollyPrice, err := Amount(q, "dolly_price")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	route := q.Get("route")
	if route == "" {
		route = "dolly"
	}
	return &dto.TokenPriceRequest{Token: token, Route: route, DollyPrice: dollyPrice}, 0, nil
}

// OracleStockRequestValidate validates /price/oracle/stock request and
// returns dto.
func OracleStockRequestValidate(r *http.Request) (*dto.OracleStockRequest, int, error) {
	if code, err := Method(r); err != nil {
		return nil, code, err
	}

	q := r.URL.Query()
	stock, err := Address(q, "stock")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	dollyPrice, err := Amount(q, "dolly_price")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &dto.OracleStockRequest{Stock: stock, DollyPrice: dollyPrice}, 0, nil
}
