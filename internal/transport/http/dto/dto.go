package dto

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// BlockRequest represents a parsed /block request.
type BlockRequest struct {
	Target uint64
}

// PairRequest represents a parsed request addressing one pair.
type PairRequest struct {
	Pair common.Address
}

// WalletRequest represents a parsed request for wallet reads. Wallet is nil
// when the query omits it.
type WalletRequest struct {
	Wallet *common.Address
}

// PendingRequest represents a parsed /wallet/pending request.
type PendingRequest struct {
	PoolID uint64
	Wallet *common.Address
}

// LPPositionRequest represents a parsed /lp/position request.
type LPPositionRequest struct {
	Pair   common.Address
	Wallet *common.Address
}

// LPPriceRequest represents a parsed /lp/price request.
type LPPriceRequest struct {
	Pair   common.Address
	Price0 *big.Int
	Price1 *big.Int
}

// TokenPriceRequest represents a parsed /price/token request.
type TokenPriceRequest struct {
	Token      common.Address
	Route      string
	DollyPrice *big.Int
}

// OracleStockRequest represents a parsed /price/oracle/stock request.
type OracleStockRequest struct {
	Stock      common.Address
	DollyPrice *big.Int
}

// BlockResponse is the /block payload.
type BlockResponse struct {
	Current     uint64 `json:"current"`
	Target      uint64 `json:"target"`
	RemainingMs int64  `json:"remaining_ms"`
}

// PoolResponse describes one staked pair.
type PoolResponse struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	Pairing string `json:"pairing"`
	Address string `json:"address"`
	PoolID  uint64 `json:"pool_id"`
}

// PoolIDResponse is the /pools/id payload.
type PoolIDResponse struct {
	Pair   string `json:"pair"`
	PoolID uint64 `json:"pool_id"`
}

// AmountResponse carries a scaled amount as a decimal string.
type AmountResponse struct {
	Amount string `json:"amount"`
}

// PriceResponse carries a scaled price as a decimal string.
type PriceResponse struct {
	Price string `json:"price"`
}

// LoanResponse is one lending position.
type LoanResponse struct {
	LoanID                   string `json:"loan_id"`
	LoanToken                string `json:"loan_token"`
	CollateralToken          string `json:"collateral_token"`
	Principal                string `json:"principal"`
	Collateral               string `json:"collateral"`
	InterestOwedPerDay       string `json:"interest_owed_per_day"`
	InterestDepositRemaining string `json:"interest_deposit_remaining"`
	StartRate                string `json:"start_rate"`
	StartMargin              string `json:"start_margin"`
	MaintenanceMargin        string `json:"maintenance_margin"`
	CurrentMargin            string `json:"current_margin"`
	MaxLoanTerm              string `json:"max_loan_term"`
	MaxLiquidatable          string `json:"max_liquidatable"`
	MaxSeizable              string `json:"max_seizable"`
	EndTimestamp             string `json:"end_timestamp"`
}

// LPPositionResponse is the /lp/position payload.
type LPPositionResponse struct {
	Pair               string `json:"pair"`
	PoolID             uint64 `json:"pool_id"`
	Token0             string `json:"token0"`
	Token1             string `json:"token1"`
	Reserve0           string `json:"reserve0"`
	Reserve1           string `json:"reserve1"`
	BlockTimestampLast uint32 `json:"block_timestamp_last"`
	TotalSupply        string `json:"total_supply"`
	LPAmount           string `json:"lp_amount"`
	Underlying0        string `json:"underlying0"`
	Underlying1        string `json:"underlying1"`
}

// ErrorResponse is written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
