package dto

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Route selects the swap path used to price a token.
type Route string

const (
	// RouteDolly prices along token → DOLLY.
	RouteDolly Route = "dolly"
	// RouteDop prices along token → DOP → DOLLY.
	RouteDop Route = "dop"
)

// BlockCountdown is the estimated time until a target block.
type BlockCountdown struct {
	Current   uint64
	Target    uint64
	Remaining time.Duration
}

// LPPosition describes a pair and, when a wallet is given, the wallet's share
// of it (held plus staked in FairLaunch).
type LPPosition struct {
	Pair   common.Address
	PoolID uint64

	Token0             common.Address
	Token1             common.Address
	Reserve0           *big.Int
	Reserve1           *big.Int
	BlockTimestampLast uint32
	TotalSupply        *big.Int

	LPAmount    *big.Int
	Underlying0 *big.Int
	Underlying1 *big.Int
}

// TokenPriceRequest asks for the DOLLY-denominated price of a token scaled
// by DollyPrice.
type TokenPriceRequest struct {
	Token      common.Address
	DollyPrice *big.Int
	Route      Route
}

// LPPriceRequest asks for the fair price of one LP token of Pair given the
// prices of its two tokens.
type LPPriceRequest struct {
	Pair   common.Address
	Price0 *big.Int
	Price1 *big.Int
}
