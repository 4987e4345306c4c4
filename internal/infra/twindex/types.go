package twindex

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Reserves is the getReserves record of a pair.
type Reserves struct {
	Reserve0           *big.Int
	Reserve1           *big.Int
	BlockTimestampLast uint32
}

// UserInfo is a FairLaunch staking position.
type UserInfo struct {
	Amount     *big.Int
	RewardDebt *big.Int
	BonusDebt  *big.Int
	FundedBy   common.Address
}

// OracleRate is a PriceFeeds quote: one source token is worth Rate/Precision
// destination tokens.
type OracleRate struct {
	Rate      *big.Int
	Precision *big.Int
}

// Loan is one entry of DFI protocols getUserLoans. Field order follows the
// contract's LoanReturnData tuple.
type Loan struct {
	// LoanId keeps the decoder's camel-cased ABI name "loanId"; do not rename.
	LoanId                   [32]byte
	EndTimestamp             *big.Int
	LoanToken                common.Address
	CollateralToken          common.Address
	Principal                *big.Int
	Collateral               *big.Int
	InterestOwedPerDay       *big.Int
	InterestDepositRemaining *big.Int
	StartRate                *big.Int
	StartMargin              *big.Int
	MaintenanceMargin        *big.Int
	CurrentMargin            *big.Int
	MaxLoanTerm              *big.Int
	MaxLiquidatable          *big.Int
	MaxSeizable              *big.Int
}
