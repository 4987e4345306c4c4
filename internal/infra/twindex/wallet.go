package twindex

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/twindex-reader/internal/registry"
)

// getUserLoans paging, matching the dashboard: first 1000 loans of any type,
// as borrower, including healthy ones.
var (
	loansStart    = big.NewInt(0)
	loansCount    = big.NewInt(1000)
	loansType     = big.NewInt(0)
	loansAsLender = false
	loansUnsafe   = false
)

// LockedTwinAmount returns the TWIN locked for a wallet. Without a wallet it
// returns zero and makes no call.
func (c *ethClientImpl) LockedTwinAmount(ctx context.Context, wallet *common.Address) (*big.Int, error) {
	if wallet == nil {
		return new(big.Int), nil
	}

	twin, ok := c.reg.Token(registry.TWIN)
	if !ok {
		return nil, errors.New("TWIN token is not registered")
	}

	locked, err := c.callBigInt(ctx, c.abis.twin, twin, methodLockOf, *wallet)
	if err != nil {
		return nil, errors.Wrap(err, "c.callBigInt")
	}
	return locked, nil
}

// UserLoans returns the loans of a wallet. Under SwallowFailure a failed read
// yields an empty list and is only counted in metrics.
func (c *ethClientImpl) UserLoans(ctx context.Context, wallet common.Address) ([]Loan, error) {
	var loans []Loan
	err := c.callInto(
		ctx,
		c.abis.dfiProtocols,
		c.reg.Contracts().DFIProtocols,
		methodGetUserLoans,
		&loans,
		wallet,
		loansStart,
		loansCount,
		loansType,
		loansAsLender,
		loansUnsafe,
	)
	if err != nil {
		switch PolicyFor(methodGetUserLoans) {
		case SwallowFailure:
			c.metrics.RecordSwallowed(methodGetUserLoans)
			return []Loan{}, nil
		default:
			return nil, errors.Wrap(err, "c.callInto")
		}
	}
	if loans == nil {
		return []Loan{}, nil
	}
	return loans, nil
}
