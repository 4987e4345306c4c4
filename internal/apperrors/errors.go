package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when the request parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPoolNotFound is returned when a pair address has no staking pool
	// in the registry.
	ErrPoolNotFound = errors.New("staking pool not found")

	// ErrDivisionByZero is returned when a supply or precision divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrRemoteCall is returned when an eth_call or its decoding fails.
	ErrRemoteCall = errors.New("remote call failed")

	// ErrWrongNetwork is returned when the RPC endpoint serves another chain.
	ErrWrongNetwork = errors.New("wrong network")
)

// Remote marks err as a remote call failure while keeping it as the cause,
// so both errors.Is(err, ErrRemoteCall) and errors.Cause keep working.
func Remote(err error) error {
	if err == nil {
		return nil
	}
	return &remoteError{cause: err}
}

type remoteError struct {
	cause error
}

func (e *remoteError) Error() string {
	return "remote call failed: " + e.cause.Error()
}

func (e *remoteError) Cause() error { return e.cause }

func (e *remoteError) Unwrap() error { return e.cause }

func (e *remoteError) Is(target error) bool { return target == ErrRemoteCall }
