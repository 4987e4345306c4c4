package twindex

// FailurePolicy decides what a read returns when its remote call fails.
type FailurePolicy int

const (
	// PropagateFailure returns the error to the caller.
	PropagateFailure FailurePolicy = iota
	// SwallowFailure replaces the error with an empty result.
	SwallowFailure
)

// getUserLoans reverts for some wallets on the deployed DFI protocols
// contract, so an empty list is served instead.
var failurePolicies = map[string]FailurePolicy{
	methodGetUserLoans: SwallowFailure,
}

// PolicyFor returns the failure policy of a contract method.
func PolicyFor(method string) FailurePolicy {
	return failurePolicies[method]
}

func (p FailurePolicy) String() string {
	switch p {
	case PropagateFailure:
		return "propagate"
	case SwallowFailure:
		return "swallow"
	default:
		return "unknown"
	}
}
