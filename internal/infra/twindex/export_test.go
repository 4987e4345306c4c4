package twindex

import "testing"

var NewClientWithCaller = newClientWithCaller

// ABI JSON by contract, for packing fake call results in tests.
var ABIs = map[string]string{
	"pair":          pairABIJSON,
	"twin":          twinABIJSON,
	"fairlaunch":    fairLaunchABIJSON,
	"router":        routerABIJSON,
	"price feeds":   priceFeedsABIJSON,
	"oracle":        oracleABIJSON,
	"dfi protocols": dfiProtocolsABIJSON,
}

// SetFailurePolicy overrides the policy of method until the test ends. Tests
// calling it must not run in parallel.
func SetFailurePolicy(t *testing.T, method string, p FailurePolicy) {
	prev, had := failurePolicies[method]
	failurePolicies[method] = p
	t.Cleanup(func() {
		if had {
			failurePolicies[method] = prev
			return
		}
		delete(failurePolicies, method)
	})
}
