package registry

import "github.com/ethereum/go-ethereum/common"

// PoolIDFromPairAddress returns the FairLaunch pool id staking the given pair.
//
// The DOLLY table is consulted first, so an address present in both tables
// resolves through its DOLLY entry. DOP pairs are registered under either
// SYMBOL_DOP or DOP_SYMBOL and both spellings are tried.
func (r *Registry) PoolIDFromPairAddress(pair common.Address) (uint64, bool) {
	if symbol, ok := r.dollyBySymbol[pair]; ok {
		if id, ok := r.poolIDs[PairKey(symbol, DOLLY)]; ok {
			return id, true
		}
	}

	if symbol, ok := r.dopBySymbol[pair]; ok {
		if id, ok := r.poolIDs[PairKey(symbol, DOP)]; ok {
			return id, true
		}
		if id, ok := r.poolIDs[PairKey(DOP, symbol)]; ok {
			return id, true
		}
	}

	return 0, false
}
