// Package registry holds the static Twindex deployment tables: contract
// addresses, token addresses, liquidity pairs and FairLaunch pool ids.
//
// A Registry is built once and never mutated; accessors hand out copies so
// callers cannot change the shared tables.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Token symbols with a special role in routing and pool naming.
const (
	// DOLLY is the reference stablecoin every price is expressed in.
	DOLLY = "DOLLY"
	// DOP is the protocol token used as the second pairing asset.
	DOP = "DOP"
	// TWIN is the reward token of FairLaunch.
	TWIN = "TWIN"
)

// Contracts holds the addresses of the protocol singletons.
type Contracts struct {
	Router       common.Address
	FairLaunch   common.Address
	PriceFeeds   common.Address
	DFIProtocols common.Address
	DollyOracle  common.Address
}

// Pair is a liquidity pair known to the registry together with its
// FairLaunch pool id.
type Pair struct {
	Name    string
	Symbol  string
	Pairing string
	Address common.Address
	PoolID  uint64
}

// Registry is an immutable set of deployment tables.
type Registry struct {
	contracts  Contracts
	tokens     map[string]common.Address
	dollyPairs map[string]common.Address
	dopPairs   map[string]common.Address
	poolIDs    map[string]uint64

	// inverted pair tables, nil when the table maps ambiguously.
	dollyBySymbol map[common.Address]string
	dopBySymbol   map[common.Address]string
}

// Tables is the raw configuration a Registry is built from.
type Tables struct {
	Contracts  Contracts
	Tokens     map[string]common.Address
	DollyPairs map[string]common.Address
	DopPairs   map[string]common.Address
	PoolIDs    map[string]uint64
}

// New builds a Registry from tables. The maps are copied.
func New(t Tables) *Registry {
	r := &Registry{
		contracts:  t.Contracts,
		tokens:     copyAddrs(t.Tokens),
		dollyPairs: copyAddrs(t.DollyPairs),
		dopPairs:   copyAddrs(t.DopPairs),
		poolIDs:    make(map[string]uint64, len(t.PoolIDs)),
	}
	for k, v := range t.PoolIDs {
		r.poolIDs[k] = v
	}

	if flipped, ok := Flip(r.dollyPairs); ok {
		r.dollyBySymbol = flipped
	}
	if flipped, ok := Flip(r.dopPairs); ok {
		r.dopBySymbol = flipped
	}

	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the BNB Smart Chain deployment. It panics if the static
// tables violate the pair/pool invariants.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := New(bscTables())
		if err := r.Validate(); err != nil {
			panic(fmt.Sprintf("registry: invalid static tables: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Contracts returns the protocol contract addresses.
func (r *Registry) Contracts() Contracts {
	return r.contracts
}

// Token returns the address of a token symbol.
func (r *Registry) Token(symbol string) (common.Address, bool) {
	a, ok := r.tokens[symbol]
	return a, ok
}

// Tokens returns a copy of the token table.
func (r *Registry) Tokens() map[string]common.Address {
	return copyAddrs(r.tokens)
}

// DollyPair returns the SYMBOL/DOLLY pair address.
func (r *Registry) DollyPair(symbol string) (common.Address, bool) {
	a, ok := r.dollyPairs[symbol]
	return a, ok
}

// DopPair returns the SYMBOL/DOP pair address.
func (r *Registry) DopPair(symbol string) (common.Address, bool) {
	a, ok := r.dopPairs[symbol]
	return a, ok
}

// PoolID returns the FairLaunch pool id registered under name, e.g. "TSLA_DOLLY".
func (r *Registry) PoolID(name string) (uint64, bool) {
	id, ok := r.poolIDs[name]
	return id, ok
}

// Pairs lists every pair with a resolvable pool id, ordered by pool id.
func (r *Registry) Pairs() []Pair {
	pairs := make([]Pair, 0, len(r.dollyPairs)+len(r.dopPairs))
	collect := func(table map[string]common.Address, pairing string) {
		for symbol, addr := range table {
			name, id, ok := r.lookupPool(symbol, pairing)
			if !ok {
				continue
			}
			pairs = append(pairs, Pair{
				Name:    name,
				Symbol:  symbol,
				Pairing: pairing,
				Address: addr,
				PoolID:  id,
			})
		}
	}
	collect(r.dollyPairs, DOLLY)
	collect(r.dopPairs, DOP)

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].PoolID < pairs[j].PoolID })
	return pairs
}

// Validate checks that every pair has exactly one pool id and that pool ids
// are unique.
func (r *Registry) Validate() error {
	seen := make(map[uint64]string, len(r.poolIDs))
	for name, id := range r.poolIDs {
		if other, dup := seen[id]; dup {
			return errors.Errorf("pool id %d used by %s and %s", id, other, name)
		}
		seen[id] = name
	}

	check := func(table map[string]common.Address, pairing string) error {
		if _, ok := Flip(table); !ok {
			return errors.Errorf("%s pair table maps an address twice", pairing)
		}
		for symbol := range table {
			_, direct := r.poolIDs[PairKey(symbol, pairing)]
			_, reversed := r.poolIDs[PairKey(pairing, symbol)]
			if direct == reversed {
				return errors.Errorf("pair %s/%s must have exactly one pool id", symbol, pairing)
			}
		}
		return nil
	}
	if err := check(r.dollyPairs, DOLLY); err != nil {
		return err
	}
	return check(r.dopPairs, DOP)
}

func (r *Registry) lookupPool(symbol, pairing string) (string, uint64, bool) {
	name := PairKey(symbol, pairing)
	if id, ok := r.poolIDs[name]; ok {
		return name, id, true
	}
	name = PairKey(pairing, symbol)
	if id, ok := r.poolIDs[name]; ok {
		return name, id, true
	}
	return "", 0, false
}

// PairKey builds the pool-id table key for a pair, e.g. PairKey("TSLA", "DOLLY") == "TSLA_DOLLY".
func PairKey(first, second string) string {
	return strings.ToUpper(first) + "_" + strings.ToUpper(second)
}

// Flip inverts a symbol → address table. It reports false when two symbols
// share an address, since the inverse would be ambiguous.
func Flip(m map[string]common.Address) (map[common.Address]string, bool) {
	out := make(map[common.Address]string, len(m))
	for k, v := range m {
		if _, dup := out[v]; dup {
			return nil, false
		}
		out[v] = k
	}
	return out, true
}

func copyAddrs(m map[string]common.Address) map[string]common.Address {
	out := make(map[string]common.Address, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
