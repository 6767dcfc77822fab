// Package derive implements the closed chain dispatch table: for each
// requested network it builds the chain-specific key tree once, derives
// count addresses, and assembles the ordered AddressSet (spec.md §4.10,
// §9 "duck-typed network dispatch" redesign).
package derive

import (
	"sync"

	"github.com/scypher/scypher-core/internal/bip39"
	"github.com/scypher/scypher-core/internal/config"
	"github.com/scypher/scypher-core/internal/errs"
	"github.com/scypher/scypher-core/internal/hdkey"
	"github.com/scypher/scypher-core/internal/secutil"
)

// AddressRecord is one derived, immutable address (spec.md §3/§6 wire
// shape).
type AddressRecord struct {
	Chain   config.ChainID
	Variant string
	Path    string
	Address string
}

// AddressSet holds one AddressRecord slice per requested chain. It
// preserves two orderings spec.md §5 requires: within a chain's slice,
// ascending derivation index (Bitcoin's slice holds its variants one after
// another — Legacy, Nested SegWit, Native SegWit — each ascending by
// index); across chains, the caller's input order —
// a bare Go map cannot honor the latter, since map iteration order is
// unspecified.
type AddressSet struct {
	order   []config.ChainID
	records map[config.ChainID][]AddressRecord
}

func newAddressSet() AddressSet {
	return AddressSet{records: make(map[config.ChainID][]AddressRecord)}
}

func (s *AddressSet) put(chain config.ChainID, records []AddressRecord) {
	if _, exists := s.records[chain]; !exists {
		s.order = append(s.order, chain)
	}
	s.records[chain] = records
}

// Get returns chain's derived records in ascending index order (for
// Bitcoin, grouped by variant, each group ascending), and whether chain
// was present in the set.
func (s AddressSet) Get(chain config.ChainID) ([]AddressRecord, bool) {
	records, ok := s.records[chain]
	return records, ok
}

// Chains returns every chain present, in the order Derive's caller
// requested them.
func (s AddressSet) Chains() []config.ChainID {
	return append([]config.ChainID(nil), s.order...)
}

// decodedInput bundles everything a chainRoutine might need. Cardano
// pulls from Entropy and Passphrase directly (its master is entropy-keyed,
// not seed-keyed); every other chain pulls from Seed. Carrying both
// instead of forcing one key type on every routine preserves the
// Cardano/secp256k1 asymmetry spec.md §9 calls out explicitly.
type decodedInput struct {
	entropy    []byte
	seed       []byte
	passphrase string
}

// chainRoutine derives count addresses for one chain from in.
type chainRoutine func(in *decodedInput, count int) ([]AddressRecord, error)

var routines = map[config.ChainID]chainRoutine{
	config.ChainBitcoin:  deriveBitcoin,
	config.ChainEthereum: deriveEVM(config.ChainEthereum),
	config.ChainBSC:      deriveEVM(config.ChainBSC),
	config.ChainPolygon:  deriveEVM(config.ChainPolygon),
	config.ChainLitecoin: deriveLitecoin,
	config.ChainDogecoin: deriveDogecoin,
	config.ChainTron:     deriveTron,
	config.ChainErgo:     deriveErgo,
	config.ChainCardano:  deriveCardano,
	config.ChainSolana:   deriveSolana,
}

// Derive is the spec's `derive(phrase, passphrase?, chains[], count_per_chain)`
// entry point. It decodes the phrase once, dispatches every requested
// chain (in the caller's order, parallelized internally), and returns a
// partial AddressSet plus the list of chain-level failures — a single
// chain's failure never aborts the others.
func Derive(phrase, passphrase string, networks []config.NetworkConfig) (AddressSet, []error) {
	entropy, _, err := bip39.PhraseToEntropy(phrase)
	if err != nil {
		return newAddressSet(), []error{err}
	}
	defer secutil.Zero(entropy)

	seed := hdkey.Seed(phrase, passphrase)
	defer secutil.Zero(seed)

	var seedNoPass []byte
	if passphrase != "" {
		seedNoPass = hdkey.Seed(phrase, "")
		defer secutil.Zero(seedNoPass)
	} else {
		seedNoPass = seed
	}

	results := make([][]AddressRecord, len(networks))
	chainErrs := make([]error, len(networks))

	var wg sync.WaitGroup
	for i, nc := range networks {
		wg.Add(1)
		go func(i int, nc config.NetworkConfig) {
			defer wg.Done()
			routine, ok := routines[nc.Chain]
			if !ok {
				chainErrs[i] = &errs.ChainError{Chain: string(nc.Chain), Err: errs.ErrInvalidNetwork}
				return
			}
			count := nc.Count
			if count <= 0 || count > 100 {
				chainErrs[i] = &errs.ChainError{Chain: string(nc.Chain), Err: errs.ErrOutOfRange}
				return
			}

			chainInput := &decodedInput{entropy: entropy, seed: seed, passphrase: passphrase}
			if !nc.UsePassphrase && (nc.Chain == config.ChainCardano || nc.Chain == config.ChainSolana) {
				chainInput = &decodedInput{entropy: entropy, seed: seedNoPass, passphrase: ""}
			}
			records, err := routine(chainInput, count)
			if err != nil {
				chainErrs[i] = &errs.ChainError{Chain: string(nc.Chain), Err: err}
				return
			}
			results[i] = records
		}(i, nc)
	}
	wg.Wait()

	set := newAddressSet()
	var failures []error
	for i, nc := range networks {
		if chainErrs[i] != nil {
			failures = append(failures, chainErrs[i])
			continue
		}
		set.put(nc.Chain, results[i])
	}
	return set, failures
}
