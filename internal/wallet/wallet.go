// Package wallet is the public facade collaborators import: Validate,
// Generate, Transform, Derive, matching spec.md §6's external interface
// exactly. It has no knowledge of Cobra, Viper, or Zap — those live in
// cmd/scypher and internal/config/internal/obslog.
package wallet

import (
	"github.com/scypher/scypher-core/internal/bip39"
	"github.com/scypher/scypher-core/internal/config"
	"github.com/scypher/scypher-core/internal/derive"
	"github.com/scypher/scypher-core/internal/scypher"
)

// ValidationStatus mirrors spec.md §6's `{valid, status, message}`.
type ValidationStatus = bip39.ValidationStatus

// AddressRecord mirrors spec.md §6's address-record wire shape.
type AddressRecord = derive.AddressRecord

// AddressSet mirrors spec.md §6's chain -> ordered records mapping,
// preserving the caller's chain order as well as each chain's index order.
type AddressSet = derive.AddressSet

// NetworkConfig is one caller-requested chain derivation (spec.md §3/§8
// scenario 5, "network_configs").
type NetworkConfig = config.NetworkConfig

// ChainID re-exports the closed chain identifier enum.
type ChainID = config.ChainID

// Validate gates a candidate phrase for collaborators.
func Validate(phrase string) ValidationStatus {
	return bip39.Validate(phrase)
}

// Generate samples fresh entropy and encodes it into a phrase of
// wordCount words.
func Generate(wordCount int) (string, error) {
	return bip39.Generate(wordCount)
}

// Transform runs the SCypher involution: transform(transform(phrase,
// password), password) == phrase for all valid (phrase, password).
func Transform(phrase, password string) (string, error) {
	return scypher.Transform(phrase, password)
}

// Derive builds the requested chains' key trees from phrase (and the
// optional passphrase) and returns the resulting AddressSet plus any
// per-chain failures. A single chain's failure never aborts the others.
func Derive(phrase, passphrase string, networks []NetworkConfig) (AddressSet, []error) {
	return derive.Derive(phrase, passphrase, networks)
}
