// Package config holds the typed, Viper-backed configuration surface: KDF
// defaults and the per-chain NetworkConfig list that internal/derive
// dispatches over.
package config

// ChainID is a closed tagged identifier for every supported network. It
// replaces duck-typed network dispatch with an exhaustive enum so unknown
// identifiers are rejected at the boundary rather than silently ignored.
type ChainID string

const (
	ChainBitcoin  ChainID = "bitcoin"
	ChainEthereum ChainID = "ethereum"
	ChainBSC      ChainID = "bsc"
	ChainPolygon  ChainID = "polygon"
	ChainLitecoin ChainID = "litecoin"
	ChainDogecoin ChainID = "dogecoin"
	ChainTron     ChainID = "tron"
	ChainErgo     ChainID = "ergo"
	ChainCardano  ChainID = "cardano"
	ChainSolana   ChainID = "solana"
)

// KnownChains lists every ChainID the dispatch table serves, in no
// particular order; it exists for validation and CLI flag completion.
var KnownChains = [...]ChainID{
	ChainBitcoin, ChainEthereum, ChainBSC, ChainPolygon, ChainLitecoin,
	ChainDogecoin, ChainTron, ChainErgo, ChainCardano, ChainSolana,
}

// NetworkConfig is one caller-requested chain derivation: how many
// addresses, and whether the BIP39 passphrase participates in this
// chain's key material (only meaningful for Cardano and Solana).
type NetworkConfig struct {
	Chain         ChainID
	Count         int
	UsePassphrase bool
}
