package chains

import "github.com/btcsuite/btcd/btcutil/base58"

// Solana encodes a Solana address: Base58 of the raw 32-byte Ed25519
// public key, no checksum (spec.md §4.9).
func Solana(pub []byte) (address, variant string, err error) {
	return base58.Encode(pub), "Ed25519", nil
}
