// Package chains holds one file per supported network's address encoder.
// Each encoder takes a derived secp256k1 (or Ed25519) public key and
// produces the wire address string; none of them touch private key
// material once the derived key has been obtained (spec.md §4.6).
package chains

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	btcP2PKHVersion byte = 0x00
	btcP2SHVersion  byte = 0x05
)

// BitcoinLegacy encodes a BTC P2PKH address (version 0x00), per spec.md
// §4.6: Base58Check(version || Hash160(compressed_pub)).
func BitcoinLegacy(pub *btcec.PublicKey) (address, variant string, err error) {
	hash := btcutil.Hash160(pub.SerializeCompressed())
	return base58.CheckEncode(hash, btcP2PKHVersion), "P2PKH", nil
}
