package chains

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"
)

const tronPrefix byte = 0x41

// Tron encodes a TRON address: uncompressed pub -> Keccak256 -> last 20
// bytes -> prepend 0x41 -> Base58Check, grounded directly on
// not-for-prod-crypto's GenerateTronAddress (spec.md §4.6).
func Tron(pub *btcec.PublicKey) (address, variant string, err error) {
	uncompressed := pub.SerializeUncompressed()[1:]
	hash := crypto.Keccak256(uncompressed)
	tail := hash[len(hash)-20:]
	return base58.CheckEncode(tail, tronPrefix), "Base58Check", nil
}
