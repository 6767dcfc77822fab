package chains

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// EVM encodes the shared Ethereum/BSC/Polygon address: Keccak256 over the
// uncompressed public key (sans the 0x04 prefix), last 20 bytes, rendered
// as EIP-55 mixed-case checksummed 0x-hex via common.Address.Hex(), the
// same checksum the teacher's hdwallet.go gets from address.Hex() after
// crypto.PubkeyToAddress (spec.md §4.6).
func EVM(pub *btcec.PublicKey) (address, variant string, err error) {
	uncompressed := pub.SerializeUncompressed()[1:] // drop the 0x04 prefix
	hash := crypto.Keccak256(uncompressed)
	addr := hash[len(hash)-20:]
	return common.BytesToAddress(addr).Hex(), "EOA", nil
}
