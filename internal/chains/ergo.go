package chains

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	ergoNetworkPrefixMainnet byte = 0x00
	ergoAddressTypeP2PK      byte = 0x01
)

// Ergo encodes an Ergo P2PK mainnet address: a single header byte (network
// prefix | address type) followed by the raw compressed public key, with a
// 4-byte Blake2b-256 checksum appended before Base58 encoding — Ergo's own
// checksum scheme, not Bitcoin's double-SHA256 Base58Check (spec.md §4.7).
func Ergo(pub *btcec.PublicKey) (address, variant string, err error) {
	content := make([]byte, 0, 1+33)
	content = append(content, ergoNetworkPrefixMainnet|ergoAddressTypeP2PK)
	content = append(content, pub.SerializeCompressed()...)

	checksum := blake2b.Sum256(content)

	payload := make([]byte, 0, len(content)+4)
	payload = append(payload, content...)
	payload = append(payload, checksum[:4]...)

	return base58.Encode(payload), "P2PK", nil
}
