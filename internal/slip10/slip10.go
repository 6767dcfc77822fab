// Package slip10 implements the SLIP-0010 Ed25519 key tree used by Solana:
// hardened-only derivation from an HMAC-SHA512 master node. Grounded on
// anyproto's go-slip10 derive.go (spec.md §4.9, §9).
package slip10

import (
	"bytes"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"github.com/scypher/scypher-core/internal/errs"
	"github.com/scypher/scypher-core/internal/hdkey"
)

const seedModifier = "ed25519 seed"

// Node is a SLIP-10 Ed25519 extended key: a 32-byte key seed plus a
// 32-byte chain code.
type Node struct {
	key       [32]byte
	chainCode [32]byte
}

// NewMasterNode derives the SLIP-10 root node from a BIP39 seed.
func NewMasterNode(seed []byte) *Node {
	sum := hmacSHA512([]byte(seedModifier), seed)
	var n Node
	copy(n.key[:], sum[:32])
	copy(n.chainCode[:], sum[32:])
	return &n
}

// Derive walks a hardened-only path from this node. Ed25519 SLIP-10 has no
// public (non-hardened) derivation rule, so any soft component fails with
// ErrUnsupportedDerivation (spec.md §4.9).
func (n *Node) Derive(path hdkey.Path) (*Node, error) {
	cur := n
	for _, idx := range path {
		if idx < hdkey.HardenedOffset {
			return nil, errs.ErrUnsupportedDerivation
		}

		var iBytes [4]byte
		binary.BigEndian.PutUint32(iBytes[:], idx)

		data := make([]byte, 0, 1+32+4)
		data = append(data, 0x00)
		data = append(data, cur.key[:]...)
		data = append(data, iBytes[:]...)

		sum := hmacSHA512(cur.chainCode[:], data)

		var next Node
		copy(next.key[:], sum[:32])
		copy(next.chainCode[:], sum[32:])
		cur = &next
	}
	return cur, nil
}

// PublicKey returns the 32-byte raw Ed25519 public key for this node.
func (n *Node) PublicKey() ed25519.PublicKey {
	reader := bytes.NewReader(n.key[:])
	pub, _, err := ed25519.GenerateKey(reader)
	if err != nil {
		// key is always exactly 32 bytes, so GenerateKey cannot fail here.
		panic(err)
	}
	return pub
}

func hmacSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
