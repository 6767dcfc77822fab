// Package ed25519bip32 implements the Cardano Icarus master-key rule and
// CIP-1852 (BIP32-Ed25519 / Khovratovich-Law) child derivation. It is the
// one tree in this module keyed off BIP39 entropy rather than the BIP39
// seed (spec.md §4.8, §9).
package ed25519bip32

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/pbkdf2"

	"github.com/scypher/scypher-core/internal/errs"
	"github.com/scypher/scypher-core/internal/hdkey"
	"github.com/scypher/scypher-core/internal/secutil"
)

const (
	icarusIterations = 4096
	icarusKeyLen     = 96
)

// ExtendedKey is a 64-byte Ed25519-BIP32 scalar pair (kL, kR) plus a
// 32-byte chain code (spec.md §3).
type ExtendedKey struct {
	kl, kr, chainCode [32]byte
}

// MasterFromEntropy derives the Icarus root extended key: PBKDF2-HMAC-SHA512
// over the BIP39 entropy (never the seed) with the passphrase as salt,
// 4096 iterations, 96-byte output, then the Ed25519-BIP32 clamp (spec.md
// §4.8, §6).
func MasterFromEntropy(entropy []byte, passphrase string) *ExtendedKey {
	out := pbkdf2.Key(entropy, []byte(passphrase), icarusIterations, icarusKeyLen, sha512.New)
	defer secutil.Zero(out)

	var k ExtendedKey
	copy(k.kl[:], out[0:32])
	copy(k.kr[:], out[32:64])
	copy(k.chainCode[:], out[64:96])
	clamp(&k.kl)
	return &k
}

// clamp applies the Ed25519-BIP32 "force-3rd-highest-bit" rule: clear the
// bottom 3 bits of byte 0, clear bit 7 and set bit 6 of byte 31.
func clamp(kl *[32]byte) {
	kl[0] &= 0b1111_1000
	kl[31] &= 0b0011_1111
	kl[31] |= 0b0100_0000
}

// PublicKey derives the 32-byte raw Ed25519 public key for this extended
// key: kL (zero-extended to 64 bytes and reduced mod the group order, since
// BIP32-Ed25519 deliberately keeps kL outside the canonical scalar range)
// times the Ed25519 base point.
func (k *ExtendedKey) PublicKey() ([]byte, error) {
	var wide [64]byte
	copy(wide[:32], k.kl[:])

	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return nil, errs.ErrCurveError
	}
	p := new(edwards25519.Point).ScalarBaseMult(s)
	return p.Bytes(), nil
}

// Derive walks an Ed25519-BIP32 path from this extended key.
func (k *ExtendedKey) Derive(path hdkey.Path) (*ExtendedKey, error) {
	cur := k
	for _, idx := range path {
		next, err := cur.deriveChild(idx)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func leIndex(index uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], index)
	return b[:]
}

func (k *ExtendedKey) deriveChild(index uint32) (*ExtendedKey, error) {
	var zMsg, iMsg []byte

	if index >= hdkey.HardenedOffset {
		body := make([]byte, 0, 1+64+4)
		body = append(body, k.kl[:]...)
		body = append(body, k.kr[:]...)
		body = append(body, leIndex(index)...)

		zMsg = append([]byte{0x00}, body...)
		iMsg = append([]byte{0x01}, body...)
	} else {
		pub, err := k.PublicKey()
		if err != nil {
			return nil, err
		}
		body := make([]byte, 0, 1+32+4)
		body = append(body, pub...)
		body = append(body, leIndex(index)...)

		zMsg = append([]byte{0x02}, body...)
		iMsg = append([]byte{0x03}, body...)
	}

	z := hmacSHA512(k.chainCode[:], zMsg)
	i := hmacSHA512(k.chainCode[:], iMsg)

	var zl [28]byte
	copy(zl[:], z[0:28])
	var zr [32]byte
	copy(zr[:], z[32:64])

	var child ExtendedKey
	child.kl = addMod256(k.kl, shiftLeft3(zl))
	child.kr = addMod256(k.kr, zr)
	copy(child.chainCode[:], i[32:64])

	return &child, nil
}

func hmacSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
