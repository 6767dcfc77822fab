// Package hdkey derives the BIP39 seed and walks the secp256k1 BIP32 tree
// used by every chain in this module except Cardano (entropy-keyed, see
// internal/ed25519bip32) and Solana (its own Ed25519 tree, see
// internal/slip10).
package hdkey

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const seedIterations = 2048

// Seed implements PBKDF2-HMAC-SHA512(phrase-NFKD, "mnemonic"||passphrase-NFKD,
// 2048 iters), per spec.md §3/§4.4. Never used for Cardano.
func Seed(phrase, passphrase string) []byte {
	normalizedPhrase := norm.NFKD.String(phrase)
	normalizedPass := norm.NFKD.String(passphrase)
	salt := "mnemonic" + normalizedPass
	return pbkdf2.Key([]byte(normalizedPhrase), []byte(salt), seedIterations, 64, sha512.New)
}
