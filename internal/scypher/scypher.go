// Package scypher composes the BIP39 codec and the keystream engine into
// the reversible seed transform: entropy XOR Argon2id(password) re-encoded
// back into a valid BIP39 phrase. Applying Transform twice with the same
// password returns the original phrase (spec.md §3, §4.3, §8).
package scypher

import (
	"github.com/scypher/scypher-core/internal/bip39"
	"github.com/scypher/scypher-core/internal/keystream"
	"github.com/scypher/scypher-core/internal/secutil"
)

// Transform decodes phrase, XORs its entropy against a keystream derived
// from password, and re-encodes the result into a new, checksum-valid
// phrase of the same word count.
func Transform(phrase, password string) (string, error) {
	entropy, wordCount, err := bip39.PhraseToEntropy(phrase)
	if err != nil {
		return "", err
	}
	defer secutil.Zero(entropy)

	ks := keystream.Derive([]byte(password), len(entropy), wordCount)
	defer secutil.Zero(ks)

	transformed := make([]byte, len(entropy))
	for i := range entropy {
		transformed[i] = entropy[i] ^ ks[i]
	}
	defer secutil.Zero(transformed)

	return bip39.EntropyToPhrase(transformed)
}
