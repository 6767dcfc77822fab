// Package keystream derives the deterministic, password-keyed Argon2id
// keystream that SCypher XORs over BIP39 entropy. The parameter set and
// salt construction are specification constants (spec.md §4.2, §6):
// they are never random, because the transform must be reversible by
// re-deriving the same keystream from the same password.
package keystream

import (
	"encoding/binary"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    uint32 = 5
	argonMemory  uint32 = 131072 // 128 MiB, in KiB
	argonThreads uint8  = 1

	saltDomain = "scypher-keystream-v1"
)

// salt builds the fixed, documented Argon2id salt for a given word count.
// Incorporating the word count keeps differing-length entropies from
// aliasing onto the same keystream prefix.
func salt(wordCount int) []byte {
	s := make([]byte, 0, len(saltDomain)+2)
	s = append(s, []byte(saltDomain)...)
	var wc [2]byte
	binary.BigEndian.PutUint16(wc[:], uint16(wordCount))
	s = append(s, wc[:]...)
	return s
}

// Derive produces a `length`-byte keystream from password and wordCount.
// Deterministic: the same (password, length, wordCount) always yields the
// same bytes.
func Derive(password []byte, length, wordCount int) []byte {
	return argon2.IDKey(password, salt(wordCount), argonTime, argonMemory, argonThreads, uint32(length))
}
