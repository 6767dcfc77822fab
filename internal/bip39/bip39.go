// Package bip39 owns the English word list and the phrase<->entropy codec.
// Word/checksum math is delegated to tyler-smith/go-bip39, the same
// library the teacher wallet already depended on; this package adds the
// normalization pass and the typed error taxonomy spec.md §4.1 requires.
package bip39

import (
	"crypto/rand"
	"strings"

	tylerbip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"

	"github.com/scypher/scypher-core/internal/errs"
)

// ValidWordCounts enumerates the BIP39 word counts this codec accepts.
var ValidWordCounts = [5]int{12, 15, 18, 21, 24}

func entropyBitsForWordCount(words int) (int, bool) {
	switch words {
	case 12:
		return 128, true
	case 15:
		return 160, true
	case 18:
		return 192, true
	case 21:
		return 224, true
	case 24:
		return 256, true
	default:
		return 0, false
	}
}

// Normalize trims, lowercases, and whitespace-collapses phrase, then
// applies NFKD normalization per spec.md §4.1. PhraseToEntropy (and so
// Validate) applies it to its input and rejects input that is non-ASCII
// after normalization.
func Normalize(phrase string) string {
	trimmed := strings.TrimSpace(phrase)
	fields := strings.Fields(trimmed)
	joined := strings.ToLower(strings.Join(fields, " "))
	return norm.NFKD.String(joined)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}

// PhraseToEntropy normalizes a BIP39 phrase and decodes it into its entropy
// bytes and word count. Fails with ErrInvalidPhrase, ErrInvalidWordCount,
// UnknownWordError, or ErrBadChecksum.
func PhraseToEntropy(phrase string) ([]byte, int, error) {
	normalized := Normalize(phrase)
	if !isASCII(normalized) {
		return nil, 0, errs.ErrInvalidPhrase
	}

	words := strings.Fields(normalized)
	wordCount := len(words)
	if _, ok := entropyBitsForWordCount(wordCount); !ok {
		return nil, 0, errs.ErrInvalidWordCount
	}

	for i, w := range words {
		if _, ok := tylerbip39.GetWordIndex(w); !ok {
			return nil, 0, &errs.UnknownWordError{Word: w, Position: i}
		}
	}

	entropy, err := tylerbip39.EntropyFromMnemonic(normalized)
	if err != nil {
		return nil, 0, errs.ErrBadChecksum
	}

	return entropy, wordCount, nil
}

// EntropyToPhrase encodes entropy (16, 20, 24, 28, or 32 bytes) into its
// BIP39 phrase. Infallible for valid entropy lengths, per spec.md §4.1.
func EntropyToPhrase(entropy []byte) (string, error) {
	switch len(entropy) {
	case 16, 20, 24, 28, 32:
	default:
		return "", errs.ErrInvalidWordCount
	}
	return tylerbip39.NewMnemonic(entropy)
}

// ValidationStatus is the result of Validate, mirroring spec.md §6's
// `{valid, status, message}` wire shape.
type ValidationStatus struct {
	Valid   bool
	Status  string
	Message string
}

// Validate gates a candidate phrase for collaborators.
func Validate(phrase string) ValidationStatus {
	_, _, err := PhraseToEntropy(phrase)
	if err == nil {
		return ValidationStatus{Valid: true, Status: "ok", Message: "valid BIP39 phrase"}
	}
	return ValidationStatus{Valid: false, Status: "invalid", Message: err.Error()}
}

// Generate samples fresh entropy from the OS RNG and encodes it into a
// phrase of the requested word count.
func Generate(wordCount int) (string, error) {
	bits, ok := entropyBitsForWordCount(wordCount)
	if !ok {
		return "", errs.ErrInvalidWordCount
	}
	entropy := make([]byte, bits/8)
	if _, err := rand.Read(entropy); err != nil {
		return "", errs.ErrKdfError
	}
	return EntropyToPhrase(entropy)
}
