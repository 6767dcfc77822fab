package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zeroPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestGenerateThenValidate(t *testing.T) {
	phrase, err := Generate(12)
	require.NoError(t, err)

	status := Validate(phrase)
	assert.True(t, status.Valid)
}

func TestTransformRoundTrip(t *testing.T) {
	once, err := Transform(zeroPhrase, "correct horse battery staple")
	require.NoError(t, err)

	twice, err := Transform(once, "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, zeroPhrase, twice)
}

func TestDeriveReturnsRequestedChain(t *testing.T) {
	set, failures := Derive(zeroPhrase, "", []NetworkConfig{
		{Chain: ChainID("bitcoin"), Count: 1, UsePassphrase: true},
	})
	require.Empty(t, failures)
	records, ok := set.Get(ChainID("bitcoin"))
	require.True(t, ok)
	assert.NotEmpty(t, records)
}
