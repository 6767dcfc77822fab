package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scypher/scypher-core/internal/bip39"
	"github.com/scypher/scypher-core/internal/config"
)

const zeroPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func networksFor(chain config.ChainID, count int) []config.NetworkConfig {
	return []config.NetworkConfig{{Chain: chain, Count: count, UsePassphrase: true}}
}

func TestReferenceVectorsAtZeroPhrase(t *testing.T) {
	cases := []struct {
		chain   config.ChainID
		variant string
		address string
	}{
		{config.ChainBitcoin, "P2PKH", "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA"},
		{config.ChainBitcoin, "P2WPKH", "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu"},
		{config.ChainBitcoin, "P2SH-P2WPKH", "37VucYSaXLCAsxYyAPfbSi9eh4iEcbShgf"},
		{config.ChainEthereum, "EOA", "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"},
		{config.ChainBSC, "EOA", "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"},
		{config.ChainPolygon, "EOA", "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"},
		{config.ChainDogecoin, "P2PKH", "DBus3bamQjgJULBJtYXpEzDWQRwF5iwxgC"},
		{config.ChainLitecoin, "P2PKH", "LUWPbpM43E2p7ZSh8cyTBEkvpHmr3cB8Ez"},
		{config.ChainTron, "Base58Check", "TUEZSdKsoDHQMeZwihtdoBiN46zxhGWYdH"},
		{config.ChainCardano, "Shelley", "addr1qy8ac7qqy0vtulyl7wntmsxc6wex80gvcyjy33qffrhm7sh927ysx5sftuw0dlft05dz3c7revpf7jx0xnlcjz3g69mq4afdhv"},
		{config.ChainSolana, "Ed25519", "HAgk14JpMQLgt6rVgv7cBQFJWFto5Dqxi472uT3DKpqk"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.chain)+"/"+tc.variant, func(t *testing.T) {
			set, failures := Derive(zeroPhrase, "", networksFor(tc.chain, 1))
			require.Empty(t, failures)

			records, ok := set.Get(tc.chain)
			require.True(t, ok)
			require.NotEmpty(t, records)

			var found *AddressRecord
			for i := range records {
				if records[i].Variant == tc.variant {
					found = &records[i]
					break
				}
			}
			require.NotNilf(t, found, "no record with variant %s for chain %s", tc.variant, tc.chain)
			assert.Equal(t, tc.address, found.Address)
		})
	}
}

func TestErgoReferenceVectors(t *testing.T) {
	set, failures := Derive(zeroPhrase, "", networksFor(config.ChainErgo, 1))
	require.Empty(t, failures)
	records, ok := set.Get(config.ChainErgo)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "9fv2n41gttbUx8oqqhexi68qPfoETFPxnLEEbTfaTk4SmY2knYC", records[0].Address)

	set, failures = Derive(zeroPhrase, "test", networksFor(config.ChainErgo, 1))
	require.Empty(t, failures)
	records, ok = set.Get(config.ChainErgo)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "9hqHAeSrCtq8p5WP8tPokBBeiC1uh6Vp42eRwvoNfaQYT1kaa6X", records[0].Address)
}

func TestCrossChainDeterminism(t *testing.T) {
	// derive is deterministic in (phrase, passphrase, chain, index) for every
	// chain and a second, independently generated phrase (spec.md §8).
	phrase, err := bip39.Generate(12)
	require.NoError(t, err)

	networks := make([]config.NetworkConfig, 0, len(config.KnownChains))
	for _, chain := range config.KnownChains {
		networks = append(networks, config.NetworkConfig{Chain: chain, Count: 1, UsePassphrase: true})
	}

	a, failuresA := Derive(phrase, "", networks)
	require.Empty(t, failuresA)
	b, failuresB := Derive(phrase, "", networks)
	require.Empty(t, failuresB)

	for _, chain := range config.KnownChains {
		aRecords, ok := a.Get(chain)
		require.True(t, ok)
		bRecords, ok := b.Get(chain)
		require.True(t, ok)
		assert.Equal(t, aRecords, bRecords)
	}
}

func TestPartialFailureIsolatesUnknownChain(t *testing.T) {
	networks := []config.NetworkConfig{
		{Chain: config.ChainBitcoin, Count: 1, UsePassphrase: true},
		{Chain: "unknownchain", Count: 1, UsePassphrase: true},
		{Chain: config.ChainEthereum, Count: 1, UsePassphrase: true},
	}

	set, failures := Derive(zeroPhrase, "", networks)
	assert.Len(t, failures, 1)
	btcRecords, ok := set.Get(config.ChainBitcoin)
	assert.True(t, ok)
	assert.NotEmpty(t, btcRecords)
	ethRecords, ok := set.Get(config.ChainEthereum)
	assert.True(t, ok)
	assert.NotEmpty(t, ethRecords)
	_, hasUnknown := set.Get("unknownchain")
	assert.False(t, hasUnknown)
}

func TestBatchOrderingPreservesCallerOrderAndIndexAscending(t *testing.T) {
	networks := []config.NetworkConfig{
		{Chain: config.ChainEthereum, Count: 3, UsePassphrase: true},
		{Chain: config.ChainBitcoin, Count: 3, UsePassphrase: true},
	}

	set, failures := Derive(zeroPhrase, "", networks)
	require.Empty(t, failures)

	require.Equal(t, []config.ChainID{config.ChainEthereum, config.ChainBitcoin}, set.Chains())

	ethRecords, ok := set.Get(config.ChainEthereum)
	require.True(t, ok)
	require.Len(t, ethRecords, 3)
	for i, r := range ethRecords {
		assert.Contains(t, r.Path, "/0/"+itoa(i))
	}

	btcRecords, ok := set.Get(config.ChainBitcoin)
	require.True(t, ok)
	require.Len(t, btcRecords, 9) // 3 variants * 3 indices
}

func TestPassphraseIsolationPerChain(t *testing.T) {
	withPass := networksFor(config.ChainCardano, 1)
	withPass[0].UsePassphrase = false

	a, failuresA := Derive(zeroPhrase, "some passphrase", withPass)
	require.Empty(t, failuresA)

	b, failuresB := Derive(zeroPhrase, "", networksFor(config.ChainCardano, 1))
	require.Empty(t, failuresB)

	aRecords, ok := a.Get(config.ChainCardano)
	require.True(t, ok)
	bRecords, ok := b.Get(config.ChainCardano)
	require.True(t, ok)
	assert.Equal(t, bRecords[0].Address, aRecords[0].Address)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := []byte{}
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}
