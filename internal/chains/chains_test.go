package chains

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPubKey returns a deterministic, arbitrary compressed secp256k1
// public key (the base point scaled by a small fixed scalar) purely to
// exercise address-format invariants; it is not tied to any real
// derivation path.
func testPubKey(t *testing.T) *btcec.PublicKey {
	t.Helper()
	var scalarBytes [32]byte
	scalarBytes[31] = 7
	priv, pub := btcec.PrivKeyFromBytes(scalarBytes[:])
	require.NotNil(t, priv)
	return pub
}

func TestBitcoinLegacyFormat(t *testing.T) {
	addr, variant, err := BitcoinLegacy(testPubKey(t))
	require.NoError(t, err)
	assert.Equal(t, "P2PKH", variant)
	assert.True(t, strings.HasPrefix(addr, "1"))
}

func TestBitcoinNativeSegWitFormat(t *testing.T) {
	addr, variant, err := BitcoinNativeSegWit(testPubKey(t))
	require.NoError(t, err)
	assert.Equal(t, "P2WPKH", variant)
	assert.True(t, strings.HasPrefix(addr, "bc1"))
}

func TestBitcoinNestedSegWitFormat(t *testing.T) {
	addr, variant, err := BitcoinNestedSegWit(testPubKey(t))
	require.NoError(t, err)
	assert.Equal(t, "P2SH-P2WPKH", variant)
	assert.True(t, strings.HasPrefix(addr, "3"))
}

func TestLitecoinFormat(t *testing.T) {
	addr, _, err := Litecoin(testPubKey(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(addr, "L"))
}

func TestDogecoinFormat(t *testing.T) {
	addr, _, err := Dogecoin(testPubKey(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(addr, "D"))
}

func TestEVMFormat(t *testing.T) {
	addr, variant, err := EVM(testPubKey(t))
	require.NoError(t, err)
	assert.Equal(t, "EOA", variant)
	assert.True(t, strings.HasPrefix(addr, "0x"))
	assert.Len(t, addr, 42)
	assert.NotEqual(t, strings.ToLower(addr), addr, "EIP-55 addresses are not all-lowercase")
}

func TestEVMChecksumIsDeterministic(t *testing.T) {
	addr1, _, err := EVM(testPubKey(t))
	require.NoError(t, err)
	addr2, _, err := EVM(testPubKey(t))
	require.NoError(t, err)
	assert.Equal(t, addr1, addr2)
}

func TestTronFormat(t *testing.T) {
	addr, _, err := Tron(testPubKey(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(addr, "T"))
}

func TestErgoFormat(t *testing.T) {
	addr, variant, err := Ergo(testPubKey(t))
	require.NoError(t, err)
	assert.Equal(t, "P2PK", variant)
	assert.NotEmpty(t, addr)
}

func TestCardanoFormat(t *testing.T) {
	payment := make([]byte, 32)
	stake := make([]byte, 32)
	payment[0] = 1
	stake[0] = 2

	addr, variant, err := Cardano(payment, stake)
	require.NoError(t, err)
	assert.Equal(t, "Shelley", variant)
	assert.True(t, strings.HasPrefix(addr, "addr1"))
}

func TestSolanaFormat(t *testing.T) {
	pub := make([]byte, 32)
	pub[0] = 9

	addr, variant, err := Solana(pub)
	require.NoError(t, err)
	assert.Equal(t, "Ed25519", variant)
	assert.NotEmpty(t, addr)
}
