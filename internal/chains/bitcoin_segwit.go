package chains

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/scypher/scypher-core/internal/errs"
)

// BitcoinNativeSegWit encodes a BTC P2WPKH address: Bech32("bc") of
// (witness_version=0 || 20-byte hash), per spec.md §4.6.
func BitcoinNativeSegWit(pub *btcec.PublicKey) (address, variant string, err error) {
	hash := btcutil.Hash160(pub.SerializeCompressed())
	addr, err := btcutil.NewAddressWitnessPubKeyHash(hash, &chaincfg.MainNetParams)
	if err != nil {
		return "", "", &errs.AddressEncodeError{Chain: "bitcoin", Cause: err}
	}
	return addr.EncodeAddress(), "P2WPKH", nil
}
