package chains

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// BitcoinNestedSegWit encodes a BTC P2SH-P2WPKH address: the redeem
// script 0x0014||Hash160(pub) is itself hashed and Base58Check-encoded
// under the P2SH version byte, per spec.md §4.6.
func BitcoinNestedSegWit(pub *btcec.PublicKey) (address, variant string, err error) {
	pubKeyHash := btcutil.Hash160(pub.SerializeCompressed())

	redeemScript := make([]byte, 0, 2+len(pubKeyHash))
	redeemScript = append(redeemScript, 0x00, 0x14)
	redeemScript = append(redeemScript, pubKeyHash...)

	scriptHash := btcutil.Hash160(redeemScript)
	return base58.CheckEncode(scriptHash, btcP2SHVersion), "P2SH-P2WPKH", nil
}
