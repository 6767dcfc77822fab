package chains

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const ltcP2PKHVersion byte = 0x30

// Litecoin encodes an LTC P2PKH address (version 0x30).
func Litecoin(pub *btcec.PublicKey) (address, variant string, err error) {
	hash := btcutil.Hash160(pub.SerializeCompressed())
	return base58.CheckEncode(hash, ltcP2PKHVersion), "P2PKH", nil
}
