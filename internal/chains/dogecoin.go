package chains

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const dogeP2PKHVersion byte = 0x1E

// Dogecoin encodes a DOGE P2PKH address (version 0x1E).
func Dogecoin(pub *btcec.PublicKey) (address, variant string, err error) {
	hash := btcutil.Hash160(pub.SerializeCompressed())
	return base58.CheckEncode(hash, dogeP2PKHVersion), "P2PKH", nil
}
