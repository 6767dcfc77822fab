package hdkey

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"

	"github.com/scypher/scypher-core/internal/errs"
)

// Tree is a secp256k1 BIP32 key tree rooted at a BIP39 seed. Master
// derivation is HMAC-SHA512(key="Bitcoin seed", data=seed), per spec.md
// §4.5; hdkeychain.NewMaster implements exactly this.
type Tree struct {
	master *hdkeychain.ExtendedKey
}

// NewTree builds the master extended key from a 64-byte BIP39 seed.
func NewTree(seed []byte) (*Tree, error) {
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, errs.ErrCurveError
	}
	return &Tree{master: master}, nil
}

// DerivePriv walks path from the master key and returns the leaf's private
// scalar and compressed public key.
func (t *Tree) DerivePriv(path Path) (*btcec.PrivateKey, *btcec.PublicKey, error) {
	key := t.master
	for _, idx := range path {
		child, err := key.Derive(idx)
		if err != nil {
			return nil, nil, errs.ErrCurveError
		}
		key = child
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, nil, errs.ErrCurveError
	}
	return priv, priv.PubKey(), nil
}
