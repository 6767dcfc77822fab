package chains

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"

	"github.com/scypher/scypher-core/internal/errs"
)

const cardanoShelleyHeader byte = 0b0000_0001 // key-keyed payment, key-keyed stake, mainnet

// Cardano encodes a Shelley base address from raw 32-byte Ed25519 payment
// and stake public keys: header || Blake2b-224(payment) ||
// Blake2b-224(stake), Bech32 with HRP "addr" (spec.md §4.8).
func Cardano(paymentPub, stakePub []byte) (address, variant string, err error) {
	paymentHash, err := blake2b224(paymentPub)
	if err != nil {
		return "", "", &errs.AddressEncodeError{Chain: "cardano", Cause: err}
	}
	stakeHash, err := blake2b224(stakePub)
	if err != nil {
		return "", "", &errs.AddressEncodeError{Chain: "cardano", Cause: err}
	}

	payload := make([]byte, 0, 1+len(paymentHash)+len(stakeHash))
	payload = append(payload, cardanoShelleyHeader)
	payload = append(payload, paymentHash...)
	payload = append(payload, stakeHash...)

	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", "", &errs.AddressEncodeError{Chain: "cardano", Cause: err}
	}
	addr, err := bech32.Encode("addr", conv)
	if err != nil {
		return "", "", &errs.AddressEncodeError{Chain: "cardano", Cause: err}
	}
	return addr, "Shelley", nil
}

func blake2b224(data []byte) ([]byte, error) {
	h, err := blake2b.New(28, nil)
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}
