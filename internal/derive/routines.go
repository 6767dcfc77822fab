package derive

import (
	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/scypher/scypher-core/internal/chains"
	"github.com/scypher/scypher-core/internal/config"
	"github.com/scypher/scypher-core/internal/ed25519bip32"
	"github.com/scypher/scypher-core/internal/hdkey"
	"github.com/scypher/scypher-core/internal/slip10"
)

// secp256k1Loop builds a secp256k1 BIP32 tree over in.seed, walks basePath
// with its final component replaced by 0..count-1, and hands each leaf's
// public key to encode.
func secp256k1Loop(in *decodedInput, count int, basePath hdkey.Path, chain config.ChainID, encode func(*btcec.PublicKey) (address, variant string, err error)) ([]AddressRecord, error) {
	tree, err := hdkey.NewTree(in.seed)
	if err != nil {
		return nil, err
	}

	records := make([]AddressRecord, 0, count)
	for i := 0; i < count; i++ {
		path := basePath.WithIndex(uint32(i))
		_, pub, err := tree.DerivePriv(path)
		if err != nil {
			return nil, err
		}
		addr, variant, err := encode(pub)
		if err != nil {
			return nil, err
		}
		records = append(records, AddressRecord{Chain: chain, Variant: variant, Path: path.String(), Address: addr})
	}
	return records, nil
}

func deriveBitcoin(in *decodedInput, count int) ([]AddressRecord, error) {
	var records []AddressRecord

	legacy, err := secp256k1Loop(in, count, mustPath("m/44'/0'/0'/0/0"), config.ChainBitcoin, chains.BitcoinLegacy)
	if err != nil {
		return nil, err
	}
	records = append(records, legacy...)

	nested, err := secp256k1Loop(in, count, mustPath("m/49'/0'/0'/0/0"), config.ChainBitcoin, chains.BitcoinNestedSegWit)
	if err != nil {
		return nil, err
	}
	records = append(records, nested...)

	native, err := secp256k1Loop(in, count, mustPath("m/84'/0'/0'/0/0"), config.ChainBitcoin, chains.BitcoinNativeSegWit)
	if err != nil {
		return nil, err
	}
	records = append(records, native...)

	return records, nil
}

func deriveEVM(chain config.ChainID) chainRoutine {
	return func(in *decodedInput, count int) ([]AddressRecord, error) {
		return secp256k1Loop(in, count, mustPath("m/44'/60'/0'/0/0"), chain, chains.EVM)
	}
}

func deriveLitecoin(in *decodedInput, count int) ([]AddressRecord, error) {
	return secp256k1Loop(in, count, mustPath("m/44'/2'/0'/0/0"), config.ChainLitecoin, chains.Litecoin)
}

func deriveDogecoin(in *decodedInput, count int) ([]AddressRecord, error) {
	return secp256k1Loop(in, count, mustPath("m/44'/3'/0'/0/0"), config.ChainDogecoin, chains.Dogecoin)
}

func deriveTron(in *decodedInput, count int) ([]AddressRecord, error) {
	return secp256k1Loop(in, count, mustPath("m/44'/195'/0'/0/0"), config.ChainTron, chains.Tron)
}

func deriveErgo(in *decodedInput, count int) ([]AddressRecord, error) {
	return secp256k1Loop(in, count, mustPath("m/44'/429'/0'/0/0"), config.ChainErgo, chains.Ergo)
}

func deriveCardano(in *decodedInput, count int) ([]AddressRecord, error) {
	master := ed25519bip32.MasterFromEntropy(in.entropy, in.passphrase)

	stakeKey, err := master.Derive(ed25519bip32.StakePath())
	if err != nil {
		return nil, err
	}
	stakePub, err := stakeKey.PublicKey()
	if err != nil {
		return nil, err
	}

	records := make([]AddressRecord, 0, count)
	for i := 0; i < count; i++ {
		path := ed25519bip32.PaymentPath(uint32(i))
		paymentKey, err := master.Derive(path)
		if err != nil {
			return nil, err
		}
		paymentPub, err := paymentKey.PublicKey()
		if err != nil {
			return nil, err
		}
		addr, variant, err := chains.Cardano(paymentPub, stakePub)
		if err != nil {
			return nil, err
		}
		records = append(records, AddressRecord{Chain: config.ChainCardano, Variant: variant, Path: path.String(), Address: addr})
	}
	return records, nil
}

func deriveSolana(in *decodedInput, count int) ([]AddressRecord, error) {
	master := slip10.NewMasterNode(in.seed)

	records := make([]AddressRecord, 0, count)
	for i := 0; i < count; i++ {
		path := mustPath("m/44'/501'/0'/0'")
		path[2] = hdkey.HardenedOffset + uint32(i)

		leaf, err := master.Derive(path)
		if err != nil {
			return nil, err
		}
		pub := leaf.PublicKey()
		addr, variant, err := chains.Solana(pub)
		if err != nil {
			return nil, err
		}
		records = append(records, AddressRecord{Chain: config.ChainSolana, Variant: variant, Path: path.String(), Address: addr})
	}
	return records, nil
}

func mustPath(s string) hdkey.Path {
	p, err := hdkey.ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}
