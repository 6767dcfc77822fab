package ed25519bip32

import "github.com/scypher/scypher-core/internal/hdkey"

// CIP-1852 fixes the purpose and coin-type components of the path and
// reserves role 0 for payment keys and role 2 for the single stake key
// (spec.md §4.8, §9 Open Question: only the Icarus/CIP-1852 path is
// supported, no legacy Byron derivation).
const (
	cip1852Purpose  = 1852 + hdkey.HardenedOffset
	cip1852CoinType = 1815 + hdkey.HardenedOffset
	cip1852Account  = 0 + hdkey.HardenedOffset

	cip1852RolePayment = 0
	cip1852RoleStake   = 2
)

// PaymentPath returns m/1852'/1815'/0'/0/index.
func PaymentPath(index uint32) hdkey.Path {
	return hdkey.Path{cip1852Purpose, cip1852CoinType, cip1852Account, cip1852RolePayment, index}
}

// StakePath returns m/1852'/1815'/0'/2/0 — Cardano wallets derive a single
// shared stake key reused across all payment addresses.
func StakePath() hdkey.Path {
	return hdkey.Path{cip1852Purpose, cip1852CoinType, cip1852Account, cip1852RoleStake, 0}
}
