package slip10

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scypher/scypher-core/internal/errs"
	"github.com/scypher/scypher-core/internal/hdkey"
)

func TestNewMasterNodeIsDeterministic(t *testing.T) {
	seed := make([]byte, 64)
	seed[0] = 1

	a := NewMasterNode(seed)
	b := NewMasterNode(seed)

	assert.Equal(t, a.PublicKey(), b.PublicKey())
}

func TestDeriveRejectsNonHardenedComponent(t *testing.T) {
	seed := make([]byte, 64)
	master := NewMasterNode(seed)

	_, err := master.Derive(hdkey.Path{44})
	assert.ErrorIs(t, err, errs.ErrUnsupportedDerivation)
}

func TestDeriveHardenedPathMatchesSolanaShape(t *testing.T) {
	seed := make([]byte, 64)
	master := NewMasterNode(seed)

	path, err := hdkey.ParsePath("m/44'/501'/0'/0'")
	require.NoError(t, err)

	node, err := master.Derive(path)
	require.NoError(t, err)
	assert.Len(t, node.PublicKey(), 32)
}

func TestDeriveDiffersByAccountIndex(t *testing.T) {
	seed := make([]byte, 64)
	master := NewMasterNode(seed)

	p0, _ := hdkey.ParsePath("m/44'/501'/0'/0'")
	p1, _ := hdkey.ParsePath("m/44'/501'/1'/0'")

	n0, err := master.Derive(p0)
	require.NoError(t, err)
	n1, err := master.Derive(p1)
	require.NoError(t, err)

	assert.NotEqual(t, n0.PublicKey(), n1.PublicKey())
}
