package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAssetID(t *testing.T) {
	seed := []byte("seed")

	assert.Equal(t, DeriveAssetID(1, seed), DeriveAssetID(1, seed))
	assert.NotEqual(t, DeriveAssetID(1, seed), DeriveAssetID(2, seed))
	assert.NotEqual(t, DeriveAssetID(1, seed), DeriveAssetID(1, []byte("other")))
	assert.Equal(t, Male, GenderFromAssetID(DeriveAssetID(1, seed)))
}

func TestNonceBytes(t *testing.T) {
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, NonceBytes(1))
	assert.Equal(t, []byte{0, 1, 0, 0, 0, 0, 0, 0}, NonceBytes(256))
}

func TestDeterministicRandomness(t *testing.T) {
	randomness := NewDeterministicRandomness([]byte("secret"))

	first, err := randomness.Random(NonceBytes(0))
	require.NoError(t, err)
	second, err := randomness.Random(NonceBytes(0))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := randomness.Random(NonceBytes(1))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	foreign, err := NewDeterministicRandomness([]byte("other secret")).Random(NonceBytes(0))
	require.NoError(t, err)
	assert.NotEqual(t, first, foreign)
}

func TestSystemRandomness(t *testing.T) {
	first, err := SystemRandomness{}.Random(nil)
	require.NoError(t, err)
	second, err := SystemRandomness{}.Random(nil)
	require.NoError(t, err)

	assert.Len(t, first, 32)
	assert.NotEqual(t, first, second)
}
