package registry

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountIDFromBase58(t *testing.T) {
	accountID := NewAccountID([]byte("public key"))

	restoredAccountID, err := AccountIDFromBase58(accountID.Base58())
	require.NoError(t, err)
	assert.Equal(t, accountID, restoredAccountID)

	_, err = AccountIDFromBase58("0OIl")
	assert.True(t, errors.Is(err, ErrInvalidAccount))

	_, err = AccountIDFromBytes([]byte{1, 2, 3})
	assert.True(t, errors.Is(err, ErrInvalidAccount))
}

func TestAssetIDFromBase58(t *testing.T) {
	assetID := AssetID{1, 2, 3}

	restoredAssetID, err := AssetIDFromBase58(assetID.Base58())
	require.NoError(t, err)
	assert.True(t, assetID.Equal(restoredAssetID))

	_, err = AssetIDFromBase58("")
	assert.True(t, errors.Is(err, ErrInvalidAssetID))

	cloned := assetID.Bytes()
	cloned[0] = 9
	assert.Equal(t, byte(1), assetID[0])
}
