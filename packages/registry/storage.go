package registry

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/byteutils"
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/iotaledger/assetledger/packages/database"
)

// region db prefixes //////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// PrefixNonce defines the storage prefix of the nonce counter.
	PrefixNonce byte = iota

	// PrefixAssetCount defines the storage prefix of the counter of created assets.
	PrefixAssetCount

	// PrefixAssetStorage defines the storage prefix of the AssetStore.
	PrefixAssetStorage

	// PrefixOwnerIndexStorage defines the storage prefix of the OwnerIndex.
	PrefixOwnerIndexStorage
)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region keys /////////////////////////////////////////////////////////////////////////////////////////////////////////

func nonceKey() []byte {
	return []byte{database.PrefixRegistry, PrefixNonce}
}

func assetCountKey() []byte {
	return []byte{database.PrefixRegistry, PrefixAssetCount}
}

func assetKey(assetID AssetID) []byte {
	return byteutils.ConcatBytes([]byte{database.PrefixRegistry, PrefixAssetStorage}, assetID)
}

func ownedAssetsKey(owner AccountID) []byte {
	return byteutils.ConcatBytes([]byte{database.PrefixRegistry, PrefixOwnerIndexStorage}, owner.Bytes())
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region counters /////////////////////////////////////////////////////////////////////////////////////////////////////

// readCounter returns the uint64 stored under the key (0 if it was never written).
func readCounter(m *mutations, key []byte) (value uint64, err error) {
	valueBytes, exists, err := m.Get(key)
	if err != nil || !exists {
		return 0, err
	}

	if value, err = marshalutil.New(valueBytes).ReadUint64(); err != nil {
		return 0, errors.Errorf("failed to parse counter %x: %w", key, err)
	}

	return value, nil
}

// counterBytes returns the encoding of a counter value.
func counterBytes(value uint64) []byte {
	return NonceBytes(value)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
