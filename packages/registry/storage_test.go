package registry

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutations(t *testing.T) {
	store := mapdb.NewMapDB()
	require.NoError(t, store.Set([]byte("committed"), []byte{1}))

	m := newMutations(store)
	m.Set([]byte("buffered"), []byte{2})
	m.Set([]byte("committed"), []byte{3})
	m.Set([]byte("buffered"), []byte{4})
	assert.Equal(t, 2, m.Size())

	value, exists, err := m.Get([]byte("committed"))
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, []byte{3}, value)

	_, exists, err = m.Get([]byte("missing"))
	require.NoError(t, err)
	assert.False(t, exists)

	// nothing reaches the store before the commit
	_, err = store.Get([]byte("buffered"))
	assert.True(t, errors.Is(err, kvstore.ErrKeyNotFound))
	committedValue, err := store.Get([]byte("committed"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, []byte(committedValue))

	require.NoError(t, m.Commit())
	assert.Equal(t, 0, m.Size())

	bufferedValue, err := store.Get([]byte("buffered"))
	require.NoError(t, err)
	assert.Equal(t, []byte{4}, []byte(bufferedValue))
	committedValue, err = store.Get([]byte("committed"))
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, []byte(committedValue))
}

func TestAssetStore(t *testing.T) {
	m := newMutations(mapdb.NewMapDB())
	assetStore := newAssetStore(m)
	owner := NewAccountID([]byte("A"))
	assetID := AssetID("asset")

	_, err := assetStore.Get(assetID)
	assert.True(t, errors.Is(err, ErrAssetNotFound))
	assert.True(t, errors.Is(assetStore.SetOwner(assetID, owner), ErrAssetNotFound))

	require.NoError(t, assetStore.Insert(NewAsset(assetID, owner, time.Unix(1, 0))))
	assert.True(t, errors.Is(assetStore.Insert(NewAsset(assetID, owner, time.Unix(2, 0))), ErrDuplicateIdentity))

	contains, err := assetStore.Contains(assetID)
	require.NoError(t, err)
	assert.True(t, contains)

	newOwner := NewAccountID([]byte("B"))
	require.NoError(t, assetStore.SetOwner(assetID, newOwner))

	asset, err := assetStore.Get(assetID)
	require.NoError(t, err)
	assert.Equal(t, newOwner, asset.Owner())
	assert.True(t, asset.CreatedAt().Equal(time.Unix(1, 0)))
}

func TestOwnerIndex(t *testing.T) {
	ownerIndex := newOwnerIndex(newMutations(mapdb.NewMapDB()), 3)
	owner := NewAccountID([]byte("A"))

	assetIDs, err := ownerIndex.List(owner)
	require.NoError(t, err)
	assert.Empty(t, assetIDs)
	assert.True(t, errors.Is(ownerIndex.Remove(owner, AssetID("a")), ErrOwnedAssetNotFound))

	for _, assetID := range []AssetID{AssetID("a"), AssetID("b"), AssetID("c")} {
		require.NoError(t, ownerIndex.TryAppend(owner, assetID))
	}
	assert.True(t, errors.Is(ownerIndex.TryAppend(owner, AssetID("d")), ErrCapacityExceeded))

	require.NoError(t, ownerIndex.Remove(owner, AssetID("a")))
	assetIDs, err = ownerIndex.List(owner)
	require.NoError(t, err)
	assert.ElementsMatch(t, []AssetID{AssetID("b"), AssetID("c")}, assetIDs)

	require.NoError(t, ownerIndex.TryAppend(owner, AssetID("d")))
	assetIDs, err = ownerIndex.List(owner)
	require.NoError(t, err)
	assert.ElementsMatch(t, []AssetID{AssetID("b"), AssetID("c"), AssetID("d")}, assetIDs)
}

func TestOwnerIndex_OversizedEntry(t *testing.T) {
	m := newMutations(mapdb.NewMapDB())
	owner := NewAccountID([]byte("A"))
	require.NoError(t, newOwnerIndex(m, 3).TryAppend(owner, AssetID("a")))
	require.NoError(t, newOwnerIndex(m, 3).TryAppend(owner, AssetID("b")))

	ownerIndex := newOwnerIndex(m, 1)
	_, err := ownerIndex.List(owner)
	assert.True(t, errors.Is(err, ErrInconsistentState))
	assert.True(t, errors.Is(err, cerrors.ErrFatal))
	assert.True(t, errors.Is(ownerIndex.TryAppend(owner, AssetID("c")), ErrInconsistentState))
	assert.True(t, errors.Is(ownerIndex.Remove(owner, AssetID("a")), ErrInconsistentState))

	// the entry is left as it was written
	assetIDs, err := newOwnerIndex(m, 2).List(owner)
	require.NoError(t, err)
	assert.Equal(t, []AssetID{AssetID("a"), AssetID("b")}, assetIDs)
}

func TestAsset_Bytes(t *testing.T) {
	createdAt := time.Unix(1652000000, 0)
	asset := NewAsset(AssetID{1, 2, 3}, NewAccountID([]byte("A")), createdAt)

	restoredAsset, err := AssetFromBytes(asset.Bytes())
	require.NoError(t, err)
	assert.Equal(t, asset.ID(), restoredAsset.ID())
	assert.Equal(t, Female, restoredAsset.Gender())
	assert.Equal(t, asset.Owner(), restoredAsset.Owner())
	assert.True(t, createdAt.Equal(restoredAsset.CreatedAt()))

	_, err = AssetFromBytes(asset.Bytes()[:10])
	assert.Error(t, err)

	corrupted := asset.Bytes()
	corrupted[4+3+8] = 7
	_, err = AssetFromBytes(corrupted)
	assert.Error(t, err)
}

func TestGenderFromAssetID(t *testing.T) {
	assert.Equal(t, Male, GenderFromAssetID(AssetID{1, 2}))
	assert.Equal(t, Female, GenderFromAssetID(AssetID{1}))
	assert.Equal(t, "Male", Male.String())
	assert.Equal(t, "Female", Female.String())
	assert.Equal(t, "Gender(9)", Gender(9).String())
}
