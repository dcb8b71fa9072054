package registry

import (
	"math"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/assetledger/packages/database"
)

func TestRegistry_CreateAsset(t *testing.T) {
	tf := NewTestFramework(t, WithOwnedAssetsLimit(2))

	tf.CreateAsset("X", "A")
	tf.AssertOwnedAssets("A", "X")
	tf.AssertOwner("X", "A")

	asset, err := tf.Registry.Asset(tf.AssetID("X"))
	require.NoError(t, err)
	assert.Equal(t, tf.AssetID("X"), asset.ID())
	assert.Equal(t, uint64(0), asset.Price())
	assert.Equal(t, Male, asset.Gender())
	assert.Len(t, asset.ID(), 32)

	tf.CreateAsset("Y", "A")
	tf.AssertOwnedAssets("A", "X", "Y")

	snapshot := tf.Snapshot()
	_, err = tf.Registry.CreateAsset(tf.Account("A"))
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	tf.AssertOwnedAssets("A", "X", "Y")
	assertSnapshotEqualExceptNonce(t, snapshot, tf.Snapshot())

	nonce, err := tf.Registry.Nonce()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), nonce)

	assetCount, err := tf.Registry.AssetCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), assetCount)

	require.Len(t, tf.CreatedEvents, 2)
	assert.Equal(t, tf.AssetID("X"), tf.CreatedEvents[0].AssetID)
	assert.Equal(t, tf.Account("A"), tf.CreatedEvents[0].Owner)
	assert.Equal(t, tf.AssetID("Y"), tf.CreatedEvents[1].AssetID)

	tf.AssertInvariants()
}

func TestRegistry_CreateAssetUniqueness(t *testing.T) {
	tf := NewTestFramework(t, WithOwnedAssetsLimit(100))

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		assetID, err := tf.Registry.CreateAsset(tf.Account("A"))
		require.NoError(t, err)
		assert.False(t, seen[string(assetID)], "identity %s was issued twice", assetID)
		seen[string(assetID)] = true
	}

	tf.AssertInvariants()
}

func TestRegistry_CreateAssetDuplicateIdentity(t *testing.T) {
	constantIdentity := func(uint64, []byte) AssetID {
		return AssetID("collision")
	}
	tf := NewTestFramework(t, WithIdentityGenerator(constantIdentity))

	tf.CreateAsset("X", "A")
	snapshot := tf.Snapshot()

	_, err := tf.Registry.CreateAsset(tf.Account("B"))
	assert.True(t, errors.Is(err, ErrDuplicateIdentity))
	assertSnapshotEqualExceptNonce(t, snapshot, tf.Snapshot())

	// the nonce advances even though the call was rejected
	nonce, err := tf.Registry.Nonce()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), nonce)

	tf.AssertOwnedAssets("A", "X")
	tf.AssertOwnedAssets("B")
	tf.AssertOwner("X", "A")
	assert.Len(t, tf.CreatedEvents, 1)
	tf.AssertInvariants()
}

func TestRegistry_CreateAssetIdentityInputs(t *testing.T) {
	type generatorCall struct {
		nonce uint64
		seed  []byte
	}

	var calls []generatorCall
	recordingGenerator := func(nonce uint64, seed []byte) AssetID {
		calls = append(calls, generatorCall{nonce: nonce, seed: seed})

		return DeriveAssetID(nonce, seed)
	}

	randomness := NewDeterministicRandomness([]byte("secret"))
	tf := NewTestFramework(t, WithRandomness(randomness), WithIdentityGenerator(recordingGenerator))

	tf.CreateAsset("X", "A")
	tf.CreateAsset("Y", "A")

	require.Len(t, calls, 2)
	for i, call := range calls {
		expectedSeed, err := randomness.Random(NonceBytes(uint64(i)))
		require.NoError(t, err)

		assert.Equal(t, uint64(i), call.nonce)
		assert.Equal(t, expectedSeed, call.seed)
	}
	assert.Equal(t, DeriveAssetID(0, calls[0].seed), tf.AssetID("X"))
}

func TestRegistry_CreateAssetGender(t *testing.T) {
	oddIdentity := func(nonce uint64, _ []byte) AssetID {
		return AssetID{byte(nonce), 1, 2}
	}
	tf := NewTestFramework(t, WithIdentityGenerator(oddIdentity))

	tf.CreateAsset("X", "A")

	asset, err := tf.Registry.Asset(tf.AssetID("X"))
	require.NoError(t, err)
	assert.Equal(t, Female, asset.Gender())

	require.NoError(t, tf.Transfer("A", "B", "X"))
	asset, err = tf.Registry.Asset(tf.AssetID("X"))
	require.NoError(t, err)
	assert.Equal(t, Female, asset.Gender())
	assert.Equal(t, tf.AssetID("X"), asset.ID())
}

func TestRegistry_CreateAssetOverflow(t *testing.T) {
	tf := NewTestFramework(t)
	require.NoError(t, tf.Store().Set(assetCountKey(), counterBytes(math.MaxUint64)))

	snapshot := tf.Snapshot()
	_, err := tf.Registry.CreateAsset(tf.Account("A"))
	assert.True(t, errors.Is(err, ErrArithmeticOverflow))
	assertSnapshotEqualExceptNonce(t, snapshot, tf.Snapshot())

	tf.AssertOwnedAssets("A")
	assert.Empty(t, tf.CreatedEvents)
}

func TestRegistry_CreateAssetInvalidCaller(t *testing.T) {
	tf := NewTestFramework(t)

	_, err := tf.Registry.CreateAsset(EmptyAccountID)
	assert.True(t, errors.Is(err, ErrInvalidAccount))

	nonce, err := tf.Registry.Nonce()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), nonce)
}

func TestRegistry_Transfer(t *testing.T) {
	tf := NewTestFramework(t)

	tf.CreateAsset("X", "A")
	createdAsset, err := tf.Registry.Asset(tf.AssetID("X"))
	require.NoError(t, err)

	require.NoError(t, tf.Transfer("A", "B", "X"))
	tf.AssertOwner("X", "B")
	tf.AssertOwnedAssets("A")
	tf.AssertOwnedAssets("B", "X")

	transferredAsset, err := tf.Registry.Asset(tf.AssetID("X"))
	require.NoError(t, err)
	assert.Equal(t, createdAsset.Gender(), transferredAsset.Gender())
	assert.Equal(t, createdAsset.Price(), transferredAsset.Price())
	assert.True(t, createdAsset.CreatedAt().Equal(transferredAsset.CreatedAt()))

	require.Len(t, tf.TransferredEvents, 1)
	assert.Equal(t, &AssetTransferredEvent{
		From:    tf.Account("A"),
		To:      tf.Account("B"),
		AssetID: tf.AssetID("X"),
	}, tf.TransferredEvents[0])

	require.NoError(t, tf.Transfer("B", "A", "X"))
	tf.AssertOwner("X", "A")
	tf.AssertOwnedAssets("A", "X")
	tf.AssertOwnedAssets("B")

	tf.AssertInvariants()
}

func TestRegistry_TransferNotOwner(t *testing.T) {
	tf := NewTestFramework(t)

	tf.CreateAsset("X", "B")
	snapshot := tf.Snapshot()

	err := tf.Transfer("A", "C", "X")
	assert.True(t, errors.Is(err, ErrNotOwner))
	assert.Equal(t, snapshot, tf.Snapshot())
	assert.Empty(t, tf.TransferredEvents)
	tf.AssertOwner("X", "B")
}

func TestRegistry_TransferSelf(t *testing.T) {
	tf := NewTestFramework(t)

	tf.CreateAsset("X", "A")
	snapshot := tf.Snapshot()

	err := tf.Transfer("A", "A", "X")
	assert.True(t, errors.Is(err, ErrSelfTransfer))
	assert.Equal(t, snapshot, tf.Snapshot())
	assert.Empty(t, tf.TransferredEvents)
}

func TestRegistry_TransferUnknownAsset(t *testing.T) {
	tf := NewTestFramework(t)
	snapshot := tf.Snapshot()

	err := tf.Registry.Transfer(tf.Account("A"), tf.Account("B"), AssetID("unknown"))
	assert.True(t, errors.Is(err, ErrAssetNotFound))
	assert.Equal(t, snapshot, tf.Snapshot())

	assert.True(t, errors.Is(tf.Registry.Transfer(tf.Account("A"), EmptyAccountID, AssetID("unknown")), ErrInvalidAccount))
	assert.True(t, errors.Is(tf.Registry.Transfer(tf.Account("A"), tf.Account("B"), nil), ErrInvalidAssetID))
}

func TestRegistry_TransferDestinationAtCapacity(t *testing.T) {
	tf := NewTestFramework(t, WithOwnedAssetsLimit(1))

	tf.CreateAsset("X", "A")
	tf.CreateAsset("Y", "B")
	snapshot := tf.Snapshot()

	err := tf.Transfer("A", "B", "X")
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Equal(t, snapshot, tf.Snapshot())
	assert.Empty(t, tf.TransferredEvents)

	tf.AssertOwner("X", "A")
	tf.AssertOwnedAssets("A", "X")
	tf.AssertOwnedAssets("B", "Y")
	tf.AssertInvariants()
}

func TestRegistry_TransferReordersRemainingAssets(t *testing.T) {
	tf := NewTestFramework(t, WithOwnedAssetsLimit(4))

	tf.CreateAsset("a", "A")
	tf.CreateAsset("b", "A")
	tf.CreateAsset("c", "A")
	tf.CreateAsset("d", "A")

	require.NoError(t, tf.Transfer("A", "B", "b"))
	tf.AssertOwnedAssets("A", "a", "c", "d")
	tf.AssertOwnedAssets("B", "b")

	// the freed slot can be used again
	tf.CreateAsset("e", "A")
	tf.AssertOwnedAssets("A", "a", "c", "d", "e")

	tf.AssertInvariants()
}

func TestRegistry_TransferInconsistentState(t *testing.T) {
	tf := NewTestFramework(t)

	tf.CreateAsset("X", "A")
	require.NoError(t, tf.Store().Set(ownedAssetsKey(tf.Account("A")), ownedAssetsBytes(tf.Account("A"), nil)))
	assert.True(t, errors.Is(tf.Registry.CheckInvariants(), ErrInconsistentState))

	snapshot := tf.Snapshot()
	err := tf.Transfer("A", "B", "X")
	assert.True(t, errors.Is(err, ErrInconsistentState))
	assert.True(t, errors.Is(err, cerrors.ErrFatal))
	assert.Equal(t, snapshot, tf.Snapshot())
	tf.AssertOwner("X", "A")
}

func TestRegistry_CheckInvariants(t *testing.T) {
	tf := NewTestFramework(t, WithOwnedAssetsLimit(3))

	tf.CreateAsset("X", "A")
	tf.CreateAsset("Y", "A")
	tf.AssertInvariants()

	t.Run("foreign asset in entry", func(t *testing.T) {
		entryKey := ownedAssetsKey(tf.Account("B"))
		require.NoError(t, tf.Store().Set(entryKey, ownedAssetsBytes(tf.Account("B"), tf.AssetIDs("X"))))
		assert.True(t, errors.Is(tf.Registry.CheckInvariants(), ErrInconsistentState))
		require.NoError(t, tf.Store().Delete(entryKey))
		tf.AssertInvariants()
	})

	t.Run("unknown asset in entry", func(t *testing.T) {
		entryKey := ownedAssetsKey(tf.Account("A"))
		original, err := tf.Store().Get(entryKey)
		require.NoError(t, err)

		require.NoError(t, tf.Store().Set(entryKey, ownedAssetsBytes(tf.Account("A"), []AssetID{tf.AssetID("X"), tf.AssetID("Y"), AssetID("ghost")})))
		assert.True(t, errors.Is(tf.Registry.CheckInvariants(), ErrInconsistentState))
		require.NoError(t, tf.Store().Set(entryKey, original))
		tf.AssertInvariants()
	})

	t.Run("asset counter mismatch", func(t *testing.T) {
		require.NoError(t, tf.Store().Set(assetCountKey(), counterBytes(5)))
		assert.True(t, errors.Is(tf.Registry.CheckInvariants(), ErrInconsistentState))
		require.NoError(t, tf.Store().Set(assetCountKey(), counterBytes(2)))
		tf.AssertInvariants()
	})
}

func TestRegistry_LoweredOwnedAssetsLimit(t *testing.T) {
	tf := NewTestFramework(t, WithOwnedAssetsLimit(3))

	tf.CreateAsset("X", "A")
	tf.CreateAsset("Y", "A")
	tf.CreateAsset("Z", "B")
	tf.AssertInvariants()

	lowered := New(tf.Store(), WithOwnedAssetsLimit(1))
	assert.True(t, errors.Is(lowered.CheckInvariants(), ErrInconsistentState))

	_, err := lowered.OwnedAssets(tf.Account("A"))
	assert.True(t, errors.Is(err, ErrInconsistentState))

	snapshot := tf.Snapshot()
	err = lowered.Transfer(tf.Account("A"), tf.Account("C"), tf.AssetID("X"))
	assert.True(t, errors.Is(err, ErrInconsistentState))
	assert.True(t, errors.Is(err, cerrors.ErrFatal))
	assert.Equal(t, snapshot, tf.Snapshot())

	_, err = lowered.CreateAsset(tf.Account("A"))
	assert.True(t, errors.Is(err, ErrInconsistentState))

	// entries within the lowered limit are unaffected
	ownedAssets, err := lowered.OwnedAssets(tf.Account("B"))
	require.NoError(t, err)
	assert.Equal(t, tf.AssetIDs("Z"), ownedAssets)
}

func TestRegistry_OwnedAssetsUnknownOwner(t *testing.T) {
	tf := NewTestFramework(t)

	ownedAssets, err := tf.Registry.OwnedAssets(tf.Account("nobody"))
	require.NoError(t, err)
	assert.Empty(t, ownedAssets)

	_, err = tf.Registry.Asset(AssetID("unknown"))
	assert.True(t, errors.Is(err, ErrAssetNotFound))
}

func TestRegistry_EventsAfterCommit(t *testing.T) {
	// the first two nonces derive the same identity
	collidingIdentity := func(nonce uint64, seed []byte) AssetID {
		if nonce <= 1 {
			return AssetID("collision")
		}

		return DeriveAssetID(nonce, seed)
	}
	tf := NewTestFramework(t, WithOwnedAssetsLimit(1), WithIdentityGenerator(collidingIdentity))

	var createdCount, transferredCount int
	tf.Registry.Events.AssetCreated.Hook(event.NewClosure(func(createdEvent *AssetCreatedEvent) {
		createdCount++

		asset, err := tf.Registry.Asset(createdEvent.AssetID)
		require.NoError(t, err)
		assert.Equal(t, createdEvent.Owner, asset.Owner())

		ownedAssets, err := tf.Registry.OwnedAssets(createdEvent.Owner)
		require.NoError(t, err)
		assert.Contains(t, ownedAssets, createdEvent.AssetID)
	}))
	tf.Registry.Events.AssetTransferred.Hook(event.NewClosure(func(transferredEvent *AssetTransferredEvent) {
		transferredCount++

		asset, err := tf.Registry.Asset(transferredEvent.AssetID)
		require.NoError(t, err)
		assert.Equal(t, transferredEvent.To, asset.Owner())

		ownedAssets, err := tf.Registry.OwnedAssets(transferredEvent.From)
		require.NoError(t, err)
		assert.NotContains(t, ownedAssets, transferredEvent.AssetID)

		ownedAssets, err = tf.Registry.OwnedAssets(transferredEvent.To)
		require.NoError(t, err)
		assert.Contains(t, ownedAssets, transferredEvent.AssetID)
	}))

	tf.CreateAsset("X", "A")
	assert.Equal(t, 1, createdCount)

	_, err := tf.Registry.CreateAsset(tf.Account("B"))
	require.True(t, errors.Is(err, ErrDuplicateIdentity))
	assert.Equal(t, 1, createdCount)

	_, err = tf.Registry.CreateAsset(tf.Account("A"))
	require.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Equal(t, 1, createdCount)

	tf.CreateAsset("Y", "B")
	assert.Equal(t, 2, createdCount)

	require.True(t, errors.Is(tf.Transfer("B", "C", "X"), ErrNotOwner))
	assert.Equal(t, 0, transferredCount)

	require.True(t, errors.Is(tf.Transfer("A", "A", "X"), ErrSelfTransfer))
	assert.Equal(t, 0, transferredCount)

	require.True(t, errors.Is(tf.Transfer("A", "B", "X"), ErrCapacityExceeded))
	assert.Equal(t, 0, transferredCount)

	require.NoError(t, tf.Transfer("A", "C", "X"))
	assert.Equal(t, 1, transferredCount)

	require.Len(t, tf.CreatedEvents, 2)
	assert.Equal(t, tf.AssetIDs("X", "Y"), []AssetID{tf.CreatedEvents[0].AssetID, tf.CreatedEvents[1].AssetID})
	require.Len(t, tf.TransferredEvents, 1)
	assert.Equal(t, &AssetTransferredEvent{From: tf.Account("A"), To: tf.Account("C"), AssetID: tf.AssetID("X")}, tf.TransferredEvents[0])

	tf.AssertInvariants()
}

func TestRegistry_Concurrency(t *testing.T) {
	const (
		accounts          = 8
		assetsPerAccount  = 5
		ownedAssetsLimit  = assetsPerAccount * 2
		expectedAssetSize = accounts * assetsPerAccount
	)

	tf := NewTestFramework(t, WithOwnedAssetsLimit(ownedAssetsLimit))

	var wg sync.WaitGroup
	for i := 0; i < accounts; i++ {
		wg.Add(1)
		go func(owner AccountID) {
			defer wg.Done()

			for j := 0; j < assetsPerAccount; j++ {
				_, err := tf.Registry.CreateAsset(owner)
				assert.NoError(t, err)
			}
		}(NewAccountID([]byte{byte(i)}))
	}
	wg.Wait()

	assetCount, err := tf.Registry.AssetCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(expectedAssetSize), assetCount)
	assert.Len(t, tf.CreatedEvents, expectedAssetSize)
	tf.AssertInvariants()
}

func TestRegistry_Persistence(t *testing.T) {
	directory := t.TempDir()

	db, err := database.NewDB(directory)
	require.NoError(t, err)

	registry := New(db.NewStore(), WithRandomness(NewDeterministicRandomness([]byte("persistence"))))
	owner := NewAccountID([]byte("A"))
	assetID, err := registry.CreateAsset(owner)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = database.NewDB(directory)
	require.NoError(t, err)
	defer db.Close()

	registry = New(db.NewStore())
	asset, err := registry.Asset(assetID)
	require.NoError(t, err)
	assert.Equal(t, owner, asset.Owner())

	ownedAssets, err := registry.OwnedAssets(owner)
	require.NoError(t, err)
	assert.Equal(t, []AssetID{assetID}, ownedAssets)

	nonce, err := registry.Nonce()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), nonce)
	assert.NoError(t, registry.CheckInvariants())
}

// assertSnapshotEqualExceptNonce asserts that two snapshots only differ in the nonce counter.
func assertSnapshotEqualExceptNonce(t *testing.T, expected, actual map[string][]byte) {
	expected, actual = withoutNonce(expected), withoutNonce(actual)

	assert.Equal(t, expected, actual)
}

func withoutNonce(snapshot map[string][]byte) (filtered map[string][]byte) {
	filtered = make(map[string][]byte, len(snapshot))
	for key, value := range snapshot {
		if key != string(nonceKey()) {
			filtered[key] = value
		}
	}

	return filtered
}
