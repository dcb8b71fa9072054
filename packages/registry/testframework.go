package registry

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region TestFramework ////////////////////////////////////////////////////////////////////////////////////////////////

// TestFramework provides common testing functionality for the registry package. It allows to refer to accounts and
// assets by human-readable aliases and records the events that the Registry triggered.
type TestFramework struct {
	// Registry contains a reference to the Registry instance that the TestFramework is using.
	Registry *Registry

	// CreatedEvents contains the AssetCreated events in the order they were triggered.
	CreatedEvents []*AssetCreatedEvent

	// TransferredEvents contains the AssetTransferred events in the order they were triggered.
	TransferredEvents []*AssetTransferredEvent

	t               *testing.T
	store           kvstore.KVStore
	assetIDsByAlias map[string]AssetID
	accountsByAlias map[string]AccountID
	aliasesMutex    sync.RWMutex
	eventsMutex     sync.Mutex
}

// NewTestFramework creates a new TestFramework with an in-memory store. Unless overridden by the given options, the
// Registry uses a DeterministicRandomness and a fixed clock, so that runs are reproducible.
func NewTestFramework(t *testing.T, options ...Option) (new *TestFramework) {
	new = &TestFramework{
		t:               t,
		store:           mapdb.NewMapDB(),
		assetIDsByAlias: make(map[string]AssetID),
		accountsByAlias: make(map[string]AccountID),
	}

	new.Registry = New(new.store, append([]Option{
		WithRandomness(NewDeterministicRandomness([]byte(t.Name()))),
		WithTimeProvider(func() time.Time { return time.Unix(1652000000, 0) }),
	}, options...)...)

	new.Registry.Events.AssetCreated.Hook(event.NewClosure(func(createdEvent *AssetCreatedEvent) {
		new.eventsMutex.Lock()
		defer new.eventsMutex.Unlock()

		new.CreatedEvents = append(new.CreatedEvents, createdEvent)
	}))
	new.Registry.Events.AssetTransferred.Hook(event.NewClosure(func(transferredEvent *AssetTransferredEvent) {
		new.eventsMutex.Lock()
		defer new.eventsMutex.Unlock()

		new.TransferredEvents = append(new.TransferredEvents, transferredEvent)
	}))

	return new
}

// Store returns the KVStore that holds the state of the Registry.
func (t *TestFramework) Store() kvstore.KVStore {
	return t.store
}

// Account returns the AccountID that belongs to the given alias.
func (t *TestFramework) Account(alias string) (accountID AccountID) {
	t.aliasesMutex.Lock()
	defer t.aliasesMutex.Unlock()

	accountID, exists := t.accountsByAlias[alias]
	if !exists {
		accountID = NewAccountID([]byte(alias))
		t.accountsByAlias[alias] = accountID
	}

	return accountID
}

// AssetID returns the AssetID that was registered under the given alias.
// Panics if it doesn't exist.
func (t *TestFramework) AssetID(alias string) (assetID AssetID) {
	t.aliasesMutex.RLock()
	defer t.aliasesMutex.RUnlock()

	assetID, exists := t.assetIDsByAlias[alias]
	if !exists {
		panic(fmt.Sprintf("unknown asset alias: %s", alias))
	}

	return assetID
}

// AssetIDs returns the AssetIDs that were registered under the given aliases.
func (t *TestFramework) AssetIDs(aliases ...string) (assetIDs []AssetID) {
	assetIDs = make([]AssetID, 0, len(aliases))
	for _, alias := range aliases {
		assetIDs = append(assetIDs, t.AssetID(alias))
	}

	return assetIDs
}

// CreateAsset creates an asset for the given owner and registers it under the given alias. The call has to succeed.
func (t *TestFramework) CreateAsset(assetAlias, ownerAlias string) (assetID AssetID) {
	assetID, err := t.Registry.CreateAsset(t.Account(ownerAlias))
	require.NoError(t.t, err, "failed to create asset %s", assetAlias)

	t.aliasesMutex.Lock()
	defer t.aliasesMutex.Unlock()
	t.assetIDsByAlias[assetAlias] = assetID

	return assetID
}

// Transfer transfers the asset with the given alias. It returns the error of the Registry.
func (t *TestFramework) Transfer(callerAlias, destinationAlias, assetAlias string) (err error) {
	return t.Registry.Transfer(t.Account(callerAlias), t.Account(destinationAlias), t.AssetID(assetAlias))
}

// Snapshot returns a copy of every key-value pair in the store.
func (t *TestFramework) Snapshot() (snapshot map[string][]byte) {
	snapshot = make(map[string][]byte)
	require.NoError(t.t, t.store.Iterate(kvstore.EmptyPrefix, func(key kvstore.Key, value kvstore.Value) bool {
		snapshot[string(key)] = append([]byte(nil), value...)

		return true
	}))

	return snapshot
}

// AssertOwner asserts that the asset with the given alias is owned by the given account.
func (t *TestFramework) AssertOwner(assetAlias, ownerAlias string) {
	asset, err := t.Registry.Asset(t.AssetID(assetAlias))
	require.NoError(t.t, err)
	assert.Equal(t.t, t.Account(ownerAlias), asset.Owner(), "wrong owner of %s", assetAlias)
}

// AssertOwnedAssets asserts that the account holds exactly the given assets. The order is not checked, since removals
// reorder the entries.
func (t *TestFramework) AssertOwnedAssets(ownerAlias string, assetAliases ...string) {
	ownedAssets, err := t.Registry.OwnedAssets(t.Account(ownerAlias))
	require.NoError(t.t, err)
	assert.ElementsMatch(t.t, t.AssetIDs(assetAliases...), ownedAssets, "wrong assets of %s", ownerAlias)
}

// AssertInvariants asserts that the committed state is consistent.
func (t *TestFramework) AssertInvariants() {
	assert.NoError(t.t, t.Registry.CheckInvariants())
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
