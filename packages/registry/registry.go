package registry

import (
	"math"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/generics/dataflow"
	"github.com/iotaledger/hive.go/kvstore"
)

// region Registry /////////////////////////////////////////////////////////////////////////////////////////////////////

// Registry is the ledger component that keeps track of assets and their owners. Every call either commits all of its
// writes or none of them.
type Registry struct {
	// Events is a dictionary for Registry related events.
	Events *Events

	// store contains the KVStore that holds the committed state.
	store kvstore.KVStore

	// options is a dictionary for configuration parameters of the Registry.
	options *options

	// mutex serializes the calls that modify the state.
	mutex sync.RWMutex

	// eventMutex is taken before mutex is released, so hooked closures see events in commit order.
	eventMutex sync.Mutex
}

// New returns a new Registry that persists its state in the given store.
func New(store kvstore.KVStore, options ...Option) (new *Registry) {
	return &Registry{
		Events:  newEvents(),
		store:   store,
		options: newOptions(options...),
	}
}

// CreateAsset creates a new Asset that is owned by the caller and returns its identity.
func (r *Registry) CreateAsset(caller AccountID) (assetID AssetID, err error) {
	if caller == EmptyAccountID {
		return nil, errors.Errorf("failed to create asset: %w", ErrInvalidAccount)
	}

	params := &createAssetParams{
		Caller:    caller,
		Mutations: newMutations(r.store),
	}

	r.mutex.Lock()
	if err = r.createAssetDataFlow().Run(params); err != nil {
		r.mutex.Unlock()
		return nil, err
	}
	r.eventMutex.Lock()
	r.mutex.Unlock()
	defer r.eventMutex.Unlock()

	r.Events.AssetCreated.Trigger(&AssetCreatedEvent{
		AssetID: params.AssetID,
		Owner:   caller,
	})

	return params.AssetID, nil
}

// Transfer hands the Asset with the given identity from the caller over to the destination account.
func (r *Registry) Transfer(caller, destination AccountID, assetID AssetID) (err error) {
	if caller == EmptyAccountID || destination == EmptyAccountID {
		return errors.Errorf("failed to transfer %s: %w", assetID, ErrInvalidAccount)
	}
	if len(assetID) == 0 {
		return errors.Errorf("failed to transfer asset: %w", ErrInvalidAssetID)
	}

	params := &transferParams{
		Caller:      caller,
		Destination: destination,
		AssetID:     assetID,
		Mutations:   newMutations(r.store),
	}

	r.mutex.Lock()
	if err = r.transferDataFlow().Run(params); err != nil {
		r.mutex.Unlock()
		return err
	}
	r.eventMutex.Lock()
	r.mutex.Unlock()
	defer r.eventMutex.Unlock()

	r.Events.AssetTransferred.Trigger(&AssetTransferredEvent{
		From:    caller,
		To:      destination,
		AssetID: assetID,
	})

	return nil
}

// Asset returns the committed record of the Asset with the given identity.
func (r *Registry) Asset(assetID AssetID) (asset *Asset, err error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return newAssetStore(newMutations(r.store)).Get(assetID)
}

// OwnedAssets returns the identities of the Assets that are held by the given account.
func (r *Registry) OwnedAssets(owner AccountID) (assetIDs []AssetID, err error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return newOwnerIndex(newMutations(r.store), r.options.ownedAssetsLimit).List(owner)
}

// Nonce returns the nonce that will be used by the next call to CreateAsset.
func (r *Registry) Nonce() (nonce uint64, err error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return readCounter(newMutations(r.store), nonceKey())
}

// AssetCount returns the number of Assets that were created so far.
func (r *Registry) AssetCount() (assetCount uint64, err error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return readCounter(newMutations(r.store), assetCountKey())
}

// OwnedAssetsLimit returns the maximum number of Assets that a single account can hold.
func (r *Registry) OwnedAssetsLimit() int {
	return r.options.ownedAssetsLimit
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region create asset /////////////////////////////////////////////////////////////////////////////////////////////////

// createAssetParams is a container for parameters that have to be determined when creating an Asset.
type createAssetParams struct {
	Caller         AccountID
	Nonce          uint64
	AssetID        AssetID
	Asset          *Asset
	NextAssetCount uint64
	Mutations      *mutations
}

// createAssetDataFlow returns the DataFlow that creates an Asset. Every command is a precondition gate that aborts the
// flow before anything is committed.
func (r *Registry) createAssetDataFlow() *dataflow.DataFlow[*createAssetParams] {
	return dataflow.New[*createAssetParams](
		r.advanceNonceCommand,
		r.deriveAssetIDCommand,
		r.checkDuplicateIdentityCommand,
		r.buildAssetCommand,
		r.increaseAssetCountCommand,
		r.appendToCreatorCommand,
		r.insertAssetCommand,
		r.commitCreateAssetCommand,
	).WithSuccessCallback(func(params *createAssetParams) {
		r.options.log.Debugw("asset created", "assetID", params.AssetID.Base58(), "owner", params.Caller.Base58(), "nonce", params.Nonce)
	}).WithErrorCallback(func(err error, params *createAssetParams) {
		r.options.log.Infow("create asset aborted", "caller", params.Caller.Base58(), "nonce", params.Nonce, "err", err)
	})
}

// advanceNonceCommand reads the current nonce and persists its successor right away, outside of the buffered writes.
// The nonce therefore advances even if the call is aborted later on.
func (r *Registry) advanceNonceCommand(params *createAssetParams, next dataflow.Next[*createAssetParams]) (err error) {
	if params.Nonce, err = readCounter(params.Mutations, nonceKey()); err != nil {
		return errors.Errorf("failed to read nonce: %w", err)
	}

	if err = r.store.Set(nonceKey(), counterBytes(params.Nonce+1)); err != nil {
		return errors.Errorf("failed to advance nonce %d: %w", params.Nonce, err)
	}

	return next(params)
}

// deriveAssetIDCommand derives the identity of the new Asset from the nonce and the seed of the Randomness.
func (r *Registry) deriveAssetIDCommand(params *createAssetParams, next dataflow.Next[*createAssetParams]) (err error) {
	seed, err := r.options.randomness.Random(NonceBytes(params.Nonce))
	if err != nil {
		return errors.Errorf("failed to retrieve seed for nonce %d: %w", params.Nonce, err)
	}

	if params.AssetID = r.options.identityGenerator(params.Nonce, seed); len(params.AssetID) == 0 {
		return errors.Errorf("derived empty identity for nonce %d: %w", params.Nonce, ErrInvalidAssetID)
	}

	return next(params)
}

// checkDuplicateIdentityCommand aborts the DataFlow if an Asset with the derived identity exists already.
func (r *Registry) checkDuplicateIdentityCommand(params *createAssetParams, next dataflow.Next[*createAssetParams]) (err error) {
	contains, err := newAssetStore(params.Mutations).Contains(params.AssetID)
	if err != nil {
		return err
	}
	if contains {
		return errors.Errorf("failed to create %s: %w", params.AssetID, ErrDuplicateIdentity)
	}

	return next(params)
}

// buildAssetCommand creates the Asset record (including its derived Gender).
func (r *Registry) buildAssetCommand(params *createAssetParams, next dataflow.Next[*createAssetParams]) (err error) {
	params.Asset = NewAsset(params.AssetID, params.Caller, r.options.timeProvider())

	return next(params)
}

// increaseAssetCountCommand aborts the DataFlow if the asset counter would overflow.
func (r *Registry) increaseAssetCountCommand(params *createAssetParams, next dataflow.Next[*createAssetParams]) (err error) {
	assetCount, err := readCounter(params.Mutations, assetCountKey())
	if err != nil {
		return errors.Errorf("failed to read asset count: %w", err)
	}
	if assetCount == math.MaxUint64 {
		return errors.Errorf("failed to create %s: %w", params.AssetID, ErrArithmeticOverflow)
	}
	params.NextAssetCount = assetCount + 1

	return next(params)
}

// appendToCreatorCommand adds the Asset to the OwnerIndex entry of the caller. It aborts the DataFlow if the caller is
// at capacity, before the AssetStore is touched.
func (r *Registry) appendToCreatorCommand(params *createAssetParams, next dataflow.Next[*createAssetParams]) (err error) {
	if err = newOwnerIndex(params.Mutations, r.options.ownedAssetsLimit).TryAppend(params.Caller, params.AssetID); err != nil {
		return errors.Errorf("failed to create %s: %w", params.AssetID, err)
	}

	return next(params)
}

// insertAssetCommand adds the Asset to the AssetStore and increases the asset counter.
func (r *Registry) insertAssetCommand(params *createAssetParams, next dataflow.Next[*createAssetParams]) (err error) {
	if err = newAssetStore(params.Mutations).Insert(params.Asset); err != nil {
		return err
	}
	params.Mutations.Set(assetCountKey(), counterBytes(params.NextAssetCount))

	return next(params)
}

// commitCreateAssetCommand commits the buffered writes of the DataFlow.
func (r *Registry) commitCreateAssetCommand(params *createAssetParams, next dataflow.Next[*createAssetParams]) (err error) {
	if err = params.Mutations.Commit(); err != nil {
		return errors.Errorf("failed to commit creation of %s: %w", params.AssetID, err)
	}

	return next(params)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region transfer /////////////////////////////////////////////////////////////////////////////////////////////////////

// transferParams is a container for parameters that have to be determined when transferring an Asset.
type transferParams struct {
	Caller      AccountID
	Destination AccountID
	AssetID     AssetID
	Asset       *Asset
	Mutations   *mutations
}

// transferDataFlow returns the DataFlow that transfers an Asset.
func (r *Registry) transferDataFlow() *dataflow.DataFlow[*transferParams] {
	return dataflow.New[*transferParams](
		r.loadAssetCommand,
		r.checkOwnerCommand,
		r.checkSelfTransferCommand,
		r.removeFromCallerCommand,
		r.appendToDestinationCommand,
		r.setOwnerCommand,
		r.commitTransferCommand,
	).WithSuccessCallback(func(params *transferParams) {
		r.options.log.Debugw("asset transferred", "assetID", params.AssetID.Base58(), "from", params.Caller.Base58(), "to", params.Destination.Base58())
	}).WithErrorCallback(func(err error, params *transferParams) {
		r.options.log.Infow("transfer aborted", "assetID", params.AssetID.Base58(), "caller", params.Caller.Base58(), "err", err)
	})
}

// loadAssetCommand aborts the DataFlow if the Asset does not exist.
func (r *Registry) loadAssetCommand(params *transferParams, next dataflow.Next[*transferParams]) (err error) {
	if params.Asset, err = newAssetStore(params.Mutations).Get(params.AssetID); err != nil {
		return err
	}

	return next(params)
}

// checkOwnerCommand aborts the DataFlow if the caller does not own the Asset.
func (r *Registry) checkOwnerCommand(params *transferParams, next dataflow.Next[*transferParams]) (err error) {
	if params.Asset.Owner() != params.Caller {
		return errors.Errorf("%s can not transfer %s: %w", params.Caller, params.AssetID, ErrNotOwner)
	}

	return next(params)
}

// checkSelfTransferCommand aborts the DataFlow if the destination is the caller itself.
func (r *Registry) checkSelfTransferCommand(params *transferParams, next dataflow.Next[*transferParams]) (err error) {
	if params.Caller == params.Destination {
		return errors.Errorf("%s can not transfer %s to itself: %w", params.Caller, params.AssetID, ErrSelfTransfer)
	}

	return next(params)
}

// removeFromCallerCommand removes the Asset from the OwnerIndex entry of the caller. A missing entry means that the
// AssetStore and the OwnerIndex diverged, which is reported as a fatal error.
func (r *Registry) removeFromCallerCommand(params *transferParams, next dataflow.Next[*transferParams]) (err error) {
	if err = newOwnerIndex(params.Mutations, r.options.ownedAssetsLimit).Remove(params.Caller, params.AssetID); err != nil {
		if errors.Is(err, ErrOwnedAssetNotFound) {
			return errors.Mark(errors.Errorf("owner of %s does not index it (%v): %w", params.AssetID, err, ErrInconsistentState), cerrors.ErrFatal)
		}

		return err
	}

	return next(params)
}

// appendToDestinationCommand adds the Asset to the OwnerIndex entry of the destination. If the destination is at
// capacity, the DataFlow is aborted and the buffered removal from the caller is discarded with it.
func (r *Registry) appendToDestinationCommand(params *transferParams, next dataflow.Next[*transferParams]) (err error) {
	if err = newOwnerIndex(params.Mutations, r.options.ownedAssetsLimit).TryAppend(params.Destination, params.AssetID); err != nil {
		return errors.Errorf("failed to transfer %s: %w", params.AssetID, err)
	}

	return next(params)
}

// setOwnerCommand updates the owner of the Asset in the AssetStore.
func (r *Registry) setOwnerCommand(params *transferParams, next dataflow.Next[*transferParams]) (err error) {
	if err = newAssetStore(params.Mutations).SetOwner(params.AssetID, params.Destination); err != nil {
		return err
	}

	return next(params)
}

// commitTransferCommand commits the buffered writes of the DataFlow.
func (r *Registry) commitTransferCommand(params *transferParams, next dataflow.Next[*transferParams]) (err error) {
	if err = params.Mutations.Commit(); err != nil {
		return errors.Errorf("failed to commit transfer of %s: %w", params.AssetID, err)
	}

	return next(params)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
