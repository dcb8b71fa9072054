package registry

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/iotaledger/assetledger/packages/datastructure/boundedslice"
)

// region OwnerIndex ///////////////////////////////////////////////////////////////////////////////////////////////////

// OwnerIndex maps accounts to the bounded sequence of AssetIDs that they hold. An account without an entry holds
// nothing.
type OwnerIndex struct {
	mutations *mutations
	capacity  int
}

// newOwnerIndex returns an OwnerIndex with the given capacity that operates on the given mutations.
func newOwnerIndex(mutations *mutations, capacity int) (new *OwnerIndex) {
	return &OwnerIndex{
		mutations: mutations,
		capacity:  capacity,
	}
}

// List returns the AssetIDs held by the owner (empty if the owner is unknown).
func (o *OwnerIndex) List(owner AccountID) (assetIDs []AssetID, err error) {
	ownedAssets, err := o.load(owner)
	if err != nil {
		return nil, err
	}

	return ownedAssets.Slice(), nil
}

// TryAppend adds the AssetID to the entry of the owner. The entry stays untouched if the owner is at capacity.
func (o *OwnerIndex) TryAppend(owner AccountID, assetID AssetID) (err error) {
	ownedAssets, err := o.load(owner)
	if err != nil {
		return err
	}

	if ownedAssets.IsFull() {
		return errors.Errorf("%s already holds %d assets: %w", owner, ownedAssets.Len(), ErrCapacityExceeded)
	}
	if err = ownedAssets.TryAppend(assetID); err != nil {
		return err
	}
	o.store(owner, ownedAssets)

	return nil
}

// Remove deletes the AssetID from the entry of the owner by swapping it with the last element. The order of the
// remaining AssetIDs is not preserved.
func (o *OwnerIndex) Remove(owner AccountID, assetID AssetID) (err error) {
	ownedAssets, err := o.load(owner)
	if err != nil {
		return err
	}

	index := ownedAssets.IndexFunc(assetID.Equal)
	if index == -1 {
		return errors.Errorf("%s is not held by %s: %w", assetID, owner, ErrOwnedAssetNotFound)
	}
	if _, err = ownedAssets.SwapRemove(index); err != nil {
		return err
	}
	o.store(owner, ownedAssets)

	return nil
}

// load reads the entry of the owner. An entry that holds more AssetIDs than the capacity (i.e. the limit was lowered
// after it was written) is reported as an inconsistency and is never silently truncated.
func (o *OwnerIndex) load(owner AccountID) (ownedAssets *boundedslice.BoundedSlice[AssetID], err error) {
	entryBytes, exists, err := o.mutations.Get(ownedAssetsKey(owner))
	if err != nil {
		return nil, errors.Errorf("failed to load owned assets of %s: %w", owner, err)
	}
	if !exists {
		return boundedslice.New[AssetID](o.capacity), nil
	}

	_, assetIDs, err := ownedAssetsFromBytes(entryBytes)
	if err != nil {
		return nil, errors.Errorf("failed to parse owned assets of %s: %w", owner, err)
	}

	if ownedAssets, err = boundedslice.FromSlice(o.capacity, assetIDs); err != nil {
		return nil, errors.Mark(errors.Errorf("entry of %s exceeds the limit (%v): %w", owner, err, ErrInconsistentState), cerrors.ErrFatal)
	}

	return ownedAssets, nil
}

// store buffers the entry of the owner.
func (o *OwnerIndex) store(owner AccountID, ownedAssets *boundedslice.BoundedSlice[AssetID]) {
	o.mutations.Set(ownedAssetsKey(owner), ownedAssetsBytes(owner, ownedAssets.Slice()))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region utility functions ////////////////////////////////////////////////////////////////////////////////////////////

// ownedAssetsBytes marshals an OwnerIndex entry.
func ownedAssetsBytes(owner AccountID, assetIDs []AssetID) []byte {
	marshalUtil := marshalutil.New()
	marshalUtil.WriteBytes(owner.Bytes())
	marshalUtil.WriteUint32(uint32(len(assetIDs)))
	for _, assetID := range assetIDs {
		writeAssetID(marshalUtil, assetID)
	}

	return marshalUtil.Bytes()
}

// ownedAssetsFromBytes unmarshals an OwnerIndex entry.
func ownedAssetsFromBytes(data []byte) (owner AccountID, assetIDs []AssetID, err error) {
	marshalUtil := marshalutil.New(data)

	ownerBytes, err := marshalUtil.ReadBytes(AccountIDLength)
	if err != nil {
		return EmptyAccountID, nil, errors.Errorf("failed to parse owner: %w", err)
	}
	copy(owner[:], ownerBytes)

	count, err := marshalUtil.ReadUint32()
	if err != nil {
		return EmptyAccountID, nil, errors.Errorf("failed to parse number of assets: %w", err)
	}

	assetIDs = make([]AssetID, 0, count)
	for i := uint32(0); i < count; i++ {
		assetID, readErr := readAssetID(marshalUtil)
		if readErr != nil {
			return EmptyAccountID, nil, errors.Errorf("failed to parse AssetID %d: %w", i, readErr)
		}
		assetIDs = append(assetIDs, assetID)
	}

	return owner, assetIDs, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
