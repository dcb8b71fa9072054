package registry

import (
	"github.com/cockroachdb/errors"
)

// AssetStore is the keyed mapping from AssetID to Asset. It reads and writes through the mutations of the current call.
type AssetStore struct {
	mutations *mutations
}

// newAssetStore returns an AssetStore that operates on the given mutations.
func newAssetStore(mutations *mutations) (new *AssetStore) {
	return &AssetStore{
		mutations: mutations,
	}
}

// Get returns the Asset with the given identity.
func (a *AssetStore) Get(assetID AssetID) (asset *Asset, err error) {
	assetBytes, exists, err := a.mutations.Get(assetKey(assetID))
	if err != nil {
		return nil, errors.Errorf("failed to load %s: %w", assetID, err)
	}
	if !exists {
		return nil, errors.Errorf("failed to load %s: %w", assetID, ErrAssetNotFound)
	}

	if asset, err = AssetFromBytes(assetBytes); err != nil {
		return nil, errors.Errorf("failed to parse %s: %w", assetID, err)
	}

	return asset, nil
}

// Contains returns true if an Asset with the given identity exists.
func (a *AssetStore) Contains(assetID AssetID) (contains bool, err error) {
	return a.mutations.Has(assetKey(assetID))
}

// Insert stores a new Asset. It fails if an Asset with the same identity exists already.
func (a *AssetStore) Insert(asset *Asset) (err error) {
	contains, err := a.Contains(asset.ID())
	if err != nil {
		return err
	}
	if contains {
		return errors.Errorf("failed to insert %s: %w", asset.ID(), ErrDuplicateIdentity)
	}

	a.mutations.Set(assetKey(asset.ID()), asset.Bytes())

	return nil
}

// SetOwner updates the owner of an existing Asset and leaves all other fields untouched.
func (a *AssetStore) SetOwner(assetID AssetID, owner AccountID) (err error) {
	asset, err := a.Get(assetID)
	if err != nil {
		return err
	}

	if asset.setOwner(owner) {
		a.mutations.Set(assetKey(assetID), asset.Bytes())
	}

	return nil
}
