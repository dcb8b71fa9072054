package registry

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/kvstore"

	"github.com/iotaledger/assetledger/packages/database"
)

// CheckInvariants walks the committed state and verifies that the AssetStore and the OwnerIndex agree with each other:
// every asset is listed exactly once in the entry of its owner, every listed asset is owned by the account that lists
// it, no entry exceeds the configured limit and the asset counter matches the number of stored assets.
func (r *Registry) CheckInvariants() (err error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	owners := make(map[string]AccountID)
	if err = r.iterate(PrefixAssetStorage, func(value []byte) (err error) {
		asset, err := AssetFromBytes(value)
		if err != nil {
			return errors.Errorf("failed to parse stored asset: %w", err)
		}
		owners[string(asset.ID())] = asset.Owner()

		return nil
	}); err != nil {
		return err
	}

	indexed := make(map[string]AccountID)
	if err = r.iterate(PrefixOwnerIndexStorage, func(value []byte) (err error) {
		owner, assetIDs, err := ownedAssetsFromBytes(value)
		if err != nil {
			return errors.Errorf("failed to parse owner index entry: %w", err)
		}
		if len(assetIDs) > r.options.ownedAssetsLimit {
			return errors.Errorf("%s holds %d assets (limit %d): %w", owner, len(assetIDs), r.options.ownedAssetsLimit, ErrInconsistentState)
		}

		for _, assetID := range assetIDs {
			if previousOwner, exists := indexed[string(assetID)]; exists {
				return errors.Errorf("%s is listed by %s and %s: %w", assetID, previousOwner, owner, ErrInconsistentState)
			}
			indexed[string(assetID)] = owner

			actualOwner, exists := owners[string(assetID)]
			if !exists {
				return errors.Errorf("%s lists unknown %s: %w", owner, assetID, ErrInconsistentState)
			}
			if actualOwner != owner {
				return errors.Errorf("%s lists %s which is owned by %s: %w", owner, assetID, actualOwner, ErrInconsistentState)
			}
		}

		return nil
	}); err != nil {
		return err
	}

	for assetID, owner := range owners {
		if _, exists := indexed[assetID]; !exists {
			return errors.Errorf("%s is missing in the entry of %s: %w", AssetID(assetID), owner, ErrInconsistentState)
		}
	}

	assetCount, err := readCounter(newMutations(r.store), assetCountKey())
	if err != nil {
		return err
	}
	if assetCount != uint64(len(owners)) {
		return errors.Errorf("asset counter is %d but %d assets are stored: %w", assetCount, len(owners), ErrInconsistentState)
	}

	return nil
}

// iterate calls the consumer for every committed value stored under the given registry prefix and stops at the first
// error.
func (r *Registry) iterate(prefix byte, consumer func(value []byte) error) (err error) {
	if iterationErr := r.store.Iterate([]byte{database.PrefixRegistry, prefix}, func(_ kvstore.Key, value kvstore.Value) bool {
		err = consumer(value)

		return err == nil
	}); iterationErr != nil {
		return errors.Errorf("failed to iterate prefix %d: %w", prefix, iterationErr)
	}

	return err
}
