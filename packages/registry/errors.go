package registry

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrAssetNotFound is returned if an asset does not exist in the AssetStore.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrOwnedAssetNotFound is returned if an asset is missing in the OwnerIndex entry of an account.
	ErrOwnedAssetNotFound = errors.New("asset not found in owner index")

	// ErrDuplicateIdentity is returned if an asset with the same AssetID exists already.
	ErrDuplicateIdentity = errors.New("duplicate asset identity")

	// ErrNotOwner is returned if the caller tries to transfer an asset that it does not own.
	ErrNotOwner = errors.New("caller is not the owner of the asset")

	// ErrSelfTransfer is returned if the caller tries to transfer an asset to itself.
	ErrSelfTransfer = errors.New("transfer to self")

	// ErrCapacityExceeded is returned if an account already holds the maximum number of assets.
	ErrCapacityExceeded = errors.New("owned assets limit exceeded")

	// ErrArithmeticOverflow is returned if the asset counter can not be increased any further.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrInvalidAccount is returned if an AccountID is malformed or empty.
	ErrInvalidAccount = errors.New("invalid account")

	// ErrInvalidAssetID is returned if an AssetID is malformed or empty.
	ErrInvalidAssetID = errors.New("invalid asset id")

	// ErrInconsistentState is returned if the AssetStore and the OwnerIndex contradict each other.
	ErrInconsistentState = errors.New("inconsistent registry state")
)
