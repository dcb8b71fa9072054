package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// region Asset ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Asset is the record of a collectible that is tracked by the Registry. Its identity and Gender are fixed at creation,
// only the owner is changed by transfers.
type Asset struct {
	id        AssetID
	price     uint64
	gender    Gender
	owner     AccountID
	createdAt time.Time

	mutex sync.RWMutex
}

// NewAsset returns a new Asset with the given identity that is owned by the given account.
func NewAsset(id AssetID, owner AccountID, createdAt time.Time) (new *Asset) {
	return &Asset{
		id:        id.Bytes(),
		gender:    GenderFromAssetID(id),
		owner:     owner,
		createdAt: createdAt,
	}
}

// AssetFromBytes unmarshals an Asset from a sequence of bytes.
func AssetFromBytes(data []byte) (asset *Asset, err error) {
	return AssetFromMarshalUtil(marshalutil.New(data))
}

// AssetFromMarshalUtil unmarshals an Asset using a MarshalUtil (for easier unmarshaling).
func AssetFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (asset *Asset, err error) {
	asset = new(Asset)

	if asset.id, err = readAssetID(marshalUtil); err != nil {
		return nil, errors.Errorf("failed to parse AssetID: %w", err)
	}
	if asset.price, err = marshalUtil.ReadUint64(); err != nil {
		return nil, errors.Errorf("failed to parse Price: %w", err)
	}
	genderByte, err := marshalUtil.ReadByte()
	if err != nil {
		return nil, errors.Errorf("failed to parse Gender: %w", err)
	}
	if asset.gender = Gender(genderByte); asset.gender != Male && asset.gender != Female {
		return nil, errors.Errorf("unknown gender %d", genderByte)
	}
	ownerBytes, err := marshalUtil.ReadBytes(AccountIDLength)
	if err != nil {
		return nil, errors.Errorf("failed to parse Owner: %w", err)
	}
	copy(asset.owner[:], ownerBytes)
	if asset.createdAt, err = marshalUtil.ReadTime(); err != nil {
		return nil, errors.Errorf("failed to parse CreatedAt: %w", err)
	}

	return asset, nil
}

// ID returns the identity of the Asset.
func (a *Asset) ID() AssetID {
	return a.id.Bytes()
}

// Price returns the price of the Asset.
func (a *Asset) Price() uint64 {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	return a.price
}

// Gender returns the attribute that was derived from the identity of the Asset.
func (a *Asset) Gender() Gender {
	return a.gender
}

// Owner returns the account that currently holds the Asset.
func (a *Asset) Owner() AccountID {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	return a.owner
}

// setOwner changes the account that holds the Asset.
func (a *Asset) setOwner(owner AccountID) (modified bool) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.owner == owner {
		return false
	}
	a.owner = owner

	return true
}

// CreatedAt returns the moment the Asset was created.
func (a *Asset) CreatedAt() time.Time {
	return a.createdAt
}

// Bytes returns a marshaled version of the Asset.
func (a *Asset) Bytes() []byte {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	marshalUtil := marshalutil.New()
	writeAssetID(marshalUtil, a.id)
	marshalUtil.WriteUint64(a.price)
	marshalUtil.WriteByte(byte(a.gender))
	marshalUtil.WriteBytes(a.owner.Bytes())
	marshalUtil.WriteTime(a.createdAt)

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the Asset.
func (a *Asset) String() string {
	return stringify.Struct("Asset",
		stringify.StructField("ID", a.ID().Base58()),
		stringify.StructField("Price", a.Price()),
		stringify.StructField("Gender", a.Gender().String()),
		stringify.StructField("Owner", a.Owner().Base58()),
		stringify.StructField("CreatedAt", fmt.Sprint(a.CreatedAt())),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region utility functions ////////////////////////////////////////////////////////////////////////////////////////////

// writeAssetID writes a length prefixed AssetID.
func writeAssetID(marshalUtil *marshalutil.MarshalUtil, assetID AssetID) {
	marshalUtil.WriteUint32(uint32(len(assetID)))
	marshalUtil.WriteBytes(assetID)
}

// readAssetID reads a length prefixed AssetID.
func readAssetID(marshalUtil *marshalutil.MarshalUtil) (assetID AssetID, err error) {
	length, err := marshalUtil.ReadUint32()
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return nil, ErrInvalidAssetID
	}
	assetIDBytes, err := marshalUtil.ReadBytes(int(length))
	if err != nil {
		return nil, err
	}

	return AssetID(assetIDBytes).Bytes(), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
