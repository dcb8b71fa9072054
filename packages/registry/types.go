package registry

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// region AccountID ////////////////////////////////////////////////////////////////////////////////////////////////////

// AccountIDLength contains the byte length of a serialized AccountID.
const AccountIDLength = 32

// AccountID is the identity of an account that can own assets.
type AccountID [AccountIDLength]byte

// EmptyAccountID contains the null-value of the AccountID type.
var EmptyAccountID AccountID

// NewAccountID derives the AccountID that belongs to the given key material (i.e. a public key).
func NewAccountID(keyMaterial []byte) (accountID AccountID) {
	return blake2b.Sum256(keyMaterial)
}

// AccountIDFromBytes unmarshals an AccountID from a sequence of bytes.
func AccountIDFromBytes(data []byte) (accountID AccountID, err error) {
	if len(data) != AccountIDLength {
		return EmptyAccountID, errors.Errorf("expected %d bytes but got %d: %w", AccountIDLength, len(data), ErrInvalidAccount)
	}
	copy(accountID[:], data)

	return accountID, nil
}

// AccountIDFromBase58 un-serializes an AccountID from a base58 encoded string.
func AccountIDFromBase58(base58String string) (accountID AccountID, err error) {
	decodedBytes, err := base58.Decode(base58String)
	if err != nil {
		return EmptyAccountID, errors.Errorf("could not decode base58 encoded AccountID: %w", ErrInvalidAccount)
	}

	return AccountIDFromBytes(decodedBytes)
}

// Bytes returns a marshaled version of the AccountID.
func (a AccountID) Bytes() []byte {
	return a[:]
}

// Base58 returns a base58 encoded version of the AccountID.
func (a AccountID) Base58() string {
	return base58.Encode(a[:])
}

// String returns a human-readable version of the AccountID.
func (a AccountID) String() string {
	return "AccountID(" + a.Base58() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AssetID //////////////////////////////////////////////////////////////////////////////////////////////////////

// AssetID is the opaque identity of an asset. It never changes once the asset was created.
type AssetID []byte

// AssetIDFromBase58 un-serializes an AssetID from a base58 encoded string.
func AssetIDFromBase58(base58String string) (assetID AssetID, err error) {
	decodedBytes, err := base58.Decode(base58String)
	if err != nil {
		return nil, errors.Errorf("could not decode base58 encoded AssetID: %w", ErrInvalidAssetID)
	}
	if len(decodedBytes) == 0 {
		return nil, errors.Errorf("empty AssetID: %w", ErrInvalidAssetID)
	}

	return decodedBytes, nil
}

// Bytes returns a copy of the bytes of the AssetID.
func (a AssetID) Bytes() []byte {
	return append([]byte(nil), a...)
}

// Equal returns true if both AssetIDs are identical.
func (a AssetID) Equal(other AssetID) bool {
	return bytes.Equal(a, other)
}

// Base58 returns a base58 encoded version of the AssetID.
func (a AssetID) Base58() string {
	return base58.Encode(a)
}

// String returns a human-readable version of the AssetID.
func (a AssetID) String() string {
	return "AssetID(" + a.Base58() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Gender ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Gender is the attribute of an asset that is derived from its AssetID.
type Gender uint8

const (
	// Male is the Gender of assets with an even AssetID length.
	Male Gender = iota
	// Female is the Gender of assets with an odd AssetID length.
	Female
)

// GenderFromAssetID derives the Gender of an asset from the parity of its AssetID length.
func GenderFromAssetID(assetID AssetID) Gender {
	if len(assetID)%2 == 0 {
		return Male
	}

	return Female
}

// String returns a human-readable version of the Gender.
func (g Gender) String() string {
	switch g {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return fmt.Sprintf("Gender(%d)", uint8(g))
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
