package registry

import (
	"crypto/rand"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/byteutils"
	"github.com/iotaledger/hive.go/marshalutil"
	"golang.org/x/crypto/blake2b"
)

// region IdentityGenerator ////////////////////////////////////////////////////////////////////////////////////////////

// IdentityGenerator derives the identity of a new asset from the current nonce and the seed that the Randomness
// returned for it. It must be a pure function of its inputs.
type IdentityGenerator func(nonce uint64, seed []byte) AssetID

// DeriveAssetID is the default IdentityGenerator. It hashes the seed together with the encoded nonce.
func DeriveAssetID(nonce uint64, seed []byte) AssetID {
	hash := blake2b.Sum256(byteutils.ConcatBytes(seed, NonceBytes(nonce)))

	return hash[:]
}

// NonceBytes returns the little endian encoding of the nonce that is used as the subject of the Randomness.
func NonceBytes(nonce uint64) []byte {
	marshalUtil := marshalutil.New(marshalutil.Uint64Size)
	marshalUtil.WriteUint64(nonce)

	return marshalUtil.Bytes()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Randomness ///////////////////////////////////////////////////////////////////////////////////////////////////

// Randomness is the source of the seeds that asset identities are derived from.
type Randomness interface {
	// Random returns a seed for the given subject.
	Random(subject []byte) (seed []byte, err error)
}

// DeterministicRandomness is a Randomness that derives its seeds from a fixed secret, so that replaying the same calls
// results in the same identities.
type DeterministicRandomness struct {
	secret []byte
}

// NewDeterministicRandomness returns a DeterministicRandomness for the given secret.
func NewDeterministicRandomness(secret []byte) (new *DeterministicRandomness) {
	return &DeterministicRandomness{
		secret: append([]byte(nil), secret...),
	}
}

// Random returns the hash of the secret and the subject.
func (d *DeterministicRandomness) Random(subject []byte) (seed []byte, err error) {
	hash := blake2b.Sum256(byteutils.ConcatBytes(d.secret, subject))

	return hash[:], nil
}

// SystemRandomness is a Randomness that ignores the subject and reads its seeds from the operating system.
type SystemRandomness struct{}

// Random returns 32 random bytes.
func (SystemRandomness) Random([]byte) (seed []byte, err error) {
	seed = make([]byte, blake2b.Size256)
	if _, err = rand.Read(seed); err != nil {
		return nil, errors.Errorf("failed to read random seed: %w", err)
	}

	return seed, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
