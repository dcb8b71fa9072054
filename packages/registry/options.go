package registry

import (
	"time"

	"github.com/iotaledger/hive.go/logger"
	"go.uber.org/zap"

	"github.com/iotaledger/assetledger/packages/clock"
)

// DefaultOwnedAssetsLimit is the number of assets an account can hold if no limit was configured.
const DefaultOwnedAssetsLimit = 10

// region Option ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Option represents the return type of optional parameters that can be handed into the constructor of the Registry to
// configure its behavior.
type Option func(*options)

// WithOwnedAssetsLimit is an Option for the Registry that configures how many assets a single account can hold.
func WithOwnedAssetsLimit(limit int) Option {
	return func(options *options) {
		options.ownedAssetsLimit = limit
	}
}

// WithRandomness is an Option for the Registry that configures the source of the seeds of new asset identities.
func WithRandomness(randomness Randomness) Option {
	return func(options *options) {
		options.randomness = randomness
	}
}

// WithIdentityGenerator is an Option for the Registry that configures how asset identities are derived.
func WithIdentityGenerator(identityGenerator IdentityGenerator) Option {
	return func(options *options) {
		options.identityGenerator = identityGenerator
	}
}

// WithTimeProvider is an Option for the Registry that configures the clock that stamps new assets.
func WithTimeProvider(timeProvider func() time.Time) Option {
	return func(options *options) {
		options.timeProvider = timeProvider
	}
}

// WithLogger is an Option for the Registry that configures the logger.
func WithLogger(log *logger.Logger) Option {
	return func(options *options) {
		options.log = log
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region options //////////////////////////////////////////////////////////////////////////////////////////////////////

// options is a container for all configurable parameters of a Registry.
type options struct {
	// ownedAssetsLimit contains the maximum number of assets per account.
	ownedAssetsLimit int
	// randomness contains the source of identity seeds.
	randomness Randomness
	// identityGenerator contains the function that derives asset identities.
	identityGenerator IdentityGenerator
	// timeProvider contains the clock of the host.
	timeProvider func() time.Time
	// log contains the logger of the Registry.
	log *logger.Logger
}

// newOptions returns a new options object that corresponds to the handed in options and which is derived from the
// default options.
func newOptions(option ...Option) (new *options) {
	return (&options{
		ownedAssetsLimit:  DefaultOwnedAssetsLimit,
		randomness:        SystemRandomness{},
		identityGenerator: DeriveAssetID,
		timeProvider:      clock.SyncedTime,
		log:               zap.NewNop().Sugar(),
	}).apply(option...)
}

// apply modifies the options object by overriding the handed in options.
func (o *options) apply(options ...Option) (self *options) {
	for _, option := range options {
		option(o)
	}

	return o
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
