// Package registry is a plugin that constructs the asset Registry from the config and logs its events.
package registry

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/logger"
	"github.com/mr-tron/base58"
	"github.com/spf13/viper"

	"github.com/iotaledger/assetledger/packages/registry"
)

// PluginName is the name of the registry plugin.
const PluginName = "Registry"

// New creates the Registry configured by the given viper instance on top of the given store.
func New(v *viper.Viper, store kvstore.KVStore, log *logger.Logger) (*registry.Registry, error) {
	ownedAssetsLimit := v.GetInt(CfgOwnedAssetsLimit)
	if ownedAssetsLimit < 1 {
		return nil, errors.Errorf("%s must be positive but is %d", CfgOwnedAssetsLimit, ownedAssetsLimit)
	}

	randomness, err := randomnessFromSeed(v.GetString(CfgRandomnessSeed))
	if err != nil {
		return nil, err
	}

	r := registry.New(store,
		registry.WithOwnedAssetsLimit(ownedAssetsLimit),
		registry.WithRandomness(randomness),
		registry.WithLogger(log),
	)

	r.Events.AssetCreated.Hook(event.NewClosure(func(createdEvent *registry.AssetCreatedEvent) {
		log.Infow("Asset created", "assetID", createdEvent.AssetID.Base58(), "owner", createdEvent.Owner.Base58())
	}))
	r.Events.AssetTransferred.Hook(event.NewClosure(func(transferredEvent *registry.AssetTransferredEvent) {
		log.Infow("Asset transferred", "assetID", transferredEvent.AssetID.Base58(), "from", transferredEvent.From.Base58(), "to", transferredEvent.To.Base58())
	}))

	if err = r.CheckInvariants(); err != nil {
		return nil, errors.Errorf("registry state is corrupted: %w", err)
	}
	log.Infow("Registry loaded", "ownedAssetsLimit", ownedAssetsLimit)

	return r, nil
}

func randomnessFromSeed(seed string) (registry.Randomness, error) {
	if seed == "" {
		return registry.SystemRandomness{}, nil
	}

	secret, err := base58.Decode(seed)
	if err != nil {
		return nil, errors.Errorf("invalid %s: %w", CfgRandomnessSeed, err)
	}

	return registry.NewDeterministicRandomness(secret), nil
}
