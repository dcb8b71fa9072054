package registry

import (
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/assetledger/packages/registry"
)

const (
	// CfgOwnedAssetsLimit defines the maximum number of assets a single account can hold.
	CfgOwnedAssetsLimit = "registry.ownedAssetsLimit"
	// CfgRandomnessSeed defines the base58 encoded secret of the deterministic randomness source.
	CfgRandomnessSeed = "registry.randomnessSeed"
)

func init() {
	flag.Int(CfgOwnedAssetsLimit, registry.DefaultOwnedAssetsLimit, "maximum number of assets a single account can hold")
	flag.String(CfgRandomnessSeed, "", "base58 encoded seed of the identity randomness (empty uses the randomness of the operating system)")
}
