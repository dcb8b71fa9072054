// Package clock keeps the offset of packages/clock in sync with the configured NTP pools.
package clock

import (
	"context"
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/spf13/viper"

	"github.com/iotaledger/assetledger/packages/clock"
)

// PluginName is the name of the clock plugin.
const PluginName = "Clock"

const (
	maxTries     = 3
	syncInterval = 30 * time.Minute
)

// ErrNoNTPPools is returned if no NTP pool was configured.
var ErrNoNTPPools = errors.New("at least 1 NTP pool needs to be provided to synchronize the local clock")

// Synchronizer periodically queries the NTP pools and updates the clock offset.
type Synchronizer struct {
	ntpPools    []string
	fetchOffset func(host string) error
	log         *logger.Logger
}

// New returns a Synchronizer for the NTP pools configured by the given viper instance.
func New(v *viper.Viper, log *logger.Logger) (*Synchronizer, error) {
	ntpPools := v.GetStringSlice(CfgNTPPools)
	if len(ntpPools) == 0 {
		return nil, ErrNoNTPPools
	}

	return &Synchronizer{
		ntpPools:    ntpPools,
		fetchOffset: clock.FetchTimeOffset,
		log:         log,
	}, nil
}

// Run syncs the clock on startup and then every syncInterval until the context is done.
func (s *Synchronizer) Run(ctx context.Context) {
	// sync clock on startup
	s.queryNTPPool()

	ticker := time.NewTicker(syncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// sync clock every 30min to counter drift
			s.queryNTPPool()
		case <-ctx.Done():
			return
		}
	}
}

// queryNTPPool queries configured ntpPools for maxTries.
func (s *Synchronizer) queryNTPPool() (synced bool) {
	s.log.Debug("Synchronizing clock...")
	for t := maxTries; t > 0; t-- {
		index := rand.Int() % len(s.ntpPools)
		if err := s.fetchOffset(s.ntpPools[index]); err != nil {
			s.log.Debugw("NTP query failed", "pool", s.ntpPools[index], "err", err)
			continue
		}

		s.log.Debugw("Synchronizing clock... done", "offset", clock.Offset())
		return true
	}

	s.log.Warn("error while trying to sync clock")
	return false
}
