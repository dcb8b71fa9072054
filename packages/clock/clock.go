// Package clock provides the time of the node, corrected by the offset to a network time source.
package clock

import (
	"sync"
	"time"

	"github.com/beevik/ntp"
	"github.com/cockroachdb/errors"
)

var (
	offset      time.Duration
	offsetMutex sync.RWMutex
)

// FetchTimeOffset establishes the difference in local vs network time.
// This difference is stored as offset so that it can be used to adjust the local time.
func FetchTimeOffset(host string) (err error) {
	resp, err := ntp.Query(host)
	if err != nil {
		return errors.Errorf("failed to query NTP server %s: %w", host, err)
	}
	if err = resp.Validate(); err != nil {
		return errors.Errorf("invalid NTP response from %s: %w", host, err)
	}

	SetOffset(resp.ClockOffset)

	return nil
}

// SetOffset overrides the offset between the local and the network time.
func SetOffset(newOffset time.Duration) {
	offsetMutex.Lock()
	defer offsetMutex.Unlock()

	offset = newOffset
}

// Offset returns the current offset between the local and the network time.
func Offset() time.Duration {
	offsetMutex.RLock()
	defer offsetMutex.RUnlock()

	return offset
}

// SyncedTime gets the synchronized time (according to the network time source).
func SyncedTime() time.Time {
	return time.Now().Add(Offset())
}
