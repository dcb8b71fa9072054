package ratelimiter

import (
	"fmt"
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/logger"
	"github.com/paulbellamy/ratecounter"
	"go.uber.org/atomic"
)

// RateLimit describes how many requests an account may issue per interval.
type RateLimit struct {
	Interval time.Duration
	Limit    int
}

func (rl RateLimit) String() string {
	return fmt.Sprintf("%d per %s", rl.Limit, rl.Interval)
}

// LimitHitEvent is triggered the first time an account exceeds its limit within an interval.
type LimitHitEvent struct {
	Key       string
	RateLimit *RateLimit
}

// AccountRateLimiter counts the mutating requests of every account and rejects them once the limit is exceeded.
// Records of idle accounts expire after one interval.
type AccountRateLimiter struct {
	// LimitHit is triggered when an account hits the limit.
	LimitHit *event.Event[*LimitHitEvent]

	rateLimit      *RateLimit
	accountRecords *ttlcache.Cache
	log            *logger.Logger
}

// NewAccountRateLimiter returns a limiter that allows limit requests per interval and account.
func NewAccountRateLimiter(interval time.Duration, limit int, log *logger.Logger) (*AccountRateLimiter, error) {
	records := ttlcache.NewCache()
	records.SetLoaderFunction(func(_ string) (interface{}, time.Duration, error) {
		record := &limiterRecord{counter: ratecounter.NewRateCounter(interval), limitHitReported: atomic.NewBool(false)}
		return record, ttlcache.ItemExpireWithGlobalTTL, nil
	})
	if err := records.SetTTL(interval); err != nil {
		return nil, errors.WithStack(err)
	}
	return &AccountRateLimiter{
		LimitHit:       event.New[*LimitHitEvent](),
		rateLimit:      &RateLimit{Interval: interval, Limit: limit},
		accountRecords: records,
		log:            log,
	}, nil
}

type limiterRecord struct {
	counter          *ratecounter.RateCounter
	limitHitReported *atomic.Bool
}

// Allow counts a request of the account identified by key and reports whether it is within the limit. Counting
// failures do not block the request.
func (arl *AccountRateLimiter) Allow(key string) (allowed bool) {
	allowed, err := arl.doCount(key)
	if err != nil {
		arl.log.Warnw("Rate limiter failed to count account activity", "account", key, "err", err)
		return true
	}
	return allowed
}

// Close stops the expiration of account records.
func (arl *AccountRateLimiter) Close() {
	if err := arl.accountRecords.Close(); err != nil {
		arl.log.Errorw("Failed to close account records cache", "err", err)
	}
}

func (arl *AccountRateLimiter) doCount(key string) (allowed bool, err error) {
	recordI, err := arl.accountRecords.Get(key)
	if err != nil {
		return false, errors.WithStack(err)
	}
	record := recordI.(*limiterRecord)
	record.counter.Incr(1)
	if int(record.counter.Rate()) <= arl.rateLimit.Limit {
		record.limitHitReported.Store(false)
		return true, nil
	}

	if !record.limitHitReported.Swap(true) {
		arl.log.Infow("Account hit the request limit", "rateLimit", arl.rateLimit.String(), "account", key)
		arl.LimitHit.Trigger(&LimitHitEvent{Key: key, RateLimit: arl.rateLimit})
	}
	return false, nil
}
