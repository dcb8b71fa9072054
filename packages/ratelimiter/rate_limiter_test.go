package ratelimiter

import (
	"testing"
	"time"

	"github.com/iotaledger/hive.go/generics/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAccountRateLimiter_Allow(t *testing.T) {
	limiter, err := NewAccountRateLimiter(time.Minute, 3, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer limiter.Close()

	var hits []*LimitHitEvent
	limiter.LimitHit.Hook(event.NewClosure(func(hitEvent *LimitHitEvent) {
		hits = append(hits, hitEvent)
	}))

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("A"))
	}
	assert.False(t, limiter.Allow("A"))
	assert.False(t, limiter.Allow("A"))
	assert.True(t, limiter.Allow("B"))

	require.Len(t, hits, 1)
	assert.Equal(t, "A", hits[0].Key)
	assert.Equal(t, "3 per 1m0s", hits[0].RateLimit.String())
}
