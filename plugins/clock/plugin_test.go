package clock

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSynchronizer_QueryNTPPool(t *testing.T) {
	v := viper.New()
	v.Set(CfgNTPPools, []string{"pool"})

	synchronizer, err := New(v, zap.NewNop().Sugar())
	require.NoError(t, err)

	var queried []string
	synchronizer.fetchOffset = func(host string) error {
		queried = append(queried, host)
		return errors.New("unreachable")
	}
	assert.False(t, synchronizer.queryNTPPool())
	assert.Equal(t, []string{"pool", "pool", "pool"}, queried)

	synchronizer.fetchOffset = func(string) error { return nil }
	assert.True(t, synchronizer.queryNTPPool())
}

func TestNew_NoPools(t *testing.T) {
	_, err := New(viper.New(), zap.NewNop().Sugar())
	assert.True(t, errors.Is(err, ErrNoNTPPools))
}
