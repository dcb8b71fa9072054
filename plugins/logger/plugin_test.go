package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoot(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "node.log")

	v := viper.New()
	v.Set(CfgLoggerLevel, "warn")
	v.Set(CfgLoggerEncoding, "json")
	v.Set(CfgLoggerOutputPaths, []string{logFile})

	root, err := NewRoot(v)
	require.NoError(t, err)

	log := root.NewLogger("Registry")
	log.Infow("hidden")
	log.Warnw("visible", "assetID", "abc")
	require.NoError(t, root.Sync())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), `"logger":"Registry"`)
	assert.Contains(t, string(content), `"assetID":"abc"`)
}

func TestNewRoot_InvalidLevel(t *testing.T) {
	v := viper.New()
	v.Set(CfgLoggerLevel, "loud")

	_, err := NewRoot(v)
	assert.Error(t, err)
}
