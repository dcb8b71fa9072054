// Package logger builds the root zap logger of the node from the logger.* config values.
package logger

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// PluginName is the name of the logger plugin.
const PluginName = "Logger"

// Root is the logger every component derives its named logger from.
type Root struct {
	*zap.Logger
}

// NewRoot creates the root logger configured by the given viper instance.
func NewRoot(v *viper.Viper) (root *Root, err error) {
	level := zap.NewAtomicLevel()
	if err = level.UnmarshalText([]byte(v.GetString(CfgLoggerLevel))); err != nil {
		return nil, errors.Errorf("invalid %s: %w", CfgLoggerLevel, err)
	}

	outputPaths := v.GetStringSlice(CfgLoggerOutputPaths)
	if len(outputPaths) == 0 {
		outputPaths = []string{"stdout"}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	cfg := zap.Config{
		Level:             level,
		Encoding:          v.GetString(CfgLoggerEncoding),
		EncoderConfig:     encoderConfig,
		OutputPaths:       outputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: v.GetBool(CfgLoggerDisableStacktrace),
	}
	if cfg.Encoding == "" {
		cfg.Encoding = "console"
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, errors.Errorf("failed to build logger: %w", err)
	}

	return &Root{Logger: zapLogger}, nil
}

// NewLogger returns the logger of the named component.
func (r *Root) NewLogger(name string) *logger.Logger {
	return r.Named(name).Sugar()
}
