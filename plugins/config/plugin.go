// Package config merges the command line flags of all plugins with the config file and the environment.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// PluginName is the name of the config plugin.
const PluginName = "Config"

// ErrConfigNotFound is returned if no config file exists and the config file check was not skipped.
var ErrConfigNotFound = errors.New("no config file present, please use the provided config.default.json to create a config.json")

// Node is viper
var Node = viper.New()

// Fetch parses the command line flags and reads the config values into Node.
func Fetch() error {
	flag.Parse()

	return Load(Node, flag.CommandLine, *configDirPath, *configName, *skipConfigAvailable)
}

// Load binds the flags to the given viper instance and reads in a single config file starting with configName and
// ending with: .json, .toml, .yaml or .yml (in this sequence). Environment variables take precedence over the file, with
// dots replaced by underscores (e.g. WEBAPI_BINDADDRESS).
func Load(v *viper.Viper, flags *flag.FlagSet, configDir, configName string, skipConfigAvailable bool) error {
	// replace dots with underscores in env
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return errors.Errorf("failed to bind flags: %w", err)
	}

	v.SetConfigName(configName)
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return errors.Errorf("failed to read config file: %w", err)
		}
		if !skipConfigAvailable {
			return errors.Errorf("%s in %s: %w", configName, configDir, ErrConfigNotFound)
		}
	}

	return nil
}
