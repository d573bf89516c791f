// Config loading for the trailkit CLI.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/trailkit/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "TRAILKIT"

	// Config keys.
	cfgKeyOutput  = "output"
	cfgKeyDataDir = "data_dir"
)

// loadConfig reads config.yaml from configDir using Viper. Both keys resolve
// as flag > env > config.yaml > default. TRAILKIT_OUTPUT is bound here; the
// TRAILKIT_DATA_DIR override is applied by paths.ResolveDataDir, which also
// resolves relative paths. A missing config.yaml is not an error; "trailkit
// init" creates one.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyOutput, types.DefaultConfig().Output)
	v.SetDefault(cfgKeyDataDir, "")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	if err := v.BindEnv(cfgKeyOutput); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
