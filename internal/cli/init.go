package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/trailkit/pkg/types"
)

func newInitCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and data directories",
		Long:  "Create the configuration directory with a default config.yaml, and the data\ndirectory where session scripts are looked up.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, e)
		},
	}
}

func runInit(cmd *cobra.Command, e *env) error {
	settings, err := e.settings()
	if err != nil {
		return err
	}
	dataDir, err := e.dataDir(settings)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(e.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	configPath := filepath.Join(e.configDir, configFileExt)
	created, err := writeConfigIfMissing(configPath, e.flags.dataDir)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	if created {
		e.log.Debug("wrote default config", "path", configPath)
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create data directory: %w", err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "config: %s\n", configPath)
	fmt.Fprintf(out, "data:   %s\n", dataDir)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists it is left untouched and created is
// false.
func writeConfigIfMissing(path, dataDir string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := types.DefaultConfig()
	if dataDir != "" {
		abs, err := filepath.Abs(dataDir)
		if err != nil {
			return false, err
		}
		cfg.DataDir = abs
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# trailkit configuration\n# output: text | json\n")

	return true, os.WriteFile(path, append(header, data...), 0o644)
}
