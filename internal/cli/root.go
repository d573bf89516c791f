// Package cli implements the trailkit command-line interface: root command,
// global flags, config loading and the subcommands that drive the selection,
// breadcrumb and clone helpers.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/trailkit/internal/paths"
	"github.com/mesh-intelligence/trailkit/pkg/trailkit"
	"github.com/mesh-intelligence/trailkit/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool
}

// env is the state shared by subcommands once PersistentPreRunE has run.
type env struct {
	flags     rootFlags
	configDir string
	cfg       *viper.Viper
	log       *slog.Logger
}

// NewRootCmd creates the top-level "trailkit" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:     "trailkit",
		Short:   "Selection, breadcrumb and deep-clone helpers for UI state",
		Long:    "trailkit replays scripted UI sessions against the selection and breadcrumb\nhelpers, deep-clones plain documents, and classifies attachment names.",
		Version: trailkit.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&e.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/trailkit)")
	root.PersistentFlags().StringVar(&e.flags.dataDir, "data-dir", "", "data directory for session scripts (default: $XDG_DATA_HOME/trailkit)")
	root.PersistentFlags().BoolVar(&e.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&e.flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(e))
	root.AddCommand(newReplayCmd(e))
	root.AddCommand(newCloneCmd(e))
	root.AddCommand(newClassifyCmd(e))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// setup builds the logger and loads config.yaml.
func (e *env) setup(stderr io.Writer) error {
	level := slog.LevelWarn
	if e.flags.verbose {
		level = slog.LevelDebug
	}
	e.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	configDir, err := paths.ResolveConfigDir(e.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	e.configDir = configDir

	cfg, err := loadConfig(configDir)
	if err != nil {
		return userError(err)
	}
	e.cfg = cfg
	e.log.Debug("config loaded", "config_dir", configDir, "file", cfg.ConfigFileUsed())
	return nil
}

// settings returns the effective configuration: config.yaml and
// TRAILKIT_* environment values, overridden by --json.
func (e *env) settings() (types.Config, error) {
	c := types.Config{
		Output:  e.cfg.GetString(cfgKeyOutput),
		DataDir: e.cfg.GetString(cfgKeyDataDir),
	}
	if e.flags.jsonMode {
		c.Output = types.OutputJSON
	}
	if err := c.Validate(); err != nil {
		return c, userError(fmt.Errorf("config %s=%q: %w", cfgKeyOutput, c.Output, err))
	}
	return c, nil
}

// dataDir resolves the data directory: --data-dir > config.yaml > env > default.
func (e *env) dataDir(c types.Config) (string, error) {
	dir, err := paths.ResolveDataDir(e.flags.dataDir, c.DataDir)
	if err != nil {
		return "", sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	return dir, nil
}

// cliError carries the exit code for an error returned by a subcommand.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func userError(err error) error { return &cliError{code: exitUserError, err: err} }
func sysError(err error) error  { return &cliError{code: exitSysError, err: err} }

// exitCode maps an error to a process exit code. Errors without an explicit
// code, such as cobra argument errors, are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}
