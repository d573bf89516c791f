package types

import "errors"

// Config holds the CLI settings read from config.yaml.
type Config struct {
	Output  string `json:"output" yaml:"output"`
	DataDir string `json:"data_dir" yaml:"data_dir,omitempty"`
}

// Supported output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config validation errors.
var (
	ErrOutputEmpty   = errors.New("output must not be empty")
	ErrOutputUnknown = errors.New("unknown output format")
)

// knownOutputs lists the formats that Validate accepts.
var knownOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
}

// DefaultConfig returns the configuration written by "trailkit init".
func DefaultConfig() Config {
	return Config{Output: OutputText}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Output == "" {
		return ErrOutputEmpty
	}
	if !knownOutputs[c.Output] {
		return ErrOutputUnknown
	}
	return nil
}
