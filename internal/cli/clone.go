package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/trailkit/pkg/clone"
)

func newCloneCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "clone <file>",
		Short: "Deep-clone a JSON or YAML document and print the copy as JSON",
		Long: `Clone decodes a JSON (.json) or YAML (.yaml, .yml) document, deep-copies it
and prints the copy as JSON. Use "-" to read JSON from stdin. YAML mapping
keys that are not strings are printed in their string form.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClone(cmd, e, args[0])
		},
	}
}

func runClone(cmd *cobra.Command, e *env, name string) error {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return userError(fmt.Errorf("read document: %w", err))
	}

	doc, err := decodeDocument(name, data)
	if err != nil {
		return userError(fmt.Errorf("decode %s: %w", name, err))
	}

	copied := clone.Value(doc)
	e.log.Debug("document cloned", "file", name, "type", fmt.Sprintf("%T", copied))
	return writeJSON(cmd.OutOrStdout(), clone.StringKeys(copied))
}

// decodeDocument picks the decoder by extension. Anything that is not YAML
// is decoded as JSON.
func decodeDocument(name string, data []byte) (any, error) {
	var doc any
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
