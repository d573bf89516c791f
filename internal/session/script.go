// Package session replays scripted UI sessions against the selection and
// breadcrumb helpers. A script is the list of actions a UI controller would
// issue in response to user input (open folder, go back, select message);
// replaying it yields a Snapshot of the resulting state.
//
// Scripts are YAML documents with an "ops" list, or JSONL files with one op
// per line.
package session

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/trailkit/pkg/types"
)

// Op names.
const (
	OpPush           = "push"
	OpGoto           = "goto"
	OpBack           = "back"
	OpClearTrail     = "clear_trail"
	OpToggle         = "toggle"
	OpClearSelection = "clear_selection"
)

var knownOps = map[string]bool{
	OpPush:           true,
	OpGoto:           true,
	OpBack:           true,
	OpClearTrail:     true,
	OpToggle:         true,
	OpClearSelection: true,
}

// Script errors.
var (
	ErrUnknownOp         = errors.New("unknown op")
	ErrMissingNode       = errors.New("push requires a node")
	ErrMissingKey        = errors.New("toggle requires a key")
	ErrUnsupportedFormat = errors.New("unsupported script format")
)

// maxScriptLine bounds one JSONL line. Ops carrying large toggle values
// outgrow bufio's 64 KiB default token size.
const maxScriptLine = 16 << 20

// Op is one scripted UI action. Which fields apply depends on Op: push uses
// Node, goto uses Index, toggle uses Key and optionally Value.
//
// A toggle without a value selects its key with selection.Selected. To store
// an explicit null instead, write "value: null" in the script, or set
// HasValue when building ops in code. Decoding sets HasValue whenever the
// value field is present.
type Op struct {
	Op       string      `json:"op" yaml:"op"`
	Node     *types.Node `json:"node,omitempty" yaml:"node,omitempty"`
	Index    int         `json:"index,omitempty" yaml:"index,omitempty"`
	Key      string      `json:"key,omitempty" yaml:"key,omitempty"`
	Value    any         `json:"value,omitempty" yaml:"value,omitempty"`
	HasValue bool        `json:"-" yaml:"-"`
}

// withValue reports whether a toggle stores Value rather than the default.
func (o Op) withValue() bool {
	return o.HasValue || o.Value != nil
}

// UnmarshalJSON decodes an op and records whether "value" was present.
func (o *Op) UnmarshalJSON(data []byte) error {
	type plain Op
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	_, p.HasValue = fields["value"]
	*o = Op(p)
	return nil
}

// UnmarshalYAML decodes an op and records whether "value" was present.
func (o *Op) UnmarshalYAML(node *yaml.Node) error {
	type plain Op
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "value" {
				p.HasValue = true
			}
		}
	}
	*o = Op(p)
	return nil
}

// Script is an ordered list of ops.
type Script struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Ops  []Op   `json:"ops" yaml:"ops"`
}

// Validate checks every op and returns the first problem found, wrapped with
// its 1-based step number.
func (s *Script) Validate() error {
	for i, op := range s.Ops {
		if err := op.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (o Op) validate() error {
	if !knownOps[o.Op] {
		return fmt.Errorf("%w: %q", ErrUnknownOp, o.Op)
	}
	switch o.Op {
	case OpPush:
		if o.Node == nil {
			return ErrMissingNode
		}
		n := *o.Node
		if n.Kind == "" {
			n.Kind = types.NodeKindFolder
		}
		return n.Validate()
	case OpToggle:
		if o.Key == "" {
			return ErrMissingKey
		}
	}
	return nil
}

// LoadScript reads a script from path. The format is chosen by extension:
// .yaml and .yml are YAML, .jsonl is one JSON op per line.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	var script *Script
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		script, err = ParseYAML(data)
	case ".jsonl":
		script, err = ParseJSONL(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if script.Name == "" {
		script.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return script, nil
}

// ParseYAML decodes a YAML script document.
func ParseYAML(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseJSONL decodes one op per non-empty line. A malformed line is an error
// naming its line number. Lines may be up to 16 MiB.
func ParseJSONL(data []byte) (*Script, error) {
	var s Script
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxScriptLine)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var op Op
		if err := json.Unmarshal(raw, &op); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		s.Ops = append(s.Ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning script: %w", err)
	}
	return &s, nil
}
