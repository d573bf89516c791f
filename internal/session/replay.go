package session

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/trailkit/pkg/breadcrumbs"
	"github.com/mesh-intelligence/trailkit/pkg/clone"
	"github.com/mesh-intelligence/trailkit/pkg/selection"
	"github.com/mesh-intelligence/trailkit/pkg/types"
)

// Entry is one selected key and its value.
type Entry struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// StepResult records the outcome of one op. Applied is false for navigation
// that had no valid target. Selected is the key's membership after a toggle.
type StepResult struct {
	Step     int    `json:"step"`
	Op       string `json:"op"`
	Applied  bool   `json:"applied"`
	NodeID   string `json:"node_id,omitempty"`
	Selected bool   `json:"selected,omitempty"`
}

// Snapshot is the state left behind by a replayed script.
type Snapshot struct {
	SessionID string       `json:"session_id"`
	Script    string       `json:"script,omitempty"`
	Trail     []types.Node `json:"trail"`
	Cursor    int          `json:"cursor"`
	Selection []Entry      `json:"selection"`
	Steps     []StepResult `json:"steps"`
}

// Current returns the node under the cursor.
func (s *Snapshot) Current() (types.Node, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Trail) {
		return types.Node{}, false
	}
	return s.Trail[s.Cursor], true
}

// Replayer applies scripts to fresh UI state.
type Replayer struct {
	log *slog.Logger
}

// NewReplayer returns a Replayer that logs to log. A nil logger discards.
func NewReplayer(log *slog.Logger) *Replayer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Replayer{log: log}
}

// Run validates script and replays it against an empty trail and selection.
func (r *Replayer) Run(script *Script) (*Snapshot, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}
	log := r.log.With("session_id", id.String(), "script", script.Name)
	log.Debug("replay started", "ops", len(script.Ops))

	trail := breadcrumbs.New[types.Node]()
	sel := selection.New[string]()
	steps := make([]StepResult, 0, len(script.Ops))

	for i, op := range script.Ops {
		res := StepResult{Step: i + 1, Op: op.Op, Applied: true}

		switch op.Op {
		case OpPush:
			n := *op.Node
			if n.Kind == "" {
				n.Kind = types.NodeKindFolder
			}
			if err := n.EnsureID(); err != nil {
				return nil, fmt.Errorf("step %d: %w", res.Step, err)
			}
			trail.Push(n)
			res.NodeID = n.NodeID
		case OpGoto:
			n, ok := trail.Goto(op.Index)
			res.Applied = ok
			res.NodeID = n.NodeID
		case OpBack:
			n, ok := trail.Back()
			res.Applied = ok
			res.NodeID = n.NodeID
		case OpClearTrail:
			trail.Clear()
		case OpToggle:
			if op.withValue() {
				sel.ToggleValue(op.Key, clone.Value(op.Value))
			} else {
				sel.Toggle(op.Key)
			}
			res.Selected = sel.Contains(op.Key)
		case OpClearSelection:
			sel.Clear()
		}

		if !res.Applied {
			log.Debug("navigation ignored", "step", res.Step, "op", op.Op, "index", op.Index, "cursor", trail.Cursor())
		} else {
			log.Debug("op applied", "step", res.Step, "op", op.Op, "trail", trail.Count(), "selected", sel.Count())
		}
		steps = append(steps, res)
	}

	snap := &Snapshot{
		SessionID: id.String(),
		Script:    script.Name,
		Trail:     trail.Items(),
		Cursor:    trail.Cursor(),
		Selection: entries(sel),
		Steps:     steps,
	}
	log.Debug("replay finished", "trail", len(snap.Trail), "selected", len(snap.Selection))
	return snap, nil
}

func entries(sel *selection.Set[string]) []Entry {
	keys := sel.Keys()
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		v, _ := sel.Value(k)
		out = append(out, Entry{Key: k, Value: v})
	}
	return out
}
