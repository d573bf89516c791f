package session

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/trailkit/pkg/types"
)

func node(name string) *types.Node {
	return &types.Node{Name: name}
}

func TestReplayBrowseScript(t *testing.T) {
	s, err := ParseYAML([]byte(yamlScript))
	require.NoError(t, err)

	snap, err := NewReplayer(nil).Run(s)
	require.NoError(t, err)

	id, err := uuid.Parse(snap.SessionID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	require.Len(t, snap.Trail, 1, "back prunes Work")
	assert.Equal(t, "Inbox", snap.Trail[0].Name)
	assert.Equal(t, 0, snap.Cursor)
	cur, ok := snap.Current()
	require.True(t, ok)
	assert.Equal(t, "Inbox", cur.Name)

	assert.Equal(t, []Entry{
		{Key: "msg-1", Value: true},
		{Key: "msg-2", Value: map[string]any{"subject": "hello", "flags": []any{"unread"}}},
	}, snap.Selection)

	require.Len(t, snap.Steps, 6)
	assert.True(t, snap.Steps[4].Applied, "back from Work")
	assert.Equal(t, snap.Trail[0].NodeID, snap.Steps[4].NodeID)
	assert.False(t, snap.Steps[5].Applied, "goto 5 is out of range")
	assert.True(t, snap.Steps[2].Selected)
}

func TestReplayPruning(t *testing.T) {
	s := &Script{Ops: []Op{
		{Op: OpPush, Node: node("a")},
		{Op: OpPush, Node: node("b")},
		{Op: OpPush, Node: node("c")},
		{Op: OpBack},
		{Op: OpPush, Node: node("d")},
	}}

	snap, err := NewReplayer(nil).Run(s)
	require.NoError(t, err)

	var names []string
	for _, n := range snap.Trail {
		names = append(names, n.Name)
		assert.Equal(t, types.NodeKindFolder, n.Kind)
		assert.NotEmpty(t, n.NodeID)
	}
	assert.Equal(t, []string{"a", "b", "d"}, names)
	assert.Equal(t, 2, snap.Cursor)
}

func TestReplayToggleValueIsCloned(t *testing.T) {
	value := map[string]any{"tags": []any{"x"}}
	s := &Script{Ops: []Op{{Op: OpToggle, Key: "k", Value: value}}}

	snap, err := NewReplayer(nil).Run(s)
	require.NoError(t, err)

	value["tags"].([]any)[0] = "mutated"
	require.Len(t, snap.Selection, 1)
	assert.Equal(t, map[string]any{"tags": []any{"x"}}, snap.Selection[0].Value)
}

func TestReplayToggleTwiceDeselects(t *testing.T) {
	s := &Script{Ops: []Op{
		{Op: OpToggle, Key: "k", Value: 0},
		{Op: OpToggle, Key: "k", Value: 0},
	}}

	snap, err := NewReplayer(nil).Run(s)
	require.NoError(t, err)

	assert.Empty(t, snap.Selection)
	assert.True(t, snap.Steps[0].Selected)
	assert.False(t, snap.Steps[1].Selected)
}

func TestReplayToggleExplicitNull(t *testing.T) {
	s, err := ParseYAML([]byte("ops:\n  - op: toggle\n    key: a\n    value: null\n  - op: toggle\n    key: b\n"))
	require.NoError(t, err)

	snap, err := NewReplayer(nil).Run(s)
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Key: "a", Value: nil},
		{Key: "b", Value: true},
	}, snap.Selection)
	assert.True(t, snap.Steps[0].Selected)
}

func TestReplayToggleHasValueInCode(t *testing.T) {
	s := &Script{Ops: []Op{{Op: OpToggle, Key: "k", HasValue: true}}}

	snap, err := NewReplayer(nil).Run(s)
	require.NoError(t, err)

	require.Len(t, snap.Selection, 1)
	assert.Nil(t, snap.Selection[0].Value)
}

func TestReplayClearOps(t *testing.T) {
	s := &Script{Ops: []Op{
		{Op: OpPush, Node: node("a")},
		{Op: OpToggle, Key: "k"},
		{Op: OpClearTrail},
		{Op: OpClearSelection},
	}}

	snap, err := NewReplayer(nil).Run(s)
	require.NoError(t, err)

	assert.Empty(t, snap.Trail)
	assert.Equal(t, -1, snap.Cursor)
	assert.Empty(t, snap.Selection)
	_, ok := snap.Current()
	assert.False(t, ok)
}

func TestReplayKeepsSuppliedNodeID(t *testing.T) {
	s := &Script{Ops: []Op{{Op: OpPush, Node: &types.Node{NodeID: "n-1", Name: "a", Kind: types.NodeKindView}}}}

	snap, err := NewReplayer(nil).Run(s)
	require.NoError(t, err)

	assert.Equal(t, "n-1", snap.Trail[0].NodeID)
	assert.Equal(t, "n-1", snap.Steps[0].NodeID)
}

func TestReplayRejectsInvalidScript(t *testing.T) {
	s := &Script{Ops: []Op{{Op: OpPush, Node: node("a")}, {Op: "jump"}}}

	snap, err := NewReplayer(nil).Run(s)
	assert.ErrorIs(t, err, ErrUnknownOp)
	assert.Nil(t, snap)
}

func TestReplayLogsIgnoredNavigation(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := &Script{Name: "logged", Ops: []Op{{Op: OpBack}}}

	snap, err := NewReplayer(log).Run(s)
	require.NoError(t, err)

	assert.False(t, snap.Steps[0].Applied)
	out := buf.String()
	assert.Contains(t, out, "navigation ignored")
	assert.Contains(t, out, "session_id="+snap.SessionID)
	assert.Contains(t, out, "script=logged")
}
