package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		label    string
		wantKind string
		wantErr  error
	}{
		{
			name:     "folder",
			kind:     NodeKindFolder,
			label:    "Inbox",
			wantKind: NodeKindFolder,
		},
		{
			name:     "empty kind defaults to folder",
			kind:     "",
			label:    "Archive",
			wantKind: NodeKindFolder,
		},
		{
			name:     "conversation",
			kind:     NodeKindConversation,
			label:    "alice",
			wantKind: NodeKindConversation,
		},
		{
			name:    "empty name fails",
			kind:    NodeKindView,
			label:   "",
			wantErr: ErrInvalidName,
		},
		{
			name:    "unknown kind fails",
			kind:    "drawer",
			label:   "Tools",
			wantErr: ErrInvalidKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewNode(tt.kind, tt.label)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Node{}, n, "node should be zero on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, n.Kind)
			assert.Equal(t, tt.label, n.Name)

			id, err := uuid.Parse(n.NodeID)
			require.NoError(t, err, "NodeID should be a UUID")
			assert.Equal(t, uuid.Version(7), id.Version())
		})
	}
}

func TestNodeEnsureIDKeepsExisting(t *testing.T) {
	n := Node{NodeID: "fixed-id", Kind: NodeKindView, Name: "Contacts"}

	require.NoError(t, n.EnsureID())
	assert.Equal(t, "fixed-id", n.NodeID)
}

func TestNodeIDsAreUnique(t *testing.T) {
	a, err := NewNode(NodeKindFolder, "a")
	require.NoError(t, err)
	b, err := NewNode(NodeKindFolder, "b")
	require.NoError(t, err)

	assert.NotEqual(t, a.NodeID, b.NodeID)
}
