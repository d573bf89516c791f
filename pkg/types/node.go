package types

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Node kinds. A node is one location a user can navigate to.
const (
	NodeKindFolder       = "folder"
	NodeKindView         = "view"
	NodeKindContact      = "contact"
	NodeKindConversation = "conversation"
)

// validNodeKinds is the set of recognized node kinds.
var validNodeKinds = map[string]bool{
	NodeKindFolder:       true,
	NodeKindView:         true,
	NodeKindContact:      true,
	NodeKindConversation: true,
}

// Node validation errors.
var (
	ErrInvalidName = errors.New("invalid name")
	ErrInvalidKind = errors.New("invalid node kind")
)

// Node is a breadcrumb entry: a folder, view or similar location in the
// navigable hierarchy.
type Node struct {
	// NodeID is a UUID v7 unless supplied by the caller.
	NodeID string `json:"node_id" yaml:"node_id,omitempty"`

	// Kind is one of the NodeKind constants.
	Kind string `json:"kind" yaml:"kind,omitempty"`

	// Name is the display label (required, non-empty).
	Name string `json:"name" yaml:"name"`

	// Path optionally locates the node in the application's hierarchy.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// NewNode returns a Node of the given kind with a fresh UUID v7. An empty
// kind defaults to folder.
func NewNode(kind, name string) (Node, error) {
	n := Node{Kind: kind, Name: name}
	if err := n.EnsureID(); err != nil {
		return Node{}, err
	}
	if n.Kind == "" {
		n.Kind = NodeKindFolder
	}
	if err := n.Validate(); err != nil {
		return Node{}, err
	}
	return n, nil
}

// EnsureID assigns a UUID v7 when NodeID is empty. Existing IDs are kept.
func (n *Node) EnsureID() error {
	if n.NodeID != "" {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate node id: %w", err)
	}
	n.NodeID = id.String()
	return nil
}

// Validate returns ErrInvalidName if Name is empty and ErrInvalidKind if Kind
// is not a recognized node kind.
func (n Node) Validate() error {
	if n.Name == "" {
		return ErrInvalidName
	}
	if !validNodeKinds[n.Kind] {
		return fmt.Errorf("%w: %q", ErrInvalidKind, n.Kind)
	}
	return nil
}
