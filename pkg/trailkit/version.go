// Package trailkit holds build metadata shared by the CLI and library users.
package trailkit

// Version is the trailkit release version.
const Version = "0.1.0"

// ModulePath is the Go module path of this repository.
const ModulePath = "github.com/mesh-intelligence/trailkit"
