// Package types defines the entity types shared by the trailkit packages and
// CLI: navigation nodes, CLI configuration, and the standard sentinel errors.
//
// The state helpers themselves (selection, breadcrumbs, clone) do not depend
// on this package; they are generic and accept any payload.
package types
