// Package export serializes a normalization result as JSON, YAML or HCL.
//
// All three formats share one document tree: collections, nested groups and
// variables with per-mode values keyed by mode name. Aliases are written as
// "{Group/Name}" references instead of being inlined.
package export
