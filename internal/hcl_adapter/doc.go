// Package hcl_adapter implements config.Loader for HCL files.
//
// A configuration file may contain one source, output and cache block.
// Attribute expressions can call env("NAME") or env("NAME", "default") to
// read the process environment, which is how the API token is usually
// supplied.
package hcl_adapter
