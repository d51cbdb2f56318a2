// Package config defines the format-agnostic configuration model of the
// tool and the Loader interface that reads it from files.
//
// The HCL implementation lives in the hcl_adapter package. Command line
// flags are merged on top of a loaded Model by the app package.
package config
