// Package payload holds the wire representation of a local-variables response
// as returned by the design tool's REST API. Per-mode values are kept as raw
// JSON; classification happens once when the normalized arena is built.
package payload
