// Package figmaapi fetches local variables from the design tool's REST API
// and extracts file keys from shared asset URLs.
package figmaapi
