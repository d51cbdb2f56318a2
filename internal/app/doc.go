// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI or server.
//
// An App obtains a variables payload from its Source, normalizes it and
// either renders the result once or serves it over HTTP until the context
// is cancelled.
package app
