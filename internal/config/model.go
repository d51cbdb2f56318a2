package config

import "time"

// Model is the unified representation of a configuration file.
type Model struct {
	Source Source
	Output Output
	Cache  Cache
}

// Source says where the variables payload comes from: a local file, a
// file key or an asset URL wrapping the design file URL.
type Source struct {
	File     string
	FileKey  string
	AssetURL string
	APIBase  string
	Token    string
}

// Output controls rendering.
type Output struct {
	Format   string
	Mode     string
	Search   string
	Group    string
	Backrefs string
	Editing  bool
}

// Cache sizes the serve-mode result cache.
type Cache struct {
	Size int
	TTL  time.Duration
}

// Merge overlays the non-zero fields of other onto m. Editing can only be
// switched on by an overlay.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	mergeString(&m.Source.File, other.Source.File)
	mergeString(&m.Source.FileKey, other.Source.FileKey)
	mergeString(&m.Source.AssetURL, other.Source.AssetURL)
	mergeString(&m.Source.APIBase, other.Source.APIBase)
	mergeString(&m.Source.Token, other.Source.Token)

	mergeString(&m.Output.Format, other.Output.Format)
	mergeString(&m.Output.Mode, other.Output.Mode)
	mergeString(&m.Output.Search, other.Output.Search)
	mergeString(&m.Output.Group, other.Output.Group)
	mergeString(&m.Output.Backrefs, other.Output.Backrefs)
	m.Output.Editing = m.Output.Editing || other.Output.Editing

	if other.Cache.Size != 0 {
		m.Cache.Size = other.Cache.Size
	}
	if other.Cache.TTL != 0 {
		m.Cache.TTL = other.Cache.TTL
	}
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}
