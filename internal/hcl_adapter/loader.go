package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/figvars/internal/config"
	"github.com/specialistvlad/figvars/internal/ctxlog"
	"github.com/specialistvlad/figvars/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	lookupEnv func(string) (string, bool)
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL configuration loader reading the process
// environment.
func NewLoader() *Loader {
	return &Loader{lookupEnv: os.LookupEnv}
}

// fileRoot is the top-level structure of a configuration file.
type fileRoot struct {
	Source *sourceBlock `hcl:"source,block"`
	Output *outputBlock `hcl:"output,block"`
	Cache  *cacheBlock  `hcl:"cache,block"`
}

type sourceBlock struct {
	File     *string `hcl:"file,optional"`
	FileKey  *string `hcl:"file_key,optional"`
	AssetURL *string `hcl:"asset_url,optional"`
	APIBase  *string `hcl:"api_base,optional"`
	Token    *string `hcl:"token,optional"`
}

type outputBlock struct {
	Format   *string `hcl:"format,optional"`
	Mode     *string `hcl:"mode,optional"`
	Search   *string `hcl:"search,optional"`
	Group    *string `hcl:"group,optional"`
	Backrefs *string `hcl:"backrefs,optional"`
	Editing  *bool   `hcl:"editing,optional"`
}

type cacheBlock struct {
	Size *int    `hcl:"size,optional"`
	TTL  *string `hcl:"ttl,optional"`
}

// Load parses every .hcl file under paths and merges them into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to find config files: %w", err)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, l.evalContext(), &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		m, err := translate(&root)
		if err != nil {
			return nil, fmt.Errorf("invalid config in %s: %w", file, err)
		}
		// A relative payload path is relative to the file declaring it.
		if m.Source.File != "" && !filepath.IsAbs(m.Source.File) {
			m.Source.File = filepath.Join(filepath.Dir(file), m.Source.File)
		}
		model.Merge(m)
	}

	logger.Debug("HCL loading complete.", "files", len(files))
	return model, nil
}

func translate(root *fileRoot) (*config.Model, error) {
	m := &config.Model{}
	if s := root.Source; s != nil {
		m.Source = config.Source{
			File:     deref(s.File),
			FileKey:  deref(s.FileKey),
			AssetURL: deref(s.AssetURL),
			APIBase:  deref(s.APIBase),
			Token:    deref(s.Token),
		}
	}
	if o := root.Output; o != nil {
		m.Output = config.Output{
			Format:   deref(o.Format),
			Mode:     deref(o.Mode),
			Search:   deref(o.Search),
			Group:    deref(o.Group),
			Backrefs: deref(o.Backrefs),
			Editing:  deref(o.Editing),
		}
	}
	if c := root.Cache; c != nil {
		m.Cache.Size = deref(c.Size)
		if c.TTL != nil {
			ttl, err := time.ParseDuration(*c.TTL)
			if err != nil {
				return nil, fmt.Errorf("cache ttl: %w", err)
			}
			m.Cache.TTL = ttl
		}
	}
	return m, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
