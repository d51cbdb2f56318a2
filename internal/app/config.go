package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/specialistvlad/figvars/internal/config"
	"github.com/specialistvlad/figvars/internal/resolver"
)

// Output formats understood by Run.
const (
	FormatTable   = "table"
	FormatPalette = "palette"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatHCL     = "hcl"
)

const (
	defaultCacheSize = 16
	defaultCacheTTL  = 5 * time.Minute
	tokenEnv         = "FIGMA_TOKEN"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // hcl files
	EnvFile    string

	PayloadPath string
	FileKey     string
	AssetURL    string
	APIBase     string
	Token       string

	Format   string
	Mode     string
	Search   string
	Group    string
	Editing  bool
	Backrefs string

	ServePort int
	CacheSize int
	CacheTTL  time.Duration

	LogFormat string
	LogLevel  string
}

// NewConfig validates the values set in cfg. Unset fields stay empty so a
// config file can still fill them; defaults are applied by NewApp.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Format {
	case "", FormatTable, FormatPalette, FormatJSON, FormatYAML, FormatHCL:
	default:
		return nil, fmt.Errorf("invalid format %q: must be one of table, palette, json, yaml, hcl", cfg.Format)
	}

	if cfg.Backrefs != "" {
		if _, err := resolver.ParseBackrefPolicy(cfg.Backrefs); err != nil {
			return nil, err
		}
	}

	if cfg.ServePort < 0 || cfg.ServePort > 65535 {
		return nil, fmt.Errorf("invalid serve port %d", cfg.ServePort)
	}
	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("invalid cache size %d", cfg.CacheSize)
	}

	return &cfg, nil
}

// withModel returns a copy of c where every unset field is taken from the
// loaded config file. Flags always win.
func (c *Config) withModel(m *config.Model) (*Config, error) {
	out := *c
	fill(&out.PayloadPath, m.Source.File)
	fill(&out.FileKey, m.Source.FileKey)
	fill(&out.AssetURL, m.Source.AssetURL)
	fill(&out.APIBase, m.Source.APIBase)
	fill(&out.Token, m.Source.Token)
	fill(&out.Format, m.Output.Format)
	fill(&out.Mode, m.Output.Mode)
	fill(&out.Search, m.Output.Search)
	fill(&out.Group, m.Output.Group)
	fill(&out.Backrefs, m.Output.Backrefs)
	out.Editing = out.Editing || m.Output.Editing
	if out.CacheSize == 0 {
		out.CacheSize = m.Cache.Size
	}
	if out.CacheTTL == 0 {
		out.CacheTTL = m.Cache.TTL
	}
	return NewConfig(out)
}

func fill(dst *string, src string) {
	if *dst == "" {
		*dst = src
	}
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = FormatTable
	}
	if c.Backrefs == "" {
		c.Backrefs = resolver.BackrefsAll.String()
	}
	if c.CacheSize == 0 {
		c.CacheSize = defaultCacheSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = defaultCacheTTL
	}
}

// validateSource checks that some payload source is configured.
func (c *Config) validateSource() error {
	if c.PayloadPath == "" && c.FileKey == "" && c.AssetURL == "" {
		return errors.New("no variables source: pass PAYLOAD_PATH, -file-key or -asset-url, or set them in the config file")
	}
	return nil
}
