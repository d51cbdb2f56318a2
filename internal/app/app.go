package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/specialistvlad/figvars/internal/config"
	"github.com/specialistvlad/figvars/internal/ctxlog"
	"github.com/specialistvlad/figvars/internal/normalize"
	"github.com/specialistvlad/figvars/internal/resolver"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	source     Source
	normalize  normalize.Options
	cache      *expirable.LRU[string, *normalize.Result]
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Rendered output goes
// to outW and logs to logW. When cfg names a config file it is read with
// loader and fills every setting the flags left unset.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if cfg.ConfigPath != "" {
		model, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg, err = cfg.withModel(model)
		if err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		logger.Debug("Configuration file merged.", "path", cfg.ConfigPath)
	}
	cfg.applyDefaults()
	if err := cfg.validateSource(); err != nil {
		return nil, err
	}

	policy, err := resolver.ParseBackrefPolicy(cfg.Backrefs)
	if err != nil {
		return nil, err
	}

	source, err := newSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		source:    source,
		normalize: normalize.Options{Resolver: resolver.Options{Backrefs: policy}},
		cache:     expirable.NewLRU[string, *normalize.Result](cfg.CacheSize, nil, cfg.CacheTTL),
	}, nil
}

// Config returns the effective configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}

// result returns the normalized payload, from the cache when possible.
// Results are never mutated after normalization, so cached values are
// shared between requests.
func (a *App) result(ctx context.Context) (*normalize.Result, error) {
	logger := ctxlog.FromContext(ctx)
	key := a.source.Key()
	if res, ok := a.cache.Get(key); ok {
		logger.Debug("Result served from cache.", "key", key)
		return res, nil
	}

	resp, err := a.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch variables: %w", err)
	}
	res, err := normalize.Normalize(ctx, resp, a.normalize)
	if err != nil {
		return nil, err
	}
	a.cache.Add(key, res)
	logger.Debug("Result normalized and cached.", "key", key, "collections", len(res.Collections), "variables", len(res.Variables))
	return res, nil
}
