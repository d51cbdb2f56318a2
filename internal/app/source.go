package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/figvars/internal/ctxlog"
	"github.com/specialistvlad/figvars/internal/figmaapi"
	"github.com/specialistvlad/figvars/internal/payload"
)

// Source yields a decoded variables payload.
type Source interface {
	// Key identifies the payload for caching.
	Key() string
	Fetch(ctx context.Context) (*payload.Response, error)
}

type fileSource struct {
	path string
}

func (s fileSource) Key() string { return "file:" + s.path }

func (s fileSource) Fetch(context.Context) (*payload.Response, error) {
	return payload.LoadFile(s.path)
}

type apiSource struct {
	client  *figmaapi.Client
	fileKey string
}

func (s apiSource) Key() string { return "api:" + s.fileKey }

func (s apiSource) Fetch(ctx context.Context) (*payload.Response, error) {
	return s.client.GetLocalVariables(ctx, s.fileKey)
}

// newSource picks the payload source from cfg: a local file first, then an
// explicit file key, then the key found in the asset URL. A nil Source with
// a nil error means the asset URL was unusable and there is nothing to show.
func newSource(ctx context.Context, cfg *Config) (Source, error) {
	logger := ctxlog.FromContext(ctx)

	if cfg.PayloadPath != "" {
		logger.Debug("Using payload file.", "path", cfg.PayloadPath)
		return fileSource{path: cfg.PayloadPath}, nil
	}

	fileKey := cfg.FileKey
	if fileKey == "" {
		key, err := figmaapi.ExtractFileKey(cfg.AssetURL)
		if errors.Is(err, figmaapi.ErrMalformedURL) {
			logger.Warn("No file key found in asset URL, nothing to render.", "asset_url", cfg.AssetURL)
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		fileKey = key
	}

	token := cfg.Token
	if token == "" {
		token = os.Getenv(tokenEnv)
	}
	client, err := figmaapi.NewClient(figmaapi.Options{
		BaseURL:    cfg.APIBase,
		Token:      token,
		RetryCount: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}
	logger.Debug("Using variables API.", "file_key", fileKey)
	return apiSource{client: client, fileKey: fileKey}, nil
}
