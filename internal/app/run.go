package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/figvars/internal/ctxlog"
	"github.com/specialistvlad/figvars/internal/export"
	"github.com/specialistvlad/figvars/internal/normalize"
	"github.com/specialistvlad/figvars/internal/projection"
	"github.com/specialistvlad/figvars/internal/render"
)

// Run executes the main application logic based on the configuration: it
// either renders the normalized payload once or serves it until ctx ends.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "format", a.config.Format, "serve_port", a.config.ServePort)

	if a.source == nil {
		a.logger.Info("No data to render.")
		return nil
	}

	if a.config.ServePort > 0 {
		return a.Serve(ctx)
	}

	res, err := a.result(ctx)
	if err != nil {
		return err
	}
	if err := a.write(res); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) write(res *normalize.Result) error {
	switch a.config.Format {
	case FormatTable:
		opts := render.TableOptions{Filter: projection.FilterOptions{
			Search:   a.config.Search,
			Editing:  a.config.Editing,
			GroupKey: projection.GroupKey(a.config.Group),
		}}
		for _, id := range res.CollectionIDs() {
			if err := render.WriteTable(a.outW, res.Collection(id), res, opts); err != nil {
				return err
			}
		}
	case FormatPalette:
		for _, id := range res.CollectionIDs() {
			if err := render.WritePalette(a.outW, res.Collection(id), res, a.config.Mode, a.config.Editing); err != nil {
				return err
			}
		}
	default:
		format, err := export.ParseFormat(a.config.Format)
		if err != nil {
			return err
		}
		if err := export.Write(a.outW, format, res); err != nil {
			return fmt.Errorf("failed to export variables: %w", err)
		}
	}
	return nil
}
