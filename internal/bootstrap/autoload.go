package bootstrap

import (
	"context"
	"log/slog"

	"github.com/init-pkg/cinecheck/domain/app"
	"github.com/init-pkg/cinecheck/internal/config"
	"go.uber.org/fx"
)

// Autoload fetches the configured workbook once the application has started.
// A failure only leaves a warning on the catalog; manual upload stays available.
func Autoload(lc fx.Lifecycle, cfg *config.Config, catalog app.CatalogService, log *slog.Logger) {
	if cfg.Catalog.Autoload == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				runAutoload(ctx, cfg.Catalog.Autoload, catalog, log)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

func runAutoload(ctx context.Context, ref string, catalog app.CatalogService, log *slog.Logger) {
	loaded, err := catalog.Autoload(ctx, ref)
	if err != nil {
		log.Warn("automatic catalog load failed, waiting for manual upload", "ref", ref, "error", err)
		return
	}

	log.Info("automatic catalog load finished", "file", loaded.FileName, "records", loaded.Len())
}
