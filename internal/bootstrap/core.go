package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/init-pkg/cinecheck/internal/config"
	"github.com/init-pkg/cinecheck/internal/logger"
	"github.com/init-pkg/cinecheck/internal/server"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func coreOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			logger.New,
			newValidator,
			server.New,
		),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		fx.Invoke(startServer),
	)
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func startServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.Http.Addr)
			if err != nil {
				return err
			}

			go func() {
				if err := app.Listener(ln); err != nil && !errors.Is(err, net.ErrClosed) {
					log.Error("http server stopped", "error", err)
				}
			}()

			log.Info("http server started", "addr", ln.Addr().String())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
