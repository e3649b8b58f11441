package bootstrap

import (
	"github.com/init-pkg/cinecheck/internal/config"
	"go.uber.org/fx"
)

func Run(cfg *config.Config) {
	app := fx.New(Options(cfg))

	app.Run()
}

func Options(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		coreOptions(),
		clientsOptions(),
		appOptions(),
	)
}
