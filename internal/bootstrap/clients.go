package bootstrap

import (
	"github.com/init-pkg/cinecheck/domain/app"
	assets_client "github.com/init-pkg/cinecheck/internal/clients/assets"
	openai_client "github.com/init-pkg/cinecheck/internal/clients/openai"
	"go.uber.org/fx"
)

func clientsOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			openai_client.New,
			fx.Annotate(openai_client.NewGenerator, fx.As(new(app.TextGenerator))),
			fx.Annotate(assets_client.New, fx.As(new(app.AssetFetcher))),
		),
	)
}
