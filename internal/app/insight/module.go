package insight_module

import (
	"github.com/init-pkg/cinecheck/domain/app"
	insight_service "github.com/init-pkg/cinecheck/internal/app/insight/service"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(
			insight_service.New,
			fx.As(new(app.InsightFetcher)),
			fx.As(new(app.SuggestionFetcher)),
		),
	)
}
