package search_module

import (
	"github.com/init-pkg/cinecheck/domain/app"
	search_service "github.com/init-pkg/cinecheck/internal/app/search/service"
	search_http_handler "github.com/init-pkg/cinecheck/internal/app/search/transports/http"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(search_service.New, fx.As(new(app.SearchService))),
		search_http_handler.New,
	)
}
