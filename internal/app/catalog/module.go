package catalog_module

import (
	"github.com/init-pkg/cinecheck/domain/app"
	catalog_service "github.com/init-pkg/cinecheck/internal/app/catalog/service"
	catalog_http_handler "github.com/init-pkg/cinecheck/internal/app/catalog/transports/http"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		catalog_service.NewWorkbookReader,
		fx.Annotate(catalog_service.New, fx.As(new(app.CatalogService))),
		catalog_http_handler.New,
	)
}
