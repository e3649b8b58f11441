package bootstrap

import (
	catalog_module "github.com/init-pkg/cinecheck/internal/app/catalog"
	catalog_http_handler "github.com/init-pkg/cinecheck/internal/app/catalog/transports/http"
	insight_module "github.com/init-pkg/cinecheck/internal/app/insight"
	search_module "github.com/init-pkg/cinecheck/internal/app/search"
	search_http_handler "github.com/init-pkg/cinecheck/internal/app/search/transports/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
)

func appOptions() fx.Option {
	return fx.Options(
		catalog_module.Register(),
		insight_module.Register(),
		search_module.Register(),

		fx.Invoke(
			registerRoutes,
			Autoload,
		),
	)
}

func registerRoutes(
	app *fiber.App,
	catalogHandler *catalog_http_handler.CatalogHttpHandler,
	searchHandler *search_http_handler.SearchHttpHandler,
) {
	catalogHandler.Register(app)
	searchHandler.Register(app)
}
