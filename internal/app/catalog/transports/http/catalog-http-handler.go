package catalog_http_handler

import (
	"context"
	"io"

	"github.com/init-pkg/cinecheck/domain/app"
	"github.com/init-pkg/cinecheck/domain/dtos"
	"github.com/init-pkg/cinecheck/internal/config"

	"github.com/gofiber/fiber/v3"
)

type CatalogHttpHandler struct {
	service  app.CatalogService
	autoload string
}

func New(service app.CatalogService, cfg *config.Config) *CatalogHttpHandler {
	return &CatalogHttpHandler{service, cfg.Catalog.Autoload}
}

func (this *CatalogHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/catalog")

	app.Get("/", this.status)
	app.Post("/upload", this.manualUpload)
	app.Post("/reload", this.reload)
}

func (this *CatalogHttpHandler) status(fctx fiber.Ctx) error {
	return fctx.JSON(dtos.NewCatalogResponse(this.service.Status()))
}

func (this *CatalogHttpHandler) manualUpload(fctx fiber.Ctx) error {
	var ctx context.Context = fctx.Context()

	header, err := fctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "multipart field \"file\" is required")
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	if _, err := this.service.LoadFile(ctx, header.Filename, data); err != nil {
		return err
	}

	return fctx.Status(fiber.StatusCreated).JSON(dtos.NewCatalogResponse(this.service.Status()))
}

// reload fetches the configured catalog asset again. The reference is never
// taken from the request.
func (this *CatalogHttpHandler) reload(fctx fiber.Ctx) error {
	var ctx context.Context = fctx.Context()

	if this.autoload == "" {
		return fiber.NewError(fiber.StatusBadRequest, "no catalog reference configured")
	}

	if _, err := this.service.LoadURL(ctx, this.autoload); err != nil {
		return err
	}

	return fctx.JSON(dtos.NewCatalogResponse(this.service.Status()))
}
