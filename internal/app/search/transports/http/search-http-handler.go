package search_http_handler

import (
	"context"

	"github.com/init-pkg/cinecheck/domain/app"
	"github.com/init-pkg/cinecheck/domain/dtos"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type SearchHttpHandler struct {
	service  app.SearchService
	validate *validator.Validate
}

func New(service app.SearchService, validate *validator.Validate) *SearchHttpHandler {
	return &SearchHttpHandler{service, validate}
}

func (this *SearchHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/search")

	app.Post("/", this.search)
	app.Get("/", this.searchByQuery)
	app.Get("/last", this.last)
	app.Get("/state", this.state)
}

func (this *SearchHttpHandler) search(fctx fiber.Ctx) error {
	var req dtos.SearchRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return this.run(fctx, req)
}

func (this *SearchHttpHandler) searchByQuery(fctx fiber.Ctx) error {
	return this.run(fctx, dtos.SearchRequest{Query: fctx.Query("q")})
}

func (this *SearchHttpHandler) run(fctx fiber.Ctx, req dtos.SearchRequest) error {
	var ctx context.Context = fctx.Context()

	if err := this.validate.Struct(&req); err != nil {
		return err
	}

	result, err := this.service.Search(ctx, req.Query)
	if err != nil {
		return err
	}

	return fctx.JSON(dtos.NewSearchResponse(result))
}

func (this *SearchHttpHandler) last(fctx fiber.Ctx) error {
	result := this.service.Last()
	if result == nil {
		return fctx.SendStatus(fiber.StatusNoContent)
	}

	return fctx.JSON(dtos.NewSearchResponse(result))
}

func (this *SearchHttpHandler) state(fctx fiber.Ctx) error {
	return fctx.JSON(dtos.SearchStateResponse{State: this.service.State()})
}
