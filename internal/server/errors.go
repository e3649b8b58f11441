package server

import (
	"errors"
	"log/slog"

	"github.com/init-pkg/cinecheck/domain/app"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// Shown for any workbook that fails to parse.
const CorruptFileMessage = "Error al procesar el archivo Excel. Asegúrate de que no esté dañado."

func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(fctx fiber.Ctx, err error) error {
		code, message := Classify(err)
		if code >= fiber.StatusInternalServerError {
			log.Error("request failed", "path", fctx.Path(), "error", err)
		}
		return fctx.Status(code).JSON(fiber.Map{"error": message})
	}
}

// Classify maps an error to an HTTP status and a client-facing message.
func Classify(err error) (int, string) {
	var fiberErr *fiber.Error
	var validationErrs validator.ValidationErrors
	var fetchErr *app.FetchError

	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	case errors.As(err, &validationErrs):
		return fiber.StatusBadRequest, validationErrs.Error()
	case errors.Is(err, app.ErrEmptyQuery):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, app.ErrCorruptWorkbook):
		return fiber.StatusUnprocessableEntity, CorruptFileMessage
	case errors.Is(err, app.ErrUnsupportedFormat):
		return fiber.StatusUnsupportedMediaType, err.Error()
	case errors.Is(err, app.ErrSuperseded), errors.Is(err, app.ErrCatalogEmpty):
		return fiber.StatusConflict, err.Error()
	case errors.As(err, &fetchErr):
		return fiber.StatusBadGateway, err.Error()
	default:
		return fiber.StatusInternalServerError, "internal server error"
	}
}
