package server

import (
	"errors"
	"fmt"
	"testing"

	"github.com/init-pkg/cinecheck/domain/app"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	type req struct {
		Query string `validate:"required"`
	}
	validationErr := validator.New().Struct(req{})

	tests := []struct {
		err  error
		code int
	}{
		{fiber.NewError(fiber.StatusBadRequest, "missing file"), fiber.StatusBadRequest},
		{validationErr, fiber.StatusBadRequest},
		{app.ErrEmptyQuery, fiber.StatusBadRequest},
		{fmt.Errorf("%w: zip: not a valid zip file", app.ErrCorruptWorkbook), fiber.StatusUnprocessableEntity},
		{fmt.Errorf("%w: .txt", app.ErrUnsupportedFormat), fiber.StatusUnsupportedMediaType},
		{app.ErrSuperseded, fiber.StatusConflict},
		{app.ErrCatalogEmpty, fiber.StatusConflict},
		{&app.FetchError{Ref: "../secret.csv", Err: app.ErrOutsideAssetRoot}, fiber.StatusBadGateway},
		{&app.FetchError{Ref: "x", Status: 404}, fiber.StatusBadGateway},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, _ := Classify(tt.err)
		assert.Equal(t, tt.code, code, tt.err.Error())
	}
}

func TestClassifyHidesCorruptionDetails(t *testing.T) {
	_, message := Classify(fmt.Errorf("%w: zip: not a valid zip file", app.ErrCorruptWorkbook))
	assert.Equal(t, CorruptFileMessage, message)
}
