package dtos

import (
	"time"

	"github.com/init-pkg/cinecheck/domain/app"
)

type CatalogResponse struct {
	FileName    string    `json:"file_name"`
	RecordCount int       `json:"record_count"`
	LoadedAt    time.Time `json:"loaded_at"`
	Generation  uint64    `json:"generation"`
	Warning     string    `json:"warning,omitempty"`
}

func NewCatalogResponse(s app.CatalogStatus) CatalogResponse {
	return CatalogResponse(s)
}
