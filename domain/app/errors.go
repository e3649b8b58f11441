package app

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyQuery        = errors.New("empty search query")
	ErrCorruptWorkbook   = errors.New("workbook is corrupt or unreadable")
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrSuperseded        = errors.New("load superseded by a newer one")
	ErrCatalogEmpty      = errors.New("no catalog loaded")
	ErrOutsideAssetRoot  = errors.New("asset reference outside the asset root")
)

// FetchError is returned when an asset could not be retrieved.
type FetchError struct {
	Ref    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %q: status %d", e.Ref, e.Status)
	}
	return fmt.Sprintf("fetch %q: %v", e.Ref, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
