package catalog_service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/init-pkg/cinecheck/domain/app"
	"github.com/init-pkg/cinecheck/internal/config"

	"github.com/xuri/excelize/v2"
)

// Sheet name given to the single sheet of a CSV file.
const CsvSheetName = "Sheet1"

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	utf8Bom  = []byte{0xEF, 0xBB, 0xBF}
)

// MemWorkbook is a fully materialized workbook.
type MemWorkbook struct {
	names  []string
	sheets map[string][][]any
}

var _ app.Workbook = &MemWorkbook{}

func NewMemWorkbook() *MemWorkbook {
	return &MemWorkbook{sheets: make(map[string][][]any)}
}

func (this *MemWorkbook) AddSheet(name string, rows [][]any) *MemWorkbook {
	if _, ok := this.sheets[name]; !ok {
		this.names = append(this.names, name)
	}
	this.sheets[name] = rows
	return this
}

func (this *MemWorkbook) SheetNames() []string {
	return slices.Clone(this.names)
}

func (this *MemWorkbook) Rows(sheet string) ([][]any, error) {
	rows, ok := this.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %q does not exist", sheet)
	}
	return rows, nil
}

type WorkbookReader struct {
	libreOffice string
	log         *slog.Logger
}

func NewWorkbookReader(cfg *config.Config, log *slog.Logger) *WorkbookReader {
	return &WorkbookReader{cfg.Catalog.LibreOfficeBin, log}
}

// Open parses data according to the extension of name (.xlsx, .xls, .csv).
// Without a known extension the content is sniffed.
func (this *WorkbookReader) Open(ctx context.Context, name string, data []byte) (app.Workbook, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return readExcel(data)
	case ".xls":
		return this.readLegacyExcel(ctx, data)
	case ".csv":
		return readCsv(data)
	case "":
		switch {
		case bytes.HasPrefix(data, zipMagic):
			return readExcel(data)
		case bytes.HasPrefix(data, oleMagic):
			return this.readLegacyExcel(ctx, data)
		}
		return nil, fmt.Errorf("%w: cannot detect format of %q", app.ErrUnsupportedFormat, name)
	default:
		return nil, fmt.Errorf("%w: %s", app.ErrUnsupportedFormat, ext)
	}
}

func readExcel(data []byte) (app.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrCorruptWorkbook, err)
	}
	defer f.Close()

	wb := NewMemWorkbook()
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", app.ErrCorruptWorkbook, sheet, err)
		}
		wb.AddSheet(sheet, toCells(rows))
	}

	return wb, nil
}

func (this *WorkbookReader) readLegacyExcel(ctx context.Context, data []byte) (app.Workbook, error) {
	converted, err := this.convertXls(ctx, data)
	if err != nil {
		return nil, err
	}
	return readExcel(converted)
}

func readCsv(data []byte) (app.Workbook, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8Bom)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrCorruptWorkbook, err)
	}

	return NewMemWorkbook().AddSheet(CsvSheetName, toCells(rows)), nil
}

// Empty strings become absent cells.
func toCells(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			if v != "" {
				cells[j] = v
			}
		}
		out[i] = cells
	}
	return out
}
