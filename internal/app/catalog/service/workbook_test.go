package catalog_service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/init-pkg/cinecheck/domain/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testReader() *WorkbookReader {
	return &WorkbookReader{libreOffice: "/nonexistent/libreoffice", log: testLogger()}
}

// buildXlsx writes a workbook with the default Sheet1 followed by a sheet
// named Alpha, so that workbook order differs from alphabetical order.
func buildXlsx(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Alpha")
	require.NoError(t, err)

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"The Matrix", 1999, "Wachowski"}))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "orphan"))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "   "))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]any{1984, "Orwell"}))
	require.NoError(t, f.SetSheetRow("Alpha", "A1", &[]any{"Avatar", 2009}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestOpenXlsx(t *testing.T) {
	wb, err := testReader().Open(context.Background(), "LISTADO_PELIS.xlsx", buildXlsx(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"Sheet1", "Alpha"}, wb.SheetNames())

	records, err := Extract(wb, app.ExtractOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"The Matrix", "1984", "Avatar"}, titles(records))
	assert.Equal(t, "Alpha", records[2].SheetName)
	assert.Equal(t, app.IndexedRow{"The Matrix", "1999", "Wachowski"}, records[0].Row)
}

func TestOpenSniffsZipWithoutExtension(t *testing.T) {
	wb, err := testReader().Open(context.Background(), "download", buildXlsx(t))
	require.NoError(t, err)
	assert.Len(t, wb.SheetNames(), 2)
}

func TestOpenCorruptXlsx(t *testing.T) {
	_, err := testReader().Open(context.Background(), "broken.xlsx", []byte("definitely not a zip"))
	assert.ErrorIs(t, err, app.ErrCorruptWorkbook)
}

func TestOpenCsv(t *testing.T) {
	data := []byte("\xEF\xBB\xBFThe Matrix,1999\n,orphan\n\"Alien, el octavo pasajero\",1979,extra\n")

	wb, err := testReader().Open(context.Background(), "pelis.CSV", data)
	require.NoError(t, err)
	assert.Equal(t, []string{CsvSheetName}, wb.SheetNames())

	records, err := Extract(wb, app.ExtractOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"The Matrix", "Alien, el octavo pasajero"}, titles(records))
	assert.Equal(t, app.IndexedRow{"Alien, el octavo pasajero", "1979", "extra"}, records[1].Row)
}

func TestOpenUnsupported(t *testing.T) {
	_, err := testReader().Open(context.Background(), "notes.txt", []byte("hello"))
	assert.ErrorIs(t, err, app.ErrUnsupportedFormat)

	_, err = testReader().Open(context.Background(), "blob", []byte("hello"))
	assert.ErrorIs(t, err, app.ErrUnsupportedFormat)
}

func TestOpenXlsWithoutLibreOffice(t *testing.T) {
	_, err := testReader().Open(context.Background(), "old.xls", []byte{0xD0, 0xCF, 0x11, 0xE0})
	assert.ErrorIs(t, err, app.ErrUnsupportedFormat)
}
