package catalog_service

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/init-pkg/cinecheck/domain/app"
)

// How long to wait for output pipes after the converter is killed.
const conversionWaitDelay = 5 * time.Second

// convertXls turns a legacy BIFF workbook into xlsx with headless LibreOffice.
func (this *WorkbookReader) convertXls(ctx context.Context, data []byte) ([]byte, error) {
	dir, err := os.MkdirTemp("", "cinecheck-xls-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	inputPath := filepath.Join(dir, "input.xls")
	if err := os.WriteFile(inputPath, data, 0o600); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, this.libreOffice, "--headless", "--convert-to", "xlsx", inputPath, "--outdir", dir)
	cmd.WaitDelay = conversionWaitDelay
	if out, err := cmd.CombinedOutput(); err != nil {
		this.log.Error("LibreOffice conversion failed", "error", err, "output", string(out))
		return nil, fmt.Errorf("%w: xls conversion failed: %v", app.ErrUnsupportedFormat, err)
	}

	converted, err := os.ReadFile(filepath.Join(dir, "input.xlsx"))
	if err != nil {
		return nil, fmt.Errorf("%w: xls conversion produced no output: %v", app.ErrCorruptWorkbook, err)
	}

	return converted, nil
}
