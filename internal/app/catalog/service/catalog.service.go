package catalog_service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/init-pkg/cinecheck/domain/app"
	"github.com/init-pkg/cinecheck/internal/config"
)

const (
	autoloadWarning = "No se pudo cargar %q automáticamente. Sube el archivo manualmente."
	reloadWarning   = "No se pudo recargar %q. Sube el archivo manualmente."
)

// CatalogService holds the authoritative collection of records. Each load
// replaces it wholesale; a load started later supersedes any load in flight.
type CatalogService struct {
	reader  *WorkbookReader
	fetcher app.AssetFetcher
	opts    app.ExtractOptions
	log     *slog.Logger
	now     func() time.Time

	mu      sync.RWMutex
	loadSeq uint64
	cancel  context.CancelFunc
	current *app.Catalog
	warning string
}

var _ app.CatalogService = &CatalogService{}

func New(reader *WorkbookReader, fetcher app.AssetFetcher, cfg *config.Config, log *slog.Logger) *CatalogService {
	return &CatalogService{
		reader:  reader,
		fetcher: fetcher,
		opts:    app.ExtractOptions{HeaderRow: cfg.Catalog.HeaderRow},
		log:     log,
		now:     time.Now,
	}
}

func (this *CatalogService) LoadFile(ctx context.Context, name string, data []byte) (*app.Catalog, error) {
	seq, ctx, cancel := this.begin(ctx)
	defer cancel()

	return this.load(ctx, seq, name, data)
}

// LoadURL is a user-triggered reload of ref.
func (this *CatalogService) LoadURL(ctx context.Context, ref string) (*app.Catalog, error) {
	return this.loadURL(ctx, ref, reloadWarning)
}

// Autoload is the startup load of ref.
func (this *CatalogService) Autoload(ctx context.Context, ref string) (*app.Catalog, error) {
	return this.loadURL(ctx, ref, autoloadWarning)
}

func (this *CatalogService) loadURL(ctx context.Context, ref, warning string) (*app.Catalog, error) {
	seq, ctx, cancel := this.begin(ctx)
	defer cancel()

	name, data, err := this.fetcher.Fetch(ctx, ref)
	if err != nil {
		if !this.isLatest(seq) {
			return nil, app.ErrSuperseded
		}
		this.log.Warn("catalog fetch failed", "ref", ref, "error", err)
		this.setWarning(seq, fmt.Sprintf(warning, ref))
		return nil, err
	}

	return this.load(ctx, seq, name, data)
}

func (this *CatalogService) Current() *app.Catalog {
	this.mu.RLock()
	defer this.mu.RUnlock()

	if this.current == nil {
		return &app.Catalog{Records: []app.Record{}}
	}
	return this.current
}

func (this *CatalogService) Status() app.CatalogStatus {
	this.mu.RLock()
	defer this.mu.RUnlock()

	status := app.CatalogStatus{Warning: this.warning}
	if this.current != nil {
		status.FileName = this.current.FileName
		status.RecordCount = len(this.current.Records)
		status.LoadedAt = this.current.LoadedAt
		status.Generation = this.current.Generation
	}
	return status
}

// begin registers a new load and cancels the previous one if it is still running.
func (this *CatalogService) begin(ctx context.Context) (uint64, context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	this.mu.Lock()
	defer this.mu.Unlock()

	if this.cancel != nil {
		this.cancel()
	}
	this.cancel = cancel
	this.loadSeq++

	return this.loadSeq, ctx, cancel
}

func (this *CatalogService) load(ctx context.Context, seq uint64, name string, data []byte) (*app.Catalog, error) {
	wb, err := this.reader.Open(ctx, name, data)
	if err != nil {
		// a cancelled conversion fails like a broken file
		if !this.isLatest(seq) {
			return nil, app.ErrSuperseded
		}
		this.log.Error("failed to open workbook", "file", name, "error", err)
		return nil, err
	}

	records, err := Extract(wb, this.opts)
	if err != nil {
		this.log.Error("failed to extract records", "file", name, "error", err)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		if !this.isLatest(seq) {
			return nil, app.ErrSuperseded
		}
		return nil, err
	}

	return this.commit(seq, name, records)
}

func (this *CatalogService) commit(seq uint64, name string, records []app.Record) (*app.Catalog, error) {
	this.mu.Lock()
	defer this.mu.Unlock()

	if seq != this.loadSeq {
		this.log.Info("discarding superseded catalog load", "file", name, "seq", seq, "latest", this.loadSeq)
		return nil, app.ErrSuperseded
	}

	var generation uint64 = 1
	if this.current != nil {
		generation = this.current.Generation + 1
	}

	this.current = &app.Catalog{
		FileName:   name,
		Records:    records,
		LoadedAt:   this.now(),
		Generation: generation,
	}
	this.warning = ""

	this.log.Info("catalog loaded", "file", name, "records", len(records), "generation", generation)
	return this.current, nil
}

func (this *CatalogService) isLatest(seq uint64) bool {
	this.mu.RLock()
	defer this.mu.RUnlock()

	return seq == this.loadSeq
}

func (this *CatalogService) setWarning(seq uint64, warning string) {
	this.mu.Lock()
	defer this.mu.Unlock()

	if seq == this.loadSeq {
		this.warning = warning
	}
}
