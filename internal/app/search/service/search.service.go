package search_service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/init-pkg/cinecheck/domain/app"
)

// SearchService runs a search against the current catalog and asks for either
// an insight on the first match or suggestions when nothing matches.
//
// Searches may overlap. Each one gets a sequence number and only the newest
// search drives State and, if the catalog it ran against is still current,
// lands in the pending-result slot returned by Last.
type SearchService struct {
	catalog     app.CatalogService
	insights    app.InsightFetcher
	suggestions app.SuggestionFetcher
	log         *slog.Logger

	mu    sync.Mutex
	seq   uint64
	state app.SearchState
	last  *app.SearchResult
}

var _ app.SearchService = &SearchService{}

func New(
	catalog app.CatalogService,
	insights app.InsightFetcher,
	suggestions app.SuggestionFetcher,
	log *slog.Logger,
) *SearchService {
	return &SearchService{
		catalog:     catalog,
		insights:    insights,
		suggestions: suggestions,
		log:         log,
		state:       app.SearchStateIdle,
	}
}

func (this *SearchService) Search(ctx context.Context, query string) (*app.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, app.ErrEmptyQuery
	}

	catalog := this.catalog.Current()
	if catalog.Len() == 0 {
		return nil, app.ErrCatalogEmpty
	}

	seq := this.start()
	result := &app.SearchResult{
		Query:      query,
		Seq:        seq,
		Generation: catalog.Generation,
	}

	matches := Match(query, catalog.Records)
	if len(matches) > 0 {
		this.transition(seq, app.SearchStateFound)
		result.Found = true
		result.Matches = matches
		result.Insight = this.insights.Insight(ctx, matches[0].Title)
	} else {
		this.transition(seq, app.SearchStateNotFound)
		result.Suggestions = this.suggestions.Suggestions(ctx, query)
	}

	this.finish(result)
	return result, nil
}

// Last returns the newest published result, or nil if there is none or the
// catalog has been reloaded since.
func (this *SearchService) Last() *app.SearchResult {
	this.mu.Lock()
	last := this.last
	this.mu.Unlock()

	if last == nil || last.Generation != this.catalog.Current().Generation {
		return nil
	}
	return last
}

// State is the state of the newest search: searching, then found or
// not-found while the insight or suggestions are fetched, then idle.
func (this *SearchService) State() app.SearchState {
	this.mu.Lock()
	defer this.mu.Unlock()

	return this.state
}

func (this *SearchService) start() uint64 {
	this.mu.Lock()
	defer this.mu.Unlock()

	this.seq++
	this.state = app.SearchStateSearching
	this.log.Debug("search state", "seq", this.seq, "state", this.state)
	return this.seq
}

// transition moves the state machine only for the newest search.
func (this *SearchService) transition(seq uint64, state app.SearchState) {
	this.mu.Lock()
	defer this.mu.Unlock()

	this.setState(seq, state)
}

func (this *SearchService) setState(seq uint64, state app.SearchState) {
	if seq != this.seq {
		return
	}
	this.state = state
	this.log.Debug("search state", "seq", seq, "state", state)
}

// finish publishes result and returns the machine to idle, unless a newer
// search has started in the meantime.
func (this *SearchService) finish(result *app.SearchResult) {
	this.mu.Lock()
	defer this.mu.Unlock()

	if result.Seq != this.seq {
		this.log.Info("discarding stale search result", "query", result.Query, "seq", result.Seq, "latest", this.seq)
		return
	}
	this.setState(result.Seq, app.SearchStateIdle)

	if generation := this.catalog.Current().Generation; result.Generation != generation {
		this.log.Info("discarding search result for replaced catalog", "query", result.Query, "generation", result.Generation)
		return
	}
	this.last = result
}
