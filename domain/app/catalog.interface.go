package app

import "context"

type CatalogService interface {
	LoadFile(ctx context.Context, name string, data []byte) (*Catalog, error)
	LoadURL(ctx context.Context, ref string) (*Catalog, error)
	Autoload(ctx context.Context, ref string) (*Catalog, error)
	Current() *Catalog
	Status() CatalogStatus
}

// AssetFetcher resolves a reference against the asset root and returns its
// file name and content. References that escape the root are rejected.
type AssetFetcher interface {
	Fetch(ctx context.Context, ref string) (string, []byte, error)
}

type SearchService interface {
	Search(ctx context.Context, query string) (*SearchResult, error)
	Last() *SearchResult
	State() SearchState
}

// InsightFetcher never fails: errors degrade to fallback text.
type InsightFetcher interface {
	Insight(ctx context.Context, title string) string
}

// SuggestionFetcher never fails: errors degrade to an empty list.
type SuggestionFetcher interface {
	Suggestions(ctx context.Context, query string) []string
}

type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
