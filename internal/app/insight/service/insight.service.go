package insight_service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/init-pkg/cinecheck/domain/app"
)

// InsightService asks the text generator about titles. It never returns
// errors: failures are logged and replaced by fallback content.
type InsightService struct {
	generator app.TextGenerator
	log       *slog.Logger
}

var (
	_ app.InsightFetcher    = &InsightService{}
	_ app.SuggestionFetcher = &InsightService{}
)

func New(generator app.TextGenerator, log *slog.Logger) *InsightService {
	return &InsightService{generator, log}
}

func (this *InsightService) Insight(ctx context.Context, title string) string {
	text, err := this.generator.Generate(ctx, insightPrompt(title))
	if err != nil {
		this.log.Error("failed to get insight", "title", title, "error", err)
		return InsightErrorFallback
	}

	if text == "" {
		return InsightEmptyFallback
	}

	return text
}

func (this *InsightService) Suggestions(ctx context.Context, query string) []string {
	text, err := this.generator.Generate(ctx, suggestionsPrompt(query))
	if err != nil {
		this.log.Error("failed to get suggestions", "query", query, "error", err)
		return []string{}
	}

	return SplitSuggestions(text)
}

// SplitSuggestions splits a comma separated answer into trimmed, non-empty titles.
func SplitSuggestions(text string) []string {
	suggestions := []string{}
	for _, part := range strings.Split(text, ",") {
		if s := strings.TrimSpace(part); s != "" {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions
}
