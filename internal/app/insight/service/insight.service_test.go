package insight_service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (this *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	this.prompts = append(this.prompts, prompt)
	return this.text, this.err
}

func newService(gen *fakeGenerator) *InsightService {
	return New(gen, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestInsight(t *testing.T) {
	gen := &fakeGenerator{text: "Clásico de ciencia ficción de 1999."}

	text := newService(gen).Insight(context.Background(), "The Matrix")

	assert.Equal(t, "Clásico de ciencia ficción de 1999.", text)
	assert.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], `"The Matrix"`)
	assert.Contains(t, gen.prompts[0], "máximo 3 párrafos")
}

func TestInsightEmptyResponse(t *testing.T) {
	text := newService(&fakeGenerator{}).Insight(context.Background(), "The Matrix")
	assert.Equal(t, InsightEmptyFallback, text)
}

func TestInsightRequestFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("dial tcp: connection refused")}

	text := newService(gen).Insight(context.Background(), "The Matrix")

	assert.Equal(t, InsightErrorFallback, text)
	assert.Len(t, gen.prompts, 1)
}

func TestSuggestions(t *testing.T) {
	gen := &fakeGenerator{text: "Titanic, Avatar, Inception"}

	suggestions := newService(gen).Suggestions(context.Background(), "avatr")

	assert.Equal(t, []string{"Titanic", "Avatar", "Inception"}, suggestions)
	assert.Contains(t, gen.prompts[0], `"avatr"`)
}

func TestSuggestionsRequestFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("401 unauthorized")}

	suggestions := newService(gen).Suggestions(context.Background(), "avatr")

	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestSplitSuggestions(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Titanic, Avatar, Inception", []string{"Titanic", "Avatar", "Inception"}},
		{"  Alien ,Aliens  ", []string{"Alien", "Aliens"}},
		{"Solo una", []string{"Solo una"}},
		{"a,,b, ", []string{"a", "b"}},
		{"", []string{}},
		{"Uno, Dos, Tres, Cuatro", []string{"Uno", "Dos", "Tres", "Cuatro"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SplitSuggestions(tt.input), tt.input)
	}
}
