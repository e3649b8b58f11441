package openai_client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/init-pkg/cinecheck/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	var cfg config.Config
	cfg.Clients.AI.ApiKey = "test-key"
	cfg.Clients.AI.BaseUrl = baseURL
	cfg.Clients.AI.Model = "gemini-3-flash-preview"
	return &cfg
}

func TestGenerate(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &body))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gemini-3-flash-preview",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Una película de culto."}}]
		}`)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	gen := NewGenerator(New(cfg), cfg)

	text, err := gen.Generate(context.Background(), "hola")
	require.NoError(t, err)
	assert.Equal(t, "Una película de culto.", text)
	assert.Equal(t, "gemini-3-flash-preview", body["model"])

	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	assert.Equal(t, "hola", messages[0].(map[string]any)["content"])
}

func TestGenerateNoRetryOnFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, `{"error": {"message": "overloaded"}}`)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	gen := NewGenerator(New(cfg), cfg)

	_, err := gen.Generate(context.Background(), "hola")
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
