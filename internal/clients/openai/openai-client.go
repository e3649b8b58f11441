package openai_client

import (
	"github.com/init-pkg/cinecheck/internal/config"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// New builds a chat completions client. Retries are disabled: every call is a
// single round trip.
func New(cfg *config.Config) *openai.Client {
	var opts = []option.RequestOption{
		option.WithAPIKey(cfg.Clients.AI.ApiKey),
		option.WithMaxRetries(0),
	}
	if cfg.Clients.AI.BaseUrl != "" {
		opts = append(opts, option.WithBaseURL(cfg.Clients.AI.BaseUrl))
	}
	if cfg.Clients.AI.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Clients.AI.Timeout))
	}

	var cl = openai.NewClient(opts...)

	return &cl
}
