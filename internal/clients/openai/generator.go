package openai_client

import (
	"context"

	"github.com/init-pkg/cinecheck/domain/app"
	"github.com/init-pkg/cinecheck/internal/config"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/shared"
)

// Generator sends a single user prompt and returns the text of the first choice.
type Generator struct {
	client *openai.Client
	model  string
}

var _ app.TextGenerator = &Generator{}

func NewGenerator(client *openai.Client, cfg *config.Config) *Generator {
	return &Generator{client, cfg.Clients.AI.Model}
}

func (this *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := this.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(this.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
