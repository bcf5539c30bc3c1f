package ai

import (
	"context"

	"github.com/openai/openai-go/v3"
)

// TextClient отправляет один chat completion запрос в OpenAI
type TextClient struct {
	client *openai.Client
}

func NewTextClient(client *openai.Client) *TextClient {
	return &TextClient{client: client}
}

func (c *TextClient) Complete(ctx context.Context, req TextRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
