package ai

import (
	"context"

	"github.com/openai/openai-go/v3"
)

// ImageClient генерирует картинки через Images API и отдаёт ссылку на результат
type ImageClient struct {
	client *openai.Client
}

func NewImageClient(client *openai.Client) *ImageClient {
	return &ImageClient{client: client}
}

func (c *ImageClient) Generate(ctx context.Context, req ImageRequest) (string, error) {
	params := openai.ImageGenerateParams{
		Model:   openai.ImageModel(req.Model),
		Prompt:  req.Prompt,
		Size:    openai.ImageGenerateParamsSize(req.Size),
		Quality: openai.ImageGenerateParamsQuality(req.Quality),
	}
	if req.N > 0 {
		params.N = openai.Int(req.N)
	}

	resp, err := c.client.Images.Generate(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Data[0].URL, nil
}
