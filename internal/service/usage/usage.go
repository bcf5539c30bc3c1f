package usage

import (
	"OpenAIExamples/internal/ai"
	"OpenAIExamples/internal/config"
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"go.uber.org/zap"
)

// ClientSource выдаёт клиента OpenAI на каждый вызов. Реализуется ai.Provider.
type ClientSource interface {
	Client() (*openai.Client, error)
}

// Service выполняет пример текстового запроса и пример генерации картинки.
// Ошибки не глотает: всё, что вернул провайдер или API, уходит вызывающему.
type Service struct {
	cfg    *config.Config
	logger *zap.SugaredLogger

	// Генераторы создаются на каждый вызов; в режиме заглушки клиент OpenAI не создаётся вовсе.
	textGenerator  func() (ai.TextGenerator, error)
	imageGenerator func() (ai.ImageGenerator, error)
}

// New создаёт сервис, работающий с настоящим OpenAI через source.
func New(cfg *config.Config, source ClientSource, logger *zap.SugaredLogger) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger,
		textGenerator: func() (ai.TextGenerator, error) {
			client, err := source.Client()
			if err != nil {
				return nil, err
			}
			return ai.NewTextClient(client), nil
		},
		imageGenerator: func() (ai.ImageGenerator, error) {
			client, err := source.Client()
			if err != nil {
				return nil, err
			}
			return ai.NewImageClient(client), nil
		},
	}
}

// NewStub создаёт сервис, который не делает сетевых запросов и не требует ключа.
func NewStub(cfg *config.Config, logger *zap.SugaredLogger) *Service {
	stub := ai.NewStubClient()
	return &Service{
		cfg:            cfg,
		logger:         logger,
		textGenerator:  func() (ai.TextGenerator, error) { return stub, nil },
		imageGenerator: func() (ai.ImageGenerator, error) { return stub, nil },
	}
}

// GenerateText отправляет prompt одним chat-запросом и возвращает текст первого варианта.
// Пустой model означает модель из конфигурации.
func (s *Service) GenerateText(ctx context.Context, prompt, model string) (string, error) {
	if model == "" {
		model = s.cfg.ChatModel
	}

	gen, err := s.textGenerator()
	if err != nil {
		return "", err
	}

	temperature := s.cfg.Temperature
	req := ai.TextRequest{
		Model:       model,
		Prompt:      prompt,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: &temperature,
	}
	s.logger.Debugw("Sending chat completion", "model", req.Model, "max_tokens", req.MaxTokens, "temperature", temperature)

	text, err := gen.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return text, nil
}

// GenerateImage запрашивает ровно одну картинку и возвращает её URL.
func (s *Service) GenerateImage(ctx context.Context, prompt string) (string, error) {
	gen, err := s.imageGenerator()
	if err != nil {
		return "", err
	}

	req := ai.ImageRequest{
		Model:   s.cfg.ImageModel,
		Prompt:  prompt,
		Size:    s.cfg.ImageSize,
		Quality: s.cfg.ImageQuality,
		N:       1,
	}
	s.logger.Debugw("Sending image generation", "model", req.Model, "size", req.Size, "quality", req.Quality)

	url, err := gen.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("image generation: %w", err)
	}
	return url, nil
}
