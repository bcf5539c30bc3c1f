package ai

import "context"

// TextGenerator отправляет один текстовый запрос и возвращает текст первого варианта ответа.
// Все реализации должны быть взаимозаменяемыми.
type TextGenerator interface {
	Complete(ctx context.Context, req TextRequest) (string, error)
}

// ImageGenerator запрашивает одну картинку и возвращает её URL.
type ImageGenerator interface {
	Generate(ctx context.Context, req ImageRequest) (string, error)
}

// TextRequest параметры текстового запроса.
type TextRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int64
	Temperature *float64 // nil — не передавать, пусть решает API
}

// ImageRequest параметры генерации картинки.
type ImageRequest struct {
	Model   string
	Prompt  string
	Size    string
	Quality string
	N       int64
}
