package ai

import "context"

// StubImageURL ссылка, которую StubClient возвращает вместо настоящей картинки.
const StubImageURL = "https://example.com/stub-image.png"

// StubClient заглушка, которая не делает реальных запросов
type StubClient struct{}

func NewStubClient() *StubClient { return &StubClient{} }

func (c *StubClient) Complete(_ context.Context, _ TextRequest) (string, error) {
	return "запрос получен", nil
}

func (c *StubClient) Generate(_ context.Context, _ ImageRequest) (string, error) {
	return StubImageURL, nil
}
