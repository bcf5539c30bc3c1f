package ai

import (
	"context"
	"fmt"
	"io"
)

const (
	connectionPrompt    = "Hello! This is a test message."
	connectionMaxTokens = 50
)

// ConnectionResult итог проверки соединения: либо текст ответа, либо ошибка с её видом.
type ConnectionResult struct {
	Text string
	Kind FailureKind // пусто при успехе
	Err  error
}

func (r ConnectionResult) OK() bool { return r.Err == nil }

// TestConnection делает один минимальный текстовый запрос с моделью из конфига.
// Ошибки не возвращает: любой сбой оказывается в ConnectionResult.
func (p *Provider) TestConnection(ctx context.Context) (res ConnectionResult) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("connection check panicked: %v", r)
			res = ConnectionResult{Kind: FailureUnknown, Err: err}
		}
	}()

	client, err := p.Client()
	if err != nil {
		return ConnectionResult{Kind: Classify(err), Err: err}
	}

	text, err := NewTextClient(client).Complete(ctx, TextRequest{
		Model:     p.cfg.CheckModel,
		Prompt:    connectionPrompt,
		MaxTokens: connectionMaxTokens,
	})
	if err != nil {
		return ConnectionResult{Kind: Classify(err), Err: err}
	}

	return ConnectionResult{Text: text}
}

// ReportConnection печатает итог проверки в человекочитаемом виде и возвращает OK().
func ReportConnection(w io.Writer, r ConnectionResult) bool {
	if !r.OK() {
		fmt.Fprintf(w, "❌ API connection failed: %v\n", r.Err)
		return false
	}
	fmt.Fprintln(w, "✅ API connection successful!")
	fmt.Fprintf(w, "Response: %s\n", r.Text)
	return true
}
