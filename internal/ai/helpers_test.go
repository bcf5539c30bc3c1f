package ai

import (
	"OpenAIExamples/internal/config"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/require"
)

const (
	chatCompletionBody = `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-4",
		"choices": [
			{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "first choice"}},
			{"index": 1, "finish_reason": "stop", "message": {"role": "assistant", "content": "second choice"}}
		]
	}`
	imageBody = `{
		"created": 1700000001,
		"data": [
			{"url": "https://example.com/first.png", "revised_prompt": "A cute robot"},
			{"url": "https://example.com/second.png"}
		]
	}`
	unauthorizedBody = `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error", "code": "invalid_api_key"}}`
)

// recordedRequest то, что увидела заглушка API.
type recordedRequest struct {
	Path    string
	Auth    string
	Org     string
	Project string
	Body    map[string]any
}

// stubAPI httptest-сервер, который отвечает заранее заданными ответами по пути запроса.
type stubAPI struct {
	t      *testing.T
	srv    *httptest.Server
	routes map[string]stubRoute

	mu       sync.Mutex
	requests []recordedRequest
}

type stubRoute struct {
	status int
	body   string
}

func newStubAPI(t *testing.T) *stubAPI {
	t.Helper()
	s := &stubAPI{t: t, routes: make(map[string]stubRoute)}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *stubAPI) on(path string, status int, body string) *stubAPI {
	s.routes[path] = stubRoute{status: status, body: body}
	return s
}

func (s *stubAPI) handle(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.t.Errorf("read request body: %v", err)
	}
	var body map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			s.t.Errorf("decode request body: %v", err)
		}
	}

	s.mu.Lock()
	s.requests = append(s.requests, recordedRequest{
		Path:    r.URL.Path,
		Auth:    r.Header.Get("Authorization"),
		Org:     r.Header.Get("OpenAI-Organization"),
		Project: r.Header.Get("OpenAI-Project"),
		Body:    body,
	})
	s.mu.Unlock()

	route, ok := s.routes[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(route.status)
	_, _ = w.Write([]byte(route.body))
}

func (s *stubAPI) recorded() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedRequest(nil), s.requests...)
}

// provider провайдер, направленный в заглушку, без повторов SDK.
func (s *stubAPI) provider(apiKey string) *Provider {
	cfg := config.Defaults()
	cfg.APIKey = apiKey
	return NewProvider(cfg,
		option.WithBaseURL(s.srv.URL),
		option.WithHTTPClient(s.srv.Client()),
		option.WithMaxRetries(0),
	)
}

func requireSingleRequest(t *testing.T, s *stubAPI) recordedRequest {
	t.Helper()
	reqs := s.recorded()
	require.Len(t, reqs, 1)
	return reqs[0]
}
