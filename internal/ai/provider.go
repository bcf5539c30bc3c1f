package ai

import (
	"OpenAIExamples/internal/config"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1/"
	headerOrganization = "OpenAI-Organization"
	headerProject      = "OpenAI-Project"
)

// Provider выдаёт клиентов OpenAI, привязанных к ключу из конфигурации.
// Окружение процесса сам не читает: всё приходит через config.Config.
type Provider struct {
	cfg  *config.Config
	opts []option.RequestOption
}

// NewProvider создаёт провайдера. opts добавляются после настроек из конфига,
// поэтому могут их перекрыть (например, подменить транспорт в тестах).
func NewProvider(cfg *config.Config, opts ...option.RequestOption) *Provider {
	return &Provider{cfg: cfg, opts: opts}
}

// Client возвращает нового клиента или *ConfigurationError, если ключ не задан.
func (p *Provider) Client() (*openai.Client, error) {
	apiKey := ""
	if p.cfg != nil {
		apiKey = strings.TrimSpace(p.cfg.APIKey)
	}
	if apiKey == "" {
		return nil, &ConfigurationError{Variable: config.APIKeyEnv}
	}

	// SDK сначала подставляет OPENAI_* из окружения, поэтому каждое такое
	// значение здесь задаётся явно из конфига или убирается.
	baseURL := strings.TrimSpace(p.cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	}
	if org := strings.TrimSpace(p.cfg.OrgID); org != "" {
		opts = append(opts, option.WithOrganization(org))
	} else {
		opts = append(opts, option.WithHeaderDel(headerOrganization))
	}
	if project := strings.TrimSpace(p.cfg.ProjectID); project != "" {
		opts = append(opts, option.WithProject(project))
	} else {
		opts = append(opts, option.WithHeaderDel(headerProject))
	}
	if p.cfg.RequestTimeout > 0 {
		opts = append(opts, option.WithRequestTimeout(p.cfg.RequestTimeout))
	}
	if p.cfg.MaxRetries >= 0 {
		opts = append(opts, option.WithMaxRetries(p.cfg.MaxRetries))
	}
	opts = append(opts, p.opts...)

	client := openai.NewClient(opts...)
	return &client, nil
}
