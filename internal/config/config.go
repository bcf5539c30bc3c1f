package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// APIKeyEnv имя переменной окружения с ключом OpenAI.
const APIKeyEnv = "OPENAI_API_KEY"

type Config struct {
	DebugMode bool `env:"DEBUG_MODE"` // Режим дебага: подробные логи запросов
	StubMode  bool `env:"STUB_MODE"`  // Работать без сети через StubClient

	// Доступ к OpenAI
	APIKey         string        `env:"OPENAI_API_KEY"`         // Ключ берём только из .env/ENV, флага нет
	BaseURL        string        `env:"OPENAI_BASE_URL"`        // Пусто — https://api.openai.com/v1/
	OrgID          string        `env:"OPENAI_ORG_ID"`          // Заголовок OpenAI-Organization, пусто — не отправлять
	ProjectID      string        `env:"OPENAI_PROJECT_ID"`      // Заголовок OpenAI-Project, пусто — не отправлять
	RequestTimeout time.Duration `env:"OPENAI_REQUEST_TIMEOUT"` // 0 — без собственного таймаута
	MaxRetries     int           `env:"OPENAI_MAX_RETRIES"`     // <0 — политика повторов SDK по умолчанию

	// Текстовые запросы
	ChatModel   string  `env:"OPENAI_CHAT_MODEL"`  // Модель для GenerateText, если вызывающий не указал свою
	CheckModel  string  `env:"OPENAI_CHECK_MODEL"` // Модель для проверки соединения
	MaxTokens   int64   `env:"OPENAI_MAX_TOKENS"`  // Ограничение длины ответа
	Temperature float64 `env:"OPENAI_TEMPERATURE"` // Случайность ответа

	// Генерация картинок
	ImageModel   string `env:"OPENAI_IMAGE_MODEL"`
	ImageSize    string `env:"OPENAI_IMAGE_SIZE"`    // Квадрат 1024x1024 по умолчанию
	ImageQuality string `env:"OPENAI_IMAGE_QUALITY"` // standard|hd

	// Промпты демонстрации
	TextPrompt  string `env:"TEXT_PROMPT"`
	ImagePrompt string `env:"IMAGE_PROMPT"`
}

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		DebugMode:    false,
		StubMode:     false,
		MaxRetries:   -1,
		ChatModel:    "gpt-4",
		CheckModel:   "gpt-4",
		MaxTokens:    1000,
		Temperature:  0.7,
		ImageModel:   "dall-e-3",
		ImageSize:    "1024x1024",
		ImageQuality: "standard",
		TextPrompt:   "Explain quantum computing in simple terms.",
		ImagePrompt:  "A cute robot reading a book in a library",
	}
}

// NewConfig загружает конфигурацию приложения из .env, окружения и флагов командной строки.
// Единственное место, где читается окружение процесса.
func NewConfig() (*Config, error) {
	return Load(flag.CommandLine, os.Args[1:])
}

// Load собирает конфигурацию: дефолты, затем .env/окружение, затем флаги из args.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	// .env необязателен, отсутствие файла не ошибка
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "включить режим дебага для подробных логов")
	fs.BoolVar(&cfg.StubMode, "stub", cfg.StubMode, "не ходить в сеть, отвечать заглушкой")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "базовый адрес OpenAI API (пусто — по умолчанию)")
	fs.StringVar(&cfg.OrgID, "org-id", cfg.OrgID, "организация OpenAI (заголовок OpenAI-Organization)")
	fs.StringVar(&cfg.ProjectID, "project-id", cfg.ProjectID, "проект OpenAI (заголовок OpenAI-Project)")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "таймаут одного запроса, напр. 30s (0 — по умолчанию SDK)")
	fs.IntVar(&cfg.MaxRetries, "max-retries", cfg.MaxRetries, "число повторов SDK (<0 — по умолчанию SDK)")
	fs.StringVar(&cfg.ChatModel, "chat-model", cfg.ChatModel, "модель для текстовых запросов")
	fs.StringVar(&cfg.CheckModel, "check-model", cfg.CheckModel, "модель для проверки соединения")
	fs.Int64Var(&cfg.MaxTokens, "max-tokens", cfg.MaxTokens, "максимум токенов в ответе")
	fs.Float64Var(&cfg.Temperature, "temperature", cfg.Temperature, "температура генерации")
	fs.StringVar(&cfg.ImageModel, "image-model", cfg.ImageModel, "модель генерации картинок")
	fs.StringVar(&cfg.ImageSize, "image-size", cfg.ImageSize, "размер картинки, напр. 1024x1024")
	fs.StringVar(&cfg.ImageQuality, "image-quality", cfg.ImageQuality, "качество картинки: standard|hd")
	fs.StringVar(&cfg.TextPrompt, "text-prompt", cfg.TextPrompt, "промпт для примера текстового запроса")
	fs.StringVar(&cfg.ImagePrompt, "image-prompt", cfg.ImagePrompt, "промпт для примера генерации картинки")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	return cfg, nil
}
