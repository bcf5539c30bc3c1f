package main

import (
	"OpenAIExamples/internal/ai"
	"OpenAIExamples/internal/app/demo"
	"OpenAIExamples/internal/config"
	"OpenAIExamples/internal/service/usage"
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// создаём регистратор zap; debug-уровень только в режиме дебага
	zcfg := zap.NewDevelopmentConfig()
	if !cfg.DebugMode {
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger, каждый запуск помечаем своим run_id
	sugar := logger.Sugar().With("run_id", uuid.NewString())
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	sugar.Infow(
		"Starting examples",
		"DebugMode", cfg.DebugMode,
		"StubMode", cfg.StubMode,
		"ChatModel", cfg.ChatModel,
		"ImageModel", cfg.ImageModel,
	)

	var svc *usage.Service
	if cfg.StubMode {
		svc = usage.NewStub(cfg, sugar)
	} else {
		svc = usage.New(cfg, ai.NewProvider(cfg), sugar)
	}

	sum := demo.New(svc, os.Stdout, sugar, cfg.TextPrompt, cfg.ImagePrompt).Run(context.Background())
	sugar.Infow("Examples finished", "text_ok", sum.TextOK, "image_ok", sum.ImageOK)
}
