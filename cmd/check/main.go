package main

import (
	"OpenAIExamples/internal/ai"
	"OpenAIExamples/internal/config"
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Проверка ключа и сети одним минимальным запросом. Код выхода всегда 0.
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zcfg := zap.NewDevelopmentConfig()
	if !cfg.DebugMode {
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar().With("run_id", uuid.NewString())
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	res := ai.NewProvider(cfg).TestConnection(context.Background())
	if !ai.ReportConnection(os.Stdout, res) {
		sugar.Warnw("Connection check failed", "kind", res.Kind, "error", res.Err)
		return
	}
	sugar.Debugw("Connection check passed", "model", cfg.CheckModel)
}
