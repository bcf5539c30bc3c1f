package demo

import (
	"OpenAIExamples/internal/ai"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Generator то, что умеет сервис примеров (usage.Service).
type Generator interface {
	GenerateText(ctx context.Context, prompt, model string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Summary итог прогона: какие примеры завершились успешно.
type Summary struct {
	TextOK  bool
	ImageOK bool
}

type Demo struct {
	gen         Generator
	out         io.Writer
	logger      *zap.SugaredLogger
	textPrompt  string
	imagePrompt string
}

func New(gen Generator, out io.Writer, logger *zap.SugaredLogger, textPrompt, imagePrompt string) *Demo {
	return &Demo{
		gen:         gen,
		out:         out,
		logger:      logger,
		textPrompt:  textPrompt,
		imagePrompt: imagePrompt,
	}
}

// Run выполняет оба примера по очереди. Ошибка одного не мешает второму,
// наружу ошибки не выходят: они печатаются и попадают в Summary.
func (d *Demo) Run(ctx context.Context) Summary {
	var sum Summary

	fmt.Fprintln(d.out, "🤖 OpenAI API Examples")
	fmt.Fprintln(d.out, strings.Repeat("=", 40))

	fmt.Fprintln(d.out, "\n1. Chat Completion Example:")
	if resp, err := d.gen.GenerateText(ctx, d.textPrompt, ""); err != nil {
		d.logger.Warnw("Chat completion example failed", "error", err, "kind", ai.Classify(err))
		fmt.Fprintf(d.out, "Error: %v\n", err)
	} else {
		sum.TextOK = true
		fmt.Fprintf(d.out, "Response: %s\n", resp)
	}

	fmt.Fprintln(d.out, "\n2. Image Generation Example:")
	if url, err := d.gen.GenerateImage(ctx, d.imagePrompt); err != nil {
		d.logger.Warnw("Image generation example failed", "error", err, "kind", ai.Classify(err))
		fmt.Fprintf(d.out, "Error: %v\n", err)
	} else {
		sum.ImageOK = true
		fmt.Fprintf(d.out, "Generated image URL: %s\n", url)
	}

	return sum
}
