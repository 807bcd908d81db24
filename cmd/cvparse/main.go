// cvparse runs a local resume file through the extraction pipeline without
// persistence and prints the normalized profile JSON. Useful for prompt and
// recovery debugging against a live completion service.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/joseph-ayodele/cv-profiler/constants"
	"github.com/joseph-ayodele/cv-profiler/internal/common"
	"github.com/joseph-ayodele/cv-profiler/internal/extract"
	"github.com/joseph-ayodele/cv-profiler/internal/llm"
	"github.com/joseph-ayodele/cv-profiler/internal/llm/openai"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: cvparse <resume-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		logger.Error("unsupported file extension", "path", path)
		os.Exit(2)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := extract.NewDocumentExtractor(logger)
	res, err := extractor.Extract(ctx, format, content)
	if err != nil {
		logger.Error("extract text", "error", err)
		os.Exit(1)
	}
	if strings.TrimSpace(res.Text) == "" {
		logger.Error("document contains no extractable text")
		os.Exit(1)
	}
	logger.Info("text extracted", "format", format, "pages", res.Pages, "text_len", len(res.Text))

	completer := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		TopP:        cfg.LLM.TopP,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	raw, err := completer.Complete(ctx, llm.BuildExtractionPrompt(res.Text))
	if err != nil {
		logger.Error("completion failed", "error", err)
		os.Exit(1)
	}

	doc, err := llm.RecoverJSON(raw)
	if err != nil {
		logger.Error("recovery failed", "error", err, "raw", common.RawOf(err))
		os.Exit(1)
	}

	profile, err := llm.NormalizeProfile(doc)
	if err != nil {
		logger.Error("normalization failed", "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		logger.Error("marshal profile", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
