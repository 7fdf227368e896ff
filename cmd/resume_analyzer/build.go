package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/suggest"
)

// buildCoordinator wires a pipeline coordinator from the loaded
// configuration. The returned cleanup closes the AI client if one was
// created.
func buildCoordinator(ctx context.Context, cfg *config.Config, targetRole string) (*pipeline.Coordinator, func(), error) {
	dict, err := dictionary.Load(cfg.DictionaryPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading dictionary: %w", err)
	}

	var client llm.Client
	cleanup := func() {}
	if cfg.AIActive() {
		gemini, err := llm.NewGeminiClient(ctx, cfg.LLMConfig(), cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("creating AI client: %w", err)
		}
		client = gemini
		cleanup = func() {
			if err := gemini.Close(); err != nil {
				log.Printf("Error closing AI client: %v", err)
			}
		}
	}

	coordinator := pipeline.New(pipeline.Options{
		Dictionary:  dict,
		Scoring:     cfg.ScoringConfig(),
		Proficiency: cfg.ProficiencyThresholds(),
		Suggester:   suggest.New(client, cfg.SuggestConfig()),
		TargetRole:  targetRole,
	})

	return coordinator, cleanup, nil
}
