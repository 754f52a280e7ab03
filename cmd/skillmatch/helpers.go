package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/skillmatch/internal/config"
	"github.com/jonathan/skillmatch/internal/embedding"
	"github.com/jonathan/skillmatch/internal/logging"
	"github.com/jonathan/skillmatch/internal/matching"
	"github.com/jonathan/skillmatch/internal/scoring"
	"github.com/jonathan/skillmatch/internal/search"
)

// loadEngineConfig resolves the effective configuration: file values when
// --config is given, merged over defaults, then validated. The API key may
// also come from the GEMINI_API_KEY environment variable.
func loadEngineConfig() (config.Config, error) {
	cfg := &config.Config{}

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(config.Defaults())

	if merged.APIKey == "" {
		merged.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if verbose {
		merged.LogLevel = "debug"
		merged.LogFormat = "pretty"
	}

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}

	logging.Init(logging.Config{Level: merged.LogLevel, Format: merged.LogFormat})

	return merged, nil
}

// newEmbeddingService builds the embedding service backed by the Gemini
// provider. The returned cleanup func closes the provider connection.
func newEmbeddingService(ctx context.Context, cfg config.Config) (*embedding.Service, func(), error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("no API key configured; set GEMINI_API_KEY or api_key in the config file")
	}

	provider, err := embedding.NewGeminiProvider(ctx, cfg.APIKey, cfg.EmbeddingModel, cfg.EmbeddingDim)
	if err != nil {
		return nil, nil, err
	}

	svc := embedding.NewService(provider, embedding.ServiceConfig{
		MaxInputLen:   cfg.MaxInputLen,
		CacheCapacity: cfg.CacheCapacity,
	}).WithLogger(logging.Logger)

	cleanup := func() { _ = provider.Close() }
	return svc, cleanup, nil
}

// newMatcher builds a matcher with the configured blend weights.
func newMatcher(svc *embedding.Service, cfg config.Config) *matching.Matcher {
	return matching.NewMatcher(svc, scoring.BlendWeights{
		Semantic: cfg.SemanticWeight,
		Overlap:  cfg.OverlapWeight,
	})
}

// newSearcher builds the search orchestrator on top of the matcher.
func newSearcher(svc *embedding.Service, cfg config.Config) *search.Searcher {
	return search.NewSearcher(svc, newMatcher(svc, cfg))
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readTextInput returns the contents of path, or text when path is empty.
func readTextInput(text, path string) (string, error) {
	if path == "" {
		return text, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}
