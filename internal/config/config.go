// Package config provides configuration loading and validation for the
// matching engine and its CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config holds every recognized engine option. All fields are optional in
// the JSON file; missing values fall back to defaults via MergeWithDefaults.
type Config struct {
	// Embedding provider
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name
	EmbeddingDim   int    `json:"embedding_dim,omitempty" validate:"omitempty,gt=0"`
	APIKey         string `json:"api_key,omitempty"` // Gemini API key
	MaxInputLen    int    `json:"max_input_len,omitempty" validate:"omitempty,gt=0"`
	CacheCapacity  int    `json:"cache_capacity,omitempty"` // Negative disables the embedding cache

	// Scoring
	SemanticWeight float64 `json:"semantic_weight,omitempty" validate:"omitempty,gte=0,lte=1"`
	OverlapWeight  float64 `json:"overlap_weight,omitempty" validate:"omitempty,gte=0,lte=1"`

	// Minimum-similarity floors per operation
	MinSimilarityMatch   float64 `json:"min_similarity_match,omitempty" validate:"omitempty,gte=-1,lte=1"`
	MinSimilaritySearch  float64 `json:"min_similarity_search,omitempty" validate:"omitempty,gte=-1,lte=1"`
	MinSimilaritySimilar float64 `json:"min_similarity_similar,omitempty" validate:"omitempty,gte=-1,lte=1"`

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Logging
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=json pretty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the engine defaults: 768-dim Gemini embeddings, a
// 1000-entry cache, a 10000-character input cap, the 0.7/0.3 blend and
// the per-operation similarity floors.
func Defaults() Config {
	return Config{
		EmbeddingModel:       "text-embedding-004",
		EmbeddingDim:         768,
		MaxInputLen:          10000,
		CacheCapacity:        1000,
		SemanticWeight:       0.7,
		OverlapWeight:        0.3,
		MinSimilarityMatch:   0.3,
		MinSimilaritySearch:  0.2,
		MinSimilaritySimilar: 0.3,
		LogLevel:             "info",
		LogFormat:            "json",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field ranges and cross-field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// The blend must stay a convex combination when the weights are set.
	if c.SemanticWeight != 0 || c.OverlapWeight != 0 {
		sum := c.SemanticWeight + c.OverlapWeight
		if sum < 0.999 || sum > 1.001 {
			return fmt.Errorf("config error: semantic_weight and overlap_weight must sum to 1.0, got %.3f", sum)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Explicit values always win.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.EmbeddingDim == 0 {
		result.EmbeddingDim = defaults.EmbeddingDim
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.MaxInputLen == 0 {
		result.MaxInputLen = defaults.MaxInputLen
	}
	if result.CacheCapacity == 0 {
		result.CacheCapacity = defaults.CacheCapacity
	}
	if result.SemanticWeight == 0 && result.OverlapWeight == 0 {
		result.SemanticWeight = defaults.SemanticWeight
		result.OverlapWeight = defaults.OverlapWeight
	}
	if result.MinSimilarityMatch == 0 {
		result.MinSimilarityMatch = defaults.MinSimilarityMatch
	}
	if result.MinSimilaritySearch == 0 {
		result.MinSimilaritySearch = defaults.MinSimilaritySearch
	}
	if result.MinSimilaritySimilar == 0 {
		result.MinSimilaritySimilar = defaults.MinSimilaritySimilar
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	return result
}
