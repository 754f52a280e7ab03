package embedding

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jonathan/skillmatch/internal/logging"
	"github.com/jonathan/skillmatch/internal/types"
)

// Default service limits.
const (
	DefaultMaxInputLen   = 10000
	DefaultCacheCapacity = 1000
)

// ServiceConfig configures an embedding Service.
type ServiceConfig struct {
	// MaxInputLen is the maximum accepted text length in characters.
	// Zero means DefaultMaxInputLen.
	MaxInputLen int

	// CacheCapacity bounds the embedding cache. Zero means
	// DefaultCacheCapacity; negative disables caching.
	CacheCapacity int
}

// Service converts text to validated embedding vectors. It owns the fixed
// output dimensionality, input validation and a bounded cache. A Service is
// safe for concurrent use.
type Service struct {
	provider    Provider
	maxInputLen int
	cache       *cache
	log         zerolog.Logger
}

// NewService creates an embedding service over the given provider.
func NewService(provider Provider, cfg ServiceConfig) *Service {
	maxLen := cfg.MaxInputLen
	if maxLen == 0 {
		maxLen = DefaultMaxInputLen
	}
	capacity := cfg.CacheCapacity
	if capacity == 0 {
		capacity = DefaultCacheCapacity
	}
	if capacity < 0 {
		capacity = 0
	}

	return &Service{
		provider:    provider,
		maxInputLen: maxLen,
		cache:       newCache(capacity),
		log:         logging.Logger.With().Str("component", "embedding").Logger(),
	}
}

// WithLogger returns the service with its logger replaced. Intended for
// tests and for callers that scope logging per request.
func (s *Service) WithLogger(log zerolog.Logger) *Service {
	s.log = log
	return s
}

// Dimension returns the vector dimensionality the service produces.
func (s *Service) Dimension() int {
	return s.provider.Dimension()
}

// Encode converts a single text to an embedding vector.
//
// Empty or whitespace-only text yields the zero vector rather than an
// error, so downstream similarity degrades to zero. Oversized input fails
// with InputTooLongError. Provider output is validated for dimension and
// finiteness before it is returned or cached.
func (s *Service) Encode(ctx context.Context, text string) (types.Vector, error) {
	if strings.TrimSpace(text) == "" {
		s.log.Debug().Msg("empty text provided for encoding, returning zero vector")
		return types.ZeroVector(s.Dimension()), nil
	}

	if len(text) > s.maxInputLen {
		return nil, &InputTooLongError{Length: len(text), Max: s.maxInputLen, Index: -1}
	}

	key := cacheKey(text)
	if vec, ok := s.cache.get(key); ok {
		s.log.Debug().Str("key", key[:12]).Msg("embedding cache hit")
		return vec, nil
	}

	vectors, err := s.provider.Embed(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode text: %w", err)
	}
	if len(vectors) != 1 {
		return nil, &InvalidEmbeddingError{
			Message: fmt.Sprintf("provider returned %d vectors for a single text", len(vectors)),
		}
	}

	vec := types.Vector(vectors[0])
	if err := s.validate(vec); err != nil {
		return nil, err
	}

	s.cache.put(key, vec)
	return vec, nil
}

// EncodeWithFallback encodes text and substitutes the zero vector on any
// failure. Use only where a degraded ranking is preferable to an error.
func (s *Service) EncodeWithFallback(ctx context.Context, text string) types.Vector {
	vec, err := s.Encode(ctx, text)
	if err != nil {
		s.log.Warn().Err(err).Msg("using zero-vector fallback for text")
		return types.ZeroVector(s.Dimension())
	}
	return vec
}

// EncodeSkills encodes a skill list as a single space-joined text. An empty
// list yields the zero vector.
func (s *Service) EncodeSkills(ctx context.Context, skills []string) (types.Vector, error) {
	if len(skills) == 0 {
		s.log.Debug().Msg("empty skills list provided for encoding, returning zero vector")
		return types.ZeroVector(s.Dimension()), nil
	}
	return s.Encode(ctx, strings.Join(skills, " "))
}

// EncodeBatch converts multiple texts to embedding vectors, one per input
// in input order. Per-item empty and length rules match Encode. Cached
// items are served without a provider call; remaining misses go to the
// provider in one batch. Any item failure fails the whole call.
func (s *Service) EncodeBatch(ctx context.Context, texts []string) ([]types.Vector, error) {
	if len(texts) == 0 {
		return []types.Vector{}, nil
	}

	results := make([]types.Vector, len(texts))
	missIdx := make([]int, 0, len(texts))
	missTexts := make([]string, 0, len(texts))

	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			results[i] = types.ZeroVector(s.Dimension())
			continue
		}
		if len(text) > s.maxInputLen {
			return nil, &InputTooLongError{Length: len(text), Max: s.maxInputLen, Index: i}
		}
		if vec, ok := s.cache.get(cacheKey(text)); ok {
			results[i] = vec
			continue
		}
		missIdx = append(missIdx, i)
		missTexts = append(missTexts, text)
	}

	if len(missTexts) > 0 {
		vectors, err := s.provider.Embed(ctx, missTexts)
		if err != nil {
			return nil, fmt.Errorf("failed to encode batch: %w", err)
		}
		if len(vectors) != len(missTexts) {
			return nil, &InvalidEmbeddingError{
				Message: fmt.Sprintf("provider returned %d vectors for %d texts", len(vectors), len(missTexts)),
			}
		}

		for j, raw := range vectors {
			vec := types.Vector(raw)
			if err := s.validate(vec); err != nil {
				return nil, err
			}
			s.cache.put(cacheKey(missTexts[j]), vec)
			results[missIdx[j]] = vec
		}
	}

	return results, nil
}

// ClearCache drops every cached embedding and resets the hit/miss counters.
func (s *Service) ClearCache() {
	s.cache.clear()
	s.log.Info().Msg("embedding cache cleared")
}

// ModelInfo reports the provider identity and cache statistics.
type ModelInfo struct {
	ModelName    string  `json:"model_name"`
	Dimension    int     `json:"embedding_dim"`
	CacheSize    int     `json:"cache_size"`
	CacheHits    int64   `json:"cache_hits"`
	CacheMisses  int64   `json:"cache_misses"`
	CacheHitRate float64 `json:"cache_hit_rate"`
}

// Info returns the current model and cache statistics for diagnostics.
func (s *Service) Info() ModelInfo {
	size, hits, misses := s.cache.stats()
	info := ModelInfo{
		ModelName:   s.provider.Model(),
		Dimension:   s.Dimension(),
		CacheSize:   size,
		CacheHits:   hits,
		CacheMisses: misses,
	}
	if total := hits + misses; total > 0 {
		info.CacheHitRate = math.Round(float64(hits)/float64(total)*10000) / 100
	}
	return info
}

// validate checks dimension and finiteness of a provider-produced vector.
func (s *Service) validate(vec types.Vector) error {
	if len(vec) != s.Dimension() {
		return &DimensionMismatchError{Want: s.Dimension(), Got: len(vec)}
	}
	for i, x := range vec {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &InvalidEmbeddingError{Message: fmt.Sprintf("non-finite component at index %d", i)}
		}
	}
	return nil
}
