package search

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jonathan/skillmatch/internal/embedding"
	"github.com/jonathan/skillmatch/internal/logging"
	"github.com/jonathan/skillmatch/internal/matching"
	"github.com/jonathan/skillmatch/internal/types"
)

// Default search parameters.
const (
	DefaultLimit          = 20
	DefaultMinSimilarity  = 0.2
	DefaultSimilarMinimum = 0.3
)

// Options bound a search call.
type Options struct {
	Limit         int
	MinSimilarity float64
}

func (o Options) withDefaults() Options {
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	return o
}

// Searcher ranks a filtered corpus of candidates against free-text queries
// or skill profiles. Like the matcher it is a pure ranking layer: it reads
// stored embeddings and never writes anything.
type Searcher struct {
	embedder *embedding.Service
	matcher  *matching.Matcher
	log      zerolog.Logger
}

// NewSearcher creates a Searcher sharing the matcher's embedding service
// and blend configuration.
func NewSearcher(embedder *embedding.Service, matcher *matching.Matcher) *Searcher {
	return &Searcher{
		embedder: embedder,
		matcher:  matcher,
		log:      logging.Logger.With().Str("component", "search").Logger(),
	}
}

// Search ranks the corpus against a free-text query. The filters narrow
// the corpus before any similarity computation. An empty or whitespace-only
// query carries no ranking signal and returns an empty result.
func (s *Searcher) Search(ctx context.Context, query string, corpus []types.Candidate, filters *types.SearchFilters, opts Options) ([]types.MatchResult, error) {
	if strings.TrimSpace(query) == "" {
		s.log.Debug().Msg("empty search query provided")
		return []types.MatchResult{}, nil
	}

	started := time.Now()
	filtered := ApplyFilters(corpus, filters)
	if len(filtered) == 0 {
		return []types.MatchResult{}, nil
	}

	queryVec, err := s.embedder.Encode(ctx, query)
	if err != nil {
		return nil, err
	}

	results, err := s.matcher.Rank(queryVec, nil, filtered, matching.Options{
		Limit:         opts.withDefaults().Limit,
		MinSimilarity: opts.MinSimilarity,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("corpus", len(corpus)).
		Int("filtered", len(filtered)).
		Int("results", len(results)).
		Dur("elapsed", time.Since(started)).
		Msg("semantic search completed")

	return results, nil
}

// SearchBySkills ranks the corpus against a skill profile instead of a
// query text. Empty skills return an empty result.
func (s *Searcher) SearchBySkills(ctx context.Context, skills []string, corpus []types.Candidate, filters *types.SearchFilters, opts Options) ([]types.MatchResult, error) {
	if len(skills) == 0 {
		s.log.Debug().Msg("no skills provided for search")
		return []types.MatchResult{}, nil
	}

	filtered := ApplyFilters(corpus, filters)
	if len(filtered) == 0 {
		return []types.MatchResult{}, nil
	}

	return s.matcher.RankBySkills(ctx, skills, filtered, matching.Options{
		Limit:         opts.withDefaults().Limit,
		MinSimilarity: opts.MinSimilarity,
	})
}

// FindSimilar ranks the corpus against one of its own members, using the
// reference's stored embedding as the query and excluding the reference
// itself. An unknown reference yields an empty result.
func (s *Searcher) FindSimilar(referenceID uuid.UUID, corpus []types.Candidate, opts Options) ([]types.MatchResult, error) {
	var reference *types.Candidate
	for i := range corpus {
		if corpus[i].ID == referenceID {
			reference = &corpus[i]
			break
		}
	}
	if reference == nil {
		s.log.Warn().Str("reference", referenceID.String()).Msg("reference candidate not found")
		return []types.MatchResult{}, nil
	}

	refVec, err := referenceVector(reference)
	if err != nil {
		return nil, err
	}

	rest := make([]types.Candidate, 0, len(corpus)-1)
	for _, c := range corpus {
		if c.ID != referenceID {
			rest = append(rest, c)
		}
	}

	return s.matcher.Rank(refVec, reference.RequiredSkills, rest, matching.Options{
		Limit:         opts.withDefaults().Limit,
		MinSimilarity: opts.MinSimilarity,
	})
}

// referenceVector decodes the reference member's stored embedding. The
// strict decode path applies: a corrupt reference vector is a data bug
// worth surfacing, not something to degrade silently. The stored length is
// taken as authoritative; ranking checks the rest of the corpus against it.
func referenceVector(c *types.Candidate) (types.Vector, error) {
	if len(c.Embedding) > 0 {
		return c.Embedding, nil
	}
	return embedding.JSONToVector(c.EmbeddingJSON, 0)
}

// SortByTitle orders candidates alphabetically; used by the suggest path
// for deterministic fallback output.
func SortByTitle(candidates []types.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return strings.ToLower(candidates[i].Title) < strings.ToLower(candidates[j].Title)
	})
}
