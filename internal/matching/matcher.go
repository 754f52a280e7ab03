// Package matching ranks candidate entities (careers, jobs) against a user
// profile by semantic similarity with skill-overlap signals.
package matching

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/skillmatch/internal/embedding"
	"github.com/jonathan/skillmatch/internal/logging"
	"github.com/jonathan/skillmatch/internal/scoring"
	"github.com/jonathan/skillmatch/internal/types"
)

// Default ranking parameters.
const (
	DefaultLimit         = 10
	DefaultMinSimilarity = 0.3
)

// Options bound a ranking call.
type Options struct {
	// Limit caps the number of returned results. Zero means DefaultLimit.
	Limit int

	// MinSimilarity discards candidates scoring below it. NaN is not
	// accepted; use a negative value to keep everything.
	MinSimilarity float64
}

func (o Options) withDefaults() Options {
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	return o
}

// Matcher ranks candidates for a skill profile. It never mutates the
// candidate pool and leaves embedding freshness to the caller: stored
// vectors are recomputed on write by the corpus layer, not here.
type Matcher struct {
	embedder *embedding.Service
	weights  scoring.BlendWeights
	log      zerolog.Logger
}

// NewMatcher creates a Matcher over the given embedding service with the
// given blend weights (zero value means the default 0.7/0.3 blend).
func NewMatcher(embedder *embedding.Service, weights scoring.BlendWeights) *Matcher {
	if weights == (scoring.BlendWeights{}) {
		weights = scoring.DefaultBlendWeights()
	}
	return &Matcher{
		embedder: embedder,
		weights:  weights,
		log:      logging.Logger.With().Str("component", "matching").Logger(),
	}
}

// RankBySkills embeds the profile skills and ranks the pool against the
// resulting vector. An empty skill list carries no ranking signal and
// returns an empty result immediately.
func (m *Matcher) RankBySkills(ctx context.Context, skills []string, pool []types.Candidate, opts Options) ([]types.MatchResult, error) {
	if len(skills) == 0 {
		m.log.Debug().Msg("no skills provided for matching")
		return []types.MatchResult{}, nil
	}

	profile, err := m.embedder.EncodeSkills(ctx, skills)
	if err != nil {
		return nil, err
	}

	return m.rank(profile, skills, pool, opts)
}

// Rank ranks the pool against an already-computed profile vector. The
// profile skills are used only for matched/missing computation and may be
// empty, in which case every required skill is reported missing.
func (m *Matcher) Rank(profile types.Vector, profileSkills []string, pool []types.Candidate, opts Options) ([]types.MatchResult, error) {
	return m.rank(profile, profileSkills, pool, opts)
}

func (m *Matcher) rank(profile types.Vector, profileSkills []string, pool []types.Candidate, opts Options) ([]types.MatchResult, error) {
	opts = opts.withDefaults()

	if len(pool) == 0 {
		return []types.MatchResult{}, nil
	}

	started := time.Now()
	results := make([]types.MatchResult, 0, len(pool))

	// The profile vector defines the comparison space; every stored
	// candidate vector must share its length.
	dim := len(profile)

	for i := range pool {
		candidate := &pool[i]

		stored, err := candidateVector(candidate, dim)
		if err != nil {
			return nil, err
		}

		sim, err := scoring.Cosine(profile, stored)
		if err != nil {
			return nil, err
		}
		if sim < opts.MinSimilarity {
			continue
		}

		matched, missing := scoring.CompareSkills(profileSkills, candidate.RequiredSkills)
		overlap := scoring.SkillOverlapRatio(profileSkills, candidate.RequiredSkills)

		results = append(results, types.MatchResult{
			Candidate:     candidate,
			Similarity:    sim,
			Blended:       m.weights.Blended(sim, overlap),
			MatchedSkills: matched,
			MissingSkills: missing,
		})
	}

	// Descending similarity; SliceStable keeps original pool order on
	// exact ties so results stay deterministic.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	m.log.Info().
		Int("pool", len(pool)).
		Int("results", len(results)).
		Dur("elapsed", time.Since(started)).
		Msg("ranked candidates")

	return results, nil
}

// MatchScore combines a semantic similarity with the skill overlap for the
// given skill sets. With no required skills there is no overlap signal and
// the semantic similarity passes through unchanged.
func (m *Matcher) MatchScore(userSkills, requiredSkills []string, semantic float64) float64 {
	if len(requiredSkills) == 0 {
		return semantic
	}
	overlap := scoring.SkillOverlapRatio(userSkills, requiredSkills)
	return m.weights.Blended(semantic, overlap)
}

// Recommendations shapes match results for an API response, rounding the
// similarity to three decimals and expressing it as a percentage.
func Recommendations(results []types.MatchResult) []types.Recommendation {
	recs := make([]types.Recommendation, 0, len(results))
	for _, r := range results {
		recs = append(recs, types.Recommendation{
			CandidateID:     r.Candidate.ID,
			Title:           r.Candidate.Title,
			Description:     r.Candidate.Description,
			SimilarityScore: round3(r.Similarity),
			MatchPercentage: math.Round(r.Similarity*1000) / 10,
			MatchedSkills:   r.MatchedSkills,
			MissingSkills:   r.MissingSkills,
			RequiredSkills:  r.Candidate.RequiredSkills,
			SDGTags:         r.Candidate.SDGTags,
		})
	}
	return recs
}

// candidateVector returns the candidate's stored embedding, decoding the
// serialized form when the decoded one is absent. A candidate with neither
// yields the zero vector so it scores zero rather than failing the scan.
func candidateVector(c *types.Candidate, dim int) (types.Vector, error) {
	if len(c.Embedding) > 0 {
		if len(c.Embedding) != dim {
			return nil, &embedding.DimensionMismatchError{Want: dim, Got: len(c.Embedding)}
		}
		return c.Embedding, nil
	}
	if c.EmbeddingJSON != "" {
		return embedding.JSONToVector(c.EmbeddingJSON, dim)
	}
	return types.ZeroVector(dim), nil
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
