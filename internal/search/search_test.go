package search

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/skillmatch/internal/embedding"
	"github.com/jonathan/skillmatch/internal/matching"
	"github.com/jonathan/skillmatch/internal/scoring"
	"github.com/jonathan/skillmatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedProvider returns a fixed vector per input text.
type fixedProvider struct {
	dim     int
	vectors map[string][]float64
}

func (p *fixedProvider) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, text := range texts {
		if vec, ok := p.vectors[text]; ok {
			out[i] = vec
		} else {
			out[i] = make([]float64, p.dim)
		}
	}
	return out, nil
}

func (p *fixedProvider) Dimension() int { return p.dim }
func (p *fixedProvider) Model() string  { return "fixed" }

func testSearcher(vectors map[string][]float64) *Searcher {
	embedder := embedding.NewService(&fixedProvider{dim: 3, vectors: vectors}, embedding.ServiceConfig{})
	return NewSearcher(embedder, matching.NewMatcher(embedder, scoring.BlendWeights{}))
}

func jobCandidate(title, location string, vec types.Vector) types.Candidate {
	return types.Candidate{
		ID:        uuid.New(),
		Kind:      types.KindJob,
		Title:     title,
		Location:  location,
		Embedding: vec,
	}
}

func TestSearch_EmptyQueryReturnsEmpty(t *testing.T) {
	s := testSearcher(nil)

	results, err := s.Search(context.Background(), "   ", []types.Candidate{jobCandidate("X", "", types.Vector{1, 0, 0})}, nil, Options{})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_RanksByQuerySimilarity(t *testing.T) {
	s := testSearcher(map[string][]float64{
		"solar installation": {1, 0, 0},
	})

	corpus := []types.Candidate{
		jobCandidate("Wind Analyst", "", types.Vector{0, 1, 0}),
		jobCandidate("Solar Engineer", "", types.Vector{1, 0, 0}),
	}

	results, err := s.Search(context.Background(), "solar installation", corpus, nil, Options{MinSimilarity: -1})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Solar Engineer", results[0].Candidate.Title)
}

func TestSearch_FiltersAppliedBeforeScoring(t *testing.T) {
	s := testSearcher(map[string][]float64{
		"engineer": {1, 0, 0},
	})

	corpus := []types.Candidate{
		jobCandidate("Perfect Match Elsewhere", "Berlin", types.Vector{1, 0, 0}),
		jobCandidate("Local Role", "Nairobi", types.Vector{0.5, 0.5, 0}),
	}

	results, err := s.Search(context.Background(), "engineer", corpus, &types.SearchFilters{Location: "nairobi"}, Options{MinSimilarity: -1})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Local Role", results[0].Candidate.Title)
}

func TestSearch_NoFilterSurvivorsReturnsEmpty(t *testing.T) {
	s := testSearcher(nil)

	corpus := []types.Candidate{jobCandidate("X", "Paris", types.Vector{1, 0, 0})}

	results, err := s.Search(context.Background(), "query", corpus, &types.SearchFilters{Location: "tokyo"}, Options{})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchBySkills_EmptySkillsReturnsEmpty(t *testing.T) {
	s := testSearcher(nil)

	results, err := s.SearchBySkills(context.Background(), nil, []types.Candidate{jobCandidate("X", "", types.Vector{1, 0, 0})}, nil, Options{})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchBySkills_RanksCorpus(t *testing.T) {
	s := testSearcher(map[string][]float64{
		"python sql": {0, 1, 0},
	})

	corpus := []types.Candidate{
		jobCandidate("Data Engineer", "", types.Vector{0, 1, 0}),
		jobCandidate("Designer", "", types.Vector{1, 0, 0}),
	}

	results, err := s.SearchBySkills(context.Background(), []string{"python", "sql"}, corpus, nil, Options{MinSimilarity: -1})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Data Engineer", results[0].Candidate.Title)
}

func TestFindSimilar_ExcludesReference(t *testing.T) {
	s := testSearcher(nil)

	ref := jobCandidate("Reference", "", types.Vector{1, 0, 0})
	other := jobCandidate("Neighbor", "", types.Vector{1, 0, 0})

	results, err := s.FindSimilar(ref.ID, []types.Candidate{ref, other}, Options{MinSimilarity: -1})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Neighbor", results[0].Candidate.Title)
}

func TestFindSimilar_UnknownReferenceReturnsEmpty(t *testing.T) {
	s := testSearcher(nil)

	results, err := s.FindSimilar(uuid.New(), []types.Candidate{jobCandidate("X", "", types.Vector{1, 0, 0})}, Options{})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindSimilar_UsesStoredSerializedEmbedding(t *testing.T) {
	s := testSearcher(nil)

	ref := types.Candidate{ID: uuid.New(), Kind: types.KindJob, Title: "Ref", EmbeddingJSON: "[1,0,0]"}
	near := jobCandidate("Near", "", types.Vector{1, 0, 0})
	far := jobCandidate("Far", "", types.Vector{0, 0, 1})

	results, err := s.FindSimilar(ref.ID, []types.Candidate{ref, near, far}, Options{MinSimilarity: 0.5})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Near", results[0].Candidate.Title)
}

func TestFindSimilar_CorruptReferenceFails(t *testing.T) {
	s := testSearcher(nil)

	ref := types.Candidate{ID: uuid.New(), Kind: types.KindJob, Title: "Ref", EmbeddingJSON: "broken"}

	_, err := s.FindSimilar(ref.ID, []types.Candidate{ref}, Options{})

	var malErr *embedding.MalformedVectorError
	assert.ErrorAs(t, err, &malErr)
}

func TestSortByTitle_Alphabetical(t *testing.T) {
	corpus := []types.Candidate{
		jobCandidate("zebra keeper", "", nil),
		jobCandidate("Analyst", "", nil),
		jobCandidate("miner", "", nil),
	}

	SortByTitle(corpus)

	assert.Equal(t, "Analyst", corpus[0].Title)
	assert.Equal(t, "miner", corpus[1].Title)
	assert.Equal(t, "zebra keeper", corpus[2].Title)
}
