package search

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/skillmatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titledCorpus(titles ...string) []types.Candidate {
	corpus := make([]types.Candidate, 0, len(titles))
	for _, title := range titles {
		corpus = append(corpus, types.Candidate{
			ID:    uuid.New(),
			Kind:  types.KindCareer,
			Title: title,
		})
	}
	return corpus
}

func TestSuggest_PrefixMatch(t *testing.T) {
	idx, err := NewSuggestIndex(titledCorpus("Solar Engineer", "Software Developer", "Wind Analyst"))
	require.NoError(t, err)
	defer idx.Close()

	out, err := idx.Suggest("so", 10)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Solar Engineer", "Software Developer"}, out)
}

func TestSuggest_MidWordFragmentViaSubstringPass(t *testing.T) {
	idx, err := NewSuggestIndex(titledCorpus("Sustainability Consultant"))
	require.NoError(t, err)
	defer idx.Close()

	out, err := idx.Suggest("tainab", 10)

	require.NoError(t, err)
	assert.Equal(t, []string{"Sustainability Consultant"}, out)
}

func TestSuggest_EmptyTextReturnsNothing(t *testing.T) {
	idx, err := NewSuggestIndex(titledCorpus("Solar Engineer"))
	require.NoError(t, err)
	defer idx.Close()

	out, err := idx.Suggest("   ", 10)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSuggest_LimitRespected(t *testing.T) {
	idx, err := NewSuggestIndex(titledCorpus("Solar Engineer", "Solar Installer", "Solar Analyst"))
	require.NoError(t, err)
	defer idx.Close()

	out, err := idx.Suggest("solar", 2)

	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestSuggest_DeduplicatesTitles(t *testing.T) {
	idx, err := NewSuggestIndex(titledCorpus("Solar Engineer", "solar engineer"))
	require.NoError(t, err)
	defer idx.Close()

	out, err := idx.Suggest("solar", 10)

	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestNewSuggestIndex_SkipsBlankTitles(t *testing.T) {
	corpus := titledCorpus("Solar Engineer")
	corpus = append(corpus, types.Candidate{ID: uuid.New(), Kind: types.KindJob, Title: "   "})

	idx, err := NewSuggestIndex(corpus)
	require.NoError(t, err)
	defer idx.Close()

	out, err := idx.Suggest("solar", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Solar Engineer"}, out)
}

func TestSuggestTitles_SubstringFallback(t *testing.T) {
	corpus := titledCorpus("Wind Analyst", "Solar Engineer", "Marine Biologist")

	out := SuggestTitles(corpus, "ar", 10)

	assert.Equal(t, []string{"Marine Biologist", "Solar Engineer"}, out)
}

func TestSuggestTitles_EmptyTextReturnsNothing(t *testing.T) {
	out := SuggestTitles(titledCorpus("Solar Engineer"), "", 10)

	assert.Empty(t, out)
}

func TestSuggestTitles_LimitRespected(t *testing.T) {
	out := SuggestTitles(titledCorpus("Solar A", "Solar B", "Solar C"), "solar", 2)

	assert.Len(t, out, 2)
}
