package search

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/skillmatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCorpus() []types.Candidate {
	return []types.Candidate{
		{
			ID:        uuid.New(),
			Kind:      types.KindJob,
			Title:     "Solar Engineer",
			Location:  "Nairobi, Kenya",
			SalaryMin: 40000,
			SalaryMax: 60000,
			SDGTags:   []string{"SDG7", "SDG13"},
		},
		{
			ID:        uuid.New(),
			Kind:      types.KindJob,
			Title:     "Wind Analyst",
			Location:  "Cape Town, South Africa",
			SalaryMin: 55000,
			SalaryMax: 80000,
			SDGTags:   []string{"SDG7"},
		},
		{
			ID:       uuid.New(),
			Kind:     types.KindJob,
			Title:    "Data Scientist",
			Location: "Remote",
		},
	}
}

func TestApplyFilters_NilFiltersReturnsEverything(t *testing.T) {
	corpus := makeCorpus()

	out := ApplyFilters(corpus, nil)

	assert.Len(t, out, len(corpus))
}

func TestApplyFilters_ZeroFiltersReturnsEverything(t *testing.T) {
	corpus := makeCorpus()

	out := ApplyFilters(corpus, &types.SearchFilters{})

	assert.Len(t, out, len(corpus))
}

func TestApplyFilters_LocationSubstringCaseInsensitive(t *testing.T) {
	out := ApplyFilters(makeCorpus(), &types.SearchFilters{Location: "nairobi"})

	require.Len(t, out, 1)
	assert.Equal(t, "Solar Engineer", out[0].Title)
}

func TestApplyFilters_SalaryOverlap(t *testing.T) {
	// Asking for at least 70000 excludes the 40-60k role; the 55-80k role
	// overlaps and stays.
	out := ApplyFilters(makeCorpus(), &types.SearchFilters{SalaryMin: 70000})

	require.Len(t, out, 1)
	assert.Equal(t, "Wind Analyst", out[0].Title)
}

func TestApplyFilters_SalaryMaxExcludesHigherMinimums(t *testing.T) {
	out := ApplyFilters(makeCorpus(), &types.SearchFilters{SalaryMax: 50000})

	titles := make([]string, 0, len(out))
	for _, c := range out {
		titles = append(titles, c.Title)
	}
	// Wind Analyst starts above 50k; the zero-salary candidate passes.
	assert.ElementsMatch(t, []string{"Solar Engineer", "Data Scientist"}, titles)
}

func TestApplyFilters_AllSDGTagsRequired(t *testing.T) {
	out := ApplyFilters(makeCorpus(), &types.SearchFilters{SDGTags: []string{"sdg7", "sdg13"}})

	require.Len(t, out, 1)
	assert.Equal(t, "Solar Engineer", out[0].Title)
}

func TestApplyFilters_EmployerIDExactMatch(t *testing.T) {
	corpus := makeCorpus()
	employer := uuid.New()
	corpus[1].EmployerID = employer

	out := ApplyFilters(corpus, &types.SearchFilters{EmployerID: employer})

	require.Len(t, out, 1)
	assert.Equal(t, "Wind Analyst", out[0].Title)
}

func TestApplyFilters_CombinedFiltersIntersect(t *testing.T) {
	out := ApplyFilters(makeCorpus(), &types.SearchFilters{
		Location: "africa",
		SDGTags:  []string{"SDG7"},
	})

	require.Len(t, out, 1)
	assert.Equal(t, "Wind Analyst", out[0].Title)
}

func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	corpus := makeCorpus()

	_ = ApplyFilters(corpus, &types.SearchFilters{Location: "nowhere"})

	assert.Len(t, corpus, 3)
	assert.Equal(t, "Solar Engineer", corpus[0].Title)
}
