// Package search provides semantic search over a candidate corpus with
// structured attribute filters, plus a lighter-weight title autocomplete.
package search

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/skillmatch/internal/types"
)

// ApplyFilters narrows the corpus by structural attributes before any
// similarity scoring happens. Filtering first keeps scoring cost down and
// matches the "filter narrows, then rank" semantics users expect. The
// corpus slice is never mutated.
func ApplyFilters(corpus []types.Candidate, filters *types.SearchFilters) []types.Candidate {
	if filters.IsZero() {
		return corpus
	}

	out := make([]types.Candidate, 0, len(corpus))
	for _, c := range corpus {
		if matchesFilters(&c, filters) {
			out = append(out, c)
		}
	}
	return out
}

func matchesFilters(c *types.Candidate, f *types.SearchFilters) bool {
	if f.Location != "" && !strings.Contains(strings.ToLower(c.Location), strings.ToLower(f.Location)) {
		return false
	}

	// Salary ranges overlap when the candidate can pay at least the
	// requested minimum and does not start above the requested maximum.
	if f.SalaryMin > 0 && c.SalaryMax < f.SalaryMin {
		return false
	}
	if f.SalaryMax > 0 && c.SalaryMin > f.SalaryMax {
		return false
	}

	for _, tag := range f.SDGTags {
		if !containsTag(c.SDGTags, tag) {
			return false
		}
	}

	if f.CareerID != uuid.Nil && c.CareerID != f.CareerID {
		return false
	}
	if f.EmployerID != uuid.Nil && c.EmployerID != f.EmployerID {
		return false
	}

	return true
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
