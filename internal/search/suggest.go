package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/jonathan/skillmatch/internal/types"
)

// SuggestIndex serves title autocomplete. Suggestions are plain text
// matches, token-prefix via a bleve in-memory index with a substring
// fallback. Autocomplete completes what the user typed rather than
// returning semantic neighbors, so no embeddings are involved.
type SuggestIndex struct {
	index  bleve.Index
	titles map[string]string // candidate ID -> original title
}

// NewSuggestIndex builds an in-memory autocomplete index over the corpus
// titles.
func NewSuggestIndex(corpus []types.Candidate) (*SuggestIndex, error) {
	indexMapping := buildSuggestMapping()

	index, err := bleve.NewMemOnly(indexMapping)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggest index: %w", err)
	}

	titles := make(map[string]string, len(corpus))
	batch := index.NewBatch()
	for _, c := range corpus {
		if strings.TrimSpace(c.Title) == "" {
			continue
		}
		id := c.ID.String()
		titles[id] = c.Title
		if err := batch.Index(id, map[string]any{"title": c.Title}); err != nil {
			index.Close()
			return nil, fmt.Errorf("failed to index title %q: %w", c.Title, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return nil, fmt.Errorf("failed to commit suggest batch: %w", err)
	}

	return &SuggestIndex{index: index, titles: titles}, nil
}

func buildSuggestMapping() mapping.IndexMapping {
	titleField := bleve.NewTextFieldMapping()
	titleField.Analyzer = standard.Name

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("title", titleField)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// Suggest returns up to limit distinct titles matching the typed text,
// ordered by index score with a substring pass appended for matches that
// token-prefix search misses (for example mid-word fragments).
func (si *SuggestIndex) Suggest(text string, limit int) ([]string, error) {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" || limit <= 0 {
		return []string{}, nil
	}

	query := bleve.NewPrefixQuery(text)
	query.SetField("title")

	req := bleve.NewSearchRequest(query)
	req.Size = limit

	res, err := si.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("suggest query failed: %w", err)
	}

	seen := make(map[string]bool)
	out := make([]string, 0, limit)
	for _, hit := range res.Hits {
		title := si.titles[hit.ID]
		if title == "" || seen[strings.ToLower(title)] {
			continue
		}
		seen[strings.ToLower(title)] = true
		out = append(out, title)
		if len(out) == limit {
			return out, nil
		}
	}

	// Substring pass catches fragments that are not token prefixes.
	for _, title := range sortedTitles(si.titles) {
		lower := strings.ToLower(title)
		if seen[lower] || !strings.Contains(lower, text) {
			continue
		}
		seen[lower] = true
		out = append(out, title)
		if len(out) == limit {
			break
		}
	}

	return out, nil
}

// Close releases the underlying index.
func (si *SuggestIndex) Close() error {
	return si.index.Close()
}

// SuggestTitles is the index-free fallback: a case-insensitive substring
// scan over corpus titles, alphabetically ordered.
func SuggestTitles(corpus []types.Candidate, text string, limit int) []string {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" || limit <= 0 {
		return []string{}
	}

	sorted := make([]types.Candidate, len(corpus))
	copy(sorted, corpus)
	SortByTitle(sorted)

	seen := make(map[string]bool)
	out := make([]string, 0, limit)
	for _, c := range sorted {
		lower := strings.ToLower(c.Title)
		if lower == "" || seen[lower] || !strings.Contains(lower, text) {
			continue
		}
		seen[lower] = true
		out = append(out, c.Title)
		if len(out) == limit {
			break
		}
	}
	return out
}

func sortedTitles(titles map[string]string) []string {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
