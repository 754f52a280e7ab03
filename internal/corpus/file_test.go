package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/skillmatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpusFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_ValidCorpus(t *testing.T) {
	id := uuid.New()
	path := writeCorpusFile(t, `{
		"candidates": [
			{
				"id": "`+id.String()+`",
				"kind": "job",
				"title": "Solar Engineer",
				"required_skills": ["solar", "electrical engineering"]
			}
		]
	}`)

	candidates, err := LoadFile(path)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, id, candidates[0].ID)
	assert.Equal(t, types.KindJob, candidates[0].Kind)
	assert.Equal(t, "Solar Engineer", candidates[0].Title)
}

func TestLoadFile_SchemaViolationFails(t *testing.T) {
	// kind outside the enum
	path := writeCorpusFile(t, `{
		"candidates": [
			{"id": "`+uuid.NewString()+`", "kind": "gig", "title": "X"}
		]
	}`)

	_, err := LoadFile(path)

	assert.Error(t, err)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("/nonexistent/corpus.json")

	assert.Error(t, err)
}

func TestSaveFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	candidates := []types.Candidate{
		{
			ID:             uuid.New(),
			Kind:           types.KindCareer,
			Title:          "Wind Analyst",
			RequiredSkills: []string{"wind energy"},
			EmbeddingJSON:  "[0.1,0.2]",
		},
	}

	require.NoError(t, SaveFile(path, candidates))

	back, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, candidates[0].ID, back[0].ID)
	assert.Equal(t, candidates[0].EmbeddingJSON, back[0].EmbeddingJSON)
}

func TestEmbeddingText_CombinesTitleDescriptionSkills(t *testing.T) {
	c := &types.Candidate{
		Title:          "Solar Engineer",
		Description:    "Designs PV systems",
		RequiredSkills: []string{"solar", "cad"},
	}

	text := EmbeddingText(c)

	assert.Contains(t, text, "Solar Engineer")
	assert.Contains(t, text, "Designs PV systems")
	assert.Contains(t, text, "solar")
	assert.Contains(t, text, "cad")
}

func TestEmbeddingText_SkipsEmptyParts(t *testing.T) {
	c := &types.Candidate{Title: "Just a Title"}

	assert.Equal(t, "Just a Title", EmbeddingText(c))
}
