package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/skillmatch/internal/schemas"
	"github.com/jonathan/skillmatch/internal/types"
)

// File is the on-disk corpus shape: a single object wrapping the candidate
// list, matching schemas/corpus.schema.json.
type File struct {
	Candidates []types.Candidate `json:"candidates"`
}

// LoadFile reads a corpus JSON file, validates it against the corpus schema
// when the schema can be resolved, and returns the candidates.
func LoadFile(path string) ([]types.Candidate, error) {
	if err := schemas.ValidateCorpusFile(path); err != nil {
		// A missing schema file is tolerated so the loader still works
		// when run outside the repo tree. Validation failures are not.
		var loadErr *schemas.SchemaLoadError
		if !errors.As(err, &loadErr) {
			return nil, fmt.Errorf("corpus file %s: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file %s: %w", path, err)
	}

	return f.Candidates, nil
}

// SaveFile writes candidates to a corpus JSON file.
func SaveFile(path string, candidates []types.Candidate) error {
	data, err := json.MarshalIndent(File{Candidates: candidates}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode corpus: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write corpus file %s: %w", path, err)
	}
	return nil
}
