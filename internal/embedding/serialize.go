package embedding

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jonathan/skillmatch/internal/types"
)

// VectorToJSON serializes a vector as a JSON array of numbers for storage
// in a text-typed column. The dimension is checked so a truncated vector
// can never be persisted.
func VectorToJSON(vec types.Vector, dim int) (string, error) {
	if len(vec) != dim {
		return "", &DimensionMismatchError{Want: dim, Got: len(vec)}
	}
	for i, x := range vec {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return "", &InvalidEmbeddingError{Message: fmt.Sprintf("non-finite component at index %d", i)}
		}
	}

	data, err := json.Marshal([]float64(vec))
	if err != nil {
		return "", &MalformedVectorError{Message: "failed to marshal vector", Cause: err}
	}
	return string(data), nil
}

// JSONToVector parses a stored embedding string, enforcing that it is a
// JSON array of exactly dim finite numbers. Violations fail with
// MalformedVectorError or DimensionMismatchError; nothing is coerced.
// A non-positive dim skips the length check for callers that take the
// stored length as authoritative.
func JSONToVector(data string, dim int) (types.Vector, error) {
	var vec []float64
	if err := json.Unmarshal([]byte(data), &vec); err != nil {
		return nil, &MalformedVectorError{Message: "invalid JSON", Cause: err}
	}
	if dim > 0 && len(vec) != dim {
		return nil, &DimensionMismatchError{Want: dim, Got: len(vec)}
	}
	for i, x := range vec {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &InvalidEmbeddingError{Message: fmt.Sprintf("non-finite component at index %d", i)}
		}
	}
	return types.Vector(vec), nil
}

// JSONToVectorLenient is the best-effort decode path: any parse or
// dimension failure yields the zero vector instead of an error. Use only
// where a missing stored vector should degrade ranking, not abort it.
func JSONToVectorLenient(data string, dim int) types.Vector {
	vec, err := JSONToVector(data, dim)
	if err != nil {
		return types.ZeroVector(dim)
	}
	return vec
}
