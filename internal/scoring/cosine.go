// Package scoring provides the similarity math used to rank candidates:
// cosine similarity over embedding vectors, fuzzy skill-set overlap, and
// the blended score combining the two signals.
package scoring

import (
	"math"

	"github.com/jonathan/skillmatch/internal/embedding"
	"github.com/jonathan/skillmatch/internal/types"
)

// Cosine computes the cosine similarity between two vectors of equal
// dimension. A zero-norm vector on either side yields 0.0 rather than an
// error. The result is clamped to [-1, 1] to absorb floating-point drift.
func Cosine(a, b types.Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, &embedding.DimensionMismatchError{Want: len(a), Got: len(b)}
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return clamp(sim, -1.0, 1.0), nil
}

// BatchCosine computes the cosine similarity of query against each target.
// The per-target zero-norm policy matches Cosine; a zero-norm query yields
// all zeros. Any dimension mismatch fails the whole call.
func BatchCosine(query types.Vector, targets []types.Vector) ([]float64, error) {
	scores := make([]float64, len(targets))
	for i, target := range targets {
		sim, err := Cosine(query, target)
		if err != nil {
			return nil, err
		}
		scores[i] = sim
	}
	return scores, nil
}

// NormalizeCosine maps a raw cosine similarity from [-1, 1] to [0, 1].
func NormalizeCosine(sim float64) float64 {
	return clamp((sim+1)/2, 0.0, 1.0)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
