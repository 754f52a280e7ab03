// Package types provides type definitions for structured data used throughout the skillmatch engine.
package types

// Vector is a fixed-length embedding vector. The dimensionality is set per
// deployment (see config.EmbeddingDim) and every stored or computed vector
// must carry exactly that many components.
type Vector []float64

// ZeroVector returns the all-zero vector of the given dimension. It is the
// documented fallback for empty input text and best-effort decode failures.
func ZeroVector(dim int) Vector {
	return make(Vector, dim)
}

// IsZero reports whether every component of the vector is exactly zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}
