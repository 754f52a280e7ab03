// Package embedding wraps a pluggable text-to-vector provider behind a
// validated, cached service with a fixed output dimensionality.
package embedding

import "fmt"

// ModelLoadError represents a failure to initialize the embedding provider.
// It is fatal for the process and is not retried automatically.
type ModelLoadError struct {
	Model string
	Cause error
}

func (e *ModelLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load embedding model %s: %v", e.Model, e.Cause)
	}
	return fmt.Sprintf("failed to load embedding model %s", e.Model)
}

func (e *ModelLoadError) Unwrap() error {
	return e.Cause
}

// InputTooLongError represents input text exceeding the configured maximum
// length. It is the caller's fault and should surface as a validation error.
type InputTooLongError struct {
	Length int
	Max    int
	Index  int // position within a batch; -1 for single encodes
}

func (e *InputTooLongError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("text at index %d exceeds maximum length of %d characters: %d", e.Index, e.Max, e.Length)
	}
	return fmt.Sprintf("text exceeds maximum length of %d characters: %d", e.Max, e.Length)
}

// DimensionMismatchError represents a vector of unexpected length, whether
// returned by the provider or read back from storage. It signals a
// configuration or data-integrity bug and is never silently coerced.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("vector dimension mismatch: expected %d, got %d", e.Want, e.Got)
}

// InvalidEmbeddingError represents provider output that fails type or
// finiteness validation (NaN or infinite components).
type InvalidEmbeddingError struct {
	Message string
}

func (e *InvalidEmbeddingError) Error() string {
	return fmt.Sprintf("invalid embedding: %s", e.Message)
}

// MalformedVectorError represents a stored embedding string that fails to
// parse as a JSON array of the configured dimension.
type MalformedVectorError struct {
	Message string
	Cause   error
}

func (e *MalformedVectorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed vector: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed vector: %s", e.Message)
}

func (e *MalformedVectorError) Unwrap() error {
	return e.Cause
}
