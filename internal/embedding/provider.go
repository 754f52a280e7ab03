package embedding

import "context"

// Provider generates vector embeddings for text. Implementations wrap a
// concrete embedding backend; the Service layered on top owns validation,
// caching and the empty-input fallback, so providers only see non-empty,
// length-checked text.
type Provider interface {
	// Embed generates one embedding per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float64, error)

	// Dimension returns the vector dimensionality the provider produces.
	Dimension() int

	// Model returns the provider's model identifier, for diagnostics.
	Model() string
}
