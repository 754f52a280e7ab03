package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is the embedding model used when none is configured.
// text-embedding-004 produces 768-dimensional vectors.
const DefaultGeminiModel = "text-embedding-004"

// GeminiProvider implements Provider using Google Gemini embeddings.
type GeminiProvider struct {
	client    *genai.Client
	model     string
	dimension int
}

// NewGeminiProvider creates a Gemini-backed embedding provider. A failure to
// construct the client is reported as a ModelLoadError since the process
// cannot produce embeddings without it.
func NewGeminiProvider(ctx context.Context, apiKey, model string, dimension int) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, &ModelLoadError{Model: model, Cause: fmt.Errorf("API key is required")}
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &ModelLoadError{Model: model, Cause: err}
	}

	return &GeminiProvider{
		client:    client,
		model:     model,
		dimension: dimension,
	}, nil
}

// Embed generates one embedding per input text using a single batched API call.
func (p *GeminiProvider) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	em := p.client.EmbeddingModel(p.model)

	batch := em.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to embed contents: %w", err)
	}

	if len(resp.Embeddings) != len(texts) {
		return nil, &InvalidEmbeddingError{
			Message: fmt.Sprintf("provider returned %d embeddings for %d texts", len(resp.Embeddings), len(texts)),
		}
	}

	out := make([][]float64, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		if emb == nil {
			return nil, &InvalidEmbeddingError{Message: fmt.Sprintf("nil embedding at index %d", i)}
		}
		vec := make([]float64, len(emb.Values))
		for j, v := range emb.Values {
			vec[j] = float64(v)
		}
		out[i] = vec
	}

	return out, nil
}

// Dimension returns the configured vector dimensionality.
func (p *GeminiProvider) Dimension() int {
	return p.dimension
}

// Model returns the embedding model identifier.
func (p *GeminiProvider) Model() string {
	return p.model
}

// Close releases resources held by the underlying client.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
