package scoring

// Default weights for the blended score. The 70/30 split comes from
// product tuning; override it through BlendWeights when a different
// balance is needed.
const (
	DefaultSemanticWeight = 0.7
	DefaultOverlapWeight  = 0.3
)

// BlendWeights holds the linear blend weights for the combined match score.
type BlendWeights struct {
	Semantic float64 `json:"semantic"`
	Overlap  float64 `json:"overlap"`
}

// DefaultBlendWeights returns the 0.7 semantic / 0.3 overlap blend.
func DefaultBlendWeights() BlendWeights {
	return BlendWeights{Semantic: DefaultSemanticWeight, Overlap: DefaultOverlapWeight}
}

// Blended combines a semantic similarity and a skill-overlap ratio into one
// score. Inputs are assumed already in [0, 1]; the matcher feeds raw cosine
// here because the embedding corpus is non-negative-leaning (callers
// wanting the strict convention can pass NormalizeCosine(sim)). The result
// is clamped to [0, 1].
func (w BlendWeights) Blended(semantic, overlap float64) float64 {
	return clamp(w.Semantic*semantic+w.Overlap*overlap, 0.0, 1.0)
}
