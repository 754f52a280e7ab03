package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlended_DefaultWeights(t *testing.T) {
	w := DefaultBlendWeights()

	score := w.Blended(0.8, 0.5)

	// 0.7*0.8 + 0.3*0.5
	assert.InDelta(t, 0.71, score, 1e-9)
}

func TestBlended_PerfectScores(t *testing.T) {
	w := DefaultBlendWeights()

	assert.InDelta(t, 1.0, w.Blended(1.0, 1.0), 1e-9)
}

func TestBlended_ClampedToUnitInterval(t *testing.T) {
	w := DefaultBlendWeights()

	// Negative cosine must not push the blend below zero.
	assert.Equal(t, 0.0, w.Blended(-1.0, 0.0))
}

func TestBlended_CustomWeights(t *testing.T) {
	w := BlendWeights{Semantic: 0.5, Overlap: 0.5}

	assert.InDelta(t, 0.6, w.Blended(0.4, 0.8), 1e-9)
}
