package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroVector_HasRequestedDimension(t *testing.T) {
	v := ZeroVector(768)

	assert.Len(t, v, 768)
	assert.True(t, v.IsZero())
}

func TestIsZero_NonZeroComponent(t *testing.T) {
	v := Vector{0, 0, 0.001}

	assert.False(t, v.IsZero())
}

func TestIsZero_EmptyVector(t *testing.T) {
	assert.True(t, Vector{}.IsZero())
	assert.True(t, Vector(nil).IsZero())
}

func TestClone_Independent(t *testing.T) {
	v := Vector{1, 2, 3}

	c := v.Clone()
	c[0] = 99

	assert.Equal(t, 1.0, v[0])
	assert.Equal(t, 99.0, c[0])
}

func TestClone_Nil(t *testing.T) {
	assert.Nil(t, Vector(nil).Clone())
}
