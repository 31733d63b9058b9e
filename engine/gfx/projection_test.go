package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// apply transforms a point by a column-major matrix, w=1.
func apply(m [16]float32, x, y, z float32) (float32, float32, float32) {
	return m[0]*x + m[4]*y + m[8]*z + m[12],
		m[1]*x + m[5]*y + m[9]*z + m[13],
		m[2]*x + m[6]*y + m[10]*z + m[14]
}

func TestOrthoScreenCorners(t *testing.T) {
	// Screen convention: top and bottom swapped, so Y is flipped.
	m := ortho(0, 640, 480, 0, -1, 1)

	x, y, _ := apply(m, 0, 0, 0)
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)

	x, y, _ = apply(m, 640, 480, 0)
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, -1, y, 1e-6)
}

func TestOrthoCenterMapsToOrigin(t *testing.T) {
	m := ortho(0, 320, 240, 0, -1, 1)

	x, y, z := apply(m, 160, 120, 0)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
	assert.InDelta(t, 0, z, 1e-6)
}

func TestOrthoMatrixTerms(t *testing.T) {
	l, r, b, tp := float32(10), float32(110), float32(220), float32(20)
	m := ortho(l, r, b, tp, -1, 1)

	assert.InDelta(t, 2/(r-l), m[0], 1e-6)
	assert.InDelta(t, 2/(tp-b), m[5], 1e-6)
	assert.InDelta(t, -1, m[10], 1e-6) // -2/(far-near)
	assert.InDelta(t, -(r+l)/(r-l), m[12], 1e-6)
	assert.InDelta(t, -(tp+b)/(tp-b), m[13], 1e-6)
	assert.Equal(t, float32(1), m[15])
}
