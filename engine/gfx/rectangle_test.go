package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangleRow(t *testing.T) {
	got := TakeRectangles(RectangleRow(0, 0, 16, 16), 3)

	assert.Equal(t, []Rectangle{
		NewRectangle(0, 0, 16, 16),
		NewRectangle(16, 0, 16, 16),
		NewRectangle(32, 0, 16, 16),
	}, got)
}

func TestRectangleColumn(t *testing.T) {
	got := TakeRectangles(RectangleColumn(8, 4, 16, 32), 3)

	assert.Equal(t, []Rectangle{
		NewRectangle(8, 4, 16, 32),
		NewRectangle(8, 36, 16, 32),
		NewRectangle(8, 68, 16, 32),
	}, got)
}

func TestRectangleRowNthTerm(t *testing.T) {
	// Term n is {x + n*w, y, w, h}.
	terms := TakeRectangles(RectangleRow(5, 7, 3, 2), 100)
	for n, r := range terms {
		assert.Equal(t, NewRectangle(5+float32(n)*3, 7, 3, 2), r)
	}
}

func TestRectangleRowRestarts(t *testing.T) {
	seq := RectangleRow(0, 0, 10, 10)

	first := TakeRectangles(seq, 2)
	second := TakeRectangles(seq, 2)

	// Each range over the sequence starts over; nothing is consumed.
	assert.Equal(t, first, second)
}

func TestRectangleRowIsUnbounded(t *testing.T) {
	n := 0
	for range RectangleRow(0, 0, 1, 1) {
		n++
		if n == 10000 {
			break
		}
	}
	assert.Equal(t, 10000, n)
}
