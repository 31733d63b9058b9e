package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterbox(t *testing.T) {
	tests := []struct {
		name                 string
		internalW, internalH int
		windowW, windowH     int
		want                 Rectangle
	}{
		{
			name:      "exact fit at 2x",
			internalW: 320, internalH: 240,
			windowW: 640, windowH: 480,
			want: NewRectangle(0, 0, 640, 480),
		},
		{
			name:      "wide window pillarboxes",
			internalW: 320, internalH: 240,
			windowW: 800, windowH: 480,
			want: NewRectangle(80, 0, 640, 480),
		},
		{
			name:      "scale is integer only",
			internalW: 100, internalH: 100,
			windowW: 250, windowH: 250,
			want: NewRectangle(25, 25, 200, 200),
		},
		{
			name:      "tall window letterboxes",
			internalW: 320, internalH: 240,
			windowW: 640, windowH: 700,
			want: NewRectangle(0, 110, 640, 480),
		},
		{
			name:      "window smaller than internal clamps to 1x",
			internalW: 320, internalH: 240,
			windowW: 200, windowH: 150,
			want: NewRectangle(-60, -45, 320, 240),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := letterbox(tt.internalW, tt.internalH, tt.windowW, tt.windowH)
			assert.Equal(t, tt.want, got)
		})
	}
}
