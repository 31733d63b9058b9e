package text

import (
	"testing"

	"github.com/softpixel/ember/engine/colors"
	"github.com/softpixel/ember/engine/gfx"
	"github.com/softpixel/ember/engine/gfx/device/devicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFont builds a hand-made two-glyph font; no font file or rasterizing
// involved, layout math only.
func testFont(dev *devicetest.Device) *Font {
	return &Font{
		SizePx:  8,
		Ascent:  8,
		Descent: -2,
		LineGap: 0,
		Glyphs: map[rune]Glyph{
			'A': {
				Rune: 'A', Advance: 5, BearingX: 0, BearingY: 6,
				W: 4, H: 6,
				U0: 0, V0: 0, U1: 0.5, V1: 0.5,
			},
			'.': {
				Rune: '.', Advance: 3, BearingX: 1, BearingY: 1,
				W: 1, H: 1,
				U0: 0.5, V0: 0.5, U1: 0.6, V1: 0.6,
			},
			' ': {
				Rune: ' ', Advance: 4,
			},
		},
		Texture: gfx.NewTexture(dev, 16, 16, nil),
	}
}

func newTextContext(t *testing.T) (*gfx.Context, *devicetest.Device) {
	t.Helper()
	dev := devicetest.New()
	ctx, err := gfx.NewContext(dev, 320, 240, 640, 480)
	require.NoError(t, err)
	return ctx, dev
}

func TestMeasureSingleLine(t *testing.T) {
	dev := devicetest.New()
	txt := New(testFont(dev), "A.A")

	w, h := txt.Measure()
	assert.Equal(t, float32(13), w) // 5 + 3 + 5
	assert.Equal(t, float32(10), h) // ascent - descent + gap
}

func TestMeasureMultiline(t *testing.T) {
	dev := devicetest.New()
	txt := New(testFont(dev), "AA\nA")

	w, h := txt.Measure()
	assert.Equal(t, float32(10), w) // widest line
	assert.Equal(t, float32(20), h) // two lines
}

func TestMeasureUnknownRuneFallsBackToSpace(t *testing.T) {
	dev := devicetest.New()
	txt := New(testFont(dev), "A?") // '?' not in the font

	w, _ := txt.Measure()
	assert.Equal(t, float32(9), w) // 5 + space advance 4
}

func TestDrawLaysOutBaselineAligned(t *testing.T) {
	ctx, dev := newTextContext(t)
	txt := New(testFont(dev), "A")

	txt.Draw(ctx, gfx.AtPosition(gfx.V2(10, 10)))
	ctx.Flush()

	require.Len(t, dev.VertexUploads, 1)
	verts := dev.VertexUploads[0]
	require.Len(t, verts, 4*8)

	// Glyph top = position.y + ascent - bearingY = 10 + 8 - 6 = 12.
	assert.Equal(t, []float32{10, 12, 0, 0}, verts[0:4]) // top-left
	assert.Equal(t, []float32{10, 18, 0, 0.5}, verts[8:12])
	assert.Equal(t, []float32{14, 18, 0.5, 0.5}, verts[16:20])
	assert.Equal(t, []float32{14, 12, 0.5, 0}, verts[24:28])
}

func TestDrawAdvancesPenAndSkipsBlanks(t *testing.T) {
	ctx, dev := newTextContext(t)
	txt := New(testFont(dev), "A A")

	txt.Draw(ctx, gfx.AtPosition(gfx.V2(0, 0)))
	ctx.Flush()

	// The space produced no quad, only advance: two glyphs total.
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, 2*6, dev.Draws[0].IndexCount)

	verts := dev.VertexUploads[0]
	// Second 'A' starts at pen 5 + 4 (space).
	assert.Equal(t, float32(9), verts[32])
}

func TestDrawMultilineAdvancesBaseline(t *testing.T) {
	ctx, dev := newTextContext(t)
	txt := New(testFont(dev), "A\nA")

	txt.Draw(ctx, gfx.AtPosition(gfx.V2(0, 0)))
	ctx.Flush()

	verts := dev.VertexUploads[0]
	// First line glyph top at 2, second one line-height (10) below.
	assert.Equal(t, float32(2), verts[1])
	assert.Equal(t, float32(12), verts[33])
	// Pen X resets on the new line.
	assert.Equal(t, float32(0), verts[32])
}

func TestDrawAppliesScaleAndColor(t *testing.T) {
	ctx, dev := newTextContext(t)
	txt := New(testFont(dev), "A")

	txt.Draw(ctx, gfx.AtPosition(gfx.V2(0, 0)).
		WithScale(gfx.V2(2, 2)).
		WithColor(colors.Red))
	ctx.Flush()

	verts := dev.VertexUploads[0]
	assert.Equal(t, float32(4), verts[1])              // top = 2 * 2
	assert.Equal(t, float32(8), verts[16])             // right = 4px glyph * 2
	assert.Equal(t, []float32{1, 0, 0, 1}, verts[4:8]) // tint
}

func TestSetContent(t *testing.T) {
	dev := devicetest.New()
	txt := New(testFont(dev), "A")
	txt.SetContent("AA")

	assert.Equal(t, "AA", txt.Content())

	w, _ := txt.Measure()
	assert.Equal(t, float32(10), w)
}
