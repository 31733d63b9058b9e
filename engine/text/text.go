package text

import (
	"github.com/softpixel/ember/engine/gfx"
)

// Text is a drawable string. The top-left corner of the first line sits at
// the draw position; position, scale and color from the params are honored
// (glyph quads are axis-aligned, rotation is ignored).
type Text struct {
	font    *Font
	content string
}

func New(font *Font, content string) *Text {
	return &Text{font: font, content: content}
}

func (t *Text) Content() string           { return t.content }
func (t *Text) SetContent(content string) { t.content = content }

// Measure returns the layed-out size in unscaled pixels.
func (t *Text) Measure() (width, height float32) {
	var lineW float32
	var prev rune = -1
	lineH := t.font.LineHeight()
	height = lineH

	for _, r := range t.content {
		if r == '\n' {
			if lineW > width {
				width = lineW
			}
			lineW = 0
			height += lineH
			prev = -1
			continue
		}
		g, ok := t.font.Glyphs[r]
		if !ok {
			if sp, ok2 := t.font.Glyphs[' ']; ok2 {
				lineW += sp.Advance
			}
			prev = r
			continue
		}
		if prev >= 0 && t.font.Face != nil {
			lineW += float32(t.font.Face.Kern(prev, r)) / 64.0
		}
		lineW += g.Advance
		prev = r
	}

	if lineW > width {
		width = lineW
	}
	return width, height
}

// Draw walks the string and batches one quad per visible glyph. All quads
// share the atlas texture, so a whole block of text costs a single texture
// binding.
func (t *Text) Draw(ctx *gfx.Context, params gfx.DrawParams) {
	ctx.SetTexture(t.font.Texture)

	var penX float32
	baseY := t.font.Ascent // move origin from baseline to top-left
	var prev rune = -1

	for _, r := range t.content {
		if r == '\n' {
			penX = 0
			baseY += t.font.LineHeight()
			prev = -1
			continue
		}

		g, ok := t.font.Glyphs[r]
		if !ok {
			if sp, ok2 := t.font.Glyphs[' ']; ok2 {
				penX += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 && t.font.Face != nil {
			penX += float32(t.font.Face.Kern(prev, r)) / 64.0
		}

		if g.W > 0 && g.H > 0 {
			// Baseline-aligned, Y-down: glyph top = baseline - bearingY.
			left := (penX + g.BearingX - params.Origin.X) * params.Scale.X
			top := (baseY - g.BearingY - params.Origin.Y) * params.Scale.Y

			x1 := params.Position.X + left
			y1 := params.Position.Y + top
			x2 := x1 + float32(g.W)*params.Scale.X
			y2 := y1 + float32(g.H)*params.Scale.Y

			ctx.PushQuad([4]gfx.Vertex{
				{X: x1, Y: y1, U: g.U0, V: g.V0, Color: params.Color},
				{X: x1, Y: y2, U: g.U0, V: g.V1, Color: params.Color},
				{X: x2, Y: y2, U: g.U1, V: g.V1, Color: params.Color},
				{X: x2, Y: y1, U: g.U1, V: g.V0, Color: params.Color},
			})
		}

		penX += g.Advance
		prev = r
	}
}

var _ gfx.Drawable = (*Text)(nil)
