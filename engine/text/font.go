// Package text renders strings through the sprite batch using a baked glyph
// atlas. Glyphs are plain quads to the renderer, so text batches together
// with any other drawing that shares the atlas texture.
package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/softpixel/ember/engine/gfx"
	"github.com/softpixel/ember/engine/gfx/device"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph is one rune's slot in the atlas.
type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // baseline-to-top distance in pixels
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Font is a glyph atlas plus the metrics needed to lay out lines.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Texture                  *gfx.Texture
	Face                     font.Face
	closeFace                func()
}

func (f *Font) Close() {
	if f != nil && f.closeFace != nil {
		f.closeFace()
		f.closeFace = nil
	}
}

// LineHeight is the baseline-to-baseline distance.
func (f *Font) LineHeight() float32 { return f.Ascent - f.Descent + f.LineGap }

// LoadTTF reads a TrueType/OpenType file, bakes glyphs 32..255 into a white
// alpha-coverage atlas, and uploads it as one texture.
func LoadTTF(dev device.Device, path string, sizePx float32) (*Font, error) {
	ttfData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	// Metrics in pixels
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	// Measure glyph bounds/advances to pack a simple shelf atlas.
	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, 224)
	for rr := rune(32); rr <= rune(255); rr++ {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:   rr,
			w:   (br.Max.X - br.Min.X).Round(),
			h:   (br.Max.Y - br.Min.Y).Round(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Round()),
			by:  float32(-br.Min.Y.Round()), // distance from baseline to top
		})
	}

	// Shelf packer (rows). Start at 256^2 and grow until everything fits.
	const padding = 2
	atlasSize := 256
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))

		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+padding*2 > atlasSize || g.h+padding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+padding > atlasSize {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if y+g.h+padding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			if g.h > rowH {
				rowH = g.h
			}
		}

		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > 4096 {
			return nil, fmt.Errorf("font atlas too large (>%d)", 4096)
		}
	}

	// Bake white glyphs with alpha coverage on a transparent background.
	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.RGBA{}}, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
	}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		glyph := Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
		}
		if g.w > 0 && g.h > 0 {
			p := pos[g.r]
			// The drawer's dot sits on the baseline; shift left by bearingX so
			// the bitmap lands exactly at p.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))

			glyph.U0 = float32(p.X) / float32(atlasSize)
			glyph.V0 = float32(p.Y) / float32(atlasSize)
			glyph.U1 = float32(p.X+g.w) / float32(atlasSize)
			glyph.V1 = float32(p.Y+g.h) / float32(atlasSize)
		}
		glyphs[g.r] = glyph
	}

	return &Font{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs:    glyphs,
		Texture:   gfx.NewTexture(dev, atlasSize, atlasSize, dst.Pix),
		Face:      face,
		closeFace: func() { _ = face.Close() },
	}, nil
}
