package gfx

import "github.com/softpixel/ember/engine/colors"

// DrawParams bundles the per-draw transform and tint.
//
// The zero value is not useful; start from NewDrawParams (or AtPosition) so
// scale and color get their identity defaults:
//
//   - Position: (0, 0)
//   - Scale: (1, 1)
//   - Origin: (0, 0)
//   - Rotation: 0
//   - Color: white
//   - Clip: nil (full source image)
type DrawParams struct {
	Position Vec2
	Scale    Vec2
	Origin   Vec2
	Rotation float32
	Color    colors.Color
	Clip     *Rectangle
}

// NewDrawParams returns params with the identity defaults.
func NewDrawParams() DrawParams {
	return DrawParams{
		Scale: V2(1, 1),
		Color: colors.White,
	}
}

// AtPosition is shorthand for "defaults, drawn at position", the common case
// when only placement matters.
func AtPosition(position Vec2) DrawParams {
	p := NewDrawParams()
	p.Position = position
	return p
}

// WithPosition sets where the graphic is drawn.
func (p DrawParams) WithPosition(position Vec2) DrawParams {
	p.Position = position
	return p
}

// WithScale sets the per-axis scale. Negative values flip the graphic around
// its origin.
func (p DrawParams) WithScale(scale Vec2) DrawParams {
	p.Scale = scale
	return p
}

// WithOrigin sets the point, in source pixels, that positioning, scaling and
// rotation are relative to.
func (p DrawParams) WithOrigin(origin Vec2) DrawParams {
	p.Origin = origin
	return p
}

// WithRotation sets a clockwise rotation, in radians, around the origin.
func (p DrawParams) WithRotation(radians float32) DrawParams {
	p.Rotation = radians
	return p
}

// WithColor sets the color the graphic is multiplied by. White leaves it
// unchanged.
func (p DrawParams) WithColor(color colors.Color) DrawParams {
	p.Color = color
	return p
}

// WithClip restricts drawing to a sub-rectangle of the source image, in
// source pixel coordinates. Use this for spritesheets.
func (p DrawParams) WithClip(clip Rectangle) DrawParams {
	p.Clip = &clip
	return p
}

// Drawable is anything that can render itself through a Context. A drawable
// is responsible for transforming its geometry by params and feeding the
// resulting quads to Context.PushQuad.
type Drawable interface {
	Draw(ctx *Context, params DrawParams)
}
