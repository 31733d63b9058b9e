package gfx

import (
	"github.com/chewxy/math32"
	"github.com/softpixel/ember/engine/gfx/device"
)

// Texture is a 2D image living on the graphics device. Two Textures are the
// same image iff they share a device handle.
type Texture struct {
	handle device.Texture
	width  int
	height int
}

// NewTexture uploads width x height RGBA pixels (row-major, top-left origin)
// to the device. pixels may be nil to allocate blank storage.
func NewTexture(dev device.Device, width, height int, pixels []byte) *Texture {
	return &Texture{
		handle: dev.NewTexture(width, height, pixels),
		width:  width,
		height: height,
	}
}

func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

// Draw batches the texture (or the params' clip region of it) as one quad.
// Corner positions are transformed by origin, scale and rotation around the
// draw position; UVs are the clip region normalized over the texture size.
func (t *Texture) Draw(ctx *Context, params DrawParams) {
	ctx.SetTexture(t)

	clip := NewRectangle(0, 0, float32(t.width), float32(t.height))
	if params.Clip != nil {
		clip = *params.Clip
	}

	u1 := clip.X / float32(t.width)
	v1 := clip.Y / float32(t.height)
	u2 := (clip.X + clip.Width) / float32(t.width)
	v2 := (clip.Y + clip.Height) / float32(t.height)

	// Corner offsets relative to the draw position, origin applied in source
	// pixels before scaling.
	x1 := -params.Origin.X * params.Scale.X
	y1 := -params.Origin.Y * params.Scale.Y
	x2 := x1 + clip.Width*params.Scale.X
	y2 := y1 + clip.Height*params.Scale.Y

	quad := [4]Vertex{
		{X: x1, Y: y1, U: u1, V: v1, Color: params.Color},
		{X: x1, Y: y2, U: u1, V: v2, Color: params.Color},
		{X: x2, Y: y2, U: u2, V: v2, Color: params.Color},
		{X: x2, Y: y1, U: u2, V: v1, Color: params.Color},
	}

	if params.Rotation != 0 {
		sin, cos := math32.Sincos(params.Rotation)
		for i := range quad {
			x, y := quad[i].X, quad[i].Y
			quad[i].X = x*cos - y*sin
			quad[i].Y = x*sin + y*cos
		}
	}
	for i := range quad {
		quad[i].X += params.Position.X
		quad[i].Y += params.Position.Y
	}

	ctx.PushQuad(quad)
}

var _ Drawable = (*Texture)(nil)
