// Package gfx implements a batched 2D sprite renderer.
//
// Draw calls queue quad vertices into a shared scratch buffer and are sent to
// the hardware only when something forces it — a texture swap, the batch
// filling up, or the end of the frame. One flush is one GPU draw call, so up
// to a full batch of sprites sharing a texture costs a single submission.
//
// Rendering is two-stage: sprites land on a fixed-resolution offscreen
// surface, which Present then scales and letterboxes onto the window. Game
// code always works at the internal resolution regardless of window size.
//
// A Context is single-threaded and driven by one frame loop; it holds all
// mutable render state and is passed explicitly to every drawing operation.
package gfx

import (
	"fmt"

	"github.com/softpixel/ember/engine/colors"
	"github.com/softpixel/ember/engine/gfx/device"
)

const (
	// DefaultSpriteCapacity is the batch size used by NewContext.
	DefaultSpriteCapacity = 1024

	// maxSpriteCapacity keeps quad indices 16-bit safe: 4 verts/quad * 8191
	// quads stays under 1<<16.
	maxSpriteCapacity = 8191

	vertexStride = 8 // x, y, u, v, r, g, b, a
	vertsPerQuad = 4
	indsPerQuad  = 6
)

var quadIndexPattern = [indsPerQuad]uint32{0, 1, 2, 2, 3, 0}

// Vertex is one corner of a sprite quad, in internal-resolution pixels with
// normalized UVs.
type Vertex struct {
	X, Y  float32
	U, V  float32
	Color colors.Color
}

// Statistics counts the work done between frame presents. Reset by Present.
type Statistics struct {
	DrawCalls int
	Quads     int
	Flushes   int
}

// Context owns all render state for one window: the batch scratch buffer,
// the offscreen surface, bound texture and shader, and both projections.
type Context struct {
	device device.Device

	vertexBuffer       device.VertexBuffer
	indexBuffer        device.IndexBuffer
	framebuffer        device.Framebuffer
	framebufferTexture *Texture

	texture       *Texture
	shader        *Shader
	defaultShader *Shader

	internalProjection [16]float32
	windowProjection   [16]float32

	vertices    []float32
	spriteCount int
	capacity    int

	internalWidth  int
	internalHeight int
	windowWidth    int
	windowHeight   int
	letterbox      Rectangle

	stats     Statistics
	lastStats Statistics
}

// NewContext creates a render context with the default sprite capacity.
func NewContext(dev device.Device, internalWidth, internalHeight, windowWidth, windowHeight int) (*Context, error) {
	return NewContextWithCapacity(dev, internalWidth, internalHeight, windowWidth, windowHeight, DefaultSpriteCapacity)
}

// NewContextWithCapacity creates a render context whose batch holds up to
// capacity quads. The capacity is fixed for the context's lifetime, as are
// the internal resolution, its projection, and the offscreen surface.
func NewContextWithCapacity(dev device.Device, internalWidth, internalHeight, windowWidth, windowHeight, capacity int) (*Context, error) {
	if capacity <= 0 || capacity > maxSpriteCapacity {
		return nil, fmt.Errorf("gfx: sprite capacity %d out of range [1, %d]", capacity, maxSpriteCapacity)
	}

	framebuffer := dev.NewFramebuffer()
	framebufferTexture := NewTexture(dev, internalWidth, internalHeight, nil)
	dev.AttachTextureToFramebuffer(framebuffer, framebufferTexture.handle)
	dev.BindFramebuffer(framebuffer)
	dev.SetViewport(0, 0, internalWidth, internalHeight)

	vertexBuffer := dev.NewVertexBuffer(capacity*vertsPerQuad*vertexStride, vertexStride, device.DynamicDraw)
	dev.SetVertexBufferAttribute(vertexBuffer, 0, 4, 0) // x, y, u, v
	dev.SetVertexBufferAttribute(vertexBuffer, 1, 4, 4) // r, g, b, a

	// The index pattern repeats per quad, offset by its 4 vertices; it never
	// changes, so it is uploaded once.
	indices := make([]uint32, 0, capacity*indsPerQuad)
	for quad := 0; quad < capacity; quad++ {
		base := uint32(quad * vertsPerQuad)
		for _, i := range quadIndexPattern {
			indices = append(indices, base+i)
		}
	}
	indexBuffer := dev.NewIndexBuffer(capacity*indsPerQuad, device.StaticDraw)
	dev.SetIndexBufferData(indexBuffer, indices, 0)

	defaultShader, err := NewShader(dev, defaultVertexShader, defaultFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("gfx: default shader: %w", err)
	}

	return &Context{
		device: dev,

		vertexBuffer:       vertexBuffer,
		indexBuffer:        indexBuffer,
		framebuffer:        framebuffer,
		framebufferTexture: framebufferTexture,

		defaultShader: defaultShader,

		internalProjection: ortho(0, float32(internalWidth), float32(internalHeight), 0, -1, 1),
		windowProjection:   ortho(0, float32(windowWidth), float32(windowHeight), 0, -1, 1),

		vertices: make([]float32, 0, capacity*vertsPerQuad*vertexStride),
		capacity: capacity,

		internalWidth:  internalWidth,
		internalHeight: internalHeight,
		windowWidth:    windowWidth,
		windowHeight:   windowHeight,
		letterbox:      letterbox(internalWidth, internalHeight, windowWidth, windowHeight),
	}, nil
}

// Width returns the internal width, before scaling is applied.
func (c *Context) Width() int { return c.internalWidth }

// Height returns the internal height, before scaling is applied.
func (c *Context) Height() int { return c.internalHeight }

func (c *Context) WindowWidth() int  { return c.windowWidth }
func (c *Context) WindowHeight() int { return c.windowHeight }

// Letterbox returns the window sub-rectangle the internal surface is
// currently presented into.
func (c *Context) Letterbox() Rectangle { return c.letterbox }

// Stats returns the counters of the last completed frame.
func (c *Context) Stats() Statistics { return c.lastStats }

// Clear clears the currently bound render target to color.
func (c *Context) Clear(color colors.Color) {
	c.device.Clear(color[0], color[1], color[2], color[3])
}

// SetTexture binds the texture subsequent quads sample from. Rebinding the
// current texture is free; switching to a different one flushes the pending
// batch first, since the buffered quads still reference the old texture.
// Keep draws grouped by texture to keep batches long.
func (c *Context) SetTexture(texture *Texture) {
	switch {
	case c.texture != nil && c.texture.handle == texture.handle:
	case c.texture == nil:
		c.texture = texture
	default:
		c.Flush()
		c.texture = texture
	}
}

// SetShader selects the shader used for subsequent sprites, flushing any
// pending batch drawn with the previous one. Pass nil to return to the
// default shader.
func (c *Context) SetShader(shader *Shader) {
	if c.shader == shader {
		return
	}
	c.Flush()
	c.shader = shader
}

// PushQuad appends one sprite quad. Corners are expected in top-left,
// bottom-left, bottom-right, top-right order to match the index pattern.
// A full batch is flushed before the new quad is appended.
func (c *Context) PushQuad(quad [4]Vertex) {
	if c.spriteCount == c.capacity {
		c.Flush()
	}
	for _, v := range quad {
		c.pushVertex(v.X, v.Y, v.U, v.V, v.Color)
	}
	c.spriteCount++
	c.stats.Quads++
}

func (c *Context) pushVertex(x, y, u, v float32, color colors.Color) {
	c.vertices = append(c.vertices, x, y, u, v, color[0], color[1], color[2], color[3])
}

// Draw renders a drawable through this context. Equivalent to calling the
// drawable's Draw directly; provided so call sites read uniformly.
func (c *Context) Draw(drawable Drawable, params DrawParams) {
	drawable.Draw(c, params)
}

// DrawAt draws with default params at a position.
func (c *Context) DrawAt(drawable Drawable, position Vec2) {
	drawable.Draw(c, AtPosition(position))
}

// Flush sends the queued batch to the hardware as a single draw call and
// empties it. A no-op when nothing is queued or no texture is bound. Usually
// called implicitly by SetTexture, PushQuad and Present; keep explicit calls
// rare, every flush is a GPU submission.
func (c *Context) Flush() {
	if c.spriteCount == 0 || c.texture == nil {
		return
	}

	shader := c.shader
	if shader == nil {
		shader = c.defaultShader
	}

	c.device.SetUniformMat4(shader.handle, "projection", c.internalProjection)
	c.device.SetVertexBufferData(c.vertexBuffer, c.vertices, 0)
	c.device.Draw(c.vertexBuffer, c.indexBuffer, shader.handle, c.texture.handle, c.spriteCount*indsPerQuad)

	c.stats.DrawCalls++
	c.stats.Flushes++

	c.vertices = c.vertices[:0]
	c.spriteCount = 0
}

// Present finishes the frame: it flushes the sprite batch into the offscreen
// surface, draws that surface as a single letterboxed quad onto the window
// (black bars around it), swaps buffers, and rebinds the offscreen surface
// so the next frame's draws land back at the internal resolution.
func (c *Context) Present() {
	c.Flush()

	c.device.BindDefaultFramebuffer()
	c.device.SetViewport(0, 0, c.windowWidth, c.windowHeight)
	c.Clear(colors.Black)

	// One quad covering the letterbox rect, sampling the full offscreen
	// texture. V is flipped: the framebuffer texture's origin is the bottom.
	lb := c.letterbox
	c.pushVertex(lb.X, lb.Y, 0, 1, colors.White)
	c.pushVertex(lb.X, lb.Y+lb.Height, 0, 0, colors.White)
	c.pushVertex(lb.X+lb.Width, lb.Y+lb.Height, 1, 0, colors.White)
	c.pushVertex(lb.X+lb.Width, lb.Y, 1, 1, colors.White)

	c.device.SetUniformMat4(c.defaultShader.handle, "projection", c.windowProjection)
	c.device.SetVertexBufferData(c.vertexBuffer, c.vertices, 0)
	c.device.Draw(c.vertexBuffer, c.indexBuffer, c.defaultShader.handle, c.framebufferTexture.handle, indsPerQuad)

	c.vertices = c.vertices[:0]

	c.device.Present()

	c.device.BindFramebuffer(c.framebuffer)
	c.device.SetViewport(0, 0, c.internalWidth, c.internalHeight)

	c.lastStats = c.stats
	c.stats = Statistics{}
}

// SetWindowSize records a new window size and recomputes the window
// projection and letterbox rectangle. The internal resolution, its
// projection and the offscreen surface are untouched.
func (c *Context) SetWindowSize(width, height int) {
	c.windowWidth = width
	c.windowHeight = height
	c.windowProjection = ortho(0, float32(width), float32(height), 0, -1, 1)
	c.letterbox = letterbox(c.internalWidth, c.internalHeight, width, height)
}
