// Package device defines the capability surface the renderer needs from the
// graphics hardware. The gfx package is written entirely against this
// interface; engine/gfx/gl provides the OpenGL implementation, and tests use
// an in-memory recording fake.
package device

// BufferUsage hints how often a buffer's contents will be rewritten.
type BufferUsage int

const (
	// StaticDraw marks a buffer that is filled once and drawn many times.
	StaticDraw BufferUsage = iota
	// DynamicDraw marks a buffer that is rewritten every frame.
	DynamicDraw
)

// Opaque backend handles. Implementations return their own (comparable)
// types; the renderer only stores them and passes them back.
type (
	Framebuffer  interface{}
	Texture      interface{}
	VertexBuffer interface{}
	IndexBuffer  interface{}
	Program      interface{}
)

// Device abstracts the graphics hardware. All calls are synchronous and are
// assumed to either succeed or terminate the process; only shader compilation
// reports an error, since it depends on user-supplied source text.
type Device interface {
	// NewFramebuffer creates an offscreen render target and leaves it bound.
	NewFramebuffer() Framebuffer
	// NewTexture creates a width x height RGBA texture. pixels may be nil to
	// allocate uninitialized storage (e.g. for a framebuffer attachment);
	// otherwise it must hold width*height*4 bytes, row-major from the top.
	NewTexture(width, height int, pixels []byte) Texture
	AttachTextureToFramebuffer(fb Framebuffer, tex Texture)

	// NewVertexBuffer allocates room for capacity floats, laid out in
	// stride-float vertices.
	NewVertexBuffer(capacity, stride int, usage BufferUsage) VertexBuffer
	// SetVertexBufferAttribute declares attribute location index as size
	// floats starting offset floats into each vertex.
	SetVertexBufferAttribute(buf VertexBuffer, index, size, offset int)
	// SetVertexBufferData uploads data starting offset floats into the buffer.
	SetVertexBufferData(buf VertexBuffer, data []float32, offset int)

	NewIndexBuffer(capacity int, usage BufferUsage) IndexBuffer
	SetIndexBufferData(buf IndexBuffer, data []uint32, offset int)

	CompileProgram(vertexSrc, fragmentSrc string) (Program, error)
	SetUniformMat4(p Program, name string, mat [16]float32)

	SetViewport(x, y, width, height int)
	BindFramebuffer(fb Framebuffer)
	// BindDefaultFramebuffer targets the window's native surface.
	BindDefaultFramebuffer()
	Clear(r, g, b, a float32)

	// Draw issues one indexed draw call over the first indexCount indices.
	Draw(vb VertexBuffer, ib IndexBuffer, p Program, tex Texture, indexCount int)

	// Present swaps the window surface. May block on vsync.
	Present()
}
