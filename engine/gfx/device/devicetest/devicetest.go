// Package devicetest provides an in-memory device.Device that records every
// call, for asserting on batching and pipeline behavior without a GPU.
package devicetest

import (
	"errors"

	"github.com/softpixel/ember/engine/gfx/device"
)

// Handle types returned by the fake. Exported so tests can assert identity.

type Framebuffer struct {
	ID         int
	Attachment device.Texture
}

type Texture struct {
	ID            int
	Width, Height int
	Pixels        []byte
}

type VertexBuffer struct {
	ID         int
	Capacity   int
	Stride     int
	Usage      device.BufferUsage
	Attributes [][3]int // index, size, offset
}

type IndexBuffer struct {
	ID       int
	Capacity int
	Data     []uint32
}

type Program struct {
	ID          int
	VertexSrc   string
	FragmentSrc string
}

type Draw struct {
	VertexBuffer device.VertexBuffer
	IndexBuffer  device.IndexBuffer
	Program      device.Program
	Texture      device.Texture
	IndexCount   int
}

type Uniform struct {
	Program device.Program
	Name    string
	Mat     [16]float32
}

// Device records every call it receives. The Ops slice keeps the overall
// call order (by operation name); the typed slices keep the interesting
// payloads.
type Device struct {
	Ops []string

	Framebuffers  []*Framebuffer
	Textures      []*Texture
	VertexBuffers []*VertexBuffer
	IndexBuffers  []*IndexBuffer
	Programs      []*Program

	VertexUploads [][]float32
	IndexUploads  [][]uint32
	Uniforms      []Uniform
	Draws         []Draw
	Clears        [][4]float32
	Viewports     [][4]int
	Presents      int

	// BoundFramebuffer is nil while the default (window) surface is bound.
	BoundFramebuffer device.Framebuffer

	// FailCompile makes CompileProgram return an error.
	FailCompile bool

	nextID int
}

func New() *Device { return &Device{} }

func (d *Device) id() int {
	d.nextID++
	return d.nextID
}

func (d *Device) record(op string) { d.Ops = append(d.Ops, op) }

func (d *Device) NewFramebuffer() device.Framebuffer {
	d.record("newFramebuffer")
	fb := &Framebuffer{ID: d.id()}
	d.Framebuffers = append(d.Framebuffers, fb)
	d.BoundFramebuffer = fb
	return fb
}

func (d *Device) NewTexture(width, height int, pixels []byte) device.Texture {
	d.record("newTexture")
	t := &Texture{ID: d.id(), Width: width, Height: height, Pixels: pixels}
	d.Textures = append(d.Textures, t)
	return t
}

func (d *Device) AttachTextureToFramebuffer(fb device.Framebuffer, tex device.Texture) {
	d.record("attachTexture")
	fb.(*Framebuffer).Attachment = tex
}

func (d *Device) NewVertexBuffer(capacity, stride int, usage device.BufferUsage) device.VertexBuffer {
	d.record("newVertexBuffer")
	vb := &VertexBuffer{ID: d.id(), Capacity: capacity, Stride: stride, Usage: usage}
	d.VertexBuffers = append(d.VertexBuffers, vb)
	return vb
}

func (d *Device) SetVertexBufferAttribute(buf device.VertexBuffer, index, size, offset int) {
	d.record("setVertexAttribute")
	vb := buf.(*VertexBuffer)
	vb.Attributes = append(vb.Attributes, [3]int{index, size, offset})
}

func (d *Device) SetVertexBufferData(buf device.VertexBuffer, data []float32, offset int) {
	d.record("setVertexBufferData")
	cp := make([]float32, len(data))
	copy(cp, data)
	d.VertexUploads = append(d.VertexUploads, cp)
}

func (d *Device) NewIndexBuffer(capacity int, usage device.BufferUsage) device.IndexBuffer {
	d.record("newIndexBuffer")
	ib := &IndexBuffer{ID: d.id(), Capacity: capacity}
	d.IndexBuffers = append(d.IndexBuffers, ib)
	return ib
}

func (d *Device) SetIndexBufferData(buf device.IndexBuffer, data []uint32, offset int) {
	d.record("setIndexBufferData")
	cp := make([]uint32, len(data))
	copy(cp, data)
	buf.(*IndexBuffer).Data = cp
	d.IndexUploads = append(d.IndexUploads, cp)
}

func (d *Device) CompileProgram(vertexSrc, fragmentSrc string) (device.Program, error) {
	d.record("compileProgram")
	if d.FailCompile {
		return nil, errors.New("devicetest: compile failed")
	}
	p := &Program{ID: d.id(), VertexSrc: vertexSrc, FragmentSrc: fragmentSrc}
	d.Programs = append(d.Programs, p)
	return p, nil
}

func (d *Device) SetUniformMat4(p device.Program, name string, mat [16]float32) {
	d.record("setUniformMat4")
	d.Uniforms = append(d.Uniforms, Uniform{Program: p, Name: name, Mat: mat})
}

func (d *Device) SetViewport(x, y, width, height int) {
	d.record("setViewport")
	d.Viewports = append(d.Viewports, [4]int{x, y, width, height})
}

func (d *Device) BindFramebuffer(fb device.Framebuffer) {
	d.record("bindFramebuffer")
	d.BoundFramebuffer = fb
}

func (d *Device) BindDefaultFramebuffer() {
	d.record("bindDefaultFramebuffer")
	d.BoundFramebuffer = nil
}

func (d *Device) Clear(r, g, b, a float32) {
	d.record("clear")
	d.Clears = append(d.Clears, [4]float32{r, g, b, a})
}

func (d *Device) Draw(vb device.VertexBuffer, ib device.IndexBuffer, p device.Program, tex device.Texture, indexCount int) {
	d.record("draw")
	d.Draws = append(d.Draws, Draw{
		VertexBuffer: vb,
		IndexBuffer:  ib,
		Program:      p,
		Texture:      tex,
		IndexCount:   indexCount,
	})
}

func (d *Device) Present() {
	d.record("present")
	d.Presents++
}

var _ device.Device = (*Device)(nil)
