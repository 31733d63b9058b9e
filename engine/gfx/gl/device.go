// Package glbackend implements device.Device on OpenGL 3.3 core.
package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/softpixel/ember/engine/gfx/device"
)

// Window is the slice of the platform window the backend needs: swapping the
// backbuffer after a frame.
type Window interface {
	SwapBuffers()
}

// Device drives OpenGL. The GL context must be current on the calling
// goroutine (core.Run locks the OS thread) and gl.Init must have run, which
// the platform window takes care of.
type Device struct {
	win Window

	boundProgram uint32
	boundVAO     uint32
}

func NewDevice(win Window) *Device {
	// Sprites are alpha-blended; depth is unused in a 2D pipeline.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	return &Device{win: win}
}

// Handle types. Pointer identity is what the renderer compares.

type framebuffer struct{ id uint32 }

type texture struct {
	id            uint32
	width, height int32
}

type vertexBuffer struct {
	vao    uint32
	vbo    uint32
	stride int32 // floats per vertex
}

type indexBuffer struct{ id uint32 }

type program struct {
	id       uint32
	uniforms map[string]int32
}

func (d *Device) NewFramebuffer() device.Framebuffer {
	fb := &framebuffer{}
	gl.GenFramebuffers(1, &fb.id)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.id)
	return fb
}

func (d *Device) NewTexture(width, height int, pixels []byte) device.Texture {
	t := &texture{width: int32(width), height: int32(height)}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	// Nearest filtering keeps integer-scaled pixel art crisp.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	var ptr unsafe.Pointer
	if pixels != nil {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, t.width, t.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, ptr)

	return t
}

func (d *Device) AttachTextureToFramebuffer(fb device.Framebuffer, tex device.Texture) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.(*framebuffer).id)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex.(*texture).id, 0)
}

func (d *Device) NewVertexBuffer(capacity, stride int, usage device.BufferUsage) device.VertexBuffer {
	vb := &vertexBuffer{stride: int32(stride)}
	gl.GenVertexArrays(1, &vb.vao)
	gl.BindVertexArray(vb.vao)
	gl.GenBuffers(1, &vb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, capacity*4, nil, glUsage(usage))
	d.boundVAO = vb.vao
	return vb
}

func (d *Device) SetVertexBufferAttribute(buf device.VertexBuffer, index, size, offset int) {
	vb := buf.(*vertexBuffer)
	d.bindVAO(vb.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.vbo)
	gl.EnableVertexAttribArray(uint32(index))
	gl.VertexAttribPointerWithOffset(uint32(index), int32(size), gl.FLOAT, false, vb.stride*4, uintptr(offset*4))
}

func (d *Device) SetVertexBufferData(buf device.VertexBuffer, data []float32, offset int) {
	vb := buf.(*vertexBuffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset*4, len(data)*4, gl.Ptr(data))
}

func (d *Device) NewIndexBuffer(capacity int, usage device.BufferUsage) device.IndexBuffer {
	ib := &indexBuffer{}
	gl.GenBuffers(1, &ib.id)
	// ELEMENT_ARRAY binding is VAO state; the scratch binding here only backs
	// the initial allocation.
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, capacity*4, nil, glUsage(usage))
	return ib
}

func (d *Device) SetIndexBufferData(buf device.IndexBuffer, data []uint32, offset int) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.(*indexBuffer).id)
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, offset*4, len(data)*4, gl.Ptr(data))
}

func (d *Device) CompileProgram(vertexSrc, fragmentSrc string) (device.Program, error) {
	id, err := makeProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &program{id: id, uniforms: map[string]int32{}}, nil
}

func (d *Device) SetUniformMat4(p device.Program, name string, mat [16]float32) {
	prog := p.(*program)
	d.useProgram(prog.id)
	gl.UniformMatrix4fv(prog.uniform(name), 1, false, &mat[0])
}

func (d *Device) SetViewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Device) BindFramebuffer(fb device.Framebuffer) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.(*framebuffer).id)
}

func (d *Device) BindDefaultFramebuffer() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (d *Device) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) Draw(vb device.VertexBuffer, ib device.IndexBuffer, p device.Program, tex device.Texture, indexCount int) {
	d.useProgram(p.(*program).id)
	d.bindVAO(vb.(*vertexBuffer).vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.(*indexBuffer).id)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.(*texture).id)
	gl.DrawElements(gl.TRIANGLES, int32(indexCount), gl.UNSIGNED_INT, nil)
}

func (d *Device) Present() {
	d.win.SwapBuffers()
}

func (d *Device) useProgram(id uint32) {
	if d.boundProgram != id {
		gl.UseProgram(id)
		d.boundProgram = id
	}
}

func (d *Device) bindVAO(id uint32) {
	if d.boundVAO != id {
		gl.BindVertexArray(id)
		d.boundVAO = id
	}
}

func (p *program) uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

func glUsage(u device.BufferUsage) uint32 {
	if u == device.StaticDraw {
		return gl.STATIC_DRAW
	}
	return gl.DYNAMIC_DRAW
}

var _ device.Device = (*Device)(nil)

// --- shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(terminate(src))
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := shaderLog(sh)
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(prog, logLen, nil, &log[0])
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}

func shaderLog(sh uint32) string {
	var logLen int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
	log := make([]byte, logLen+1)
	gl.GetShaderInfoLog(sh, logLen, nil, &log[0])
	return string(log)
}

// terminate null-terminates src for gl.Strs.
func terminate(src string) string {
	if len(src) > 0 && src[len(src)-1] == 0 {
		return src
	}
	return src + "\x00"
}
