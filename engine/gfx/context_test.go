package gfx

import (
	"testing"

	"github.com/softpixel/ember/engine/colors"
	"github.com/softpixel/ember/engine/gfx/device/devicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, capacity int) (*Context, *devicetest.Device) {
	t.Helper()
	dev := devicetest.New()
	ctx, err := NewContextWithCapacity(dev, 320, 240, 640, 480, capacity)
	require.NoError(t, err)
	return ctx, dev
}

func testQuad(color colors.Color) [4]Vertex {
	return [4]Vertex{
		{X: 0, Y: 0, U: 0, V: 0, Color: color},
		{X: 0, Y: 16, U: 0, V: 1, Color: color},
		{X: 16, Y: 16, U: 1, V: 1, Color: color},
		{X: 16, Y: 0, U: 1, V: 0, Color: color},
	}
}

func TestNewContextRejectsOversizedCapacity(t *testing.T) {
	dev := devicetest.New()

	_, err := NewContextWithCapacity(dev, 320, 240, 640, 480, 8192)
	assert.Error(t, err)

	_, err = NewContextWithCapacity(dev, 320, 240, 640, 480, 8191)
	assert.NoError(t, err)

	_, err = NewContextWithCapacity(dev, 320, 240, 640, 480, 0)
	assert.Error(t, err)
}

func TestNewContextBuildsQuadIndexPattern(t *testing.T) {
	_, dev := newTestContext(t, 4)

	require.Len(t, dev.IndexUploads, 1)
	indices := dev.IndexUploads[0]
	require.Len(t, indices, 4*6)

	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, indices[:6])
	assert.Equal(t, []uint32{4, 5, 6, 6, 7, 4}, indices[6:12])
	assert.Equal(t, []uint32{12, 13, 14, 14, 15, 12}, indices[18:24])
}

func TestNewContextLeavesOffscreenTargetBound(t *testing.T) {
	ctx, dev := newTestContext(t, 16)

	assert.Same(t, ctx.framebuffer, dev.BoundFramebuffer)
	require.Len(t, dev.Framebuffers, 1)
	assert.Same(t, ctx.framebufferTexture.handle, dev.Framebuffers[0].Attachment)
	assert.Equal(t, [4]int{0, 0, 320, 240}, dev.Viewports[0])
}

func TestBatchInvariantAndFlush(t *testing.T) {
	ctx, dev := newTestContext(t, 16)
	tex := NewTexture(dev, 16, 16, nil)

	for i := 0; i < 5; i++ {
		ctx.DrawAt(tex, V2(float32(i)*16, 0))
		// 8 floats per vertex, 4 vertices per quad.
		assert.Equal(t, ctx.spriteCount*4*8, len(ctx.vertices))
	}
	require.Equal(t, 5, ctx.spriteCount)
	require.Empty(t, dev.Draws)

	ctx.Flush()

	assert.Zero(t, ctx.spriteCount)
	assert.Empty(t, ctx.vertices)
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, 5*6, dev.Draws[0].IndexCount)
	require.Len(t, dev.VertexUploads, 1)
	assert.Len(t, dev.VertexUploads[0], 5*4*8)
}

func TestFlushIsIdempotentWhenEmpty(t *testing.T) {
	ctx, dev := newTestContext(t, 16)

	ctx.Flush()
	ctx.Flush()

	assert.Empty(t, dev.Draws)
	assert.Empty(t, dev.VertexUploads)
}

func TestFlushWithoutTextureIsNoop(t *testing.T) {
	ctx, dev := newTestContext(t, 16)

	// Quads without a bound texture have nothing to sample; flush must not
	// submit them.
	ctx.PushQuad(testQuad(colors.White))
	ctx.Flush()

	assert.Empty(t, dev.Draws)
}

func TestFlushUsesInternalProjectionAndDefaultShader(t *testing.T) {
	ctx, dev := newTestContext(t, 16)
	tex := NewTexture(dev, 16, 16, nil)

	ctx.DrawAt(tex, V2(0, 0))
	ctx.Flush()

	require.Len(t, dev.Uniforms, 1)
	assert.Equal(t, "projection", dev.Uniforms[0].Name)
	assert.Equal(t, ctx.internalProjection, dev.Uniforms[0].Mat)
	assert.Equal(t, ctx.defaultShader.handle, dev.Draws[0].Program)
	assert.Equal(t, tex.handle, dev.Draws[0].Texture)
}

func TestSetTextureSwapFlushesOnce(t *testing.T) {
	ctx, dev := newTestContext(t, 16)
	texA := NewTexture(dev, 16, 16, nil)
	texB := NewTexture(dev, 16, 16, nil)

	ctx.DrawAt(texA, V2(0, 0))
	ctx.DrawAt(texA, V2(16, 0))

	ctx.SetTexture(texB)

	// Exactly one flush, drawing the two buffered quads with A before B
	// became active.
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, texA.handle, dev.Draws[0].Texture)
	assert.Equal(t, 2*6, dev.Draws[0].IndexCount)
	assert.Zero(t, ctx.spriteCount)
	assert.Same(t, texB, ctx.texture)
}

func TestSetTextureSameIsFree(t *testing.T) {
	ctx, dev := newTestContext(t, 16)
	tex := NewTexture(dev, 16, 16, nil)

	ctx.DrawAt(tex, V2(0, 0))
	ctx.SetTexture(tex)
	ctx.SetTexture(tex)

	assert.Empty(t, dev.Draws)
	assert.Equal(t, 1, ctx.spriteCount)
}

func TestSetTextureFirstBindDoesNotFlush(t *testing.T) {
	ctx, dev := newTestContext(t, 16)
	tex := NewTexture(dev, 16, 16, nil)

	ctx.SetTexture(tex)

	assert.Empty(t, dev.Draws)
	assert.Same(t, tex, ctx.texture)
}

func TestPushQuadAutoFlushesAtCapacity(t *testing.T) {
	ctx, dev := newTestContext(t, 2)
	tex := NewTexture(dev, 16, 16, nil)

	ctx.DrawAt(tex, V2(0, 0))
	ctx.DrawAt(tex, V2(16, 0))
	require.Empty(t, dev.Draws)

	// Third quad exceeds capacity: the full batch goes out first.
	ctx.DrawAt(tex, V2(32, 0))

	require.Len(t, dev.Draws, 1)
	assert.Equal(t, 2*6, dev.Draws[0].IndexCount)
	assert.Equal(t, 1, ctx.spriteCount)
}

func TestSetShaderFlushesPendingBatch(t *testing.T) {
	ctx, dev := newTestContext(t, 16)
	tex := NewTexture(dev, 16, 16, nil)
	shader, err := NewShader(dev, "vert", "frag")
	require.NoError(t, err)

	ctx.DrawAt(tex, V2(0, 0))
	ctx.SetShader(shader)

	require.Len(t, dev.Draws, 1)
	assert.Equal(t, ctx.defaultShader.handle, dev.Draws[0].Program)

	ctx.DrawAt(tex, V2(16, 0))
	ctx.Flush()

	require.Len(t, dev.Draws, 2)
	assert.Equal(t, shader.handle, dev.Draws[1].Program)

	// Back to the default shader.
	ctx.SetShader(nil)
	ctx.DrawAt(tex, V2(32, 0))
	ctx.Flush()
	assert.Equal(t, ctx.defaultShader.handle, dev.Draws[2].Program)
}

func TestPresentPipeline(t *testing.T) {
	ctx, dev := newTestContext(t, 16)
	tex := NewTexture(dev, 16, 16, nil)
	ctx.DrawAt(tex, V2(0, 0))

	mark := len(dev.Ops)
	ctx.Present()

	assert.Equal(t, []string{
		"setUniformMat4",      // internal projection for the sprite flush
		"setVertexBufferData", //
		"draw",                // pending sprites into the offscreen surface
		"bindDefaultFramebuffer",
		"setViewport", // full window
		"clear",       // letterbox background
		"setUniformMat4",
		"setVertexBufferData",
		"draw", // the single letterbox quad
		"present",
		"bindFramebuffer", // offscreen surface rebound for the next frame
		"setViewport",     // internal resolution restored
	}, dev.Ops[mark:])

	// The blit samples the offscreen texture, window projection, 6 indices.
	blit := dev.Draws[1]
	assert.Equal(t, ctx.framebufferTexture.handle, blit.Texture)
	assert.Equal(t, 6, blit.IndexCount)
	assert.Equal(t, ctx.windowProjection, dev.Uniforms[1].Mat)

	// Letterbox background is black; viewport sequence window -> internal.
	assert.Equal(t, [4]float32{0, 0, 0, 1}, dev.Clears[len(dev.Clears)-1])
	assert.Equal(t, [4]int{0, 0, 640, 480}, dev.Viewports[len(dev.Viewports)-2])
	assert.Equal(t, [4]int{0, 0, 320, 240}, dev.Viewports[len(dev.Viewports)-1])

	// Nothing persists across the swap.
	assert.Empty(t, ctx.vertices)
	assert.Zero(t, ctx.spriteCount)
	assert.Equal(t, 1, dev.Presents)
	assert.Same(t, ctx.framebuffer, dev.BoundFramebuffer)
}

func TestPresentBlitCoversLetterbox(t *testing.T) {
	ctx, dev := newTestContext(t, 16)
	ctx.SetWindowSize(800, 480) // letterbox (80, 0, 640, 480)

	ctx.Present()

	require.Len(t, dev.VertexUploads, 1)
	verts := dev.VertexUploads[0]
	require.Len(t, verts, 4*8)

	// Corner positions trace the letterbox rect; V flipped for the
	// framebuffer texture.
	assert.Equal(t, []float32{80, 0, 0, 1}, verts[0:4])      // top-left
	assert.Equal(t, []float32{80, 480, 0, 0}, verts[8:12])   // bottom-left
	assert.Equal(t, []float32{720, 480, 1, 0}, verts[16:20]) // bottom-right
	assert.Equal(t, []float32{720, 0, 1, 1}, verts[24:28])   // top-right
}

func TestPresentWithEmptyBatchStillBlits(t *testing.T) {
	ctx, dev := newTestContext(t, 16)

	ctx.Present()

	// No sprite flush, just the blit.
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, ctx.framebufferTexture.handle, dev.Draws[0].Texture)
}

func TestSetWindowSizeLeavesInternalStateAlone(t *testing.T) {
	ctx, dev := newTestContext(t, 16)

	internalProj := ctx.internalProjection
	fb := ctx.framebuffer
	fbTex := ctx.framebufferTexture

	ctx.SetWindowSize(1024, 768)

	assert.Equal(t, 1024, ctx.WindowWidth())
	assert.Equal(t, 768, ctx.WindowHeight())
	assert.Equal(t, 320, ctx.Width())
	assert.Equal(t, 240, ctx.Height())
	assert.Equal(t, internalProj, ctx.internalProjection)
	assert.Same(t, fb, ctx.framebuffer)
	assert.Same(t, fbTex, ctx.framebufferTexture)

	assert.Equal(t, ortho(0, 1024, 768, 0, -1, 1), ctx.windowProjection)
	assert.Equal(t, letterbox(320, 240, 1024, 768), ctx.Letterbox())

	// Resizing alone must not touch the device.
	assert.Len(t, dev.Framebuffers, 1)
}

func TestClearForwardsColor(t *testing.T) {
	ctx, dev := newTestContext(t, 16)

	ctx.Clear(colors.RGBA(0.1, 0.2, 0.3, 0.4))

	require.Len(t, dev.Clears, 1)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 0.4}, dev.Clears[0])
}

func TestStatsCountFrameWork(t *testing.T) {
	ctx, dev := newTestContext(t, 16)
	texA := NewTexture(dev, 16, 16, nil)
	texB := NewTexture(dev, 16, 16, nil)

	ctx.DrawAt(texA, V2(0, 0))
	ctx.DrawAt(texB, V2(16, 0)) // texture swap: one flush
	ctx.Present()               // second flush

	stats := ctx.Stats()
	assert.Equal(t, 2, stats.Quads)
	assert.Equal(t, 2, stats.Flushes)
	assert.Equal(t, 2, stats.DrawCalls)

	// A fresh frame starts from zero.
	ctx.Present()
	assert.Zero(t, ctx.Stats().Quads)
}
