package main

import (
	"fmt"
	"path/filepath"

	"github.com/softpixel/ember/engine/assets"
	"github.com/softpixel/ember/engine/colors"
	"github.com/softpixel/ember/engine/core"
	"github.com/softpixel/ember/engine/gfx"
	"github.com/softpixel/ember/engine/text"
)

// SpriteLayer draws a spritesheet animation plus a stats label at the
// 320x240 internal resolution; the window can be resized freely.
type SpriteLayer struct {
	tex   *gfx.Texture
	anim  *gfx.Animation
	font  *text.Font
	label *text.Text
	t     float32
}

func (l *SpriteLayer) OnAttach(e *core.Engine) {
	w, h, pixels, err := assets.LoadImage("player.png")
	if err != nil {
		panic(err)
	}
	l.tex = gfx.NewTexture(e.Device, w, h, pixels)

	// First row of 16x16 frames.
	frames := gfx.TakeRectangles(gfx.RectangleRow(0, 0, 16, 16), 4)
	l.anim = gfx.NewAnimation(l.tex, frames, 8)

	l.font, err = text.LoadTTF(e.Device, filepath.Join("assets", "fonts", "RobotoMono.ttf"), 16)
	if err != nil {
		panic(err)
	}
	l.label = text.New(l.font, "")
}

func (l *SpriteLayer) OnDetach(e *core.Engine) { l.font.Close() }

func (l *SpriteLayer) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
	l.anim.Advance()
	l.t += float32(dt)
}

func (l *SpriteLayer) OnRender(e *core.Engine, alpha float64) {
	g := e.Gfx
	g.Clear(colors.DarkGray)

	g.DrawAt(l.tex, gfx.V2(16, 16))

	g.Draw(l.anim, gfx.AtPosition(gfx.V2(160, 120)).
		WithOrigin(gfx.V2(8, 8)).
		WithScale(gfx.V2(2, 2)).
		WithRotation(l.t))

	stats := g.Stats()
	l.label.SetContent(fmt.Sprintf("quads %d draws %d", stats.Quads, stats.DrawCalls))
	g.Draw(l.label, gfx.AtPosition(gfx.V2(4, 2)).WithColor(colors.Yellow))
}

func (l *SpriteLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }
