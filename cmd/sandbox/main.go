package main

import (
	"log"

	"github.com/softpixel/ember/engine/core"
	"github.com/softpixel/ember/engine/gfx/device"
	glbackend "github.com/softpixel/ember/engine/gfx/gl"
	"github.com/softpixel/ember/engine/platform"
)

// App dispatches the engine hooks to a stack of layers.
type App struct {
	layers core.LayerStack
}

func (a *App) OnStart(e *core.Engine) {
	a.layers.Push(&SpriteLayer{})
	a.layers.ForEach(func(l core.Layer) { l.OnAttach(e) })
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.layers.ForEach(func(l core.Layer) { l.OnUpdate(e, dt) })
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.layers.ForEach(func(l core.Layer) { l.OnRender(e, alpha) })
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	a.layers.ForEachReverse(func(l core.Layer) bool { return l.OnEvent(e, ev) })
}

func (a *App) OnShutdown(e *core.Engine) {
	a.layers.ForEach(func(l core.Layer) { l.OnDetach(e) })
}

func main() {
	cfg := core.Config{
		Title:          "ember sandbox",
		WindowWidth:    960,
		WindowHeight:   720,
		InternalWidth:  320,
		InternalHeight: 240,
		VSync:          true,
	}

	err := core.Run(&App{}, cfg,
		func(cfg core.Config) (core.Window, error) { return platform.NewGLFWWindow(cfg) },
		func(win core.Window) (device.Device, error) { return glbackend.NewDevice(win), nil },
	)
	if err != nil {
		log.Fatal(err)
	}
}
