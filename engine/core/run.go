package core

import (
	"log"
	"runtime"
	"time"

	"github.com/softpixel/ember/engine/gfx"
	"github.com/softpixel/ember/engine/gfx/device"
)

// Run wires the platform window + graphics device, creates the render
// context, and executes the main loop. Each frame ends in Gfx.Present, which
// letterboxes the internal surface onto the window and swaps.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newDevice func(Window) (device.Device, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	if cfg.InternalWidth <= 0 || cfg.InternalHeight <= 0 {
		cfg.InternalWidth, cfg.InternalHeight = cfg.WindowWidth, cfg.WindowHeight
	}
	if cfg.SpriteCapacity <= 0 {
		cfg.SpriteCapacity = gfx.DefaultSpriteCapacity
	}

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	dev, err := newDevice(win)
	if err != nil {
		return err
	}

	fw, fh := win.FramebufferSize()
	ctx, err := gfx.NewContextWithCapacity(dev, cfg.InternalWidth, cfg.InternalHeight, fw, fh, cfg.SpriteCapacity)
	if err != nil {
		return err
	}

	eng := &Engine{Window: win, Device: dev, Gfx: ctx, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			ctx.SetWindowSize(fw, fh)
		}
	})

	app.OnStart(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		// Run fixed updates
		steps := 0
		for accum >= tick && steps < maxStep {
			app.OnUpdate(eng, float64(tick)/float64(time.Second))
			accum -= tick
			steps++
		}
		// Interpolation factor for rendering
		alpha := float64(accum) / float64(tick)

		// Render into the internal surface, then present it letterboxed.
		app.OnRender(eng, alpha)
		ctx.Present()
	}

	app.OnShutdown(eng)
	log.Println("Engine exit")
	return nil
}
