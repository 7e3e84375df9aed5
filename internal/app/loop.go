package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/learnopengl/internal/engine/capture"
	"github.com/Faultbox/learnopengl/internal/engine/gfx"
	"github.com/Faultbox/learnopengl/internal/engine/window"
	"github.com/Faultbox/learnopengl/internal/scenes"
)

// LoopConfig holds per-frame settings of the render loop.
type LoopConfig struct {
	ClearColor [4]float32
	Wireframe  bool
	// MaxFrames stops the loop after that many frames; 0 runs until the
	// window is closed.
	MaxFrames int
	// Capture receives screenshots taken with F12. Nil disables them.
	Capture *capture.Capture
	// CaptureLast also captures the frame MaxFrames stops at.
	CaptureLast bool
	Log         *zap.Logger
}

// edge turns a held key into one press.
type edge struct{ held bool }

func (e *edge) pressed(down bool) bool {
	p := down && !e.held
	e.held = down
	return p
}

// Loop renders scene until the window is asked to close and returns the
// number of frames drawn.
//
// Each frame: escape requests close, tab toggles wireframe, space pauses
// the scene clock, the color buffer is cleared, the scene draws, buffers
// swap and events are polled.
func Loop(win window.Window, env *scenes.Env, scene scenes.Scene, cfg LoopConfig) int {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	ctx := env.GL

	w, h := win.FramebufferSize()
	ctx.Viewport(0, 0, int32(w), int32(h))
	win.SetResizeCallback(func(width, height int) {
		w, h = width, height
		ctx.Viewport(0, 0, int32(width), int32(height))
		log.Debug("framebuffer resized", zap.Int("width", width), zap.Int("height", height))
	})
	defer win.SetResizeCallback(nil)

	wireframe := cfg.Wireframe
	ctx.PolygonMode(wireframe)
	var tab, space, f12 edge
	paused := false

	frames := 0
	last := win.Time()
	// stopped is the clock time spent paused; scenes see time without it
	stopped := 0.0
	fpsFrames, fpsStart := 0, last

	log.Info("starting render loop", zap.String("scene", scene.Name()))
	for !win.ShouldClose() {
		now := win.Time()
		delta := now - last
		last = now

		// 1. Input
		if win.KeyPressed(window.KeyEscape) {
			win.SetShouldClose(true)
		}
		if tab.pressed(win.KeyPressed(window.KeyTab)) {
			wireframe = !wireframe
			ctx.PolygonMode(wireframe)
			log.Debug("wireframe toggled", zap.Bool("on", wireframe))
		}
		if space.pressed(win.KeyPressed(window.KeySpace)) {
			paused = !paused
			log.Debug("clock paused", zap.Bool("paused", paused))
		}
		shoot := f12.pressed(win.KeyPressed(window.KeyF12))
		if paused {
			stopped += delta
			delta = 0
		}

		// 2. Render
		c := cfg.ClearColor
		ctx.ClearColor(c[0], c[1], c[2], c[3])
		ctx.Clear(gfx.ColorBufferBit)
		scene.Draw(env, scenes.Frame{Index: frames, Time: now - stopped, Delta: delta})

		final := cfg.MaxFrames > 0 && frames+1 >= cfg.MaxFrames
		if cfg.Capture != nil && (shoot || (final && cfg.CaptureLast)) {
			screenshot(ctx, cfg.Capture, w, h, frames, log)
		}

		// 3. Present
		win.SwapBuffers()
		win.PollEvents()

		frames++
		fpsFrames++
		if now-fpsStart >= 1 {
			log.Debug("fps", zap.Int("count", fpsFrames), zap.String("dt", fmt.Sprintf("%.2fms", delta*1000)))
			if err := ctx.CheckError(); err != nil {
				log.Warn("driver reported errors", zap.Error(err))
			}
			fpsFrames = 0
			fpsStart = now
		}

		if final {
			win.SetShouldClose(true)
		}
	}
	log.Info("render loop finished", zap.Int("frames", frames))
	return frames
}

// screenshot saves the current color buffer. Minimized windows report an
// empty framebuffer and are skipped.
func screenshot(ctx gfx.Frame, c *capture.Capture, w, h, frame int, log *zap.Logger) {
	if w <= 0 || h <= 0 {
		log.Warn("screenshot skipped, framebuffer is empty", zap.Int("width", w), zap.Int("height", h))
		return
	}
	pixels := ctx.ReadPixels(0, 0, int32(w), int32(h))
	name, err := c.Save(pixels, w, h, frame)
	if err != nil {
		log.Warn("screenshot failed", zap.Error(err))
		return
	}
	log.Info("screenshot saved", zap.String("file", name))
}
