// Package app wires the window, the graphics context and a scene together
// and runs the render loop.
package app

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/learnopengl/internal/config"
	"github.com/Faultbox/learnopengl/internal/engine/capture"
	"github.com/Faultbox/learnopengl/internal/engine/gfx"
	"github.com/Faultbox/learnopengl/internal/engine/window"
	"github.com/Faultbox/learnopengl/internal/logger"
	"github.com/Faultbox/learnopengl/internal/scenes"
)

// App is one running tutorial program.
type App struct {
	cfg    *config.Config
	log    *zap.Logger
	win    window.Window
	gl     gfx.Context
	scene  scenes.Scene
	env    *scenes.Env
	closed bool
}

// New creates the window, loads OpenGL and sets up the configured scene.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("scene", cfg.Scene.Name),
	)

	scene, err := scenes.Get(cfg.Scene.Name)
	if err != nil {
		return nil, err
	}
	backend, err := window.ParseBackend(cfg.Window.Backend)
	if err != nil {
		return nil, err
	}

	// Create window (this also creates the OpenGL context)
	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Backend:    backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Load GL (AFTER window, since the context must be current)
	ctx, err := gfx.InitGL(logger.Named("gfx"))
	if err != nil {
		win.Close()
		return nil, err
	}

	a, err := newApp(cfg, win, ctx, scene, log)
	if err != nil {
		win.Close()
		return nil, err
	}
	log.Info("initialized successfully")
	return a, nil
}

// newApp sets up scene against an existing window and context.
func newApp(cfg *config.Config, win window.Window, ctx gfx.Context, scene scenes.Scene, log *zap.Logger) (*App, error) {
	a := &App{
		cfg:   cfg,
		log:   log,
		win:   win,
		gl:    ctx,
		scene: scene,
	}
	a.env = &scenes.Env{
		GL:       ctx,
		Shaders:  scenes.ShaderFS(cfg.Shaders.Dir),
		Textures: scenes.TextureFS(cfg.Textures.Dir),
		Assets:   cfg.Textures,
		Strict:   cfg.Shaders.Strict,
		Input:    win,
		Log:      log.Named("scene").With(zap.String("scene", scene.Name())),
	}

	if err := scene.Setup(a.env); err != nil {
		scene.Teardown()
		return nil, fmt.Errorf("failed to set up scene %s: %w", scene.Name(), err)
	}
	return a, nil
}

// Run drives the render loop until the window closes.
func (a *App) Run() error {
	if a.closed {
		return fmt.Errorf("app already closed")
	}
	Loop(a.win, a.env, a.scene, LoopConfig{
		ClearColor:  a.cfg.Render.ClearColor,
		Wireframe:   a.cfg.Render.Wireframe,
		MaxFrames:   a.cfg.Render.MaxFrames,
		Capture:     capture.New(a.cfg.Render.ScreenshotDir, a.scene.Name()),
		CaptureLast: a.cfg.Render.CaptureLast,
		Log:         a.log,
	})
	return nil
}

// Close releases the scene and the window. Driver errors raised during
// teardown are returned together.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.log.Info("closing")

	// errors left from rendering, then those raised by the release itself
	err := a.gl.CheckError()
	a.scene.Teardown()
	err = multierr.Append(err, a.gl.CheckError())
	a.win.Close()
	return err
}
