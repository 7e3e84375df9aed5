package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagScene     = flag.String("scene", "", "Scene to run")
	flagBackend   = flag.String("backend", "", "Window backend (glfw or sdl)")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
	flagWireframe = flag.Bool("wireframe", false, "Draw polygons as lines")
	flagStrict    = flag.Bool("strict", false, "Abort on shader compile or link errors")
	flagFrames    = flag.Int("frames", 0, "Exit after this many frames")
	flagShaders   = flag.String("shaders", "", "Directory to read shader sources from")
	flagShot      = flag.Bool("screenshot", false, "Save a screenshot of the last frame (needs -frames)")
	flagList      = flag.Bool("list", false, "List available scenes and exit")
	flagSave      = flag.Bool("save-config", false, "Write the effective config to the user config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// ListScenes reports whether --list was given.
func ListScenes() bool {
	return *flagList
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Scene.Name = *flagScene
	}
	if *flagBackend != "" {
		cfg.Window.Backend = *flagBackend
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagWireframe {
		cfg.Render.Wireframe = true
	}
	if *flagStrict {
		cfg.Shaders.Strict = true
	}
	if *flagFrames > 0 {
		cfg.Render.MaxFrames = *flagFrames
	}
	if *flagShaders != "" {
		cfg.Shaders.Dir = *flagShaders
	}
	if *flagShot {
		cfg.Render.CaptureLast = true
	}
}
