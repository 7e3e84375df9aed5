package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Window.Height)
	}
	if cfg.Window.Title != "LearnOpenGL" {
		t.Errorf("expected title LearnOpenGL, got %s", cfg.Window.Title)
	}
	if cfg.Window.Backend != "glfw" {
		t.Errorf("expected glfw backend, got %s", cfg.Window.Backend)
	}
	if cfg.Render.ClearColor != (Color{0.2, 0.3, 0.3, 1.0}) {
		t.Errorf("unexpected clear color %v", cfg.Render.ClearColor)
	}
	if cfg.Render.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir screenshots, got %s", cfg.Render.ScreenshotDir)
	}
	if cfg.Render.MaxFrames != 0 {
		t.Errorf("expected unlimited frames, got %d", cfg.Render.MaxFrames)
	}
	if cfg.Scene.Name != "two-triangles" {
		t.Errorf("expected scene two-triangles, got %s", cfg.Scene.Name)
	}
	if cfg.Shaders.Strict {
		t.Error("expected legacy shader handling by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  title: "Hello Triangle"
  width: 1024
  height: 768
  vsync: false
  backend: sdl

render:
  clear_color: "0.1, 0.1, 0.1"
  wireframe: true
  max_frames: 120

scene:
  name: textured

shaders:
  dir: ./shaders
  strict: true

textures:
  container: wall.jpg

logging:
  level: "debug"
  log_file: "learnopengl.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Title != "Hello Triangle" {
		t.Errorf("expected title 'Hello Triangle', got %s", cfg.Window.Title)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Window.Backend != "sdl" {
		t.Errorf("expected sdl backend, got %s", cfg.Window.Backend)
	}
	if cfg.Render.ClearColor != (Color{0.1, 0.1, 0.1, 1}) {
		t.Errorf("unexpected clear color %v", cfg.Render.ClearColor)
	}
	if !cfg.Render.Wireframe {
		t.Error("expected wireframe to be true")
	}
	if cfg.Render.MaxFrames != 120 {
		t.Errorf("expected max frames 120, got %d", cfg.Render.MaxFrames)
	}
	if cfg.Scene.Name != "textured" {
		t.Errorf("expected scene textured, got %s", cfg.Scene.Name)
	}
	if cfg.Shaders.Dir != "./shaders" || !cfg.Shaders.Strict {
		t.Errorf("unexpected shader config %+v", cfg.Shaders)
	}
	if cfg.Textures.Container != "wall.jpg" {
		t.Errorf("expected container wall.jpg, got %s", cfg.Textures.Container)
	}
	// Untouched keys keep their defaults.
	if cfg.Textures.Face != "awesomeface.png" {
		t.Errorf("expected default face texture, got %s", cfg.Textures.Face)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "learnopengl.log" {
		t.Errorf("expected log file 'learnopengl.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"syntax", "window:\n  width: not a number\n  invalid syntax here\n"},
		{"color components", "render:\n  clear_color: \"0.1,0.2\"\n"},
		{"color range", "render:\n  clear_color: \"2,0,0\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.yaml), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"unknown backend", func(c *Config) { c.Window.Backend = "directx" }},
		{"negative frames", func(c *Config) { c.Render.MaxFrames = -5 }},
		{"empty scene", func(c *Config) { c.Scene.Name = "" }},
		{"capture without frame limit", func(c *Config) { c.Render.CaptureLast = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("0.2,0.3,0.3,0.5")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != (Color{0.2, 0.3, 0.3, 0.5}) {
		t.Errorf("got %v", c)
	}
	if _, err := ParseColor("red"); err == nil {
		t.Error("expected error for non-numeric color")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Name = "rectangle"
	cfg.Render.ClearColor = Color{0.5, 0.25, 0, 1}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Scene.Name != "rectangle" {
		t.Errorf("expected scene rectangle, got %s", loaded.Scene.Name)
	}
	if loaded.Render.ClearColor != cfg.Render.ClearColor {
		t.Errorf("expected clear color %v, got %v", cfg.Render.ClearColor, loaded.Render.ClearColor)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "scene flag",
			setup: func() { *flagScene = "two-programs" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Name != "two-programs" {
					t.Errorf("expected scene two-programs, got %s", cfg.Scene.Name)
				}
			},
			teardown: func() { *flagScene = "" },
		},
		{
			name:  "backend flag",
			setup: func() { *flagBackend = "sdl" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Backend != "sdl" {
					t.Errorf("expected backend sdl, got %s", cfg.Window.Backend)
				}
			},
			teardown: func() { *flagBackend = "" },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1280
				*flagHeight = 720
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
					t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "render flags",
			setup: func() {
				*flagWireframe = true
				*flagFrames = 10
				*flagShot = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Render.Wireframe {
					t.Error("expected wireframe")
				}
				if cfg.Render.MaxFrames != 10 {
					t.Errorf("expected 10 frames, got %d", cfg.Render.MaxFrames)
				}
				if !cfg.Render.CaptureLast {
					t.Error("expected last frame capture")
				}
				if err := cfg.Validate(); err != nil {
					t.Errorf("unexpected validation error: %v", err)
				}
			},
			teardown: func() {
				*flagWireframe = false
				*flagFrames = 0
				*flagShot = false
			},
		},
		{
			name: "shader flags",
			setup: func() {
				*flagStrict = true
				*flagShaders = "/tmp/shaders"
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Shaders.Strict {
					t.Error("expected strict shaders")
				}
				if cfg.Shaders.Dir != "/tmp/shaders" {
					t.Errorf("expected shader dir /tmp/shaders, got %s", cfg.Shaders.Dir)
				}
			},
			teardown: func() {
				*flagStrict = false
				*flagShaders = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  backend: metal\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected invalid backend to be rejected")
	}
}
