// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/learnopengl/internal/engine/window/backend"
)

// Config holds all settings.
type Config struct {
	Window   WindowConfig  `yaml:"window"`
	Render   RenderConfig  `yaml:"render"`
	Scene    SceneConfig   `yaml:"scene"`
	Shaders  ShaderConfig  `yaml:"shaders"`
	Textures TextureConfig `yaml:"textures"`
	Logging  LoggingConfig `yaml:"logging"`
}

// WindowConfig holds window and context settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Backend    string `yaml:"backend"` // glfw or sdl
}

// RenderConfig holds per-frame render settings.
type RenderConfig struct {
	ClearColor    Color  `yaml:"clear_color"`
	Wireframe     bool   `yaml:"wireframe"`
	MaxFrames     int    `yaml:"max_frames"` // 0 runs until the window closes
	ScreenshotDir string `yaml:"screenshot_dir"`
	CaptureLast   bool   `yaml:"capture_last"` // screenshot the final frame of a max_frames run
}

// SceneConfig selects the scene to run.
type SceneConfig struct {
	Name string `yaml:"name"`
}

// ShaderConfig controls where shader sources come from and how failures are treated.
type ShaderConfig struct {
	Dir    string `yaml:"dir"`    // empty uses the embedded sources
	Strict bool   `yaml:"strict"` // fail scene setup on shader diagnostics
}

// TextureConfig controls texture assets.
type TextureConfig struct {
	Dir       string `yaml:"dir"` // empty uses the embedded textures
	Container string `yaml:"container"`
	Face      string `yaml:"face"`
	MaxSize   int    `yaml:"max_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Color is an RGBA color with components in [0, 1].
// In YAML it is written as "r,g,b" or "r,g,b,a".
type Color [4]float32

// ParseColor parses "r,g,b" or "r,g,b,a".
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("color %q: want 3 or 4 components", s)
	}
	c := Color{0, 0, 0, 1}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		if v < 0 || v > 1 {
			return Color{}, fmt.Errorf("color %q: component %g out of range [0, 1]", s, v)
		}
		c[i] = float32(v)
	}
	return c, nil
}

func (c Color) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", c[0], c[1], c[2], c[3])
}

// MarshalYAML writes the color in its compact string form.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML reads the compact string form.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Default returns a Config with the values the tutorial programs use.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "LearnOpenGL",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			Backend:    string(backend.GLFW),
		},
		Render: RenderConfig{
			ClearColor:    Color{0.2, 0.3, 0.3, 1.0},
			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			Name: "two-triangles",
		},
		Textures: TextureConfig{
			Container: "container.png",
			Face:      "awesomeface.png",
			MaxSize:   4096,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks values that would otherwise fail deep inside window or GL setup.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if _, err := backend.Parse(c.Window.Backend); err != nil {
		return err
	}
	if c.Render.MaxFrames < 0 {
		return fmt.Errorf("max_frames %d must not be negative", c.Render.MaxFrames)
	}
	if c.Render.CaptureLast && c.Render.MaxFrames == 0 {
		return fmt.Errorf("capture_last needs max_frames")
	}
	if c.Scene.Name == "" {
		return fmt.Errorf("scene name must not be empty")
	}
	return nil
}
