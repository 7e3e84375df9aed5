// Package scenes holds the tutorial scenes and the contract the render loop
// drives them through.
package scenes

import (
	"io/fs"

	"go.uber.org/zap"

	"github.com/Faultbox/learnopengl/internal/config"
	"github.com/Faultbox/learnopengl/internal/engine/gfx"
	"github.com/Faultbox/learnopengl/internal/engine/shader"
	"github.com/Faultbox/learnopengl/internal/engine/texture"
	"github.com/Faultbox/learnopengl/internal/engine/window"
)

// Scene is one self-contained tutorial program.
type Scene interface {
	Name() string
	// Setup creates the GPU objects of the scene. After a failed Setup the
	// caller still runs Teardown to release whatever was created.
	Setup(env *Env) error
	Draw(env *Env, f Frame)
	Teardown()
}

// Frame describes the frame being drawn.
type Frame struct {
	Index int
	Time  float64 // seconds since the window was created
	Delta float64 // seconds since the previous frame
}

// Input reports keyboard state.
type Input interface {
	KeyPressed(k window.Key) bool
}

// Env is what a scene gets to build and draw with.
type Env struct {
	GL       gfx.Context
	Shaders  fs.FS
	Textures fs.FS
	Assets   config.TextureConfig
	// Strict turns shader and texture diagnostics into Setup errors.
	Strict bool
	Input  Input
	Log    *zap.Logger

	skipped map[*shader.Program]bool
}

func (e *Env) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// Program builds a shader program from two files of the shader filesystem.
// Outside strict mode a broken program is returned as-is and only logged;
// drawing with it is then skipped by Use.
func (e *Env) Program(vertexPath, fragmentPath string) (*shader.Program, error) {
	opt := shader.WithLogger(e.logger().Named("shader"))
	if e.Strict {
		return shader.CompileFS(e.GL, e.Shaders, vertexPath, fragmentPath, opt)
	}
	return shader.NewFromFS(e.GL, e.Shaders, vertexPath, fragmentPath, opt), nil
}

// Use makes p current. It returns false when p cannot be used, warning once
// per program.
func (e *Env) Use(p *shader.Program) bool {
	err := p.Use()
	if err == nil {
		return true
	}
	if !e.skipped[p] {
		if e.skipped == nil {
			e.skipped = make(map[*shader.Program]bool)
		}
		e.skipped[p] = true
		e.logger().Warn("skipping draws with unusable program", zap.Error(err))
	}
	return false
}

// Texture loads name from the texture filesystem. Outside strict mode an
// unreadable image is replaced by a checkerboard.
func (e *Env) Texture(name string) (*texture.Texture, error) {
	opts := texture.DefaultOptions()
	opts.MaxSize = e.Assets.MaxSize

	tex, err := texture.Load(e.GL, e.Textures, name, opts)
	if err == nil {
		return tex, nil
	}
	if e.Strict {
		return nil, err
	}
	e.logger().Warn("texture unavailable, using placeholder", zap.String("name", name), zap.Error(err))
	return texture.Upload(e.GL, texture.Checkerboard(64, 8, placeholderA, placeholderB), opts), nil
}

// KeyPressed reports whether k is held. Without input every key is up.
func (e *Env) KeyPressed(k window.Key) bool {
	return e.Input != nil && e.Input.KeyPressed(k)
}
