package scenes

import (
	"github.com/Faultbox/learnopengl/internal/engine/mesh"
	"github.com/Faultbox/learnopengl/internal/engine/shader"
	"github.com/Faultbox/learnopengl/internal/engine/texture"
	"github.com/Faultbox/learnopengl/internal/engine/window"
)

const (
	defaultMix = 0.2

	// mixRate is how fast the up and down keys move the mix, per second.
	mixRate = 1.0
)

var texturedVertices = []float32{
	// positions     // colors       // texture coords
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,   // top right
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0,  // bottom right
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0,  // top left
}

// textured blends two textures on a quad. Up and down change the blend.
type textured struct {
	prog      *shader.Program
	quad      *mesh.Mesh
	container *texture.Texture
	face      *texture.Texture
	mix       float32
}

func (s *textured) Name() string { return "textured" }

func (s *textured) Setup(env *Env) error {
	var err error
	if s.prog, err = env.Program("textured.vs", "textured.fs"); err != nil {
		return err
	}
	if s.quad, err = mesh.New(env.GL, texturedVertices, quadIndices, mesh.PositionColorTexCoord); err != nil {
		return err
	}
	if s.container, err = env.Texture(env.Assets.Container); err != nil {
		return err
	}
	if s.face, err = env.Texture(env.Assets.Face); err != nil {
		return err
	}

	// samplers only need setting once per program
	if env.Use(s.prog) {
		s.prog.SetInt("texture1", 0)
		s.prog.SetInt("texture2", 1)
	}
	return nil
}

func (s *textured) Draw(env *Env, f Frame) {
	switch {
	case env.KeyPressed(window.KeyUp):
		s.mix = min(s.mix+float32(f.Delta*mixRate), 1)
	case env.KeyPressed(window.KeyDown):
		s.mix = max(s.mix-float32(f.Delta*mixRate), 0)
	}

	s.container.Bind(0)
	s.face.Bind(1)
	if !env.Use(s.prog) {
		return
	}
	s.prog.SetFloat("mixValue", s.mix)
	s.quad.Draw()
}

func (s *textured) Teardown() {
	s.quad.Delete()
	s.container.Delete()
	s.face.Delete()
	s.prog.Delete()
}
