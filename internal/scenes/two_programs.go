package scenes

import (
	"github.com/Faultbox/learnopengl/internal/engine/mesh"
	"github.com/Faultbox/learnopengl/internal/engine/shader"
)

var (
	leftTriangle = []float32{
		-0.9, -0.5, 0.0,
		0.0, -0.5, 0.0,
		-0.45, 0.5, 0.0,
	}
	rightTriangle = []float32{
		0.0, -0.5, 0.0,
		0.9, -0.5, 0.0,
		0.45, 0.5, 0.0,
	}
)

// twoPrograms draws two triangles, each with its own fragment shader.
type twoPrograms struct {
	orange *shader.Program
	yellow *shader.Program
	left   *mesh.Mesh
	right  *mesh.Mesh
}

func (s *twoPrograms) Name() string { return "two-programs" }

func (s *twoPrograms) Setup(env *Env) error {
	var err error
	if s.orange, err = env.Program("position.vs", "orange.fs"); err != nil {
		return err
	}
	if s.yellow, err = env.Program("position.vs", "yellow.fs"); err != nil {
		return err
	}
	if s.left, err = mesh.New(env.GL, leftTriangle, nil, mesh.Position); err != nil {
		return err
	}
	s.right, err = mesh.New(env.GL, rightTriangle, nil, mesh.Position)
	return err
}

func (s *twoPrograms) Draw(env *Env, _ Frame) {
	if env.Use(s.orange) {
		s.left.Draw()
	}
	if env.Use(s.yellow) {
		s.right.Draw()
	}
}

func (s *twoPrograms) Teardown() {
	s.left.Delete()
	s.right.Delete()
	s.orange.Delete()
	s.yellow.Delete()
}
