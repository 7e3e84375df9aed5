package scenes

import (
	"github.com/Faultbox/learnopengl/internal/engine/mesh"
	"github.com/Faultbox/learnopengl/internal/engine/shader"
)

var triangleVertices = []float32{
	// positions      // colors
	0.5, -0.5, 0.0, 1.0, 0.0, 0.0,  // bottom right
	-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom left
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0,   // top
}

// triangle draws one triangle with per-vertex colors.
type triangle struct {
	prog *shader.Program
	mesh *mesh.Mesh
}

func (s *triangle) Name() string { return "triangle" }

func (s *triangle) Setup(env *Env) error {
	var err error
	if s.prog, err = env.Program("triangle.vs", "triangle.fs"); err != nil {
		return err
	}
	s.mesh, err = mesh.New(env.GL, triangleVertices, nil, mesh.PositionColor)
	return err
}

func (s *triangle) Draw(env *Env, _ Frame) {
	if !env.Use(s.prog) {
		return
	}
	s.mesh.Draw()
}

func (s *triangle) Teardown() {
	s.mesh.Delete()
	s.prog.Delete()
}
