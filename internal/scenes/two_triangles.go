package scenes

import (
	"github.com/Faultbox/learnopengl/internal/engine/mesh"
	"github.com/Faultbox/learnopengl/internal/engine/shader"
)

var (
	firstTriangle = []float32{
		// positions       // colors
		-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // left
		0.0, -0.5, 0.0, 0.0, 1.0, 0.0,  // right
		-0.25, 0.5, 0.0, 0.0, 0.0, 1.0, // top
	}
	secondTriangle = []float32{
		0.0, -0.5, 0.0, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
		0.25, 0.5, 0.0, 0.0, 0.0, 1.0,
	}
)

// twoTriangles draws two side by side triangles from separate vertex arrays
// with one program, sliding them right by a tenth of the elapsed seconds.
type twoTriangles struct {
	prog  *shader.Program
	first *mesh.Mesh
	right *mesh.Mesh
}

func (s *twoTriangles) Name() string { return "two-triangles" }

func (s *twoTriangles) Setup(env *Env) error {
	var err error
	if s.prog, err = env.Program("shader.vs", "shader.fs"); err != nil {
		return err
	}
	if s.first, err = mesh.New(env.GL, firstTriangle, nil, mesh.PositionColor); err != nil {
		return err
	}
	s.right, err = mesh.New(env.GL, secondTriangle, nil, mesh.PositionColor)
	return err
}

// xOffset is the horizontal shift applied at time t.
func xOffset(t float64) float32 {
	return float32(t) / 10
}

func (s *twoTriangles) Draw(env *Env, f Frame) {
	if !env.Use(s.prog) {
		return
	}
	s.prog.SetFloat("xOffset", xOffset(f.Time))
	s.first.Draw()
	s.right.Draw()
}

func (s *twoTriangles) Teardown() {
	s.first.Delete()
	s.right.Delete()
	s.prog.Delete()
}
