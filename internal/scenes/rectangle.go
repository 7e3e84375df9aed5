package scenes

import (
	"math"

	"github.com/Faultbox/learnopengl/internal/engine/mesh"
	"github.com/Faultbox/learnopengl/internal/engine/shader"
)

var (
	quadVertices = []float32{
		0.5, 0.5, 0.0,   // top right
		0.5, -0.5, 0.0,  // bottom right
		-0.5, -0.5, 0.0, // bottom left
		-0.5, 0.5, 0.0,  // top left
	}
	quadIndices = []uint32{
		0, 1, 3,
		1, 2, 3,
	}
)

// rectangle draws an indexed quad whose green channel pulses over time.
type rectangle struct {
	prog *shader.Program
	quad *mesh.Mesh
}

func (s *rectangle) Name() string { return "rectangle" }

func (s *rectangle) Setup(env *Env) error {
	var err error
	if s.prog, err = env.Program("position.vs", "pulse.fs"); err != nil {
		return err
	}
	s.quad, err = mesh.New(env.GL, quadVertices, quadIndices, mesh.Position)
	return err
}

// greenValue maps t onto [0, 1] along a sine wave.
func greenValue(t float64) float32 {
	return float32(math.Sin(t)/2 + 0.5)
}

func (s *rectangle) Draw(env *Env, f Frame) {
	if !env.Use(s.prog) {
		return
	}
	s.prog.SetFloat("greenValue", greenValue(f.Time))
	s.quad.Draw()
}

func (s *rectangle) Teardown() {
	s.quad.Delete()
	s.prog.Delete()
}
