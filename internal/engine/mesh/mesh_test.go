package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/learnopengl/internal/engine/gfx"
	"github.com/Faultbox/learnopengl/internal/engine/gfx/gfxtest"
)

const passthroughVS = `#version 330 core
layout (location = 0) in vec3 aPos;
void main() { gl_Position = vec4(aPos, 1.0); }
`

const passthroughFS = `#version 330 core
out vec4 FragColor;
void main() { FragColor = vec4(1.0); }
`

func useProgram(t *testing.T, ctx *gfxtest.Context) {
	t.Helper()
	p := ctx.CreateProgram()
	for stage, src := range map[gfx.ShaderStage]string{gfx.StageVertex: passthroughVS, gfx.StageFragment: passthroughFS} {
		s := ctx.CreateShader(stage)
		ctx.ShaderSource(s, src)
		ctx.CompileShader(s)
		ctx.AttachShader(p, s)
	}
	ctx.LinkProgram(p)
	require.True(t, ctx.ProgramLinkStatus(p), ctx.ProgramInfoLog(p))
	ctx.UseProgram(p)
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		stride  int32
		offsets []int
	}{
		{"position", Position, 12, []int{0}},
		{"position color", PositionColor, 24, []int{0, 12}},
		{"position color texcoord", PositionColorTexCoord, 32, []int{0, 12, 24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.stride, tt.layout.Stride())
			for i, want := range tt.offsets {
				assert.Equal(t, want, tt.layout.Offset(i))
			}
		})
	}
}

func TestNewUploadsInterleavedData(t *testing.T) {
	ctx := gfxtest.New()
	vertices := []float32{
		-0.5, -0.5, 0, 1, 0, 0,
		0, -0.5, 0, 0, 1, 0,
		-0.25, 0.5, 0, 0, 0, 1,
	}

	m, err := New(ctx, vertices, nil, PositionColor)
	require.NoError(t, err)

	assert.Equal(t, int32(3), m.Vertices())
	assert.False(t, m.Indexed())
	assert.Zero(t, ctx.BoundVertexArray(), "New leaves no vertex array bound")

	vao, ok := ctx.VertexArray(m.VertexArray())
	require.True(t, ok)
	require.Len(t, vao.Attribs, 2)
	assert.Equal(t, int32(3), vao.Attribs[1].Size)
	assert.Equal(t, int32(24), vao.Attribs[1].Stride)
	assert.Equal(t, 12, vao.Attribs[1].Offset)
	assert.True(t, vao.Attribs[1].Enabled)

	buf, ok := ctx.Buffer(vao.Attribs[0].Buffer)
	require.True(t, ok)
	assert.Equal(t, vertices, buf.Floats)
	assert.Empty(t, ctx.Errors())
}

func TestDrawArrays(t *testing.T) {
	ctx := gfxtest.New()
	m, err := New(ctx, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, nil, Position)
	require.NoError(t, err)

	useProgram(t, ctx)
	m.Draw()

	require.Len(t, ctx.Draws(), 1)
	d := ctx.Draws()[0]
	assert.False(t, d.Indexed)
	assert.Equal(t, int32(3), d.Count)
	assert.Equal(t, m.VertexArray(), d.VertexArray)
	assert.Empty(t, ctx.Errors())
}

func TestDrawElements(t *testing.T) {
	ctx := gfxtest.New()
	vertices := []float32{
		0.5, 0.5, 0,
		0.5, -0.5, 0,
		-0.5, -0.5, 0,
		-0.5, 0.5, 0,
	}
	indices := []uint32{0, 1, 3, 1, 2, 3}

	m, err := New(ctx, vertices, indices, Position)
	require.NoError(t, err)
	assert.True(t, m.Indexed())

	useProgram(t, ctx)
	m.Draw()

	require.Len(t, ctx.Draws(), 1)
	assert.True(t, ctx.Draws()[0].Indexed)
	assert.Equal(t, int32(6), ctx.Draws()[0].Count)

	vao, _ := ctx.VertexArray(m.VertexArray())
	ebo, ok := ctx.Buffer(vao.ElementBuffer)
	require.True(t, ok)
	assert.Equal(t, indices, ebo.Uints)
	assert.Empty(t, ctx.Errors())
}

func TestNewRejectsBadData(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		indices  []uint32
		layout   Layout
	}{
		{"empty", nil, nil, Position},
		{"partial vertex", []float32{0, 0, 0, 1}, nil, Position},
		{"empty layout", []float32{0, 0, 0}, nil, Layout{}},
		{"oversized attribute", []float32{0, 0, 0, 0, 0}, nil, Layout{{Location: 0, Size: 5}}},
		{"index out of range", []float32{0, 0, 0}, []uint32{0, 1}, Position},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := gfxtest.New()
			m, err := New(ctx, tt.vertices, tt.indices, tt.layout)
			assert.ErrorIs(t, err, ErrBadVertexData)
			assert.Nil(t, m)
			assert.Empty(t, ctx.Calls(), "nothing is uploaded for rejected data")
		})
	}
}

func TestDelete(t *testing.T) {
	ctx := gfxtest.New()
	m, err := New(ctx, []float32{0, 0, 0, 1, 1, 1}, []uint32{0, 1, 0}, Position)
	require.NoError(t, err)
	id := m.VertexArray()

	m.Delete()
	m.Delete()

	vao, _ := ctx.VertexArray(id)
	assert.True(t, vao.Deleted)
	ebo, _ := ctx.Buffer(vao.ElementBuffer)
	assert.True(t, ebo.Deleted)
}
