package scenes

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/learnopengl/internal/config"
	"github.com/Faultbox/learnopengl/internal/engine/gfx/gfxtest"
	"github.com/Faultbox/learnopengl/internal/engine/window"
)

type keys map[window.Key]bool

func (k keys) KeyPressed(key window.Key) bool { return k[key] }

func testEnv(ctx *gfxtest.Context, strict bool) *Env {
	return &Env{
		GL:       ctx,
		Shaders:  ShaderFS(""),
		Textures: TextureFS(""),
		Assets:   config.Default().Textures,
		Strict:   strict,
		Input:    keys{},
		Log:      zap.NewNop(),
	}
}

func setup(t *testing.T, name string, env *Env) Scene {
	t.Helper()
	s, err := Get(name)
	require.NoError(t, err)
	require.NoError(t, s.Setup(env))
	t.Cleanup(s.Teardown)
	return s
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"rectangle", "textured", "triangle", "two-programs", "two-triangles"}, Names())
	assert.Contains(t, Names(), Default)
}

func TestGet(t *testing.T) {
	a, err := Get("triangle")
	require.NoError(t, err)
	b, err := Get("triangle")
	require.NoError(t, err)
	assert.NotSame(t, a, b, "every Get returns a fresh scene")
	assert.Equal(t, "triangle", a.Name())

	_, err = Get("cube")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "two-triangles")
}

func TestEveryScene(t *testing.T) {
	tests := []struct {
		name  string
		draws int
	}{
		{"triangle", 1},
		{"two-triangles", 2},
		{"two-programs", 2},
		{"rectangle", 1},
		{"textured", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := gfxtest.New()
			env := testEnv(ctx, true)

			s, err := Get(tt.name)
			require.NoError(t, err)
			require.NoError(t, s.Setup(env))
			assert.Equal(t, tt.name, s.Name())

			s.Draw(env, Frame{Index: 0, Time: 1, Delta: 1.0 / 60})
			assert.Len(t, ctx.Draws(), tt.draws)
			assert.Empty(t, ctx.Errors())

			s.Teardown()
			assert.Zero(t, ctx.LivePrograms())
			assert.Empty(t, ctx.Errors())
		})
	}
}

func TestTwoTrianglesOffset(t *testing.T) {
	ctx := gfxtest.New()
	env := testEnv(ctx, true)
	s := setup(t, "two-triangles", env)

	s.Draw(env, Frame{Time: 2.5})

	draws := ctx.Draws()
	require.Len(t, draws, 2)
	assert.Equal(t, draws[0].Program, draws[1].Program)
	assert.NotEqual(t, draws[0].VertexArray, draws[1].VertexArray)
	for _, d := range draws {
		assert.Equal(t, float32(0.25), d.Uniforms["xOffset"])
		assert.Equal(t, int32(3), d.Count)
	}
}

func TestTwoProgramsDistinct(t *testing.T) {
	ctx := gfxtest.New()
	env := testEnv(ctx, true)
	s := setup(t, "two-programs", env)

	s.Draw(env, Frame{})

	draws := ctx.Draws()
	require.Len(t, draws, 2)
	assert.NotEqual(t, draws[0].Program, draws[1].Program)
}

func TestRectangleIndexed(t *testing.T) {
	ctx := gfxtest.New()
	env := testEnv(ctx, true)
	s := setup(t, "rectangle", env)

	s.Draw(env, Frame{Time: 0})

	draws := ctx.Draws()
	require.Len(t, draws, 1)
	assert.True(t, draws[0].Indexed)
	assert.Equal(t, int32(6), draws[0].Count)
	assert.Equal(t, float32(0.5), draws[0].Uniforms["greenValue"])
}

func TestGreenValueRange(t *testing.T) {
	for _, tm := range []float64{0, 0.5, 1.57, 3.14, 4.71, 100} {
		v := greenValue(tm)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestTexturedMix(t *testing.T) {
	ctx := gfxtest.New()
	env := testEnv(ctx, true)
	input := keys{}
	env.Input = input
	s := setup(t, "textured", env)

	s.Draw(env, Frame{Delta: 0.1})
	input[window.KeyUp] = true
	s.Draw(env, Frame{Delta: 0.1})
	input[window.KeyUp] = false
	input[window.KeyDown] = true
	for range 10 {
		s.Draw(env, Frame{Delta: 0.1})
	}

	draws := ctx.Draws()
	require.Len(t, draws, 12)

	first := draws[0]
	assert.Equal(t, int32(0), first.Uniforms["texture1"])
	assert.Equal(t, int32(1), first.Uniforms["texture2"])
	assert.InDelta(t, defaultMix, first.Uniforms["mixValue"], 1e-6)
	require.Len(t, first.Textures, 2)
	assert.NotEqual(t, first.Textures[0], first.Textures[1])

	assert.InDelta(t, 0.3, draws[1].Uniforms["mixValue"], 1e-6)
	assert.Equal(t, float32(0), draws[11].Uniforms["mixValue"], "mix is clamped at zero")

	tex, ok := ctx.Texture(first.Textures[0])
	require.True(t, ok)
	assert.Equal(t, int32(64), tex.Width)
	assert.True(t, tex.Mipmaps)
}

func TestBrokenShaderLegacy(t *testing.T) {
	ctx := gfxtest.New()
	core, logs := observer.New(zapcore.DebugLevel)
	env := testEnv(ctx, false)
	env.Log = zap.New(core)
	env.Shaders = fstest.MapFS{
		"shader.vs": {Data: mustRead(t, ShaderFS(""), "shader.vs")},
		"shader.fs": {Data: []byte("#version 330 core\nvoid main() {\n")},
	}

	s := setup(t, "two-triangles", env)
	s.Draw(env, Frame{Index: 0})
	s.Draw(env, Frame{Index: 1})

	assert.Empty(t, ctx.Draws(), "nothing is drawn with a failed program")
	assert.Empty(t, ctx.Errors())
	assert.Equal(t, 1, logs.FilterMessage("shader compilation failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("skipping draws with unusable program").Len())
}

func TestBrokenShaderStrict(t *testing.T) {
	ctx := gfxtest.New()
	env := testEnv(ctx, true)
	env.Shaders = fstest.MapFS{}

	s, err := Get("textured")
	require.NoError(t, err)
	require.ErrorIs(t, s.Setup(env), fs.ErrNotExist)

	s.Teardown()
	assert.Zero(t, ctx.LivePrograms())
	assert.Empty(t, ctx.Errors())
}

func TestMissingTexture(t *testing.T) {
	t.Run("legacy", func(t *testing.T) {
		ctx := gfxtest.New()
		env := testEnv(ctx, false)
		env.Textures = fstest.MapFS{}
		s := setup(t, "textured", env)

		s.Draw(env, Frame{})
		require.Len(t, ctx.Draws(), 1)
		tex, ok := ctx.Texture(ctx.Draws()[0].Textures[0])
		require.True(t, ok)
		assert.Equal(t, int32(64), tex.Width)
	})

	t.Run("strict", func(t *testing.T) {
		ctx := gfxtest.New()
		env := testEnv(ctx, true)
		env.Textures = fstest.MapFS{}

		s, err := Get("textured")
		require.NoError(t, err)
		assert.ErrorIs(t, s.Setup(env), fs.ErrNotExist)
		s.Teardown()
	})
}

func TestShaderFSDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shader.fs"), []byte("custom"), 0o644))

	data, err := fs.ReadFile(ShaderFS(dir), "shader.fs")
	require.NoError(t, err)
	assert.Equal(t, "custom", string(data))

	_, err = fs.ReadFile(ShaderFS(dir), "shader.vs")
	assert.ErrorIs(t, err, fs.ErrNotExist, "a directory replaces the embedded set entirely")
}

func TestEmbeddedAssets(t *testing.T) {
	for _, name := range []string{"shader.vs", "shader.fs", "textured.vs", "textured.fs"} {
		_, err := fs.Stat(ShaderFS(""), name)
		assert.NoError(t, err, name)
	}
	cfg := config.Default().Textures
	for _, name := range []string{cfg.Container, cfg.Face} {
		_, err := fs.Stat(TextureFS(""), name)
		assert.NoError(t, err, name)
	}
}

func mustRead(t *testing.T, fsys fs.FS, name string) []byte {
	t.Helper()
	data, err := fs.ReadFile(fsys, name)
	require.NoError(t, err)
	return data
}
