package gfx

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// GL is the Context backed by the OpenGL 3.3 core driver.
type GL struct{}

var _ Context = (*GL)(nil)

// dataPtr is gl.Ptr for slices that may be empty; gl.Ptr panics on those.
func dataPtr[T any](data []T) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

// InitGL loads the OpenGL function pointers for the context current on the
// calling thread.
// IMPORTANT: Must be called AFTER the window has made its context current!
func InitGL(log *zap.Logger) (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)
	return &GL{}, nil
}

func (*GL) CreateShader(stage ShaderStage) uint32 {
	switch stage {
	case StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return 0
}

func (*GL) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (*GL) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (*GL) ShaderCompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (*GL) ShaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (*GL) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (*GL) CreateProgram() uint32 { return gl.CreateProgram() }

func (*GL) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (*GL) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (*GL) ProgramLinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (*GL) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetProgramInfoLog(program, logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (*GL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (*GL) UseProgram(program uint32) { gl.UseProgram(program) }

func (*GL) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*GL) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (*GL) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (*GL) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (*GL) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (*GL) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (*GL) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (*GL) BindBuffer(target BufferTarget, buffer uint32) { gl.BindBuffer(uint32(target), buffer) }

func (*GL) BufferFloat32(target BufferTarget, data []float32) {
	gl.BufferData(uint32(target), len(data)*4, dataPtr(data), gl.STATIC_DRAW)
}

func (*GL) BufferUint32(target BufferTarget, data []uint32) {
	gl.BufferData(uint32(target), len(data)*4, dataPtr(data), gl.STATIC_DRAW)
}

func (*GL) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (*GL) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, stride, gl.PtrOffset(offset))
}

func (*GL) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (*GL) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (*GL) ActiveTexture(unit int) { gl.ActiveTexture(gl.TEXTURE0 + uint32(unit)) }

func (*GL) BindTexture(texture uint32) { gl.BindTexture(gl.TEXTURE_2D, texture) }

func (*GL) TexParameteri(param TexParam, value int32) {
	gl.TexParameteri(gl.TEXTURE_2D, uint32(param), value)
}

func (*GL) TexImage2D(width, height int32, rgba []byte) {
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, dataPtr(rgba))
}

func (*GL) GenerateMipmap() { gl.GenerateMipmap(gl.TEXTURE_2D) }

func (*GL) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

func (*GL) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (*GL) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (*GL) Clear(mask ClearMask) { gl.Clear(uint32(mask)) }

func (*GL) PolygonMode(wireframe bool) {
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (*GL) DrawArrays(mode Primitive, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (*GL) DrawElements(mode Primitive, count int32, offset int) {
	gl.DrawElements(uint32(mode), count, gl.UNSIGNED_INT, gl.PtrOffset(offset))
}

func (*GL) ReadPixels(x, y, width, height int32) []byte {
	var pixels []byte
	if width > 0 && height > 0 {
		pixels = make([]byte, int(width)*int(height)*4)
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	// Negative sizes still reach the driver so it raises GL_INVALID_VALUE.
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, dataPtr(pixels))
	if len(pixels) == 0 {
		return nil
	}
	return pixels
}

// maxQueuedErrors bounds CheckError when a lost context keeps reporting.
const maxQueuedErrors = 16

func (*GL) CheckError() error {
	var errs error
	for i := 0; i < maxQueuedErrors; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		errs = multierr.Append(errs, Error(code))
	}
	return errs
}
