// Package gfx exposes the graphics driver as an explicit context object.
//
// The OpenGL driver keeps the active program, bound buffers and bound
// textures as process-wide state reached through free functions. Components
// in this module never call the driver directly: they receive a Context
// and issue every call through it, so tests can run against a fake driver
// (see package gfxtest).
package gfx

import "fmt"

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

// String returns the lower-case stage name used in diagnostics.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// BufferTarget is a buffer binding point.
type BufferTarget uint32

// Values match the OpenGL enums so the GL backend can pass them through.
const (
	ArrayBuffer        BufferTarget = 0x8892
	ElementArrayBuffer BufferTarget = 0x8893
)

// Primitive is a draw-call primitive mode.
type Primitive uint32

const (
	Points    Primitive = 0x0000
	Lines     Primitive = 0x0001
	Triangles Primitive = 0x0004
)

// ClearMask selects the framebuffer planes to clear.
type ClearMask uint32

const (
	DepthBufferBit ClearMask = 0x00000100
	ColorBufferBit ClearMask = 0x00004000
)

// TexParam is a 2D texture parameter name.
type TexParam uint32

const (
	TextureMagFilter TexParam = 0x2800
	TextureMinFilter TexParam = 0x2801
	TextureWrapS     TexParam = 0x2802
	TextureWrapT     TexParam = 0x2803
)

// Texture parameter values.
const (
	Nearest            int32 = 0x2600
	Linear             int32 = 0x2601
	LinearMipmapLinear int32 = 0x2703
	Repeat             int32 = 0x2901
	ClampToEdge        int32 = 0x812F
	MirroredRepeat     int32 = 0x8370
)

// Shaders is the subset of the driver used to build and drive shader programs.
type Shaders interface {
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinkStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// UniformLocation returns -1 when name is not an active uniform of program.
	UniformLocation(program uint32, name string) int32
	// Uniform1f and Uniform1i write into the program in use. Location -1 is ignored.
	Uniform1f(location int32, v float32)
	Uniform1i(location int32, v int32)
}

// Buffers is the subset of the driver used for geometry upload.
type Buffers interface {
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferFloat32(target BufferTarget, data []float32)
	BufferUint32(target BufferTarget, data []uint32)
	DeleteBuffer(buffer uint32)

	// VertexAttribPointer describes float attribute index of the bound array
	// buffer. stride and offset are in bytes.
	VertexAttribPointer(index uint32, size, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
}

// Textures is the subset of the driver used for 2D textures.
type Textures interface {
	GenTexture() uint32
	ActiveTexture(unit int)
	BindTexture(texture uint32)
	TexParameteri(param TexParam, value int32)
	// TexImage2D uploads tightly packed RGBA8 pixels to the bound texture.
	TexImage2D(width, height int32, rgba []byte)
	GenerateMipmap()
	DeleteTexture(texture uint32)
}

// Frame is the subset of the driver used by the render loop.
type Frame interface {
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	PolygonMode(wireframe bool)
	DrawArrays(mode Primitive, first, count int32)
	// DrawElements draws count uint32 indices starting at byte offset of the
	// element buffer bound to the current vertex array.
	DrawElements(mode Primitive, count int32, offset int)
	// ReadPixels returns the RGBA8 pixels of a rectangle of the back buffer,
	// bottom row first.
	ReadPixels(x, y, width, height int32) []byte
	// CheckError drains the driver error queue. It returns nil when no error
	// was raised since the previous call.
	CheckError() error
}

// Error is a driver error code as reported by glGetError.
type Error uint32

func (e Error) Error() string {
	switch e {
	case 0x0500:
		return "GL_INVALID_ENUM"
	case 0x0501:
		return "GL_INVALID_VALUE"
	case 0x0502:
		return "GL_INVALID_OPERATION"
	case 0x0505:
		return "GL_OUT_OF_MEMORY"
	case 0x0506:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("GL error 0x%04x", uint32(e))
}

// Context is a current graphics context. It is owned by a single thread.
type Context interface {
	Shaders
	Buffers
	Textures
	Frame
}
