// Package gfxtest provides an in-memory fake of the graphics driver.
//
// Context implements gfx.Context without a GPU. It keeps the same kind of
// state the real driver keeps (objects, the program in use, bound buffers,
// texture units), performs light GLSL validation so compile and link
// failures can be provoked from tests, and records a snapshot for every
// draw call. Invalid operations do not panic; they are collected and can be
// inspected with Errors, much like glGetError.
package gfxtest

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/Faultbox/learnopengl/internal/engine/gfx"
)

// Draw is a snapshot of the pipeline state at a draw call.
type Draw struct {
	Program     uint32
	VertexArray uint32
	Mode        gfx.Primitive
	First       int32
	Count       int32
	Indexed     bool
	Offset      int
	Wireframe   bool
	Uniforms    map[string]any
	Textures    map[int]uint32
}

// Attrib is a vertex attribute as recorded on a vertex array.
type Attrib struct {
	Buffer  uint32
	Size    int32
	Stride  int32
	Offset  int
	Enabled bool
}

// VertexArray is a recorded vertex array object.
type VertexArray struct {
	ID            uint32
	Attribs       map[uint32]Attrib
	ElementBuffer uint32
	Deleted       bool
}

// Buffer is a recorded buffer object.
type Buffer struct {
	ID      uint32
	Floats  []float32
	Uints   []uint32
	Deleted bool
}

// Texture is a recorded 2D texture object.
type Texture struct {
	ID      uint32
	Width   int32
	Height  int32
	Pixels  []byte
	Params  map[gfx.TexParam]int32
	Mipmaps bool
	Deleted bool
}

type shaderObj struct {
	stage    gfx.ShaderStage
	source   string
	compiled bool
	log      string
	deleted  bool
}

type uniform struct {
	name string
	typ  string
}

type programObj struct {
	attached []uint32
	linked   bool
	log      string
	deleted  bool
	byName   map[string]int32
	byLoc    map[int32]uniform
	values   map[string]any

	// pendingDelete is set when the program was deleted while current.
	pendingDelete bool
}

// Context is a fake gfx.Context. It is not safe for concurrent use, which
// matches the single-threaded ownership of a real context.
type Context struct {
	nextObject  uint32
	nextVAO     uint32
	nextBuffer  uint32
	nextTexture uint32

	shaders  map[uint32]*shaderObj
	programs map[uint32]*programObj
	vaos     map[uint32]*VertexArray
	buffers  map[uint32]*Buffer
	textures map[uint32]*Texture

	current      uint32
	boundVAO     uint32
	boundArray   uint32
	boundElement uint32
	unit         int
	units        map[int]uint32

	viewport   [4]int32
	clearColor [4]float32
	clears     int
	// background is the color the last color clear filled the buffer with.
	background [4]byte
	wireframe  bool

	draws  []Draw
	calls  []string
	errors []string
	// checked is how many entries of errors CheckError already reported.
	checked int
}

var _ gfx.Context = (*Context)(nil)

// New returns an empty fake context.
func New() *Context {
	return &Context{
		shaders:  make(map[uint32]*shaderObj),
		programs: make(map[uint32]*programObj),
		vaos:     make(map[uint32]*VertexArray),
		buffers:  make(map[uint32]*Buffer),
		textures: make(map[uint32]*Texture),
		units:    make(map[int]uint32),
	}
}

func (c *Context) record(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

func (c *Context) fail(format string, args ...any) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

// Shaders

func (c *Context) CreateShader(stage gfx.ShaderStage) uint32 {
	c.record("CreateShader(%s)", stage)
	if stage != gfx.StageVertex && stage != gfx.StageFragment {
		c.fail("GL_INVALID_ENUM: CreateShader(%d)", stage)
		return 0
	}
	c.nextObject++
	c.shaders[c.nextObject] = &shaderObj{stage: stage}
	return c.nextObject
}

func (c *Context) shader(op string, id uint32) *shaderObj {
	s, ok := c.shaders[id]
	if !ok || s.deleted {
		c.fail("GL_INVALID_VALUE: %s(%d): no such shader", op, id)
		return nil
	}
	return s
}

func (c *Context) ShaderSource(id uint32, source string) {
	c.record("ShaderSource(%d)", id)
	if s := c.shader("ShaderSource", id); s != nil {
		s.source = source
	}
}

func (c *Context) CompileShader(id uint32) {
	c.record("CompileShader(%d)", id)
	s := c.shader("CompileShader", id)
	if s == nil {
		return
	}
	errs := checkSource(s.source)
	s.compiled = len(errs) == 0
	s.log = strings.Join(errs, "\n")
}

func (c *Context) ShaderCompileStatus(id uint32) bool {
	s, ok := c.shaders[id]
	return ok && s.compiled
}

func (c *Context) ShaderInfoLog(id uint32) string {
	if s, ok := c.shaders[id]; ok {
		return s.log
	}
	return ""
}

func (c *Context) DeleteShader(id uint32) {
	c.record("DeleteShader(%d)", id)
	if id == 0 {
		return
	}
	if s := c.shader("DeleteShader", id); s != nil {
		s.deleted = true
	}
}

// Programs

func (c *Context) CreateProgram() uint32 {
	c.record("CreateProgram()")
	c.nextObject++
	c.programs[c.nextObject] = &programObj{}
	return c.nextObject
}

func (c *Context) program(op string, id uint32) *programObj {
	p, ok := c.programs[id]
	if !ok || p.deleted {
		c.fail("GL_INVALID_VALUE: %s(%d): no such program", op, id)
		return nil
	}
	return p
}

func (c *Context) AttachShader(program, shader uint32) {
	c.record("AttachShader(%d, %d)", program, shader)
	p := c.program("AttachShader", program)
	if p == nil || c.shader("AttachShader", shader) == nil {
		return
	}
	p.attached = append(p.attached, shader)
}

func (c *Context) LinkProgram(id uint32) {
	c.record("LinkProgram(%d)", id)
	p := c.program("LinkProgram", id)
	if p == nil {
		return
	}
	p.linked = false
	p.byName, p.byLoc, p.values = nil, nil, nil

	var vs, fs *shaderObj
	for _, sid := range p.attached {
		s := c.shaders[sid]
		switch s.stage {
		case gfx.StageVertex:
			vs = s
		case gfx.StageFragment:
			fs = s
		}
	}

	var errs []string
	switch {
	case vs == nil || fs == nil:
		errs = append(errs, "error: program lacks a vertex or fragment stage")
	case !vs.compiled || !fs.compiled:
		errs = append(errs, "error: linking with uncompiled/unspecialized shader")
	default:
		errs = append(errs, linkStages(vs, fs)...)
	}
	if len(errs) > 0 {
		p.log = strings.Join(errs, "\n")
		return
	}

	decls := uniforms(vs.source)
	for name, typ := range uniforms(fs.source) {
		decls[name] = typ
	}
	p.byName = make(map[string]int32, len(decls))
	p.byLoc = make(map[int32]uniform, len(decls))
	p.values = make(map[string]any, len(decls))
	for i, name := range sortedKeys(decls) {
		loc := int32(i)
		p.byName[name] = loc
		p.byLoc[loc] = uniform{name: name, typ: decls[name]}
		p.values[name] = zeroValue(decls[name])
	}
	p.linked = true
	p.log = ""
}

func linkStages(vs, fs *shaderObj) []string {
	var errs []string
	for _, s := range []*shaderObj{vs, fs} {
		if !hasMain(s.source) {
			errs = append(errs, fmt.Sprintf("error: %s shader lacks `main'", s.stage))
		}
	}

	outs := interfaceVars(vs.source, "out")
	ins := interfaceVars(fs.source, "in")
	for _, name := range sortedKeys(ins) {
		typ, ok := outs[name]
		switch {
		case !ok:
			errs = append(errs, fmt.Sprintf("error: fragment shader input `%s' has no matching output in the previous stage", name))
		case typ != ins[name]:
			errs = append(errs, fmt.Sprintf("error: `%s' declared as type `%s' in vertex shader and `%s' in fragment shader", name, typ, ins[name]))
		}
	}

	vu, fu := uniforms(vs.source), uniforms(fs.source)
	for _, name := range sortedKeys(fu) {
		if typ, ok := vu[name]; ok && typ != fu[name] {
			errs = append(errs, fmt.Sprintf("error: uniform `%s' declared as type `%s' and type `%s'", name, typ, fu[name]))
		}
	}
	return errs
}

func (c *Context) ProgramLinkStatus(id uint32) bool {
	p, ok := c.programs[id]
	return ok && p.linked
}

func (c *Context) ProgramInfoLog(id uint32) string {
	if p, ok := c.programs[id]; ok {
		return p.log
	}
	return ""
}

func (c *Context) DeleteProgram(id uint32) {
	c.record("DeleteProgram(%d)", id)
	if id == 0 {
		return
	}
	p := c.program("DeleteProgram", id)
	if p == nil {
		return
	}
	// The current program lives on until another one replaces it.
	if id == c.current {
		p.pendingDelete = true
		return
	}
	p.deleted = true
}

func (c *Context) makeCurrent(id uint32) {
	if p, ok := c.programs[c.current]; ok && p.pendingDelete && c.current != id {
		p.pendingDelete = false
		p.deleted = true
	}
	c.current = id
}

func (c *Context) UseProgram(id uint32) {
	c.record("UseProgram(%d)", id)
	if id == 0 {
		c.makeCurrent(0)
		return
	}
	p := c.program("UseProgram", id)
	if p == nil {
		return
	}
	if !p.linked {
		c.fail("GL_INVALID_OPERATION: UseProgram(%d): program not linked", id)
		return
	}
	c.makeCurrent(id)
}

func (c *Context) UniformLocation(program uint32, name string) int32 {
	p := c.program("UniformLocation", program)
	if p == nil {
		return -1
	}
	if !p.linked {
		c.fail("GL_INVALID_OPERATION: UniformLocation(%d, %q): program not linked", program, name)
		return -1
	}
	if loc, ok := p.byName[name]; ok {
		return loc
	}
	return -1
}

func (c *Context) setUniform(op string, loc int32, v any, accept func(typ string) bool) {
	c.record("%s(%d, %v)", op, loc, v)
	if loc == -1 {
		return
	}
	p, ok := c.programs[c.current]
	if c.current == 0 || !ok {
		c.fail("GL_INVALID_OPERATION: %s(%d): no program in use", op, loc)
		return
	}
	u, ok := p.byLoc[loc]
	if !ok {
		c.fail("GL_INVALID_OPERATION: %s(%d): invalid location for program %d", op, loc, c.current)
		return
	}
	if !accept(u.typ) {
		c.fail("GL_INVALID_OPERATION: %s(%d): uniform %q has type %s", op, loc, u.name, u.typ)
		return
	}
	p.values[u.name] = v
}

func (c *Context) Uniform1f(loc int32, v float32) {
	c.setUniform("Uniform1f", loc, v, func(typ string) bool { return typ == "float" })
}

func (c *Context) Uniform1i(loc int32, v int32) {
	c.setUniform("Uniform1i", loc, v, func(typ string) bool {
		return typ == "int" || typ == "bool" || strings.HasPrefix(typ, "sampler")
	})
}

// Geometry

func (c *Context) GenVertexArray() uint32 {
	c.record("GenVertexArray()")
	c.nextVAO++
	c.vaos[c.nextVAO] = &VertexArray{ID: c.nextVAO, Attribs: make(map[uint32]Attrib)}
	return c.nextVAO
}

func (c *Context) BindVertexArray(vao uint32) {
	c.record("BindVertexArray(%d)", vao)
	if vao != 0 {
		if v, ok := c.vaos[vao]; !ok || v.Deleted {
			c.fail("GL_INVALID_OPERATION: BindVertexArray(%d): no such vertex array", vao)
			return
		}
	}
	c.boundVAO = vao
}

func (c *Context) DeleteVertexArray(vao uint32) {
	c.record("DeleteVertexArray(%d)", vao)
	if v, ok := c.vaos[vao]; ok {
		v.Deleted = true
	}
	if c.boundVAO == vao {
		c.boundVAO = 0
	}
}

func (c *Context) GenBuffer() uint32 {
	c.record("GenBuffer()")
	c.nextBuffer++
	c.buffers[c.nextBuffer] = &Buffer{ID: c.nextBuffer}
	return c.nextBuffer
}

func (c *Context) BindBuffer(target gfx.BufferTarget, buffer uint32) {
	c.record("BindBuffer(%#x, %d)", uint32(target), buffer)
	if buffer != 0 {
		if b, ok := c.buffers[buffer]; !ok || b.Deleted {
			c.fail("GL_INVALID_VALUE: BindBuffer(%d): no such buffer", buffer)
			return
		}
	}
	switch target {
	case gfx.ArrayBuffer:
		c.boundArray = buffer
	case gfx.ElementArrayBuffer:
		c.boundElement = buffer
		if v, ok := c.vaos[c.boundVAO]; ok {
			v.ElementBuffer = buffer
		}
	default:
		c.fail("GL_INVALID_ENUM: BindBuffer(%#x)", uint32(target))
	}
}

func (c *Context) bound(op string, target gfx.BufferTarget) *Buffer {
	id := c.boundArray
	if target == gfx.ElementArrayBuffer {
		id = c.boundElement
		if v, ok := c.vaos[c.boundVAO]; ok {
			id = v.ElementBuffer
		}
	}
	b, ok := c.buffers[id]
	if id == 0 || !ok {
		c.fail("GL_INVALID_OPERATION: %s(%#x): no buffer bound", op, uint32(target))
		return nil
	}
	return b
}

func (c *Context) BufferFloat32(target gfx.BufferTarget, data []float32) {
	c.record("BufferFloat32(%#x, %d)", uint32(target), len(data))
	if b := c.bound("BufferFloat32", target); b != nil {
		b.Floats = append([]float32(nil), data...)
		b.Uints = nil
	}
}

func (c *Context) BufferUint32(target gfx.BufferTarget, data []uint32) {
	c.record("BufferUint32(%#x, %d)", uint32(target), len(data))
	if b := c.bound("BufferUint32", target); b != nil {
		b.Uints = append([]uint32(nil), data...)
		b.Floats = nil
	}
}

func (c *Context) DeleteBuffer(buffer uint32) {
	c.record("DeleteBuffer(%d)", buffer)
	if b, ok := c.buffers[buffer]; ok {
		b.Deleted = true
	}
	if c.boundArray == buffer {
		c.boundArray = 0
	}
}

func (c *Context) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	c.record("VertexAttribPointer(%d, %d, %d, %d)", index, size, stride, offset)
	v, ok := c.vaos[c.boundVAO]
	if c.boundVAO == 0 || !ok {
		c.fail("GL_INVALID_OPERATION: VertexAttribPointer(%d): no vertex array bound", index)
		return
	}
	if c.boundArray == 0 {
		c.fail("GL_INVALID_OPERATION: VertexAttribPointer(%d): no array buffer bound", index)
		return
	}
	if size < 1 || size > 4 {
		c.fail("GL_INVALID_VALUE: VertexAttribPointer(%d): size %d", index, size)
		return
	}
	a := v.Attribs[index]
	a.Buffer, a.Size, a.Stride, a.Offset = c.boundArray, size, stride, offset
	v.Attribs[index] = a
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.record("EnableVertexAttribArray(%d)", index)
	v, ok := c.vaos[c.boundVAO]
	if c.boundVAO == 0 || !ok {
		c.fail("GL_INVALID_OPERATION: EnableVertexAttribArray(%d): no vertex array bound", index)
		return
	}
	a := v.Attribs[index]
	a.Enabled = true
	v.Attribs[index] = a
}

// Textures

func (c *Context) GenTexture() uint32 {
	c.record("GenTexture()")
	c.nextTexture++
	c.textures[c.nextTexture] = &Texture{ID: c.nextTexture, Params: make(map[gfx.TexParam]int32)}
	return c.nextTexture
}

func (c *Context) ActiveTexture(unit int) {
	c.record("ActiveTexture(%d)", unit)
	if unit < 0 || unit > 15 {
		c.fail("GL_INVALID_ENUM: ActiveTexture(%d)", unit)
		return
	}
	c.unit = unit
}

func (c *Context) BindTexture(texture uint32) {
	c.record("BindTexture(%d)", texture)
	if texture != 0 {
		if t, ok := c.textures[texture]; !ok || t.Deleted {
			c.fail("GL_INVALID_VALUE: BindTexture(%d): no such texture", texture)
			return
		}
	}
	c.units[c.unit] = texture
}

func (c *Context) boundTexture(op string) *Texture {
	t, ok := c.textures[c.units[c.unit]]
	if !ok {
		c.fail("GL_INVALID_OPERATION: %s: no texture bound to unit %d", op, c.unit)
		return nil
	}
	return t
}

func (c *Context) TexParameteri(param gfx.TexParam, value int32) {
	c.record("TexParameteri(%#x, %#x)", uint32(param), value)
	if t := c.boundTexture("TexParameteri"); t != nil {
		t.Params[param] = value
	}
}

func (c *Context) TexImage2D(width, height int32, rgba []byte) {
	c.record("TexImage2D(%d, %d)", width, height)
	t := c.boundTexture("TexImage2D")
	if t == nil {
		return
	}
	if width < 0 || height < 0 || len(rgba) != int(width)*int(height)*4 {
		c.fail("GL_INVALID_VALUE: TexImage2D(%d, %d): %d bytes of pixel data", width, height, len(rgba))
		return
	}
	// The driver accepts this but the texture stays incomplete and the
	// pixel pointer cannot be taken from an empty slice.
	if width == 0 || height == 0 {
		c.fail("TexImage2D(%d, %d): empty image", width, height)
		return
	}
	t.Width, t.Height = width, height
	t.Pixels = append([]byte(nil), rgba...)
}

func (c *Context) GenerateMipmap() {
	c.record("GenerateMipmap()")
	if t := c.boundTexture("GenerateMipmap"); t != nil {
		t.Mipmaps = true
	}
}

func (c *Context) DeleteTexture(texture uint32) {
	c.record("DeleteTexture(%d)", texture)
	if t, ok := c.textures[texture]; ok {
		t.Deleted = true
	}
	for unit, bound := range c.units {
		if bound == texture {
			c.units[unit] = 0
		}
	}
}

// Frame

func (c *Context) Viewport(x, y, width, height int32) {
	c.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
	c.viewport = [4]int32{x, y, width, height}
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("ClearColor(%g, %g, %g, %g)", r, g, b, a)
	c.clearColor = [4]float32{r, g, b, a}
}

func (c *Context) Clear(mask gfx.ClearMask) {
	c.record("Clear(%#x)", uint32(mask))
	c.clears++
	if mask&gfx.ColorBufferBit != 0 {
		for i, v := range c.clearColor {
			c.background[i] = byte(v*255 + 0.5)
		}
	}
}

func (c *Context) PolygonMode(wireframe bool) {
	c.record("PolygonMode(%t)", wireframe)
	c.wireframe = wireframe
}

func (c *Context) snapshot(op string) (Draw, bool) {
	if c.current == 0 {
		c.fail("GL_INVALID_OPERATION: %s: no program in use", op)
		return Draw{}, false
	}
	if c.boundVAO == 0 {
		c.fail("GL_INVALID_OPERATION: %s: no vertex array bound", op)
		return Draw{}, false
	}
	p := c.programs[c.current]
	d := Draw{
		Program:     c.current,
		VertexArray: c.boundVAO,
		Wireframe:   c.wireframe,
		Uniforms:    make(map[string]any, len(p.values)),
		Textures:    make(map[int]uint32, len(c.units)),
	}
	for k, v := range p.values {
		d.Uniforms[k] = v
	}
	for unit, tex := range c.units {
		if tex != 0 {
			d.Textures[unit] = tex
		}
	}
	return d, true
}

func (c *Context) DrawArrays(mode gfx.Primitive, first, count int32) {
	c.record("DrawArrays(%d, %d, %d)", mode, first, count)
	d, ok := c.snapshot("DrawArrays")
	if !ok {
		return
	}
	d.Mode, d.First, d.Count = mode, first, count
	c.draws = append(c.draws, d)
}

func (c *Context) DrawElements(mode gfx.Primitive, count int32, offset int) {
	c.record("DrawElements(%d, %d, %d)", mode, count, offset)
	d, ok := c.snapshot("DrawElements")
	if !ok {
		return
	}
	if c.vaos[c.boundVAO].ElementBuffer == 0 {
		c.fail("GL_INVALID_OPERATION: DrawElements: no element buffer bound")
		return
	}
	d.Mode, d.Count, d.Offset, d.Indexed = mode, count, offset, true
	c.draws = append(c.draws, d)
}

// Inspection

// ReadPixels returns the buffer as the last clear left it. Draws are not
// rasterized.
func (c *Context) ReadPixels(x, y, width, height int32) []byte {
	c.record("ReadPixels(%d, %d, %d, %d)", x, y, width, height)
	if width < 0 || height < 0 {
		c.fail("GL_INVALID_VALUE: ReadPixels(%d, %d): negative size", width, height)
		return nil
	}
	if width == 0 || height == 0 {
		return nil
	}
	pixels := make([]byte, int(width)*int(height)*4)
	for i := 0; i < len(pixels); i += 4 {
		copy(pixels[i:i+4], c.background[:])
	}
	return pixels
}

// CheckError reports the errors recorded since the previous call.
func (c *Context) CheckError() error {
	var errs error
	for _, msg := range c.errors[c.checked:] {
		errs = multierr.Append(errs, errors.New(msg))
	}
	c.checked = len(c.errors)
	return errs
}

// Errors returns the invalid operations observed so far.
func (c *Context) Errors() []string { return c.errors }

// Draws returns the recorded draw calls in order.
func (c *Context) Draws() []Draw { return c.draws }

// Calls returns every driver call in order, formatted as "Name(args)".
func (c *Context) Calls() []string { return c.calls }

// CurrentProgram returns the program in use, or 0.
func (c *Context) CurrentProgram() uint32 { return c.current }

// BoundVertexArray returns the bound vertex array, or 0.
func (c *Context) BoundVertexArray() uint32 { return c.boundVAO }

// ProgramLive reports whether id names a program that has not been deleted
// or flagged for deletion.
func (c *Context) ProgramLive(id uint32) bool {
	p, ok := c.programs[id]
	return ok && !p.deleted && !p.pendingDelete
}

// PendingDelete reports whether id was deleted while current and is kept
// alive until another program replaces it.
func (c *Context) PendingDelete(id uint32) bool {
	p, ok := c.programs[id]
	return ok && p.pendingDelete
}

// LivePrograms counts programs that have not been deleted or flagged for
// deletion.
func (c *Context) LivePrograms() int {
	n := 0
	for _, p := range c.programs {
		if !p.deleted && !p.pendingDelete {
			n++
		}
	}
	return n
}

// LiveShaders counts shader objects that have not been deleted.
func (c *Context) LiveShaders() int {
	n := 0
	for _, s := range c.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

// Uniform returns the value currently stored in a program's uniform.
func (c *Context) Uniform(program uint32, name string) (any, bool) {
	p, ok := c.programs[program]
	if !ok || p.values == nil {
		return nil, false
	}
	v, ok := p.values[name]
	return v, ok
}

// ActiveUniforms lists the uniforms of a linked program in location order.
func (c *Context) ActiveUniforms(program uint32) []string {
	p, ok := c.programs[program]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(p.byName))
	for name := range p.byName {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return p.byName[names[i]] < p.byName[names[j]] })
	return names
}

// VertexArray returns a copy of a recorded vertex array.
func (c *Context) VertexArray(id uint32) (VertexArray, bool) {
	v, ok := c.vaos[id]
	if !ok {
		return VertexArray{}, false
	}
	cp := *v
	cp.Attribs = make(map[uint32]Attrib, len(v.Attribs))
	for k, a := range v.Attribs {
		cp.Attribs[k] = a
	}
	return cp, true
}

// Buffer returns a copy of a recorded buffer.
func (c *Context) Buffer(id uint32) (Buffer, bool) {
	b, ok := c.buffers[id]
	if !ok {
		return Buffer{}, false
	}
	return *b, true
}

// Texture returns a copy of a recorded texture.
func (c *Context) Texture(id uint32) (Texture, bool) {
	t, ok := c.textures[id]
	if !ok {
		return Texture{}, false
	}
	return *t, true
}

// ViewportSize returns the last viewport set.
func (c *Context) ViewportSize() [4]int32 { return c.viewport }

// ClearColorValue returns the last clear color set.
func (c *Context) ClearColorValue() [4]float32 { return c.clearColor }

// Clears counts Clear calls.
func (c *Context) Clears() int { return c.clears }

// Wireframe reports the current polygon mode.
func (c *Context) Wireframe() bool { return c.wireframe }
