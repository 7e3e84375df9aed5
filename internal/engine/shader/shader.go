// Package shader builds GPU shader programs from GLSL source.
//
// A Program is compiled and linked synchronously on construction. Two
// constructor families exist:
//
//   - New and NewFromFS never fail. Diagnostics are logged and a Program is
//     always returned; check State or Err before relying on it.
//   - Compile and CompileFS return an error carrying every diagnostic and
//     no Program when anything went wrong.
//
// Shaders target GLSL 3.30 core.
package shader

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/learnopengl/internal/engine/gfx"
	"github.com/Faultbox/learnopengl/internal/logger"
)

// State is the build state of a Program.
type State int

const (
	Uninitialized State = iota
	Compiling
	Linked
	Failed
	Deleted
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Compiling:
		return "compiling"
	case Linked:
		return "linked"
	case Failed:
		return "failed"
	case Deleted:
		return "deleted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Program owns one linked GPU program.
type Program struct {
	ctx    gfx.Shaders
	log    *zap.Logger
	handle uint32
	state  State
	err    error
}

// Option configures a Program.
type Option func(*Program)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(p *Program) {
		p.log = l
	}
}

func newProgram(ctx gfx.Shaders, opts []Option) *Program {
	p := &Program{ctx: ctx, state: Uninitialized}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.Named("shader")
	}
	return p
}

// New compiles and links a program from in-memory sources.
// It never fails: compile and link diagnostics are logged and the returned
// program is left in the Failed state.
func New(ctx gfx.Shaders, vertexSrc, fragmentSrc string, opts ...Option) *Program {
	p := newProgram(ctx, opts)
	p.build(Source{Vertex: vertexSrc, Fragment: fragmentSrc})
	p.logFailure()
	return p
}

// NewFromFS reads both stages from fsys and behaves like New.
// An unreadable stage is logged and compiled as empty text.
func NewFromFS(ctx gfx.Shaders, fsys fs.FS, vertexPath, fragmentPath string, opts ...Option) *Program {
	p := newProgram(ctx, opts)
	src, readErr := ReadSource(fsys, vertexPath, fragmentPath)
	p.build(src)
	if readErr != nil {
		p.state = Failed
		p.err = multierr.Combine(readErr, p.err)
	}
	p.logFailure()
	return p
}

// Compile compiles and links a program from in-memory sources.
// On failure no GPU objects are left behind and the error joins every
// *CompileError and *LinkError encountered.
func Compile(ctx gfx.Shaders, vertexSrc, fragmentSrc string, opts ...Option) (*Program, error) {
	p := newProgram(ctx, opts)
	p.build(Source{Vertex: vertexSrc, Fragment: fragmentSrc})
	if p.state != Linked {
		p.Delete()
		return nil, p.err
	}
	return p, nil
}

// CompileFS reads both stages from fsys and behaves like Compile.
// Read failures are returned as *ReadError before anything is compiled.
func CompileFS(ctx gfx.Shaders, fsys fs.FS, vertexPath, fragmentPath string, opts ...Option) (*Program, error) {
	src, err := ReadSource(fsys, vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return Compile(ctx, src.Vertex, src.Fragment, opts...)
}

// build runs the whole compile/attach/link sequence even when a stage fails,
// the same way the driver would be driven by hand.
func (p *Program) build(src Source) {
	p.state = Compiling

	var errs error
	vert, err := compileStage(p.ctx, gfx.StageVertex, src.Vertex)
	errs = multierr.Append(errs, err)
	frag, err := compileStage(p.ctx, gfx.StageFragment, src.Fragment)
	errs = multierr.Append(errs, err)

	p.handle = p.ctx.CreateProgram()
	p.ctx.AttachShader(p.handle, vert)
	p.ctx.AttachShader(p.handle, frag)
	p.ctx.LinkProgram(p.handle)
	if !p.ctx.ProgramLinkStatus(p.handle) {
		errs = multierr.Append(errs, &LinkError{Log: p.ctx.ProgramInfoLog(p.handle)})
	}

	// The linked program keeps what it needs from the stage objects.
	p.ctx.DeleteShader(vert)
	p.ctx.DeleteShader(frag)

	if errs != nil {
		p.state = Failed
		p.err = errs
		return
	}
	p.state = Linked
	p.log.Debug("shader program linked", zap.Uint32("program", p.handle))
}

func compileStage(ctx gfx.Shaders, stage gfx.ShaderStage, source string) (uint32, error) {
	s := ctx.CreateShader(stage)
	ctx.ShaderSource(s, source)
	ctx.CompileShader(s)
	if !ctx.ShaderCompileStatus(s) {
		return s, &CompileError{Stage: stage, Log: ctx.ShaderInfoLog(s)}
	}
	return s, nil
}

// logFailure reports every diagnostic of a failed build, one entry each.
func (p *Program) logFailure() {
	if p.err == nil {
		return
	}
	for _, err := range multierr.Errors(p.err) {
		var (
			rerr *ReadError
			cerr *CompileError
			lerr *LinkError
		)
		switch {
		case errors.As(err, &rerr):
			p.log.Error("shader file not successfully read",
				zap.Stringer("stage", rerr.Stage), zap.String("path", rerr.Path), zap.Error(rerr.Err))
		case errors.As(err, &cerr):
			p.log.Error("shader compilation failed",
				zap.Stringer("stage", cerr.Stage), zap.String("log", cerr.Log))
		case errors.As(err, &lerr):
			p.log.Error("shader program linking failed", zap.String("log", lerr.Log))
		default:
			p.log.Error("shader program error", zap.Error(err))
		}
	}
}

// Handle returns the driver's program name, or 0 once deleted.
func (p *Program) Handle() uint32 { return p.handle }

// State returns the build state.
func (p *Program) State() State { return p.state }

// Err returns the diagnostics of a failed build, or nil.
func (p *Program) Err() error { return p.err }

// Use makes the program current for subsequent draw calls.
// A program that is not Linked fails fast with ErrNotLinked.
func (p *Program) Use() error {
	if p.state != Linked {
		return fmt.Errorf("use program %d: %w (%s)", p.handle, ErrNotLinked, p.state)
	}
	p.ctx.UseProgram(p.handle)
	return nil
}

// SetFloat writes a float uniform of the program in use.
// Unknown names are ignored.
func (p *Program) SetFloat(name string, v float32) {
	if p.state != Linked {
		p.log.Debug("uniform set on unusable program", zap.String("name", name), zap.Stringer("state", p.state))
		return
	}
	p.ctx.Uniform1f(p.ctx.UniformLocation(p.handle, name), v)
}

// SetInt writes an int, bool or sampler uniform of the program in use.
// Unknown names are ignored.
func (p *Program) SetInt(name string, v int32) {
	if p.state != Linked {
		p.log.Debug("uniform set on unusable program", zap.String("name", name), zap.Stringer("state", p.state))
		return
	}
	p.ctx.Uniform1i(p.ctx.UniformLocation(p.handle, name), v)
}

// Delete releases the GPU program. It is safe to call more than once, and on nil.
func (p *Program) Delete() {
	if p == nil || p.state == Deleted {
		return
	}
	if p.handle != 0 {
		p.ctx.DeleteProgram(p.handle)
	}
	p.handle = 0
	p.state = Deleted
}
