package shader

import (
	"errors"
	"fmt"

	"github.com/Faultbox/learnopengl/internal/engine/gfx"
)

// ErrNotLinked is returned by Use on a program that failed to build or was deleted.
var ErrNotLinked = errors.New("shader program not linked")

// ReadError reports a shader source that could not be read.
type ReadError struct {
	Stage gfx.ShaderStage
	Path  string
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s shader %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// CompileError carries the driver's diagnostic for a stage that failed to compile.
type CompileError struct {
	Stage gfx.ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the driver's diagnostic for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "link program: " + e.Log
}
