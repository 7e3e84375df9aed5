package shader

import (
	"io/fs"

	"go.uber.org/multierr"

	"github.com/Faultbox/learnopengl/internal/engine/gfx"
)

// Source holds the text of both stages of a program.
type Source struct {
	Vertex   string
	Fragment string
}

// ReadSource reads a vertex and a fragment stage from fsys.
// Stages that cannot be read are left empty and reported as *ReadError.
func ReadSource(fsys fs.FS, vertexPath, fragmentPath string) (Source, error) {
	var src Source
	var errs error

	data, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		errs = multierr.Append(errs, &ReadError{Stage: gfx.StageVertex, Path: vertexPath, Err: err})
	}
	src.Vertex = string(data)

	data, err = fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		errs = multierr.Append(errs, &ReadError{Stage: gfx.StageFragment, Path: fragmentPath, Err: err})
	}
	src.Fragment = string(data)

	return src, errs
}
