// Package mesh uploads static vertex data to GPU buffers.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/learnopengl/internal/engine/gfx"
)

// ErrBadVertexData is returned for vertex data that does not fit its layout.
var ErrBadVertexData = errors.New("vertex data does not match layout")

const floatSize = 4

// Attribute is one float vertex attribute.
type Attribute struct {
	Location uint32
	Size     int32 // components, 1-4
}

// Layout is the interleaved attribute order of a vertex.
type Layout []Attribute

// Common layouts.
var (
	Position              = Layout{{Location: 0, Size: 3}}
	PositionColor         = Layout{{Location: 0, Size: 3}, {Location: 1, Size: 3}}
	PositionColorTexCoord = Layout{{Location: 0, Size: 3}, {Location: 1, Size: 3}, {Location: 2, Size: 2}}
)

// Components returns the number of floats per vertex.
func (l Layout) Components() int {
	n := 0
	for _, a := range l {
		n += int(a.Size)
	}
	return n
}

// Stride returns the size of one vertex in bytes.
func (l Layout) Stride() int32 {
	return int32(l.Components() * floatSize)
}

// Offset returns the byte offset of attribute i within a vertex.
func (l Layout) Offset(i int) int {
	off := 0
	for _, a := range l[:i] {
		off += int(a.Size) * floatSize
	}
	return off
}

// Device is the part of the graphics context a Mesh needs.
type Device interface {
	gfx.Buffers
	DrawArrays(mode gfx.Primitive, first, count int32)
	DrawElements(mode gfx.Primitive, count int32, offset int)
}

// Mesh is one vertex array with its vertex buffer and optional index buffer.
type Mesh struct {
	dev      Device
	vao      uint32
	vbo      uint32
	ebo      uint32
	vertices int32
	indices  int32
}

// New uploads vertices (and indices, when non-empty) with the given layout.
func New(dev Device, vertices []float32, indices []uint32, layout Layout) (*Mesh, error) {
	comps := layout.Components()
	if comps == 0 || len(vertices) == 0 || len(vertices)%comps != 0 {
		return nil, fmt.Errorf("%w: %d floats, %d per vertex", ErrBadVertexData, len(vertices), comps)
	}
	for _, a := range layout {
		if a.Size < 1 || a.Size > 4 {
			return nil, fmt.Errorf("%w: attribute %d has %d components", ErrBadVertexData, a.Location, a.Size)
		}
	}
	count := len(vertices) / comps
	for _, idx := range indices {
		if int(idx) >= count {
			return nil, fmt.Errorf("%w: index %d out of range for %d vertices", ErrBadVertexData, idx, count)
		}
	}

	m := &Mesh{
		dev:      dev,
		vertices: int32(count),
		indices:  int32(len(indices)),
	}

	m.vao = dev.GenVertexArray()
	dev.BindVertexArray(m.vao)

	m.vbo = dev.GenBuffer()
	dev.BindBuffer(gfx.ArrayBuffer, m.vbo)
	dev.BufferFloat32(gfx.ArrayBuffer, vertices)

	if len(indices) > 0 {
		m.ebo = dev.GenBuffer()
		dev.BindBuffer(gfx.ElementArrayBuffer, m.ebo)
		dev.BufferUint32(gfx.ElementArrayBuffer, indices)
	}

	stride := layout.Stride()
	for i, a := range layout {
		dev.VertexAttribPointer(a.Location, a.Size, stride, layout.Offset(i))
		dev.EnableVertexAttribArray(a.Location)
	}

	// Unbind the VAO first so it keeps its element buffer binding.
	dev.BindVertexArray(0)
	dev.BindBuffer(gfx.ArrayBuffer, 0)

	return m, nil
}

// VertexArray returns the vertex array name.
func (m *Mesh) VertexArray() uint32 { return m.vao }

// Vertices returns the number of vertices uploaded.
func (m *Mesh) Vertices() int32 { return m.vertices }

// Indexed reports whether the mesh draws through an index buffer.
func (m *Mesh) Indexed() bool { return m.ebo != 0 }

// Draw binds the vertex array and draws it as triangles.
func (m *Mesh) Draw() {
	m.dev.BindVertexArray(m.vao)
	if m.ebo != 0 {
		m.dev.DrawElements(gfx.Triangles, m.indices, 0)
		return
	}
	m.dev.DrawArrays(gfx.Triangles, 0, m.vertices)
}

// Delete releases the vertex array and its buffers. A nil Mesh is ignored.
func (m *Mesh) Delete() {
	if m == nil {
		return
	}
	if m.vao != 0 {
		m.dev.DeleteVertexArray(m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		m.dev.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		m.dev.DeleteBuffer(m.ebo)
		m.ebo = 0
	}
}
