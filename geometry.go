// seehuhn.de/go/tessellate - path tessellation for GPU rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tessellate

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/tessellate/bezier"
)

// VertexID identifies a vertex in the output of a tessellation. The
// values are chosen by the [FillGeometryBuilder].
type VertexID uint32

// InvalidVertexID is never returned for a valid vertex.
const InvalidVertexID VertexID = math.MaxUint32

// FillVertex describes a vertex created by the fill tessellator.
type FillVertex struct {
	// Position is the location of the vertex, in the coordinate system of
	// the input path.
	Position bezier.Point

	// Normal is set if Options.WithNormals was used and the vertex lies on
	// the original path. Vertices created at intersections have no normal.
	// If the path visits the same position more than once, the normal
	// belongs to the last visit.
	Normal bezier.Vector

	// HasNormal reports whether Normal is valid.
	HasNormal bool
}

// Count gives the number of vertices and indices added by a tessellation.
type Count struct {
	Vertices uint32
	Indices  uint32
}

// GeometryBuilder receives the triangles produced by a tessellator.
//
// The tessellator calls BeginGeometry before any other method. If the
// tessellation succeeds, EndGeometry is called at the end. Otherwise
// AbortGeometry is called, and the builder should discard everything added
// since BeginGeometry.
type GeometryBuilder interface {
	BeginGeometry()
	EndGeometry() Count
	AbortGeometry()

	// AddTriangle adds a triangle. The vertices are given in a consistent
	// orientation: (b-a)×(c-b) <= 0 for every triangle.
	AddTriangle(a, b, c VertexID)
}

// FillGeometryBuilder is a [GeometryBuilder] which can create vertices for
// the fill tessellator.
type FillGeometryBuilder interface {
	GeometryBuilder

	// AddFillVertex creates a new vertex and returns its ID. A non-nil
	// error aborts the tessellation.
	AddFillVertex(v FillVertex) (VertexID, error)
}

// VertexBuffers holds a triangle mesh, given by a vertex list and a list of
// vertex indices. Every group of three indices forms one triangle.
type VertexBuffers[V any] struct {
	Vertices []V
	Indices  []uint32
}

// Reset removes all vertices and indices, keeping the allocated memory.
func (b *VertexBuffers[V]) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
}

// NumTriangles returns the number of triangles in the mesh.
func (b *VertexBuffers[V]) NumTriangles() int {
	return len(b.Indices) / 3
}

// Triangle returns the vertices of triangle i.
func (b *VertexBuffers[V]) Triangle(i int) (V, V, V) {
	idx := b.Indices[3*i : 3*i+3]
	return b.Vertices[idx[0]], b.Vertices[idx[1]], b.Vertices[idx[2]]
}

// Bounds returns the smallest rectangle which contains the positions of
// all vertices. The function pos extracts the position of a vertex.
// The zero rectangle is returned if there are no vertices.
func (b *VertexBuffers[V]) Bounds(pos func(V) bezier.Point) rect.Rect {
	if len(b.Vertices) == 0 {
		return rect.Rect{}
	}
	p := pos(b.Vertices[0])
	r := rect.Rect{
		LLx: float64(p.X), LLy: float64(p.Y),
		URx: float64(p.X), URy: float64(p.Y),
	}
	for _, v := range b.Vertices[1:] {
		p := pos(v)
		r.LLx = min(r.LLx, float64(p.X))
		r.LLy = min(r.LLy, float64(p.Y))
		r.URx = max(r.URx, float64(p.X))
		r.URy = max(r.URy, float64(p.Y))
	}
	return r
}

// VertexConstructor converts tessellator vertices into the vertex type
// stored in a [VertexBuffers].
type VertexConstructor[V any] interface {
	NewVertex(v FillVertex) V
}

// VertexConstructorFunc adapts a function to the [VertexConstructor]
// interface.
type VertexConstructorFunc[V any] func(v FillVertex) V

// NewVertex calls f(v).
func (f VertexConstructorFunc[V]) NewVertex(v FillVertex) V {
	return f(v)
}

// Positions is a [VertexConstructor] which keeps only the vertex position.
var Positions VertexConstructor[bezier.Point] = VertexConstructorFunc[bezier.Point](
	func(v FillVertex) bezier.Point { return v.Position })

// BuffersBuilder is a [FillGeometryBuilder] which appends to a
// [VertexBuffers]. Vertex IDs are indices into Buffers.Vertices.
//
// If a tessellation is aborted, the buffers are truncated to their state
// before the tessellation started.
type BuffersBuilder[V any] struct {
	Buffers     *VertexBuffers[V]
	Constructor VertexConstructor[V]

	// MaxVertices limits the total number of vertices in Buffers.
	// Zero means that only the range of VertexID limits the number.
	MaxVertices int

	firstVertex int
	firstIndex  int
}

// NewBuffersBuilder returns a builder which appends to buf, using ctor to
// create vertices.
func NewBuffersBuilder[V any](buf *VertexBuffers[V], ctor VertexConstructor[V]) *BuffersBuilder[V] {
	return &BuffersBuilder[V]{Buffers: buf, Constructor: ctor}
}

// BeginGeometry implements the [GeometryBuilder] interface.
func (b *BuffersBuilder[V]) BeginGeometry() {
	b.firstVertex = len(b.Buffers.Vertices)
	b.firstIndex = len(b.Buffers.Indices)
}

// EndGeometry implements the [GeometryBuilder] interface.
func (b *BuffersBuilder[V]) EndGeometry() Count {
	return Count{
		Vertices: uint32(len(b.Buffers.Vertices) - b.firstVertex),
		Indices:  uint32(len(b.Buffers.Indices) - b.firstIndex),
	}
}

// AbortGeometry implements the [GeometryBuilder] interface.
func (b *BuffersBuilder[V]) AbortGeometry() {
	b.Buffers.Vertices = b.Buffers.Vertices[:b.firstVertex]
	b.Buffers.Indices = b.Buffers.Indices[:b.firstIndex]
}

// AddTriangle implements the [GeometryBuilder] interface.
func (b *BuffersBuilder[V]) AddTriangle(v0, v1, v2 VertexID) {
	b.Buffers.Indices = append(b.Buffers.Indices, uint32(v0), uint32(v1), uint32(v2))
}

// AddFillVertex implements the [FillGeometryBuilder] interface.
func (b *BuffersBuilder[V]) AddFillVertex(v FillVertex) (VertexID, error) {
	n := len(b.Buffers.Vertices)
	if b.MaxVertices > 0 && n >= b.MaxVertices || uint64(n) >= uint64(InvalidVertexID) {
		return InvalidVertexID, fmt.Errorf("%w (limit %d)", ErrTooManyVertices, max(b.MaxVertices, n))
	}
	b.Buffers.Vertices = append(b.Buffers.Vertices, b.Constructor.NewVertex(v))
	return VertexID(n), nil
}
