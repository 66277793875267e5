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

package tessellate_test

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tessellate"
	"seehuhn.de/go/tessellate/bezier"
)

func ExampleTessellatePolygon() {
	square := []bezier.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	mesh, err := tessellate.TessellatePolygon(square, tessellate.DefaultOptions())
	if err != nil {
		panic(err)
	}
	fmt.Println(len(mesh.Vertices), "vertices,", mesh.NumTriangles(), "triangles")
	// Output:
	// 4 vertices, 2 triangles
}

func ExampleFillTessellator() {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 0}).
		LineTo(vec.Vec2{X: 2, Y: 3}).
		Close()

	// Store positions and normals in a custom vertex type.
	type vertex struct {
		X, Y   float32
		NX, NY float32
	}
	ctor := tessellate.VertexConstructorFunc[vertex](func(v tessellate.FillVertex) vertex {
		return vertex{v.Position.X, v.Position.Y, v.Normal.X, v.Normal.Y}
	})

	opt := tessellate.DefaultOptions()
	opt.FillRule = tessellate.NonZero
	opt.WithNormals = true

	buf := &tessellate.VertexBuffers[vertex]{}
	tess := tessellate.NewFillTessellator()
	err := tess.TessellatePath(p.Iter(), matrix.Scale(2, 2), opt, tessellate.NewBuffersBuilder(buf, ctor))
	if err != nil {
		panic(err)
	}
	fmt.Println(buf.NumTriangles(), "triangle")
	// Output:
	// 1 triangle
}
