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
	"image"
	"image/color"
	"iter"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/tessellate/bezier"
	"seehuhn.de/go/tessellate/testcases"
)

// BenchmarkTessellateO benchmarks the fill tessellator on an "O" shape.
func BenchmarkTessellateO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			tess := NewFillTessellator()
			buf := &VertexBuffers[bezier.Point]{}
			out := NewBuffersBuilder(buf, Positions)

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30
			events := makeOEvents(center, center, outerR, innerR)

			opt := DefaultOptions()
			opt.FillRule = EvenOdd

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				buf.Reset()
				if err := tess.Tessellate(events, opt, out); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkVectorO rasterizes the same shape with x/image/vector, as a
// point of comparison for the CPU cost of drawing the shape directly.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkTessellateAll measures steady-state performance by reusing a
// single tessellator across all test cases.
func BenchmarkTessellateAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	tess := NewFillTessellator()
	buf := &VertexBuffers[bezier.Point]{}
	out := NewBuffersBuilder(buf, Positions)

	b.ResetTimer()
	for b.Loop() {
		for _, tc := range cases {
			opt := DefaultOptions()
			opt.FillRule = toFillRule(tc.Rule)
			buf.Reset()
			if err := tess.TessellatePath(tc.Path.Iter(), tc.CTM, opt, out); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// makeOEvents returns the path events of an "O" shape: the outer circle is
// counter-clockwise, the inner circle is clockwise.
func makeOEvents(cx, cy, outerR, innerR float32) iter.Seq[PathEvent] {
	return func(yield func(PathEvent) bool) {
		_ = addCircleEvents(yield, cx, cy, outerR, false) &&
			addCircleEvents(yield, cx, cy, innerR, true)
	}
}

// addCircleEvents emits a circle made of four cubic Bézier curves.
func addCircleEvents(yield func(PathEvent) bool, cx, cy, r float32, clockwise bool) bool {
	const k = float32(0.5522847498)
	kr := k * r

	sy := float32(1)
	if clockwise {
		sy = -1
	}
	pt := func(dx, dy float32) bezier.Point {
		return bezier.Point{X: cx + dx, Y: cy + sy*dy}
	}

	top := pt(0, -r)
	right := pt(r, 0)
	bottom := pt(0, r)
	left := pt(-r, 0)
	return yield(Begin(top)) &&
		yield(Cubic(top, pt(kr, -r), pt(r, -kr), right)) &&
		yield(Cubic(right, pt(r, kr), pt(kr, r), bottom)) &&
		yield(Cubic(bottom, pt(-kr, r), pt(-r, kr), left)) &&
		yield(Cubic(left, pt(-r, -kr), pt(-kr, -r), top)) &&
		yield(End(top, top, true))
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
