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
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tessellate/bezier"
)

func TestFromPath(t *testing.T) {
	p0 := bezier.Point{X: 0, Y: 0}
	p1 := bezier.Point{X: 1, Y: 0}
	p2 := bezier.Point{X: 1, Y: 1}
	p3 := bezier.Point{X: 2, Y: 2}
	p4 := bezier.Point{X: 3, Y: 2}

	cases := []struct {
		name string
		path *path.Data
		want []PathEvent
	}{
		{
			name: "closed",
			path: (&path.Data{}).MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 1, Y: 0}).LineTo(vec.Vec2{X: 1, Y: 1}).Close(),
			want: []PathEvent{Begin(p0), Line(p0, p1), Line(p1, p2), End(p2, p0, true)},
		},
		{
			name: "open",
			path: (&path.Data{}).MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 1, Y: 0}),
			want: []PathEvent{Begin(p0), Line(p0, p1), End(p1, p0, false)},
		},
		{
			name: "two_subpaths",
			path: (&path.Data{}).
				MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 1, Y: 0}).
				MoveTo(vec.Vec2{X: 2, Y: 2}).LineTo(vec.Vec2{X: 3, Y: 2}).Close(),
			want: []PathEvent{
				Begin(p0), Line(p0, p1), End(p1, p0, false),
				Begin(p3), Line(p3, p4), End(p4, p3, true),
			},
		},
		{
			name: "after_close",
			path: (&path.Data{}).
				MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 1, Y: 0}).Close().
				LineTo(vec.Vec2{X: 1, Y: 1}),
			want: []PathEvent{
				Begin(p0), Line(p0, p1), End(p1, p0, true),
				Begin(p0), Line(p0, p2), End(p2, p0, false),
			},
		},
		{
			name: "curves",
			path: (&path.Data{}).
				MoveTo(vec.Vec2{X: 0, Y: 0}).
				QuadTo(vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1}).
				CubeTo(vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 3, Y: 2}, vec.Vec2{X: 0, Y: 0}),
			want: []PathEvent{
				Begin(p0), Quadratic(p0, p1, p2), Cubic(p2, p3, p4, p0), End(p0, p0, false),
			},
		},
		{
			name: "double_close",
			path: (&path.Data{}).MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 1, Y: 0}).Close().Close(),
			want: []PathEvent{Begin(p0), Line(p0, p1), End(p1, p0, true)},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := slices.Collect(FromPath(c.path.Iter(), matrix.Matrix{}))
			if !slices.Equal(got, c.want) {
				t.Errorf("got %v\nwant %v", got, c.want)
			}
		})
	}
}

func TestFromPathTransform(t *testing.T) {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 2}).LineTo(vec.Vec2{X: 3, Y: 4})
	m := matrix.Scale(2, 3).Translate(10, 20)

	got := slices.Collect(FromPath(p.Iter(), m))
	a := bezier.Point{X: 12, Y: 26}
	b := bezier.Point{X: 16, Y: 32}
	want := []PathEvent{Begin(a), Line(a, b), End(b, a, false)}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromPathEarlyStop(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 1, Y: 0}).LineTo(vec.Vec2{X: 1, Y: 1}).Close()
	n := 0
	for range FromPath(p.Iter(), matrix.Identity) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("got %d events", n)
	}
}

func TestPolygonEvents(t *testing.T) {
	a := bezier.Point{X: 0, Y: 0}
	b := bezier.Point{X: 1, Y: 0}
	c := bezier.Point{X: 0, Y: 1}
	got := slices.Collect(PolygonEvents([]bezier.Point{a, b, c}, true))
	want := []PathEvent{Begin(a), Line(a, b), Line(b, c), End(c, a, true)}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if n := len(slices.Collect(PolygonEvents(nil, true))); n != 0 {
		t.Errorf("empty polygon gives %d events", n)
	}
}

func TestEventEndpoints(t *testing.T) {
	a := bezier.Point{X: 1, Y: 2}
	b := bezier.Point{X: 3, Y: 4}
	c := bezier.Point{X: 5, Y: 6}
	d := bezier.Point{X: 7, Y: 8}

	cases := []struct {
		e        PathEvent
		from, to bezier.Point
	}{
		{Begin(a), a, a},
		{Line(a, b), a, b},
		{Quadratic(a, b, c), a, c},
		{Cubic(a, b, c, d), a, d},
		{End(d, a, true), d, a},
	}
	for _, tc := range cases {
		if tc.e.From() != tc.from || tc.e.To() != tc.to {
			t.Errorf("%s: got %v -> %v, want %v -> %v", tc.e.Kind, tc.e.From(), tc.e.To(), tc.from, tc.to)
		}
	}
}
