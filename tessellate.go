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

// Package tessellate converts vector paths into triangle meshes suitable for
// rendering on a GPU.
//
// The central type is [FillTessellator]. It takes a stream of [PathEvent]
// values, flattens curves with the routines from the bezier sub-package, and
// runs a sweep line over the resulting edges. The sweep decomposes the
// filled area into y-monotone regions, which are triangulated as the sweep
// progresses. Self-intersecting paths and both the even-odd and the non-zero
// winding rule are supported.
//
// Output is delivered to a [FillGeometryBuilder]. [BuffersBuilder] is a
// ready-made implementation which appends vertices and indices to a
// [VertexBuffers] value.
//
// Paths from the seehuhn.de/go/geom/path package can be converted with
// [FromPath], or tessellated directly with [TessellatePath].
//
// Coordinates are single precision. Differences between coordinates must
// be finite, which holds whenever all coordinates are below 1e38 in
// magnitude. Orientation tests and intersections are computed in double
// precision. Vertex normals are only meaningful well below that limit.
package tessellate

import (
	"fmt"

	"github.com/chewxy/math32"

	"seehuhn.de/go/tessellate/bezier"
)

// Default values for the tessellator options.
const (
	// DefaultTolerance is the maximum distance between a curve and its
	// flattened approximation.
	DefaultTolerance float32 = bezier.DefaultTolerance

	// DefaultFillRule is the winding rule used by [DefaultOptions].
	DefaultFillRule = EvenOdd
)

// FillRule determines which points are inside a path.
type FillRule uint8

const (
	// EvenOdd fills points where the winding number is odd.
	EvenOdd FillRule = iota

	// NonZero fills points where the winding number is not zero.
	NonZero
)

func (r FillRule) isIn(winding int16) bool {
	if r == NonZero {
		return winding != 0
	}
	return winding&1 != 0
}

func (r FillRule) String() string {
	switch r {
	case EvenOdd:
		return "EvenOdd"
	case NonZero:
		return "NonZero"
	default:
		return fmt.Sprintf("FillRule(%d)", uint8(r))
	}
}

// Orientation is the direction in which the sweep line moves.
type Orientation uint8

const (
	// Vertical sweeps from top to bottom, in the order of increasing y.
	Vertical Orientation = iota

	// Horizontal sweeps from left to right. The input is rotated by 90
	// degrees before the sweep and all output positions are rotated back.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Options controls a tessellation.
//
// The zero value is not usable, since the tolerance must be positive.
// Use [DefaultOptions] to obtain a valid starting point.
type Options struct {
	// Tolerance is the maximum distance between a curve and the line
	// segments used to approximate it. Must be positive and finite.
	Tolerance float32

	// FillRule selects the winding rule.
	FillRule FillRule

	// AssumeNoIntersections skips the detection of edge intersections.
	// This is faster, but self-intersecting input then produces undefined
	// (though memory safe) output.
	AssumeNoIntersections bool

	// WithNormals makes the tessellator compute a normal for each vertex
	// which lies on the original path. Moving a vertex by w times its
	// normal offsets both adjacent edges by w.
	WithNormals bool

	// SweepOrientation selects the direction of the sweep line.
	SweepOrientation Orientation
}

// DefaultOptions returns the default tessellation options.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		FillRule:  DefaultFillRule,
	}
}

func (o *Options) validate() error {
	if math32.IsNaN(o.Tolerance) || math32.IsInf(o.Tolerance, 0) || o.Tolerance <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidTolerance, o.Tolerance)
	}
	if o.FillRule > NonZero {
		return fmt.Errorf("invalid fill rule %d", o.FillRule)
	}
	if o.SweepOrientation > Horizontal {
		return fmt.Errorf("invalid sweep orientation %d", o.SweepOrientation)
	}
	return nil
}
