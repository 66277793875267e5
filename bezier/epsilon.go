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

package bezier

import (
	"github.com/chewxy/math32"
)

// Numerical tolerances. These are tuned empirically and are validated by the
// package tests rather than derived from first principles.
const (
	// RelativeEpsilon bounds the relative rounding error of products of
	// coordinate differences, such as the cross products used to locate
	// inflection points. A value x is treated as zero when |x| is below
	// RelativeEpsilon times the magnitude of the operands that produced it.
	RelativeEpsilon = 1e-5

	// PositionEpsilon is the relative distance below which two coordinates
	// are considered equal, about four units in the last place of a float32.
	PositionEpsilon = 5e-7
)

// NearlyZero reports whether x is zero up to rounding error, where scale is
// the magnitude of the operands x was computed from.
func NearlyZero(x, scale float32) bool {
	return math32.Abs(x) <= RelativeEpsilon*math32.Abs(scale)
}

// NearlyEqual reports whether a and b agree up to a few units in the last
// place, relative to their magnitude.
func NearlyEqual(a, b float32) bool {
	if a == b {
		return true
	}
	scale := max(math32.Abs(a), math32.Abs(b))
	return math32.Abs(a-b) <= PositionEpsilon*scale
}

// NearlyEqualPoints reports whether both coordinates of p and q are nearly
// equal.
func NearlyEqualPoints(p, q Point) bool {
	return NearlyEqual(p.X, q.X) && NearlyEqual(p.Y, q.Y)
}
