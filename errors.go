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
	"errors"
	"fmt"
)

var (
	// ErrInvalidTolerance indicates a tolerance which is NaN, infinite, or
	// not positive.
	ErrInvalidTolerance = errors.New("invalid tolerance")

	// ErrEmptyPath indicates that the input contained no path events.
	ErrEmptyPath = errors.New("empty path")

	// ErrNonFinite indicates a coordinate which is NaN or infinite.
	ErrNonFinite = errors.New("non-finite coordinate")

	// ErrMissingBegin indicates a segment or End event outside of a
	// sub-path.
	ErrMissingBegin = errors.New("path event outside of sub-path")

	// ErrMissingEnd indicates a sub-path which is not terminated by an End
	// event.
	ErrMissingEnd = errors.New("sub-path not ended")

	// ErrDiscontinuous indicates a segment which does not start where the
	// previous one ended.
	ErrDiscontinuous = errors.New("discontinuous path")

	// ErrInternal indicates that the sweep reached an inconsistent state
	// which could not be repaired.
	ErrInternal = errors.New("internal tessellation error")

	// ErrTooManyVertices is returned by [BuffersBuilder] when the vertex
	// limit is reached.
	ErrTooManyVertices = errors.New("too many vertices")
)

// sweepError describes an inconsistency detected during the sweep.
// It is only visible to callers wrapped in [ErrInternal].
type sweepError struct {
	kind  sweepErrorKind
	order int // which ordering check failed
}

type sweepErrorKind uint8

const (
	errEdgeOrder sweepErrorKind = iota
	errMergeVertexOutside
	errTooFewSpans
)

func (e *sweepError) Error() string {
	switch e.kind {
	case errMergeVertexOutside:
		return "merge vertex outside of the shape"
	case errTooFewSpans:
		return "insufficient number of spans"
	default:
		return fmt.Sprintf("incorrect active edge order (check %d)", e.order)
	}
}
