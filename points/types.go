// Package points defines the Points store, the candidate Edge, and sentinel errors.
package points

import (
	"errors"
	"fmt"
)

// MaxAbsCoordinate bounds every coordinate. With |c| ≤ 2²⁹ each axis delta is
// at most 2³⁰, so the sum of three squared deltas stays below 2⁶² < MaxInt64.
const MaxAbsCoordinate = 1 << 29

// Sentinel errors for the coordinate store.
var (
	// ErrMalformed indicates a record that is not exactly three fields.
	ErrMalformed = errors.New("points: malformed record")

	// ErrLengthMismatch indicates coordinate columns of different lengths.
	ErrLengthMismatch = errors.New("points: coordinate columns differ in length")

	// ErrCoordinateRange indicates a coordinate outside ±MaxAbsCoordinate.
	ErrCoordinateRange = errors.New("points: coordinate out of range")
)

// ParseError reports the first record that could not be parsed.
//
// The underlying cause (ErrMalformed, ErrCoordinateRange or a *strconv.NumError)
// is available through errors.Unwrap / errors.Is.
type ParseError struct {
	Line  int    // 1-based line number in the input
	Field int    // 0-based field index, -1 when the whole record is at fault
	Text  string // offending text, trimmed
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field < 0 {
		return fmt.Sprintf("points: line %d: %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("points: line %d field %d: %q: %v", e.Line, e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Edge is a candidate connection between points U and V.
// Dist is the squared Euclidean distance; edges order by Dist alone.
type Edge struct {
	U, V int
	Dist int64
}

// Coord is the position of a single point.
type Coord struct {
	X, Y, Z int64
}

// Points stores n points column-wise. X[i], Y[i], Z[i] belong to point i.
// Treat the columns as read-only once the value is built.
type Points struct {
	X, Y, Z []int64
}
