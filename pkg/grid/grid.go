// Package grid provides bounded 2D containers addressed by integer
// coordinate: a dense generic grid, a packed boolean mask, and
// non-owning windowed views, all satisfying one interface and shared
// by a common set of algebra functions.
//
// Every container owns its backing storage exclusively. No grid is
// safe for concurrent use from multiple goroutines without external
// synchronization; that obligation rests with the caller.
package grid

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var (
	// ErrOutOfBounds reports a coordinate outside a grid's bounds.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrNotImplemented reports an operation a container does not
	// support, such as resizing a Bits grid.
	ErrNotImplemented = errors.New("grid: operation not implemented")

	// ErrTooLarge reports a rectangle whose cell count is not
	// representable, so backing storage cannot be allocated.
	ErrTooLarge = errors.New("grid: rectangle area too large")
)

// BoundsError is the error returned by accessors when a coordinate
// falls outside a grid's bounds. It unwraps to ErrOutOfBounds.
type BoundsError struct {
	X, Y   int
	Bounds Rect
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("grid: point (%d,%d) outside bounds %+v", e.X, e.Y, e.Bounds)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// Grid is the contract every grid-like container satisfies. Dense,
// Bits, and View implement it independently; the algebra functions in
// this package operate on any of them interchangeably.
//
// Coordinates are absolute: a grid whose bounds start at (8, 8) is
// addressed at (8, 8), not (0, 0). Accessing a coordinate outside
// Bounds is an error, never a silent clamp or wrap; Rect.Clamp and
// Rect.Wrap exist for callers that want those behaviors explicitly.
type Grid[T any] interface {
	// Bounds returns the addressable region.
	Bounds() Rect

	// Contains reports whether (x, y) lies within Bounds.
	Contains(x, y int) bool

	// Index returns the row-major storage slot for (x, y), computed
	// as (x-minX) + (y-minY)*width. For every in-bounds coordinate
	// the slot is unique and in [0, Area). Out-of-bounds coordinates
	// return a BoundsError.
	Index(x, y int) (int, error)

	// At returns the value stored at (x, y).
	At(x, y int) (T, error)

	// Set stores v at (x, y).
	Set(x, y int, v T) error

	// Fill sets every in-bounds cell to v.
	Fill(v T)

	// FillWith sets every cell to the result of one gen call per
	// cell, in row-major order (y outer, x inner), so seeded
	// generators reproduce the same layout every time.
	FillWith(gen func() T)

	// All returns a lazy, restartable iterator over coordinate/value
	// pairs in row-major order across the full bounds.
	All() iter.Seq2[Point, T]
}

// Backward returns a reverse row-major iterator over g, the mirror of
// All. Like All it is lazy and restartable.
func Backward[T any](g Grid[T]) iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		b := g.Bounds()
		for y := b.Bottom() - 1; y >= b.Y; y-- {
			for x := b.Right() - 1; x >= b.X; x-- {
				v, _ := g.At(x, y)
				if !yield(Point{x, y}, v) {
					return
				}
			}
		}
	}
}

// checkArea validates that the cell count of r fits in an int slice
// length before any storage is allocated for it.
func checkArea(r Rect) (int, error) {
	if !r.Valid() {
		return 0, nil
	}
	if r.W > math.MaxInt/r.H {
		return 0, ErrTooLarge
	}
	return r.W * r.H, nil
}
