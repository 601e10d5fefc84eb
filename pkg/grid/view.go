package grid

import "iter"

// View exposes a sub-rectangle of another grid through the Grid
// interface. It owns no storage: reads and writes forward straight to
// the source at the same absolute coordinates. Views may be nested.
//
// A view borrows its source. The caller must guarantee the source
// outlives every view onto it; nothing enforces that at runtime.
type View[T any] struct {
	src  Grid[T]
	rect Rect
}

var _ Grid[int] = (*View[int])(nil)

// NewView returns a view of src clipped to r. The stored bounds are
// the intersection of r with the source's bounds, so a view never
// claims area absent from its source.
func NewView[T any](src Grid[T], r Rect) *View[T] {
	return &View[T]{src: src, rect: r.Intersect(src.Bounds())}
}

// Bounds returns the clipped window.
func (v *View[T]) Bounds() Rect { return v.rect }

// Contains reports whether (x, y) lies within the window.
func (v *View[T]) Contains(x, y int) bool { return v.rect.Contains(x, y) }

// Index returns the row-major slot for (x, y) relative to the window,
// not to the source.
func (v *View[T]) Index(x, y int) (int, error) {
	if !v.rect.Contains(x, y) {
		return 0, &BoundsError{x, y, v.rect}
	}
	return v.rect.index(x, y), nil
}

// At reads through to the source. Coordinates outside the window are
// out of bounds even when the source itself covers them.
func (v *View[T]) At(x, y int) (T, error) {
	if !v.rect.Contains(x, y) {
		var zero T
		return zero, &BoundsError{x, y, v.rect}
	}
	return v.src.At(x, y)
}

// Set writes through to the source, subject to the same window check
// as At.
func (v *View[T]) Set(x, y int, val T) error {
	if !v.rect.Contains(x, y) {
		return &BoundsError{x, y, v.rect}
	}
	return v.src.Set(x, y, val)
}

// Fill sets every cell inside the window to val. Source cells outside
// the window are untouched.
func (v *View[T]) Fill(val T) {
	for y := v.rect.Y; y < v.rect.Bottom(); y++ {
		for x := v.rect.X; x < v.rect.Right(); x++ {
			v.src.Set(x, y, val)
		}
	}
}

// FillWith sets every windowed cell to the result of one gen call per
// cell in row-major order.
func (v *View[T]) FillWith(gen func() T) {
	for y := v.rect.Y; y < v.rect.Bottom(); y++ {
		for x := v.rect.X; x < v.rect.Right(); x++ {
			v.src.Set(x, y, gen())
		}
	}
}

// All iterates the windowed coordinate/value pairs in row-major order.
func (v *View[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for y := v.rect.Y; y < v.rect.Bottom(); y++ {
			for x := v.rect.X; x < v.rect.Right(); x++ {
				val, _ := v.src.At(x, y)
				if !yield(Point{x, y}, val) {
					return
				}
			}
		}
	}
}

// Source returns the grid the view forwards to.
func (v *View[T]) Source() Grid[T] { return v.src }

// Resize clips r against the source's current bounds and adopts the
// result as the new window. A view over a source that has shrunk
// since construction therefore tracks the live bounds, never the ones
// it was built against.
func (v *View[T]) Resize(r Rect) {
	v.rect = r.Intersect(v.src.Bounds())
}
