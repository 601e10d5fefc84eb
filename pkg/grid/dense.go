package grid

import "iter"

// Dense stores one value per cell in a single contiguous slice that
// the grid owns exclusively. The zero value is an empty, invalid grid
// with no storage.
type Dense[T any] struct {
	rect Rect
	data []T
}

var _ Grid[int] = (*Dense[int])(nil)

// NewDense allocates a w-by-h grid with its origin at (0, 0) and
// zero-valued cells.
func NewDense[T any](w, h int) *Dense[T] { return NewDenseRect[T](R(0, 0, w, h)) }

// NewDenseRect allocates a grid covering r with zero-valued cells.
// An empty or unrepresentably large r yields an invalid grid with no
// storage.
func NewDenseRect[T any](r Rect) *Dense[T] {
	area, err := checkArea(r)
	if err != nil || area == 0 {
		return &Dense[T]{}
	}
	return &Dense[T]{rect: r, data: make([]T, area)}
}

// NewDenseFilled allocates a grid covering r with every cell set to v.
func NewDenseFilled[T any](r Rect, v T) *Dense[T] {
	g := NewDenseRect[T](r)
	g.Fill(v)
	return g
}

// Bounds returns the addressable region.
func (g *Dense[T]) Bounds() Rect { return g.rect }

// Contains reports whether (x, y) lies within the grid.
func (g *Dense[T]) Contains(x, y int) bool { return g.rect.Contains(x, y) }

// Index returns the row-major storage slot for (x, y).
func (g *Dense[T]) Index(x, y int) (int, error) {
	if !g.rect.Contains(x, y) {
		return 0, &BoundsError{x, y, g.rect}
	}
	return g.rect.index(x, y), nil
}

// At returns the value stored at (x, y).
func (g *Dense[T]) At(x, y int) (T, error) {
	i, err := g.Index(x, y)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.data[i], nil
}

// Set stores v at (x, y).
func (g *Dense[T]) Set(x, y int, v T) error {
	i, err := g.Index(x, y)
	if err != nil {
		return err
	}
	g.data[i] = v
	return nil
}

// Fill sets every cell to v.
func (g *Dense[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// FillWith sets every cell to the result of one gen call per cell in
// row-major order.
func (g *Dense[T]) FillWith(gen func() T) {
	for i := range g.data {
		g.data[i] = gen()
	}
}

// All iterates coordinate/value pairs in row-major order.
func (g *Dense[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.data {
			p := Point{g.rect.X + i%g.rect.W, g.rect.Y + i/g.rect.W}
			if !yield(p, v) {
				return
			}
		}
	}
}

// Valid reports whether backing storage is allocated. Only the zero
// value and grids built from empty rectangles are invalid.
func (g *Dense[T]) Valid() bool { return g.data != nil }

// Cells exposes the backing slice in row-major order. Mutating it
// writes through to the grid; collaborators that only need the Grid
// contract should not touch it.
func (g *Dense[T]) Cells() []T { return g.data }

// Clone returns an independent deep copy. The clone shares no storage
// with g.
func (g *Dense[T]) Clone() *Dense[T] {
	if g.data == nil {
		return &Dense[T]{}
	}
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Dense[T]{rect: g.rect, data: data}
}

// Resize rebuilds the grid over r. Cells present in both the old and
// new rectangle keep their values; everything else is set to fill.
// The swap is atomic from the caller's perspective: on error the grid
// is left exactly as it was.
func (g *Dense[T]) Resize(r Rect, fill T) error {
	area, err := checkArea(r)
	if err != nil {
		return err
	}
	if area == 0 {
		g.rect, g.data = Rect{}, make([]T, 0)
		return nil
	}
	data := make([]T, area)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			i := r.index(x, y)
			if g.rect.Contains(x, y) {
				data[i] = g.data[g.rect.index(x, y)]
			} else {
				data[i] = fill
			}
		}
	}
	g.rect, g.data = r, data
	return nil
}
