package grid

import "math/rand/v2"

// Copy materializes src into an owned dense grid with identical
// bounds and contents.
func Copy[T any](src Grid[T]) *Dense[T] {
	out := NewDenseRect[T](src.Bounds())
	for p, v := range src.All() {
		out.Set(p.X, p.Y, v)
	}
	return out
}

// Equal reports whether a and b match over the intersection of their
// bounds. Grids with disjoint bounds compare vacuously equal; callers
// that need full equality compare bounds first.
func Equal[T comparable](a, b Grid[T]) bool {
	r := a.Bounds().Intersect(b.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			av, _ := a.At(x, y)
			bv, _ := b.At(x, y)
			if av != bv {
				return false
			}
		}
	}
	return true
}

// Transfer copies values from src into dst over the intersection of
// their bounds. Cells of dst outside the intersection keep their
// values.
func Transfer[T any](dst, src Grid[T]) {
	r := dst.Bounds().Intersect(src.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			v, _ := src.At(x, y)
			dst.Set(x, y, v)
		}
	}
}

// FillRect sets every cell of g inside r to v. The write region is
// the intersection of r with g's bounds.
func FillRect[T any](g Grid[T], r Rect, v T) {
	rr := g.Bounds().Intersect(r)
	for y := rr.Y; y < rr.Bottom(); y++ {
		for x := rr.X; x < rr.Right(); x++ {
			g.Set(x, y, v)
		}
	}
}

// FillMasked sets g to v at every cell of the intersection of g and
// mask where the mask is true.
func FillMasked[T any](g Grid[T], v T, mask Grid[bool]) {
	r := g.Bounds().Intersect(mask.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if m, _ := mask.At(x, y); m {
				g.Set(x, y, v)
			}
		}
	}
}

// Select returns a mask with the same bounds as src that is true at
// every cell equal to probe.
func Select[T comparable](src Grid[T], probe T) *Bits {
	out := NewBitsRect(src.Bounds())
	for p, v := range src.All() {
		if v == probe {
			out.Set(p.X, p.Y, true)
		}
	}
	return out
}

// FloodFill marks result true at start and across every connected
// cell of region holding the same value as start. Traversal is
// bounded by the intersection of region and result bounds and stops
// at already-marked cells and non-matching values. Diagonal selects
// 8-connectivity instead of 4. The frontier lives on an explicit
// stack, so large regions never grow the call stack.
func FloodFill[T comparable](start Point, region Grid[T], result Grid[bool], diagonal bool) error {
	area := region.Bounds().Intersect(result.Bounds())
	if !area.ContainsPoint(start) {
		return &BoundsError{start.X, start.Y, area}
	}
	target, _ := region.At(start.X, start.Y)
	offsets := Neighborhood4[:]
	if diagonal {
		offsets = Neighborhood8[:]
	}
	result.Set(start.X, start.Y, true)
	stack := []Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range offsets {
			n := p.Add(d)
			if !area.ContainsPoint(n) {
				continue
			}
			if marked, _ := result.At(n.X, n.Y); marked {
				continue
			}
			if v, _ := region.At(n.X, n.Y); v != target {
				continue
			}
			result.Set(n.X, n.Y, true)
			stack = append(stack, n)
		}
	}
	return nil
}

// AutomataStep advances mask by one simultaneous-update automaton
// generation: every cell's 8-neighborhood is counted against the
// pre-step state, then each cell becomes true iff its count reached
// birth. Out-of-bounds neighbor positions wrap to the opposite edge
// when wrap is true and clamp to the nearest edge otherwise.
func AutomataStep(mask Grid[bool], birth int, wrap bool) {
	b := mask.Bounds()
	if !b.Valid() {
		return
	}
	counts := NewDenseRect[int](b)
	for p := range mask.All() {
		n := 0
		for _, d := range Neighborhood8 {
			q := p.Add(d)
			if wrap {
				q = b.Wrap(q)
			} else {
				q = b.Clamp(q)
			}
			if v, _ := mask.At(q.X, q.Y); v {
				n++
			}
		}
		counts.Set(p.X, p.Y, n)
	}
	for p, n := range counts.All() {
		mask.Set(p.X, p.Y, n >= birth)
	}
}

// Scatter visits every cell of g once in row-major order and writes v
// with probability density, using the caller's seeded source so runs
// are reproducible.
func Scatter[T any](g Grid[T], v T, density float64, rng *rand.Rand) {
	for p := range g.All() {
		if rng.Float64() < density {
			g.Set(p.X, p.Y, v)
		}
	}
}
