package grid

// Rect is an axis-aligned rectangle on the integer grid, stored as an
// origin plus a size. Upper bounds are exclusive: the rectangle covers
// x in [X, X+W) and y in [Y, Y+H). A Rect with a non-positive width or
// height is empty; it has zero area and intersecting it with anything
// yields another empty Rect.
type Rect struct {
	X, Y int
	W, H int
}

// R returns the rectangle with origin (x, y) and size w by h.
func R(x, y, w, h int) Rect { return Rect{x, y, w, h} }

// RectCorners returns the smallest rectangle covering the cells p and
// q, which may be given in any order.
func RectCorners(p, q Point) Rect {
	x1, x2 := min(p.X, q.X), max(p.X, q.X)
	y1, y2 := min(p.Y, q.Y), max(p.Y, q.Y)
	return Rect{x1, y1, x2 - x1 + 1, y2 - y1 + 1}
}

// BoundingRect returns the smallest rectangle containing every point
// in pts, or an empty Rect when pts is empty.
func BoundingRect(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := RectCorners(pts[0], pts[0])
	for _, p := range pts[1:] {
		x1, y1 := min(r.X, p.X), min(r.Y, p.Y)
		x2, y2 := max(r.Right()-1, p.X), max(r.Bottom()-1, p.Y)
		r = Rect{x1, y1, x2 - x1 + 1, y2 - y1 + 1}
	}
	return r
}

// Valid reports whether both dimensions are positive.
func (r Rect) Valid() bool { return r.W > 0 && r.H > 0 }

// Area returns the number of cells covered by r. Empty rectangles have
// zero area.
func (r Rect) Area() int {
	if !r.Valid() {
		return 0
	}
	return r.W * r.H
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Min returns the origin cell.
func (r Rect) Min() Point { return Point{r.X, r.Y} }

// Size returns the dimensions of r as a point.
func (r Rect) Size() Point { return Point{r.W, r.H} }

// Center returns the cell at the middle of r, rounding toward the
// bottom-right for even dimensions.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Corners returns the four corner cells in the order top-left,
// top-right, bottom-left, bottom-right.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.Right() - 1, r.Y},
		{r.X, r.Bottom() - 1},
		{r.Right() - 1, r.Bottom() - 1},
	}
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ContainsPoint reports whether the cell p lies inside r.
func (r Rect) ContainsPoint(p Point) bool { return r.Contains(p.X, p.Y) }

// ContainsRect reports whether o lies entirely inside r. An empty o is
// contained by any rectangle.
func (r Rect) ContainsRect(o Rect) bool {
	if !o.Valid() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersect returns the largest rectangle covered by both r and o, or
// the zero Rect when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1, y1 := max(r.X, o.X), max(r.Y, o.Y)
	x2, y2 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Union returns the smallest rectangle covering both r and o. An empty
// operand does not grow the result.
func (r Rect) Union(o Rect) Rect {
	if !r.Valid() {
		return o
	}
	if !o.Valid() {
		return r
	}
	x1, y1 := min(r.X, o.X), min(r.Y, o.Y)
	x2, y2 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool { return r.Intersect(o).Valid() }

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect { return Rect{r.X + d.X, r.Y + d.Y, r.W, r.H} }

// Clamp returns p moved to the nearest cell inside r. Clamping is an
// explicit opt-in; grid accessors never clamp on their own. R must be
// non-empty.
func (r Rect) Clamp(p Point) Point {
	return Point{
		min(max(p.X, r.X), r.Right()-1),
		min(max(p.Y, r.Y), r.Bottom()-1),
	}
}

// Wrap returns p wrapped toroidally into r. Like Clamp, wrapping only
// happens when a caller asks for it. R must be non-empty.
func (r Rect) Wrap(p Point) Point {
	x := (p.X - r.X) % r.W
	if x < 0 {
		x += r.W
	}
	y := (p.Y - r.Y) % r.H
	if y < 0 {
		y += r.H
	}
	return Point{r.X + x, r.Y + y}
}

// Split bisects r across its longest axis and returns the two halves.
// A single-cell rectangle splits into two copies of itself.
func (r Rect) Split() (Rect, Rect) {
	if r.H > 1 && r.H >= r.W {
		h1 := r.H / 2
		return Rect{r.X, r.Y, r.W, h1}, Rect{r.X, r.Y + h1, r.W, r.H - h1}
	}
	if r.W > 1 {
		w1 := r.W / 2
		return Rect{r.X, r.Y, w1, r.H}, Rect{r.X + w1, r.Y, r.W - w1, r.H}
	}
	return r, r
}

// index flattens an in-bounds coordinate to its row-major slot in
// [0, Area). Callers check Contains first.
func (r Rect) index(x, y int) int { return (x - r.X) + (y-r.Y)*r.W }
