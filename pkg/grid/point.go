package grid

// Point is an integer coordinate on a 2D grid.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{x, y} }

// Dim returns the coordinate along axis i, where 0 selects X and any
// other value selects Y.
func (p Point) Dim(i int) int {
	if i == 0 {
		return p.X
	}
	return p.Y
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by the negation of q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Neighborhood4 lists the offsets of the 4-connected neighborhood in
// clockwise order starting from north.
var Neighborhood4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Neighborhood8 lists the offsets of the 8-connected neighborhood in
// clockwise order starting from north.
var Neighborhood8 = [8]Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
