package grid

import "strings"

// Sprint renders g one row per line, using cell to pick a rune for
// each value.
func Sprint[T any](g Grid[T], cell func(Point, T) rune) string {
	var sb strings.Builder
	b := g.Bounds()
	for y := b.Y; y < b.Bottom(); y++ {
		if y > b.Y {
			sb.WriteByte('\n')
		}
		for x := b.X; x < b.Right(); x++ {
			v, _ := g.At(x, y)
			sb.WriteRune(cell(Point{x, y}, v))
		}
	}
	return sb.String()
}

// SprintMask renders a boolean grid with on for true cells and off
// for false cells.
func SprintMask(g Grid[bool], on, off rune) string {
	return Sprint(g, func(_ Point, v bool) rune {
		if v {
			return on
		}
		return off
	})
}
