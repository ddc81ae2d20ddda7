package board

// directions enumerates the 8 unit step vectors used both by capture
// detection (spec.md §4.2) and by the candidate generator's 8-neighbourhood
// proximity rule (spec.md §4.5).
var directions = [8]Point{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Neighbours returns the on-board points at the given distance from (x, y)
// along all 8 directions.
func Neighbours(x, y, distance int) []Point {
	out := make([]Point, 0, 8)
	for _, d := range directions {
		nx, ny := x+d.X*distance, y+d.Y*distance
		if OnBoard(nx, ny) {
			out = append(out, Point{nx, ny})
		}
	}
	return out
}

// CenterSeed returns the fixed seed set around the board center used to
// give the opener plausible first moves (spec.md §4.5): for odd Size, the
// center cell plus its 8 neighbours.
func CenterSeed() []Point {
	mid := Size / 2
	out := make([]Point, 0, 9)
	out = append(out, Point{mid, mid})
	if Size%2 == 0 {
		for _, i := range []int{1, 3, 5} {
			d := directions[i]
			out = append(out, Point{mid + d.X, mid + d.Y})
		}
		return out
	}
	for _, d := range directions {
		out = append(out, Point{mid + d.X, mid + d.Y})
	}
	return out
}
