package gamemath

import "math"

// Point is a 2D screen position.
type Point struct {
	X, Y float64
}

// SkiBacks returns the back ends of the left and right skis for a skier at
// (x, y). Skis rotate by the negated angle so they point along the direction
// of travel.
func SkiBacks(x, y, angle, bodyHeight, skiHeight, skiSpacing float64) (left, right Point) {
	skiY := y + bodyHeight/2
	rot := -angle
	off := skiHeight / 2
	dx := math.Sin(rot) * off
	dy := math.Cos(rot) * off

	left = Point{X: x - skiSpacing/2 + dx, Y: skiY - dy}
	right = Point{X: x + skiSpacing/2 + dx, Y: skiY - dy}
	return left, right
}

// CirclesOverlap reports whether the two circles are closer than the sum of
// their radii. Touching circles do not overlap.
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	return math.Hypot(ax-bx, ay-by) < ar+br
}

// WrapTiles re-stacks two vertically scrolling tiles of height h so that
// neither sits at or below -h. It loops, so any scroll amount is handled in
// one call. Offsets are rounded to whole pixels before wrapping.
func WrapTiles(a, b, h float64) (float64, float64) {
	if h <= 0 {
		return a, b
	}
	a, b = math.Round(a), math.Round(b)
	for a <= -h || b <= -h {
		if a <= b {
			a = b + h
		} else {
			b = a + h
		}
	}
	return a, b
}
