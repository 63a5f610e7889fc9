package outline

// Line represents a line segment.
//
// A line whose start and end coincide is degenerate; it has no direction
// and therefore no normal, and must not be offset. [PrepareLine] is the
// place where such lines are filtered out.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// IsDegenerate reports whether the line has zero length.
func (l Line) IsDegenerate() bool {
	return l.Length() == 0
}

// Reverse returns the line running from P1 to P0.
func (l Line) Reverse() Line {
	return Line{P0: l.P1, P1: l.P0}
}

// Normal returns the line's unit normal. It is NaN for degenerate lines.
func (l Line) Normal() Vec2 {
	return l.P1.Sub(l.P0).UnitNormal()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}
