package outline

// CubicBez is a cubic Bézier segment with control points P1 and P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// SplitQuads approximates the cubic with two quadratic Béziers joined at a
// shared midpoint.
//
// The control points of the quadratics lie three quarters of the way from
// the cubic's endpoints to its respective control points, and the shared
// midpoint is the average of those two control points. This is not an
// exact degree reduction; the error grows with the length of the segment.
func (c CubicBez) SplitQuads() (QuadBez, QuadBez) {
	a := Point(Vec2(c.P0).Mul(0.25).Add(Vec2(c.P1).Mul(0.75)))
	b := Point(Vec2(c.P3).Mul(0.25).Add(Vec2(c.P2).Mul(0.75)))
	mid := a.Midpoint(b)
	return QuadBez{c.P0, a, mid}, QuadBez{mid, b, c.P3}
}

func (c CubicBez) Translate(v Vec2) CubicBez {
	return CubicBez{
		c.P0.Translate(v),
		c.P1.Translate(v),
		c.P2.Translate(v),
		c.P3.Translate(v),
	}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}
