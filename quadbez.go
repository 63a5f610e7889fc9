package outline

// QuadBez is a quadratic Bézier segment with a single control point P1.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Reverse returns the same curve traversed from P2 to P0.
func (q QuadBez) Reverse() QuadBez {
	return QuadBez{q.P2, q.P1, q.P0}
}

// Tangents returns the tangent directions at the start and the end of the
// curve. They are not normalized.
func (q QuadBez) Tangents() (Vec2, Vec2) {
	return q.P1.Sub(q.P0), q.P2.Sub(q.P1)
}

// Normals returns the unit normals at the start and the end of the curve.
// Either is NaN if the control point coincides with the respective
// endpoint.
func (q QuadBez) Normals() (Vec2, Vec2) {
	d0, d1 := q.Tangents()
	return d0.UnitNormal(), d1.UnitNormal()
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}
