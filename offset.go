package outline

// OffsetLine returns the commands tracing l displaced along its unit normal,
// by startDist at the start and endDist at the end.
//
// If moveStart is set, the result begins with a MoveTo to the displaced
// start point; otherwise it continues from the current point of whatever
// outline it is appended to. l must not be degenerate.
func OffsetLine(l Line, startDist, endDist float64, moveStart bool) Outline {
	norm := l.Normal()

	var out Outline
	if moveStart {
		out.MoveTo(l.P0.Translate(norm.Mul(startDist)))
	}
	out.LineTo(l.P1.Translate(norm.Mul(endDist)))
	return out
}

// OffsetQuad returns the commands tracing an approximate offset curve of q,
// displaced by startDist at the start and endDist at the end.
//
// The endpoints are displaced along the normals of the respective end
// tangents. The control point is displaced along the bisector of both
// normals so that the offset tangents stay parallel to the original ones,
// using the mean of both distances. The result is exact for straight
// curves; its error grows with the turning angle and length of the segment.
//
// A control point coinciding with an endpoint, or a curve that turns back
// on itself by 180°, yields NaN coordinates.
func OffsetQuad(q QuadBez, startDist, endDist float64, moveStart bool) Outline {
	n0, n1 := q.Normals()
	sum := n0.Add(n1)
	mid := (startDist + endDist) / 2.0
	cpOffset := sum.Mul(2.0 * mid / sum.Hypot2())

	var out Outline
	if moveStart {
		out.MoveTo(q.P0.Translate(n0.Mul(startDist)))
	}
	out.QuadTo(
		q.P1.Translate(cpOffset),
		q.P2.Translate(n1.Mul(endDist)),
	)
	return out
}

// OffsetCubic returns the commands tracing an approximate offset curve of c.
//
// The cubic is split into two quadratics with [CubicBez.SplitQuads]. The
// first is offset from startDist to the mean distance, the second from the
// mean distance to endDist.
func OffsetCubic(c CubicBez, startDist, endDist float64, moveStart bool) Outline {
	mid := (startDist + endDist) / 2.0
	q0, q1 := c.SplitQuads()

	out := OffsetQuad(q0, startDist, mid, moveStart)
	out.Append(OffsetQuad(q1, mid, endDist, false))
	return out
}
