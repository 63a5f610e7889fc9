package outline

// VariableWidthLine returns a closed contour around l whose width changes
// linearly from widthStart to widthEnd.
//
// The contour runs along the forward offset at +width/2, turns around the
// end with a half-circle arc of radius widthEnd/2, runs back along the
// reverse offset, and turns around the start with an arc of radius
// widthStart/2. It finishes at its first point; no ClosePath is emitted.
//
// l must not be degenerate.
func VariableWidthLine(l Line, widthStart, widthEnd float64) Outline {
	startDist := widthStart / 2.0
	endDist := widthEnd / 2.0
	norm := l.Normal()

	out := OffsetLine(l, startDist, endDist, true)
	out.ArcTo(Vec(endDist, endDist), 0, false, true, l.P1.Translate(norm.Mul(-endDist)))
	out.Append(OffsetLine(l.Reverse(), endDist, startDist, false))
	out.ArcTo(Vec(startDist, startDist), 0, false, true, l.P0.Translate(norm.Mul(startDist)))
	return out
}

// VariableWidthQuad returns a closed contour around q whose width changes
// from widthStart to widthEnd.
//
// It is built like [VariableWidthLine], but the two ends are joined with
// straight lines instead of arcs.
func VariableWidthQuad(q QuadBez, widthStart, widthEnd float64) Outline {
	startDist := widthStart / 2.0
	endDist := widthEnd / 2.0
	n0, n1 := q.Normals()

	out := OffsetQuad(q, startDist, endDist, true)
	out.LineTo(q.P2.Translate(n1.Mul(-endDist)))
	out.Append(OffsetQuad(q.Reverse(), endDist, startDist, false))
	out.LineTo(q.P0.Translate(n0.Mul(startDist)))
	return out
}

// VariableWidthCubic returns the contours around c whose width changes from
// widthStart to widthEnd.
//
// The cubic is split into two quadratics with [CubicBez.SplitQuads], each
// of which gets its own contour from [VariableWidthQuad]. They share the
// mean width at the split point.
func VariableWidthCubic(c CubicBez, widthStart, widthEnd float64) Outline {
	mid := (widthStart + widthEnd) / 2.0
	q0, q1 := c.SplitQuads()

	out := VariableWidthQuad(q0, widthStart, mid)
	out.Append(VariableWidthQuad(q1, mid, widthEnd))
	return out
}

// PrepareLine builds the line between two consecutive samples, translated
// by offset. It reports false if the line would have zero length, or if a
// position is not finite.
//
// Zero-length segments have no unit normal. The builders in this package
// assume they were filtered here and produce NaN coordinates otherwise.
func PrepareLine(first, second Sample, offset Vec2) (Line, bool) {
	l := Line{P0: first.Pos(), P1: second.Pos()}.Translate(offset)
	if l.IsNaN() || l.IsInf() || l.IsDegenerate() {
		return Line{}, false
	}
	return l, true
}
