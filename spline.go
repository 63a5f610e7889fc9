package outline

// Sample is a single pen input sample. The capture layer that produces
// samples is not part of this package; all it needs is their position.
type Sample interface {
	Pos() Point
}

// WidthSample is a Sample that also carries the stroke width resolved for
// its position, e.g. from pen pressure.
type WidthSample interface {
	Sample
	Width() float64
}

// Tension is the stiffness of the Catmull-Rom spline used by [FitSegment].
// Higher values shorten the control handles, approaching straight
// segments. It must be at least 1.
const Tension = 1.0

// maxHandleImbalance is the difference in length, in canvas units, above
// which the longer control handle of a fitted segment is shortened.
const maxHandleImbalance = 1.0

// FitSegment returns the cubic Bézier from second to third that follows
// the Catmull-Rom spline through the four samples.
//
// The control points are derived from the tangents implied by the
// neighbouring samples, third − first and forth − second, scaled by
// 1/(6·[Tension]).
//
// Very uneven neighbour spacing produces one handle much longer than the
// other, which shows up as a small loop near that end. When the handle
// lengths differ by more than 1 unit, the longer handle is shortened to the
// length of the shorter one while keeping its direction.
//
// It reports false if second and third coincide.
func FitSegment(first, second, third, forth Sample) (CubicBez, bool) {
	start := second.Pos()
	end := third.Pos()
	if start == end {
		return CubicBez{}, false
	}

	h0 := third.Pos().Sub(first.Pos()).Div(6.0 * Tension)
	h1 := forth.Pos().Sub(second.Pos()).Div(6.0 * Tension).Negate()
	h0, h1 = balanceHandles(h0, h1)

	return CubicBez{
		P0: start,
		P1: start.Translate(h0),
		P2: end.Translate(h1),
		P3: end,
	}, true
}

// balanceHandles shortens the longer of two control handles to the length
// of the shorter one if they differ by more than maxHandleImbalance.
func balanceHandles(h0, h1 Vec2) (Vec2, Vec2) {
	l0, l1 := h0.Hypot(), h1.Hypot()
	switch {
	case l0 > l1+maxHandleImbalance:
		h0 = h0.Mul(l1 / l0)
	case l1 > l0+maxHandleImbalance:
		h1 = h1.Mul(l0 / l1)
	}
	return h0, h1
}
