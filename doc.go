// Package outline turns pen input into fillable outlines of hand-drawn
// strokes with continuously varying width.
//
// # Pipeline
//
// A stroke arrives as an ordered sequence of samples ([Sample]), each with
// a position and, for [WidthSample], a resolved stroke width. Between two
// consecutive samples the stroke is modelled either as a [Line] or, when
// enough neighbours are known, as a [CubicBez] fitted with [FitSegment],
// which follows the Catmull-Rom spline through the samples.
//
// A segment is turned into a closed contour by offsetting it to both sides
// by half the stroke width, which may differ between its two ends, and
// joining the two offset curves with caps. See [VariableWidthLine],
// [VariableWidthQuad] and [VariableWidthCubic], and [StrokeOutline] for a
// whole stroke.
//
// The result is an [Outline], a slice of absolute [PathCommand]s, which
// can be written as SVG path data with [SVG] and [WriteSVG] and wrapped
// into a complete document with package svgdoc.
//
// # Offsetting
//
// Exact offset curves of Béziers are not polynomial. This package uses the
// usual cheap approximation instead: cubics are split into two quadratics
// ([CubicBez.SplitQuads]) and quadratics are offset by moving their
// endpoints along the end normals and the control point along the bisector
// of those normals ([OffsetQuad]). The error is bounded by the length and
// curvature of the segment, which between neighbouring pen samples is
// small.
//
// # Degenerate input
//
// A zero-length segment has no normal. Such segments are never reported as
// errors; the functions that can detect them return false instead
// ([PrepareLine], [FitSegment]) and [StrokeOutline] skips them. The
// offsetting functions themselves assume valid input and produce NaN
// coordinates otherwise.
//
// # Coordinates
//
// Coordinates are y-down, as in SVG. The normal of a direction is obtained
// with [Vec2.Turn90], so for a segment running to the right the forward
// offset lies above it and the reverse offset below it.
//
// All functions are pure and safe for concurrent use.
package outline
