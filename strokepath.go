package outline

import "log/slog"

// StrokeOutline builds the outline of a whole pen stroke from its samples,
// translated by offset. Every pair of consecutive samples contributes its
// own contours; a nonzero fill of the result draws the stroke.
//
// With four or more samples each pair is fitted with [FitSegment], using
// the neighbouring samples (clamped at both ends of the stroke), and
// expanded with [VariableWidthCubic]. Shorter strokes, and pairs whose
// fitted curve has a vanishing tangent, are expanded as straight lines with
// [VariableWidthLine]. Pairs of coinciding samples, and pairs with a NaN or
// infinite position or width, are skipped, so the result may have fewer contours
// than there are pairs, and is empty for fewer than two distinct samples.
// The result never contains NaN or infinite coordinates.
func StrokeOutline[S WidthSample](samples []S, offset Vec2) Outline {
	var out Outline
	n := len(samples)
	for i := 0; i+1 < n; i++ {
		a, b := samples[i], samples[i+1]
		if n >= 4 {
			first := samples[max(i-1, 0)]
			forth := samples[min(i+2, n-1)]
			if c, ok := FitSegment(first, a, b, forth); ok {
				c = c.Translate(offset)
				if !c.IsNaN() && !c.IsInf() {
					seg := VariableWidthCubic(c, a.Width(), b.Width())
					if !seg.IsNaN() && !seg.IsInf() {
						out.Append(seg)
						continue
					}
				}
				Logger().Debug("falling back to line segment",
					slog.Int("index", i), slog.String("curve", c.P0.String()+"→"+c.P3.String()))
			}
		}

		l, ok := PrepareLine(a, b, offset)
		if !ok {
			Logger().Debug("skipping degenerate segment", slog.Int("index", i))
			continue
		}
		seg := VariableWidthLine(l, a.Width(), b.Width())
		if seg.IsNaN() || seg.IsInf() {
			Logger().Debug("skipping segment with invalid width", slog.Int("index", i))
			continue
		}
		out.Append(seg)
	}
	return out
}
