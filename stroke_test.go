package outline

import (
	"math"
	"testing"
)

func TestVariableWidthLine(t *testing.T) {
	got := VariableWidthLine(Line{Pt(0, 0), Pt(10, 0)}, 2, 4)
	want := Outline{
		MoveTo(Pt(0, -1)),
		LineTo(Pt(10, -2)),
		ArcTo(Vec(2, 2), 0, false, true, Pt(10, 2)),
		LineTo(Pt(0, 1)),
		ArcTo(Vec(1, 1), 0, false, true, Pt(0, -1)),
	}
	diff(t, want, got, approx)
}

func TestVariableWidthLineSymmetry(t *testing.T) {
	lines := []Line{
		{Pt(0, 0), Pt(10, 0)},
		{Pt(3, -4), Pt(-7, 12)},
		{Pt(0.5, 0.5), Pt(0.5, 0.6)},
		{Pt(-100, 40), Pt(250, 39)},
	}
	for _, w := range []float64{0, 0.5, 3, 17} {
		for _, l := range lines {
			o := VariableWidthLine(l, w, w)
			if len(o) != 5 {
				t.Fatalf("got %d commands, want 5", len(o))
			}
			dir := l.P1.Sub(l.P0)
			check := func(pt, onLine Point, side float64) {
				t.Helper()
				if d := pt.Distance(onLine); math.Abs(d-w/2) > 1e-9 {
					t.Errorf("%v, w=%v: point %v is %v from %v, want %v", l, w, pt, d, onLine, w/2)
				}
				if w == 0 {
					return
				}
				if s := dir.Cross(pt.Sub(onLine)); math.Signbit(s) != math.Signbit(side) {
					t.Errorf("%v, w=%v: point %v on the wrong side", l, w, pt)
				}
			}
			// Forward edge on one side, reverse edge on the other.
			check(o[0].P0, l.P0, -1)
			check(o[1].P0, l.P1, -1)
			check(o[2].P0, l.P1, 1)
			check(o[3].P0, l.P0, 1)
		}
	}
}

func TestVariableWidthQuad(t *testing.T) {
	got := VariableWidthQuad(QuadBez{Pt(0, 0), Pt(5, 0), Pt(10, 0)}, 2, 4)
	want := Outline{
		MoveTo(Pt(0, -1)),
		QuadTo(Pt(5, -1.5), Pt(10, -2)),
		LineTo(Pt(10, 2)),
		QuadTo(Pt(5, 1.5), Pt(0, 1)),
		LineTo(Pt(0, -1)),
	}
	diff(t, want, got, approx)
}

func TestOutlinesAreClosed(t *testing.T) {
	outlines := map[string]Outline{
		"line":  VariableWidthLine(Line{Pt(1, 2), Pt(7, -3)}, 1, 5),
		"quad":  VariableWidthQuad(QuadBez{Pt(0, 0), Pt(4, 6), Pt(9, 1)}, 2, 0.5),
		"cubic": VariableWidthCubic(CubicBez{Pt(0, 0), Pt(2, 5), Pt(8, 5), Pt(10, 0)}, 3, 1),
	}
	for name, o := range outlines {
		var start Point
		for i, cmd := range o {
			if cmd.Kind == MoveToKind {
				if i > 0 {
					end, _ := o[i-1].EndPoint()
					diff(t, start, end, approx)
				}
				start = cmd.P0
			}
		}
		end, _ := o[len(o)-1].EndPoint()
		if d := end.Distance(start); d > 1e-9 {
			t.Errorf("%s: contour ends at %v, %v away from its start %v", name, end, d, start)
		}
	}
}

func TestVariableWidthCubic(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(3, 0), Pt(6, 0), Pt(9, 0)}
	got := VariableWidthCubic(c, 2, 6)
	if n := got.Contours(); n != 2 {
		t.Fatalf("got %d contours, want 2", n)
	}
	q0, q1 := c.SplitQuads()
	want := VariableWidthQuad(q0, 2, 4)
	want.Append(VariableWidthQuad(q1, 4, 6))
	diff(t, want, got)

	// The width at the split point is the mean width.
	diff(t, Pt(4.5, -2), got[1].P1, approx)
}

type prepareCase struct {
	a, b   Point
	offset Vec2
}

func TestPrepareLineDegenerate(t *testing.T) {
	for _, p := range []Point{Pt(0, 0), Pt(-3.5, 12), Pt(1e9, -1e9)} {
		for _, off := range []Vec2{Vec(0, 0), Vec(5, -5), Vec(0.1, 1e6)} {
			if l, ok := PrepareLine(sample{pt: p}, sample{pt: p}, off); ok {
				t.Errorf("PrepareLine(%v, %v, %v) = %v, want no line", p, p, off, l)
			}
		}
	}
}

func TestPrepareLine(t *testing.T) {
	cases := []prepareCase{
		{Pt(0, 0), Pt(1, 0), Vec(0, 0)},
		{Pt(0, 0), Pt(0, 1), Vec(5, 5)},
		{Pt(-2, 3), Pt(4, 4), Vec(-1, 2)},
	}
	for _, c := range cases {
		l, ok := PrepareLine(sample{pt: c.a}, sample{pt: c.b}, c.offset)
		if !ok {
			t.Errorf("PrepareLine(%v, %v, %v) reported a degenerate line", c.a, c.b, c.offset)
			continue
		}
		diff(t, Line{c.a.Translate(c.offset), c.b.Translate(c.offset)}, l)
	}
}

func TestStrokeOutlineShort(t *testing.T) {
	if o := StrokeOutline([]sample{}, Vec(0, 0)); len(o) != 0 {
		t.Errorf("got %v for no samples, want empty outline", o)
	}
	if o := StrokeOutline([]sample{wsmp(1, 1, 2)}, Vec(0, 0)); len(o) != 0 {
		t.Errorf("got %v for a single sample, want empty outline", o)
	}

	got := StrokeOutline([]sample{wsmp(0, 0, 2), wsmp(10, 0, 4)}, Vec(5, 5))
	want := VariableWidthLine(Line{Pt(5, 5), Pt(15, 5)}, 2, 4)
	diff(t, want, got)
}

func TestStrokeOutlineSkipsDegenerate(t *testing.T) {
	got := StrokeOutline([]sample{wsmp(0, 0, 1), wsmp(0, 0, 1), wsmp(5, 0, 1)}, Vec(0, 0))
	if n := got.Contours(); n != 1 {
		t.Errorf("got %d contours, want 1", n)
	}

	got = StrokeOutline([]sample{wsmp(0, 0, 1), wsmp(1, 0, 1), wsmp(1, 0, 1), wsmp(2, 0, 1)}, Vec(0, 0))
	if n := got.Contours(); n != 4 {
		t.Errorf("got %d contours, want 4", n)
	}
	if got.IsNaN() {
		t.Errorf("outline contains NaN: %v", got)
	}
}

func TestStrokeOutlineCurves(t *testing.T) {
	samples := []sample{
		wsmp(0, 0, 1),
		wsmp(4, 3, 2),
		wsmp(8, 4, 3),
		wsmp(12, 3, 2),
		wsmp(16, 0, 1),
	}
	got := StrokeOutline(samples, Vec(0, 0))
	if n := got.Contours(); n != 8 {
		t.Errorf("got %d contours, want 8", n)
	}
	if got.IsNaN() {
		t.Errorf("outline contains NaN: %v", got)
	}
	// The first contour starts half the first width away from the first sample.
	if d := got[0].P0.Distance(Pt(0, 0)); math.Abs(d-0.5) > 1e-9 {
		t.Errorf("first point is %v from the first sample, want 0.5", d)
	}
}

func TestStrokeOutlineFallsBackToLines(t *testing.T) {
	// The stroke doubles back on itself, so the fitted curve for the first
	// pair has a vanishing end tangent.
	samples := []sample{
		wsmp(0, 0, 2),
		wsmp(10, 0, 2),
		wsmp(0, 0, 2),
		wsmp(10, 0, 2),
	}
	got := StrokeOutline(samples, Vec(0, 0))
	if got.IsNaN() {
		t.Fatalf("outline contains NaN: %v", got)
	}
	diff(t, VariableWidthLine(Line{Pt(0, 0), Pt(10, 0)}, 2, 2), got[:5])
}

func TestPrepareLineNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	cases := []prepareCase{
		{Pt(nan, 0), Pt(1, 0), Vec(0, 0)},
		{Pt(0, 0), Pt(1, nan), Vec(0, 0)},
		{Pt(0, 0), Pt(inf, 0), Vec(0, 0)},
		{Pt(0, -inf), Pt(1, 1), Vec(0, 0)},
		{Pt(0, 0), Pt(1, 1), Vec(inf, 0)},
		{Pt(0, 0), Pt(1, 1), Vec(0, nan)},
	}
	for _, c := range cases {
		if l, ok := PrepareLine(sample{pt: c.a}, sample{pt: c.b}, c.offset); ok {
			t.Errorf("PrepareLine(%v, %v, %v) = %v, want no line", c.a, c.b, c.offset, l)
		}
	}
}

func TestStrokeOutlineSkipsNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	samples := []sample{
		wsmp(0, 0, 1),
		wsmp(4, 3, 1),
		wsmp(nan, nan, 1),
		wsmp(12, 3, 1),
		wsmp(16, 0, 1),
	}
	got := StrokeOutline(samples, Vec(0, 0))
	if got.IsNaN() || got.IsInf() {
		t.Fatalf("outline is not finite: %v", got)
	}
	// The pairs touching the NaN sample are dropped, their neighbours fall
	// back to lines.
	if n := got.Contours(); n != 2 {
		t.Errorf("got %d contours, want 2", n)
	}
	diff(t, VariableWidthLine(Line{Pt(0, 0), Pt(4, 3)}, 1, 1), got[:5])

	got = StrokeOutline([]sample{wsmp(0, 0, 1), wsmp(inf, 0, 1)}, Vec(0, 0))
	if len(got) != 0 {
		t.Errorf("got %v for an infinite position, want empty outline", got)
	}
	got = StrokeOutline([]sample{wsmp(0, 0, inf), wsmp(10, 0, 1), wsmp(20, 0, 1), wsmp(30, 0, 1)}, Vec(0, 0))
	if got.IsNaN() || got.IsInf() {
		t.Errorf("outline is not finite: %v", got)
	}
	if n := got.Contours(); n != 4 {
		t.Errorf("got %d contours, want 4", n)
	}
}

func TestOutlineIsInf(t *testing.T) {
	o := VariableWidthLine(Line{Pt(0, 0), Pt(10, 0)}, 2, 4)
	if o.IsInf() || o.IsNaN() {
		t.Fatalf("outline is not finite: %v", o)
	}
	o.ArcTo(Vec(math.Inf(1), 1), 0, false, true, Pt(0, 0))
	if !o.IsInf() {
		t.Errorf("infinite arc radius not reported")
	}
	if o.IsNaN() {
		t.Errorf("infinite arc radius reported as NaN")
	}
	if !(Outline{LineTo(Pt(0, math.Inf(-1)))}).IsInf() {
		t.Errorf("infinite end point not reported")
	}
}
