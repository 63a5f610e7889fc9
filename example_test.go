package outline_test

import (
	"fmt"

	"github.com/penstroke/outline"
)

type penSample struct {
	x, y, w float64
}

func (s penSample) Pos() outline.Point { return outline.Pt(s.x, s.y) }
func (s penSample) Width() float64     { return s.w }

func ExampleVariableWidthLine() {
	// A stroke widening from 2 to 4 units along the x axis.
	o := outline.VariableWidthLine(outline.Line{P0: outline.Pt(0, 0), P1: outline.Pt(10, 0)}, 2, 4)
	fmt.Println(o.SVG(outline.SVGOptions{}))

	// Output:
	// M0,-1 L10,-2 A2,2 0 0 1 10,2 L0,1 A1,1 0 0 1 0,-1
}

func ExampleFitSegment() {
	// Evenly spaced samples on a straight line yield a straight cubic with
	// handles at a third of the segment.
	c, ok := outline.FitSegment(
		penSample{0, 0, 1},
		penSample{3, 0, 1},
		penSample{6, 0, 1},
		penSample{9, 0, 1},
	)
	fmt.Println(ok)
	fmt.Println(c.P0, c.P1, c.P2, c.P3)

	// Output:
	// true
	// (3, 0) (4, 0) (5, 0) (6, 0)
}

func ExampleStrokeOutline() {
	samples := []penSample{
		{0, 0, 1},
		{4, 3, 2},
		{8, 4, 3},
		{12, 3, 2},
		{16, 0, 1},
	}
	o := outline.StrokeOutline(samples, outline.Vec(0, 0))
	fmt.Println(o.Contours())

	// Output:
	// 8
}
