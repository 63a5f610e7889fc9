package outline

import (
	"fmt"
	"iter"
	"slices"
)

// CommandKind is the kind of a [PathCommand].
type CommandKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// contour.
	MoveToKind CommandKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Draw an elliptical arc from the current location to the point.
	ArcToKind
	// Close off the contour.
	ClosePathKind
)

// PathCommand is a single absolute path-drawing command.
//
// The meaning of the points depends on Kind. MoveTo and LineTo use P0.
// QuadTo uses P0 as the control point and P1 as the end point. CubicTo uses
// P0 and P1 as control points and P2 as the end point. ArcTo uses P0 as the
// end point together with Radii, XRotation (in degrees), LargeArc and
// Sweep, following the endpoint parameterization of SVG's A command.
type PathCommand struct {
	Kind CommandKind
	P0   Point
	P1   Point
	P2   Point

	Radii     Vec2
	XRotation float64
	LargeArc  bool
	Sweep     bool
}

func (cmd PathCommand) String() string {
	switch cmd.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", cmd.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", cmd.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", cmd.P0, cmd.P1)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", cmd.P0, cmd.P1, cmd.P2)
	case ArcToKind:
		return fmt.Sprintf("ArcTo(%s, %g, %t, %t, %s)", cmd.Radii, cmd.XRotation, cmd.LargeArc, cmd.Sweep, cmd.P0)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathCommand"
	}
}

// EndPoint returns the point the pen rests on after the command, or false
// for [ClosePathKind].
func (cmd PathCommand) EndPoint() (Point, bool) {
	switch cmd.Kind {
	case MoveToKind, LineToKind, ArcToKind:
		return cmd.P0, true
	case QuadToKind:
		return cmd.P1, true
	case CubicToKind:
		return cmd.P2, true
	default:
		return Point{}, false
	}
}

func (cmd PathCommand) Translate(v Vec2) PathCommand {
	cmd.P0 = cmd.P0.Translate(v)
	cmd.P1 = cmd.P1.Translate(v)
	cmd.P2 = cmd.P2.Translate(v)
	return cmd
}

func (cmd PathCommand) IsNaN() bool {
	return cmd.P0.IsNaN() ||
		cmd.P1.IsNaN() ||
		cmd.P2.IsNaN() ||
		cmd.Radii.IsNaN()
}

func (cmd PathCommand) IsInf() bool {
	return cmd.P0.IsInf() ||
		cmd.P1.IsInf() ||
		cmd.P2.IsInf() ||
		cmd.Radii.IsInf()
}

func MoveTo(pt Point) PathCommand {
	return PathCommand{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathCommand {
	return PathCommand{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathCommand {
	return PathCommand{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathCommand {
	return PathCommand{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// ArcTo returns an elliptical arc command ending in pt.
func ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, pt Point) PathCommand {
	return PathCommand{
		Kind:      ArcToKind,
		P0:        pt,
		Radii:     radii,
		XRotation: xRotation,
		LargeArc:  largeArc,
		Sweep:     sweep,
	}
}

func ClosePath() PathCommand {
	return PathCommand{Kind: ClosePathKind}
}

// Outline is an ordered sequence of path commands describing the fillable
// boundary of a stroke. Order is significant, as it defines the contours
// that a fill rule operates on.
type Outline []PathCommand

func (o *Outline) Push(cmd PathCommand) {
	*o = append(*o, cmd)
}

// Append appends all commands of other.
func (o *Outline) Append(other Outline) {
	*o = append(*o, other...)
}

func (o *Outline) MoveTo(pt Point) { o.Push(MoveTo(pt)) }

func (o *Outline) LineTo(pt Point) { o.Push(LineTo(pt)) }

func (o *Outline) QuadTo(p1, p2 Point) { o.Push(QuadTo(p1, p2)) }

func (o *Outline) CubicTo(p1, p2, p3 Point) { o.Push(CubicTo(p1, p2, p3)) }

func (o *Outline) ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, pt Point) {
	o.Push(ArcTo(radii, xRotation, largeArc, sweep, pt))
}

// Close appends a ClosePath command.
func (o *Outline) Close() { o.Push(ClosePath()) }

// Commands returns an iterator over the outline's commands.
func (o Outline) Commands() iter.Seq[PathCommand] { return slices.Values(o) }

// Translate returns a copy of the outline moved by v.
func (o Outline) Translate(v Vec2) Outline {
	out := make(Outline, len(o))
	for i, cmd := range o {
		out[i] = cmd.Translate(v)
	}
	return out
}

// Contours returns the number of MoveTo commands, i.e. the number of
// separately filled contours.
func (o Outline) Contours() int {
	n := 0
	for _, cmd := range o {
		if cmd.Kind == MoveToKind {
			n++
		}
	}
	return n
}

// IsNaN reports whether any command has a NaN coordinate, the result of
// offsetting a degenerate segment.
func (o Outline) IsNaN() bool {
	for _, cmd := range o {
		if cmd.IsNaN() {
			return true
		}
	}
	return false
}

// IsInf reports whether any command has an infinite coordinate or radius.
func (o Outline) IsInf() bool {
	for _, cmd := range o {
		if cmd.IsInf() {
			return true
		}
	}
	return false
}

// ControlBox returns a rectangle that conservatively encloses the outline.
//
// Curves contribute their control points. Arcs contribute their end
// point and the current point, both inflated by the arc's radii, which
// covers arcs of up to half an ellipse such as the caps produced by
// [VariableWidthLine]. The zero Rect is returned for an empty outline.
func (o Outline) ControlBox() Rect {
	first := true
	var cbox Rect
	addRect := func(r Rect) {
		if first {
			first = false
			cbox = r
		} else {
			cbox = cbox.Union(r)
		}
	}
	addPt := func(pt Point) { addRect(NewRectFromPoints(pt, pt)) }

	var last Point
	for _, cmd := range o {
		switch cmd.Kind {
		case MoveToKind, LineToKind:
			addPt(cmd.P0)
		case QuadToKind:
			addPt(cmd.P0)
			addPt(cmd.P1)
		case CubicToKind:
			addPt(cmd.P0)
			addPt(cmd.P1)
			addPt(cmd.P2)
		case ArcToKind:
			rx, ry := cmd.Radii.Splat()
			addRect(NewRectFromPoints(last, last).Inflate(rx, ry))
			addRect(NewRectFromPoints(cmd.P0, cmd.P0).Inflate(rx, ry))
		case ClosePathKind:
		}
		if pt, ok := cmd.EndPoint(); ok {
			last = pt
		}
	}
	return cbox
}

// SVG converts the outline to SVG path data.
func (o Outline) SVG(opts SVGOptions) string {
	return SVG(o.Commands(), opts)
}
