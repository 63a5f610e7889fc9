package outline

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path commands to a string of SVG path data.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string. Output ends before the first invalid command.
func SVG(seq iter.Seq[PathCommand], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path commands to a string of SVG path
// data and writes it to w. All commands use absolute coordinates.
//
// No special care is taken to produce a short string (no relative
// movement, no implicit command repetition).
//
// A command with an unknown kind, such as the zero PathCommand, stops the
// output before it and is reported as an error.
func WriteSVG(w io.Writer, seq iter.Seq[PathCommand], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.ContainsRune(s, '.') {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
	flag := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}
	first := true
	for cmd := range seq {
		if err != nil {
			return err
		}
		if cmd.Kind < MoveToKind || cmd.Kind > ClosePathKind {
			return errors.Errorf("invalid path command kind %d", cmd.Kind)
		}
		if !first {
			write(space)
		}
		first = false
		switch cmd.Kind {
		case MoveToKind:
			writef("M%s,%s", format(cmd.P0.X), format(cmd.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(cmd.P0.X), format(cmd.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(cmd.P0.X), format(cmd.P0.Y),
				format(cmd.P1.X), format(cmd.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(cmd.P0.X), format(cmd.P0.Y),
				format(cmd.P1.X), format(cmd.P1.Y),
				format(cmd.P2.X), format(cmd.P2.Y))
		case ArcToKind:
			writef("A%s,%s %s %s %s %s,%s",
				format(cmd.Radii.X), format(cmd.Radii.Y),
				format(cmd.XRotation),
				flag(cmd.LargeArc), flag(cmd.Sweep),
				format(cmd.P0.X), format(cmd.P0.Y))
		case ClosePathKind:
			write(z)
		}
	}
	return err
}
