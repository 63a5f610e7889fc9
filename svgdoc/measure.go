package svgdoc

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/penstroke/outline"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/parse/v2/xml"
)

// Measurer determines the intrinsic pixel size of a document.
type Measurer interface {
	IntrinsicSize(doc string) (outline.Size, bool)
}

// DPI is the resolution used to convert physical units to pixels.
const DPI = 96.0

// defaultFontSize is the font size, in pixels, that em and ex lengths on
// the root element are relative to.
const defaultFontSize = 12.0

// pixelsPer maps the length units allowed on the root element to their
// size in pixels. Percentages are relative to a container and have no
// intrinsic size, so they are absent.
var pixelsPer = map[string]float64{
	"":   1,
	"px": 1,
	"in": DPI,
	"cm": DPI / 2.54,
	"mm": DPI / 25.4,
	"pt": DPI / 72,
	"pc": DPI / 6,
	"em": defaultFontSize,
	"ex": defaultFontSize / 2,
}

// RootMeasurer reads the intrinsic size from the width and height
// attributes of the root <svg> element.
//
// The size is only known if both attributes are present and are absolute
// or font-relative lengths. Documents sized in percentages, or without
// width and height, fill their container and have no intrinsic size, even
// if they carry a viewBox.
type RootMeasurer struct{}

var _ Measurer = RootMeasurer{}

// IntrinsicSize implements [Measurer]. It logs a warning when the size
// cannot be determined.
func (RootMeasurer) IntrinsicSize(doc string) (outline.Size, bool) {
	attrs, err := rootAttrs(doc)
	if err != nil {
		outline.Logger().Warn("intrinsic size unavailable", slog.String("reason", err.Error()))
		return outline.Size{}, false
	}
	w, ok := parseLength(attrs["width"])
	if !ok {
		outline.Logger().Warn("intrinsic size unavailable", slog.String("width", attrs["width"]))
		return outline.Size{}, false
	}
	h, ok := parseLength(attrs["height"])
	if !ok {
		outline.Logger().Warn("intrinsic size unavailable", slog.String("height", attrs["height"]))
		return outline.Size{}, false
	}
	return outline.Sz(w, h), true
}

// IntrinsicSize returns the intrinsic pixel size of doc using
// [RootMeasurer].
func IntrinsicSize(doc string) (outline.Size, bool) {
	return RootMeasurer{}.IntrinsicSize(doc)
}

type measureError string

func (e measureError) Error() string { return string(e) }

const (
	errNoRoot     measureError = "document has no root element"
	errNotSVGRoot measureError = "root element is not <svg>"
)

// rootAttrs returns the attributes of the document's root element, which
// has to be <svg>.
func rootAttrs(doc string) (map[string]string, error) {
	l := xml.NewLexer(parse.NewInputString(doc))
	attrs := map[string]string{}
	inRoot := false
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != nil && l.Err() != io.EOF {
				return nil, l.Err()
			}
			if inRoot {
				return attrs, nil
			}
			return nil, errNoRoot
		case xml.StartTagToken:
			if inRoot {
				return attrs, nil
			}
			if string(localName(l.Text())) != "svg" {
				return nil, errNotSVGRoot
			}
			inRoot = true
		case xml.AttributeToken:
			if inRoot {
				attrs[string(localName(l.Text()))] = string(unquote(l.AttrVal()))
			}
		case xml.StartTagCloseToken, xml.StartTagCloseVoidToken:
			if inRoot {
				return attrs, nil
			}
		}
	}
}

func localName(name []byte) []byte {
	if i := bytes.LastIndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func unquote(b []byte) []byte {
	if len(b) >= 2 && (b[0] == '"' || b[0] == '\'') && b[len(b)-1] == b[0] {
		return b[1 : len(b)-1]
	}
	return b
}

// parseLength converts an SVG length to pixels. It reports false for
// percentages, unknown units, malformed and negative lengths.
func parseLength(s string) (float64, bool) {
	b := bytes.TrimSpace([]byte(s))
	if len(b) == 0 {
		return 0, false
	}
	v, n := strconv.ParseFloat(b)
	if n == 0 || v < 0 {
		return 0, false
	}
	f, ok := pixelsPer[string(bytes.ToLower(bytes.TrimSpace(b[n:])))]
	if !ok {
		return 0, false
	}
	return v * f, true
}
