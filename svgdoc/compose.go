package svgdoc

import (
	"fmt"
	"html"
	"strconv"

	"github.com/penstroke/outline"
	"github.com/pkg/errors"
)

// Values of the preserveAspectRatio attribute.
const (
	// AspectKeep scales uniformly and centers the content.
	AspectKeep = "xMidYMid"
	// AspectStretch scales each axis independently to fill the viewport.
	AspectStretch = "none"
)

// Composer turns document bodies into complete SVG documents.
type Composer struct {
	Substituter Substituter
}

// NewComposer returns a composer that renders documents with s.
func NewComposer(s Substituter) *Composer {
	return &Composer{Substituter: s}
}

var defaultComposer = NewComposer(DefaultTemplate)

// Default returns the composer using [DefaultTemplate].
func Default() *Composer { return defaultComposer }

// Compose is shorthand for Default().Compose.
func Compose(body string, bounds, viewBox *outline.Rect, xmlHeader, preserveAspectRatio bool) (string, error) {
	return defaultComposer.Compose(body, bounds, viewBox, xmlHeader, preserveAspectRatio)
}

// Compose wraps body into a complete document.
//
// If bounds is non-nil, the root element is positioned at the floored
// minimum corner of bounds and sized to its extent rounded up. Otherwise
// it sits at 0, 0 and fills its container (100% × 100%). If viewBox is
// non-nil, a viewBox attribute is emitted with the same rounding, computed
// independently of bounds; otherwise the attribute is omitted.
// preserveAspectRatio selects between [AspectKeep] and [AspectStretch].
//
// A box with NaN or infinite coordinates, or a failing substitution, is
// returned as an error and no document is produced.
func (c *Composer) Compose(body string, bounds, viewBox *outline.Rect, xmlHeader, preserveAspectRatio bool) (string, error) {
	f := Fields{
		XMLHeader: xmlHeader,
		Data:      body,
		X:         "0",
		Y:         "0",
		Width:     "100%",
		Height:    "100%",
	}
	for _, r := range []*outline.Rect{bounds, viewBox} {
		if r != nil && (r.IsNaN() || r.IsInf()) {
			return "", errors.Errorf("composing svg document: box %v is not finite", *r)
		}
	}
	if bounds != nil {
		x, y, w, h := bounds.PixelBox()
		f.X, f.Y = strconv.Itoa(x), strconv.Itoa(y)
		f.Width, f.Height = strconv.Itoa(w), strconv.Itoa(h)
	}
	if viewBox != nil {
		x, y, w, h := viewBox.PixelBox()
		f.ViewBox = fmt.Sprintf(`viewBox="%d %d %d %d"`, x, y, w, h)
	}
	if preserveAspectRatio {
		f.PreserveAspectRatio = AspectKeep
	} else {
		f.PreserveAspectRatio = AspectStretch
	}

	doc, err := c.Substituter.Substitute(f)
	if err != nil {
		return "", errors.Wrap(err, "composing svg document")
	}
	return doc, nil
}

// PathElement returns a <path> element filling o with the given color
// using the nonzero rule, under which the overlapping contours of a stroke
// merge into one shape.
func PathElement(o outline.Outline, fill string, opts outline.SVGOptions) string {
	return fmt.Sprintf(`<path fill="%s" fill-rule="nonzero" d="%s"/>`,
		html.EscapeString(fill), o.SVG(opts))
}
