package svgdoc

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// Fields are the values substituted into a document template. Each field
// has a named placeholder, listed in its comment.
type Fields struct {
	// xml_header: whether to emit the XML declaration.
	XMLHeader bool
	// data: the document body, e.g. one or more path elements.
	Data string
	// x, y, width, height: position and size of the root element.
	X, Y, Width, Height string
	// viewbox: the complete viewBox attribute, or empty.
	ViewBox string
	// preserve_aspectratio: one of AspectKeep or AspectStretch.
	PreserveAspectRatio string
}

// Map returns the fields keyed by their placeholder names.
func (f Fields) Map() map[string]any {
	return map[string]any{
		"xml_header":           f.XMLHeader,
		"data":                 f.Data,
		"x":                    f.X,
		"y":                    f.Y,
		"width":                f.Width,
		"height":               f.Height,
		"viewbox":              f.ViewBox,
		"preserve_aspectratio": f.PreserveAspectRatio,
	}
}

// Substituter renders document fields into document text.
type Substituter interface {
	Substitute(f Fields) (string, error)
}

// SubstituterFunc adapts an ordinary function to the Substituter interface.
type SubstituterFunc func(f Fields) (string, error)

func (fn SubstituterFunc) Substitute(f Fields) (string, error) { return fn(f) }

// TextTemplate is a Substituter backed by a text/template. Placeholders are
// referenced as {{.name}}; values are inserted verbatim, without escaping,
// since the body is already markup.
type TextTemplate struct {
	tmpl *template.Template
}

var _ Substituter = (*TextTemplate)(nil)

// ParseTemplate parses a document template. Referencing a placeholder
// that does not exist is reported when the template is executed.
func ParseTemplate(text string) (*TextTemplate, error) {
	tmpl, err := template.New("svgdoc").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parsing document template")
	}
	return &TextTemplate{tmpl: tmpl}, nil
}

// MustParseTemplate is like ParseTemplate but panics if the template
// cannot be parsed. It is meant for templates that ship with the program.
func MustParseTemplate(text string) *TextTemplate {
	t, err := ParseTemplate(text)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *TextTemplate) Substitute(f Fields) (string, error) {
	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, f.Map()); err != nil {
		return "", errors.Wrap(err, "executing document template")
	}
	return sb.String(), nil
}

//go:embed templates/svg_wrap.svg.tmpl
var defaultTemplateText string

// DefaultTemplate wraps the body in an <svg> root element carrying the
// position, size, viewBox and preserveAspectRatio attributes, preceded by
// the XML declaration if requested.
var DefaultTemplate = MustParseTemplate(defaultTemplateText)
