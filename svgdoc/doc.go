// Package svgdoc wraps stroke outlines into complete SVG documents and
// measures the intrinsic size of such documents.
//
// Documents are produced by substituting named fields into a template,
// see [Fields] for the placeholder names. The template is injected through
// the [Substituter] interface; [DefaultTemplate] is the one shipped with
// this package. Likewise, measuring goes through the [Measurer] interface,
// implemented by [RootMeasurer].
//
// Documents are plain strings. They are never modified in place; every
// change, including adding or removing the XML declaration, returns a new
// string.
package svgdoc
