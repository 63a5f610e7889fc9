package svgdoc

import (
	"regexp"
	"strings"
)

// Header is the XML declaration added by AddHeader.
const Header = `<?xml version="1.0" standalone="no"?>`

// headerRe matches an XML declaration and the line break following it.
var headerRe = regexp.MustCompile(`<\?xml[^?>]*\?>(\r?\n)?`)

// rootRe matches comments and <svg> start tags, with or without a namespace
// prefix. Quoted attribute values may contain '>'.
var rootRe = regexp.MustCompile(`<!--[\s\S]*?-->|<((?:[\w.-]+:)?svg)(?:\s(?:"[^"]*"|'[^']*'|[^'">])*)?>`)

// HasHeader reports whether doc contains an XML declaration.
func HasHeader(doc string) bool {
	return headerRe.MatchString(doc)
}

// StripHeader removes all XML declarations from doc, together with a line
// break directly following them. Removing a declaration can join the text
// around it into a new one, so it repeats until none is left.
func StripHeader(doc string) string {
	for headerRe.MatchString(doc) {
		doc = headerRe.ReplaceAllLiteralString(doc, "")
	}
	return doc
}

// AddHeader prepends [Header] and a line break to doc, unless doc already
// contains an XML declaration.
func AddHeader(doc string) string {
	if HasHeader(doc) {
		return doc
	}
	return Header + "\n" + doc
}

// StripRoot removes the start tag of the root <svg> element and its end
// tag, leaving the content so it can be embedded into another document.
// Everything before and after the root element, nested <svg> elements and
// comments are kept. A self-closing root is removed entirely. Documents
// without an <svg> root are returned unchanged.
func StripRoot(doc string) string {
	var loc []int
	for _, m := range rootRe.FindAllStringSubmatchIndex(doc, -1) {
		if m[2] >= 0 {
			loc = m
			break
		}
	}
	if loc == nil {
		return doc
	}
	start, end := loc[0], loc[1]
	if strings.HasSuffix(doc[start:end], "/>") {
		return doc[:start] + doc[end:]
	}

	name := doc[loc[2]:loc[3]]
	closeRe := regexp.MustCompile(`</` + regexp.QuoteMeta(name) + `\s*>`)
	closes := closeRe.FindAllStringIndex(doc[end:], -1)
	if len(closes) == 0 {
		return doc[:start] + doc[end:]
	}
	last := closes[len(closes)-1]
	return doc[:start] + doc[end:end+last[0]] + doc[end+last[1]:]
}
