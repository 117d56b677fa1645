package graphml

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

const indentUnit = "  "

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escape replaces the five XML special characters with entity references.
// Invalid UTF-8 and runes outside the XML Char production become U+FFFD.
func escape(s string) string { return escaper.Replace(strings.Map(xmlChar, s)) }

func xmlChar(r rune) rune {
	if r == '\t' || r == '\n' || r == '\r' ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= utf8.MaxRune {
		return r
	}
	return utf8.RuneError
}

// xmlAttr is one attribute of a tag. Values are escaped on write.
type xmlAttr struct {
	name, value string
}

// xmlWriter appends tags to a buffer. It only tracks what indentation needs:
// the current depth and whether each open element received child elements.
type xmlWriter struct {
	buf      *bytes.Buffer
	pretty   bool
	depth    int
	children []bool
}

func newXMLWriter(buf *bytes.Buffer, pretty bool, depth int) *xmlWriter {
	return &xmlWriter{buf: buf, pretty: pretty, depth: depth}
}

// raw appends s unchanged.
func (w *xmlWriter) raw(s string) { w.buf.WriteString(s) }

func (w *xmlWriter) newline() {
	if !w.pretty {
		return
	}
	w.buf.WriteByte('\n')
	for range w.depth {
		w.buf.WriteString(indentUnit)
	}
}

// markChild records that the innermost open element has a child element.
func (w *xmlWriter) markChild() {
	if n := len(w.children); n > 0 {
		w.children[n-1] = true
	}
}

func (w *xmlWriter) tag(name string, attrs []xmlAttr) {
	w.markChild()
	w.newline()
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	for _, a := range attrs {
		w.buf.WriteByte(' ')
		w.buf.WriteString(a.name)
		w.buf.WriteString(`="`)
		w.buf.WriteString(escape(a.value))
		w.buf.WriteByte('"')
	}
}

// start opens an element that will be closed by end.
func (w *xmlWriter) start(name string, attrs ...xmlAttr) {
	w.tag(name, attrs)
	w.buf.WriteByte('>')
	w.depth++
	w.children = append(w.children, false)
}

// empty writes a self-closed element.
func (w *xmlWriter) empty(name string, attrs ...xmlAttr) {
	w.tag(name, attrs)
	w.buf.WriteString(" />")
}

// text writes an element containing only escaped character data.
func (w *xmlWriter) text(name, data string, attrs ...xmlAttr) {
	w.tag(name, attrs)
	w.buf.WriteByte('>')
	w.buf.WriteString(escape(data))
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteByte('>')
}

// end closes the innermost element opened by start. The end tag gets its
// own line only if the element received child elements.
func (w *xmlWriter) end(name string) {
	w.depth--
	n := len(w.children)
	hadChildren := n > 0 && w.children[n-1]
	if n > 0 {
		w.children = w.children[:n-1]
	}
	if hadChildren {
		w.newline()
	}
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteByte('>')
}
