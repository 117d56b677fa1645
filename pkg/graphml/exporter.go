package graphml

import "fmt"

// DefaultAttrName is the attribute name used by the display and debug
// exporters.
const DefaultAttrName = "weight"

// Attr is one named textual attribute of a node or edge.
// Name and Value are raw text; the encoder escapes both.
type Attr struct {
	Name  string
	Value string
}

// Exporter turns a weight into zero or more attributes.
//
// Implementations must be total and free of side effects: Export is called
// once per weighted element during an emission and must not fail or panic
// for any value of W. The returned order is the order of the emitted <data>
// elements. A name may repeat; each occurrence becomes its own <data>
// element under the same key.
type Exporter[W any] interface {
	Export(w W) []Attr
}

// ExporterFunc adapts a function to the [Exporter] interface.
type ExporterFunc[W any] func(w W) []Attr

// Export calls f(w).
func (f ExporterFunc[W]) Export(w W) []Attr { return f(w) }

type suppressed[W any] struct{}

func (suppressed[W]) Export(W) []Attr { return nil }

// Suppress returns an exporter that never emits attributes.
// It is the default for both nodes and edges.
func Suppress[W any]() Exporter[W] { return suppressed[W]{} }

// Display returns an exporter that emits a single "weight" attribute holding
// the weight's canonical text form, fmt.Sprint(w). Types implementing
// fmt.Stringer control their own rendering.
func Display[W any]() Exporter[W] {
	return ExporterFunc[W](func(w W) []Attr {
		return []Attr{{Name: DefaultAttrName, Value: fmt.Sprint(w)}}
	})
}

// Debug returns an exporter that emits a single "weight" attribute holding
// the weight's Go-syntax representation, fmt.Sprintf("%#v", w). Types
// implementing fmt.GoStringer control their own rendering.
func Debug[W any]() Exporter[W] {
	return ExporterFunc[W](func(w W) []Attr {
		return []Attr{{Name: DefaultAttrName, Value: fmt.Sprintf("%#v", w)}}
	})
}

// Custom returns an exporter backed by fn. A nil fn behaves like [Suppress].
func Custom[W any](fn func(w W) []Attr) Exporter[W] {
	if fn == nil {
		return Suppress[W]()
	}
	return ExporterFunc[W](fn)
}

// isSuppressed reports whether e can be skipped entirely.
func isSuppressed[W any](e Exporter[W]) bool {
	if e == nil {
		return true
	}
	_, ok := e.(suppressed[W])
	return ok
}
