package graphml

import (
	"strconv"
	"unicode"
)

// Scope is the element kind a key applies to.
type Scope int

const (
	// ScopeNode marks keys used by <node> data.
	ScopeNode Scope = iota
	// ScopeEdge marks keys used by <edge> data.
	ScopeEdge
)

// String returns the GraphML "for" value of the scope.
func (s Scope) String() string {
	if s == ScopeEdge {
		return "edge"
	}
	return "node"
}

// attrType is the only declared attribute type.
const attrType = "string"

// Key is one <key> declaration.
type Key struct {
	ID   string
	For  Scope
	Name string
}

type scopedName struct {
	scope Scope
	name  string
}

// keyRegistry collects the keys referenced while the body is written.
// Declaration order is discovery order; lookups never drive ordering.
type keyRegistry struct {
	keys  []Key
	byKey map[scopedName]string
	taken map[string]struct{}
	next  int // suffix of the next generated k<n> id
}

func newKeyRegistry() *keyRegistry {
	return &keyRegistry{
		byKey: make(map[scopedName]string),
		taken: make(map[string]struct{}),
	}
}

// register returns the id for (scope, name), allocating one on first sight.
//
// The id is the name itself unless a key of the other scope already owns it,
// in which case "<scope>_<name>" is used, suffixed with "_2", "_3", ... until
// free. Names that are not valid NMTOKENs (empty, or containing spaces or
// markup) get a generated "k<n>" id instead; the name still appears in
// attr.name.
func (r *keyRegistry) register(scope Scope, name string) string {
	sn := scopedName{scope, name}
	if id, ok := r.byKey[sn]; ok {
		return id
	}
	id := r.allocate(scope, name)
	r.byKey[sn] = id
	r.taken[id] = struct{}{}
	r.keys = append(r.keys, Key{ID: id, For: scope, Name: name})
	return id
}

func (r *keyRegistry) allocate(scope Scope, name string) string {
	if !isNMToken(name) {
		for {
			id := "k" + strconv.Itoa(r.next)
			r.next++
			if !r.isTaken(id) {
				return id
			}
		}
	}
	if !r.isTaken(name) {
		return name
	}
	base := scope.String() + "_" + name
	if !r.isTaken(base) {
		return base
	}
	for n := 2; ; n++ {
		if id := base + "_" + strconv.Itoa(n); !r.isTaken(id) {
			return id
		}
	}
}

func (r *keyRegistry) isTaken(id string) bool {
	_, ok := r.taken[id]
	return ok
}

// isNMToken reports whether s matches the XML Nmtoken production, the type of
// key/@id and data/@key in the GraphML schema.
func isNMToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r),
			r == '.', r == '-', r == '_', r == ':', r == '\u00B7',
			unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nl):
		default:
			return false
		}
	}
	return true
}

// declarations returns the registered keys in discovery order.
func (r *keyRegistry) declarations() []Key { return r.keys }
