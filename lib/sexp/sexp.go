// Package sexp models the unevaluated forms of the helix component DSL.
//
// A form is a tree of Node values: symbols, keywords, strings, numbers,
// booleans, nil, lists, vectors, and ordered maps. The compiler pattern
// matches over these trees and emits new trees; Node.String produces the
// canonical text used verbatim as emitted code.
package sexp

import (
	"strconv"
	"strings"
)

// Node is a single DSL form.
type Node interface {
	// String renders the form as canonical DSL text.
	String() string
}

// Symbol is an identifier form, optionally qualified ("hooks/use-state").
// Meta holds reader metadata keywords attached with ^:kw syntax.
type Symbol struct {
	Name string
	Meta []string
}

func (s *Symbol) String() string { return s.Name }

// Base returns the symbol name without any namespace qualifier.
func (s *Symbol) Base() string {
	if i := strings.LastIndex(s.Name, "/"); i >= 0 && i+1 < len(s.Name) {
		return s.Name[i+1:]
	}
	return s.Name
}

// HasMeta reports whether the reader attached the given metadata keyword.
func (s *Symbol) HasMeta(name string) bool {
	for _, m := range s.Meta {
		if m == name {
			return true
		}
	}
	return false
}

// Keyword is a ":name" form.
type Keyword struct {
	Name string
}

func (k *Keyword) String() string { return ":" + k.Name }

// Str is a string literal.
type Str struct {
	Value string
}

func (s *Str) String() string { return strconv.Quote(s.Value) }

// Num is a numeric literal. The source text is preserved so emission
// never reformats author-written numbers.
type Num struct {
	Text string
}

func (n *Num) String() string { return n.Text }

// Bool is true or false.
type Bool struct {
	Value bool
}

func (b *Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Nil is the nil literal.
type Nil struct{}

func (*Nil) String() string { return "nil" }

// List is a "(...)" form. Meta holds reader metadata keywords.
type List struct {
	Items []Node
	Meta  []string
}

func (l *List) String() string { return joinForms("(", l.Items, ")") }

// HasMeta reports whether the reader attached the given metadata keyword.
func (l *List) HasMeta(name string) bool {
	for _, m := range l.Meta {
		if m == name {
			return true
		}
	}
	return false
}

// Head returns the list's leading symbol, or nil if the list is empty or
// does not start with a symbol.
func (l *List) Head() *Symbol {
	if len(l.Items) == 0 {
		return nil
	}
	sym, _ := l.Items[0].(*Symbol)
	return sym
}

// NameSymbol returns the list's second item as a symbol, the position a
// definition form keeps its name in. Reports false when absent or not a
// symbol.
func (l *List) NameSymbol() (*Symbol, bool) {
	if len(l.Items) < 2 {
		return nil, false
	}
	sym, ok := l.Items[1].(*Symbol)
	return sym, ok
}

// Vec is a "[...]" form.
type Vec struct {
	Items []Node
}

func (v *Vec) String() string { return joinForms("[", v.Items, "]") }

// Pair is one key/value entry of a Map.
type Pair struct {
	Key   Node
	Value Node
}

// Map is a "{...}" form. Entry order is the author's order and is
// preserved through compilation.
type Map struct {
	Pairs []Pair
}

func (m *Map) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, p := range m.Pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Key.String())
		sb.WriteString(" ")
		sb.WriteString(p.Value.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// NewList builds a list form from the given items.
func NewList(items ...Node) *List { return &List{Items: items} }

// Sym builds a symbol form.
func Sym(name string) *Symbol { return &Symbol{Name: name} }

// Key builds a keyword form.
func Key(name string) *Keyword { return &Keyword{Name: name} }

// String builds a string literal form.
func String(v string) *Str { return &Str{Value: v} }

func joinForms(open string, items []Node, close string) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, it := range items {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(it.String())
	}
	sb.WriteString(close)
	return sb.String()
}
