package sexp

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ReadError reports a reader failure with its source position.
type ReadError struct {
	Msg  string
	Line int
	Col  int
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("sexp: %s at %d:%d", e.Msg, e.Line, e.Col)
}

// Read parses a single form from src. Trailing input after the form is
// an error; use ReadAll for multi-form sources.
func Read(src string) (Node, error) {
	r := newReader(src)
	r.skipSpace()
	n, err := r.readForm()
	if err != nil {
		return nil, err
	}
	r.skipSpace()
	if !r.atEnd() {
		return nil, r.errorf("unexpected trailing input")
	}
	return n, nil
}

// ReadAll parses every top-level form in src.
func ReadAll(src string) ([]Node, error) {
	r := newReader(src)
	var forms []Node
	for {
		r.skipSpace()
		if r.atEnd() {
			return forms, nil
		}
		n, err := r.readForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, n)
	}
}

type reader struct {
	src  string
	pos  int
	line int
	col  int
}

func newReader(src string) *reader {
	return &reader{src: src, line: 1, col: 1}
}

func (r *reader) atEnd() bool { return r.pos >= len(r.src) }

func (r *reader) peek() rune {
	ch, _ := utf8.DecodeRuneInString(r.src[r.pos:])
	return ch
}

func (r *reader) next() rune {
	ch, size := utf8.DecodeRuneInString(r.src[r.pos:])
	r.pos += size
	if ch == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return ch
}

func (r *reader) errorf(format string, args ...any) error {
	return &ReadError{Msg: fmt.Sprintf(format, args...), Line: r.line, Col: r.col}
}

// skipSpace consumes whitespace, commas, and line comments. Commas are
// whitespace, as in the source DSL.
func (r *reader) skipSpace() {
	for !r.atEnd() {
		ch := r.peek()
		switch {
		case ch == ';':
			for !r.atEnd() && r.peek() != '\n' {
				r.next()
			}
		case unicode.IsSpace(ch) || ch == ',':
			r.next()
		default:
			return
		}
	}
}

func (r *reader) readForm() (Node, error) {
	if r.atEnd() {
		return nil, r.errorf("unexpected end of input")
	}
	switch ch := r.peek(); {
	case ch == '(':
		r.next()
		items, err := r.readSeq(')')
		if err != nil {
			return nil, err
		}
		return &List{Items: items}, nil
	case ch == '[':
		r.next()
		items, err := r.readSeq(']')
		if err != nil {
			return nil, err
		}
		return &Vec{Items: items}, nil
	case ch == '{':
		r.next()
		return r.readMap()
	case ch == ')' || ch == ']' || ch == '}':
		return nil, r.errorf("unmatched %q", ch)
	case ch == '"':
		return r.readString()
	case ch == '\'':
		r.next()
		r.skipSpace()
		quoted, err := r.readForm()
		if err != nil {
			return nil, err
		}
		return NewList(Sym("quote"), quoted), nil
	case ch == '^':
		return r.readMeta()
	case ch == ':':
		r.next()
		name := r.readToken()
		if name == "" {
			return nil, r.errorf("empty keyword")
		}
		return &Keyword{Name: name}, nil
	default:
		return r.readAtom()
	}
}

func (r *reader) readSeq(close rune) ([]Node, error) {
	var items []Node
	for {
		r.skipSpace()
		if r.atEnd() {
			return nil, r.errorf("missing %q", close)
		}
		if r.peek() == close {
			r.next()
			return items, nil
		}
		n, err := r.readForm()
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
}

func (r *reader) readMap() (Node, error) {
	items, err := r.readSeq('}')
	if err != nil {
		return nil, err
	}
	if len(items)%2 != 0 {
		return nil, r.errorf("map literal requires an even number of forms")
	}
	m := &Map{Pairs: make([]Pair, 0, len(items)/2)}
	for i := 0; i < len(items); i += 2 {
		m.Pairs = append(m.Pairs, Pair{Key: items[i], Value: items[i+1]})
	}
	return m, nil
}

func (r *reader) readString() (Node, error) {
	r.next() // opening quote
	var sb strings.Builder
	for {
		if r.atEnd() {
			return nil, r.errorf("unterminated string")
		}
		ch := r.next()
		if ch == '"' {
			return &Str{Value: sb.String()}, nil
		}
		if ch != '\\' {
			sb.WriteRune(ch)
			continue
		}
		if r.atEnd() {
			return nil, r.errorf("unterminated string escape")
		}
		switch esc := r.next(); esc {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '"', '\\':
			sb.WriteRune(esc)
		default:
			return nil, r.errorf("unknown string escape %q", esc)
		}
	}
}

// readMeta reads "^:kw form" and attaches the keyword to the form that
// follows. Only symbols and lists accept metadata.
func (r *reader) readMeta() (Node, error) {
	r.next() // '^'
	if r.atEnd() || r.peek() != ':' {
		return nil, r.errorf("expected keyword after '^'")
	}
	r.next()
	name := r.readToken()
	if name == "" {
		return nil, r.errorf("empty metadata keyword")
	}
	r.skipSpace()
	target, err := r.readForm()
	if err != nil {
		return nil, err
	}
	switch t := target.(type) {
	case *Symbol:
		t.Meta = append(t.Meta, name)
	case *List:
		t.Meta = append(t.Meta, name)
	default:
		return nil, r.errorf("metadata ^:%s cannot apply to %s", name, target.String())
	}
	return target, nil
}

func (r *reader) readAtom() (Node, error) {
	tok := r.readToken()
	if tok == "" {
		return nil, r.errorf("unexpected character %q", r.peek())
	}
	switch tok {
	case "nil":
		return &Nil{}, nil
	case "true":
		return &Bool{Value: true}, nil
	case "false":
		return &Bool{Value: false}, nil
	}
	if isNumeric(tok) {
		return &Num{Text: tok}, nil
	}
	return &Symbol{Name: tok}, nil
}

func (r *reader) readToken() string {
	start := r.pos
	for !r.atEnd() && isTokenRune(r.peek()) {
		r.next()
	}
	return r.src[start:r.pos]
}

func isTokenRune(ch rune) bool {
	if unicode.IsSpace(ch) {
		return false
	}
	switch ch {
	case '(', ')', '[', ']', '{', '}', '"', ';', ',', '\'', '^':
		return false
	}
	return true
}

func isNumeric(tok string) bool {
	i := 0
	if tok[0] == '+' || tok[0] == '-' {
		if len(tok) == 1 {
			return false
		}
		i = 1
	}
	digits, dot := false, false
	for ; i < len(tok); i++ {
		switch {
		case tok[i] >= '0' && tok[i] <= '9':
			digits = true
		case tok[i] == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits
}
