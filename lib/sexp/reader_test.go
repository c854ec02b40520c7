package sexp

import (
	"strings"
	"testing"
)

func TestReadPrintRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // canonical printing; empty means identical to src
	}{
		{"symbol", "greeting", ""},
		{"qualified symbol", "hooks/use-state", ""},
		{"keyword", ":class", ""},
		{"rest marker keyword", ":&", ""},
		{"string", `"hello"`, ""},
		{"integer", "42", ""},
		{"negative float", "-3.25", ""},
		{"booleans", "(true false nil)", ""},
		{"list", `($ :div {:class "a"} "hi")`, ""},
		{"vector", "[props ref]", ""},
		{"map spacing", "{:a 1 :b 2}", "{:a 1, :b 2}"},
		{"nested map", "{:style {:color \"red\"}}", ""},
		{"commas are whitespace", "(a, b, c)", "(a b c)"},
		{"quote sugar", "'x", "(quote x)"},
		{"comment skipped", "(a ; trailing\n b)", "(a b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, err := Read(tt.src)
			if err != nil {
				t.Fatalf("Read(%q) error: %v", tt.src, err)
			}
			want := tt.want
			if want == "" {
				want = tt.src
			}
			if got := form.String(); got != want {
				t.Errorf("Read(%q).String() = %q, want %q", tt.src, got, want)
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"unterminated list", "(a b", "missing"},
		{"unmatched close", ")", "unmatched"},
		{"unterminated string", `"abc`, "unterminated string"},
		{"odd map", "{:a}", "even number"},
		{"empty keyword", ": x", "empty keyword"},
		{"trailing input", "a b", "trailing"},
		{"meta on literal", "^:static 1", "metadata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(tt.src)
			if err == nil {
				t.Fatalf("Read(%q) expected error", tt.src)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("Read(%q) error = %q, want substring %q", tt.src, err, tt.msg)
			}
		})
	}
}

func TestReadErrorPosition(t *testing.T) {
	_, err := Read("(a\n  \"oops")
	re, ok := err.(*ReadError)
	if !ok {
		t.Fatalf("expected *ReadError, got %T", err)
	}
	if re.Line != 2 {
		t.Errorf("error line = %d, want 2", re.Line)
	}
}

func TestReadAll(t *testing.T) {
	forms, err := ReadAll("(def a 1)\n;; comment\n(def b 2)")
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("ReadAll returned %d forms, want 2", len(forms))
	}
	if forms[1].String() != "(def b 2)" {
		t.Errorf("second form = %q", forms[1].String())
	}
}

func TestMetadata(t *testing.T) {
	form, err := Read("(^:static render [this] 1)")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	list := form.(*List)
	sym := list.Items[0].(*Symbol)
	if !sym.HasMeta("static") {
		t.Error("expected ^:static metadata on symbol")
	}
	if sym.String() != "render" {
		t.Errorf("symbol prints as %q, want %q", sym.String(), "render")
	}

	form, err = Read("^:static (default-props 1)")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if !form.(*List).HasMeta("static") {
		t.Error("expected ^:static metadata on list")
	}
}

func TestSymbolBase(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		want   string
	}{
		{"plain", "use-state", "use-state"},
		{"qualified", "hooks/use-state", "use-state"},
		{"division symbol", "/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sym(tt.symbol).Base(); got != tt.want {
				t.Errorf("Base(%q) = %q, want %q", tt.symbol, got, tt.want)
			}
		})
	}
}

func TestListHelpers(t *testing.T) {
	list := NewList(Sym("defnc"), Sym("greeting"), &Vec{Items: []Node{Sym("props")}})
	if list.Head().Name != "defnc" {
		t.Errorf("Head = %q", list.Head().Name)
	}
	name, ok := list.NameSymbol()
	if !ok || name.Name != "greeting" {
		t.Errorf("NameSymbol = %v, %v", name, ok)
	}

	empty := NewList()
	if empty.Head() != nil {
		t.Error("empty list Head should be nil")
	}
	if _, ok := empty.NameSymbol(); ok {
		t.Error("empty list should have no name symbol")
	}
}
