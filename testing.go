package helix

import (
	"testing"

	"github.com/alidlorenzo/helix/lib/sexp"
)

// MustRead parses a single DSL form, failing the test on a reader error.
func MustRead(t *testing.T, src string) sexp.Node {
	t.Helper()
	form, err := sexp.Read(src)
	if err != nil {
		t.Fatalf("read %q: %v", src, err)
	}
	return form
}

// MustCompile parses src as one definition form and compiles it, failing
// the test on any error.
func MustCompile(t *testing.T, c *Compiler, src string) *Compiled {
	t.Helper()
	out, err := c.Compile(MustRead(t, src))
	if err != nil {
		t.Fatalf("compile %q: %v", src, err)
	}
	return out
}

// MustExpand parses src and expands nested element forms, failing the
// test on any error.
func MustExpand(t *testing.T, c *Compiler, src string) sexp.Node {
	t.Helper()
	out, err := c.Expand(MustRead(t, src))
	if err != nil {
		t.Fatalf("expand %q: %v", src, err)
	}
	return out
}
