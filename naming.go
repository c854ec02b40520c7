package helix

import (
	"strings"

	"github.com/alidlorenzo/helix/lib/sexp"
)

// reservedPrefixes are the attribute namespaces whose dashed names the
// host runtime expects verbatim (accessibility and custom-data
// attributes). Identifiers starting with one of these are never
// camelCased.
var reservedPrefixes = map[string]bool{
	"aria": true,
	"data": true,
}

// CamelCase converts a dash-delimited identifier into its host-runtime
// camelCase spelling: "background-color" becomes "backgroundColor".
//
// Identifiers with no dash, identifiers under a reserved prefix
// ("aria-label", "data-id"), and already-canonical names pass through
// unchanged. CamelCase never fails; unrecognized shapes degrade to
// identity.
func CamelCase(name string) string {
	words := strings.Split(name, "-")
	if len(words) < 2 || reservedPrefixes[words[0]] {
		return name
	}
	var sb strings.Builder
	sb.WriteString(words[0])
	for _, w := range words[1:] {
		sb.WriteString(capitalize(w))
	}
	return sb.String()
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

// identName extracts the DSL-level name of an identifier form. Symbols,
// keywords, and strings are name-like; anything else is not an
// identifier and reports false.
func identName(n sexp.Node) (string, bool) {
	switch t := n.(type) {
	case *sexp.Keyword:
		return t.Name, true
	case *sexp.Symbol:
		return t.Name, true
	case *sexp.Str:
		return t.Value, true
	default:
		return "", false
	}
}
