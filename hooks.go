package helix

import (
	"strings"

	"github.com/alidlorenzo/helix/lib/sexp"
)

// HookCall describes one hook invocation found in a component body:
// the hook's symbol name and the full unevaluated invocation form.
type HookCall struct {
	Name string
	Form *sexp.List
}

// AnalyzeHooks statically scans an unevaluated body for hook
// invocations: list forms whose head symbol follows the host runtime's
// naming convention (a base name starting with "use-", with or without a
// namespace qualifier).
//
// The result is ordered by a depth-first, left-to-right walk and is not
// deduplicated, matching the order the hooks would execute in. Quoted
// forms are data and are skipped. Nothing is ever evaluated.
func AnalyzeHooks(body []sexp.Node) []HookCall {
	var hooks []HookCall
	for _, form := range body {
		hooks = scanHooks(form, hooks)
	}
	return hooks
}

func scanHooks(n sexp.Node, hooks []HookCall) []HookCall {
	switch t := n.(type) {
	case *sexp.List:
		if head := t.Head(); head != nil {
			if head.Name == "quote" {
				return hooks
			}
			if isHookName(head) {
				hooks = append(hooks, HookCall{Name: head.Name, Form: t})
			}
		}
		for _, item := range t.Items {
			hooks = scanHooks(item, hooks)
		}
	case *sexp.Vec:
		for _, item := range t.Items {
			hooks = scanHooks(item, hooks)
		}
	case *sexp.Map:
		for _, p := range t.Pairs {
			hooks = scanHooks(p.Key, hooks)
			hooks = scanHooks(p.Value, hooks)
		}
	}
	return hooks
}

func isHookName(sym *sexp.Symbol) bool {
	base := sym.Base()
	return strings.HasPrefix(base, "use-") && len(base) > len("use-")
}

// hookNames projects the descriptor list down to the ordered name list
// that gets serialized into the reload signature.
func hookNames(hooks []HookCall) []string {
	names := make([]string, 0, len(hooks))
	for _, h := range hooks {
		names = append(names, h.Name)
	}
	return names
}
