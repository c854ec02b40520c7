package helix

import (
	"github.com/alidlorenzo/helix/lib/sexp"
)

// Element-construction form heads recognized during expansion.
const (
	elementHead  = "$"
	fragmentHead = "<>"
)

// CompileElement compiles one element-construction form: a target plus
// its argument forms. Keyword and string targets are native tags and are
// emitted as their plain string name with property keys rewritten; any
// other target is a composite component reference and receives its
// property keys verbatim.
//
// When the first argument is a literal mapping it is the property
// specification. Any other first argument, including a map constructed
// at runtime, is treated as a child: ambiguity always resolves toward
// children, never toward an error.
func (c *Compiler) CompileElement(target sexp.Node, args []sexp.Node) (sexp.Node, error) {
	native := false
	switch t := target.(type) {
	case *sexp.Keyword:
		native = true
		target = sexp.String(t.Name)
	case *sexp.Str:
		native = true
		target = sexp.String(t.Value)
	default:
		expanded, err := c.Expand(target)
		if err != nil {
			return nil, err
		}
		target = expanded
	}

	var props sexp.Node = &sexp.Nil{}
	children := args
	if len(args) > 0 {
		if m, ok := args[0].(*sexp.Map); ok {
			plan, err := c.CompileProps(m, native)
			if err != nil {
				return nil, err
			}
			props = plan.Form()
			children = args[1:]
		}
	}

	call := []sexp.Node{sexp.Sym("create-element"), target, props}
	for _, child := range children {
		expanded, err := c.Expand(child)
		if err != nil {
			return nil, err
		}
		call = append(call, expanded)
	}
	return sexp.NewList(call...), nil
}

// Expand rewrites every nested element-construction form ($ and <>)
// inside n into its create-element call. Each nested form is an
// independent submission to CompileElement; all other forms are rebuilt
// structurally with their children expanded, and quoted data is left
// untouched.
func (c *Compiler) Expand(n sexp.Node) (sexp.Node, error) {
	switch t := n.(type) {
	case *sexp.List:
		if head := t.Head(); head != nil {
			switch head.Name {
			case "quote":
				return t, nil
			case elementHead:
				if len(t.Items) < 2 {
					return t, nil
				}
				return c.CompileElement(t.Items[1], t.Items[2:])
			case fragmentHead:
				return c.CompileElement(sexp.Sym("Fragment"), t.Items[1:])
			}
		}
		items, err := c.expandAll(t.Items)
		if err != nil {
			return nil, err
		}
		return &sexp.List{Items: items, Meta: t.Meta}, nil
	case *sexp.Vec:
		items, err := c.expandAll(t.Items)
		if err != nil {
			return nil, err
		}
		return &sexp.Vec{Items: items}, nil
	case *sexp.Map:
		pairs := make([]sexp.Pair, 0, len(t.Pairs))
		for _, p := range t.Pairs {
			value, err := c.Expand(p.Value)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, sexp.Pair{Key: p.Key, Value: value})
		}
		return &sexp.Map{Pairs: pairs}, nil
	default:
		return n, nil
	}
}

func (c *Compiler) expandAll(items []sexp.Node) ([]sexp.Node, error) {
	out := make([]sexp.Node, 0, len(items))
	for _, it := range items {
		expanded, err := c.Expand(it)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return out, nil
}
