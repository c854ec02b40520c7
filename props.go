package helix

import (
	"fmt"

	"github.com/alidlorenzo/helix/lib/sexp"
)

// restMarker is the reserved property key whose value is a
// runtime-evaluated mapping merged beneath the literal entries.
const restMarker = "&"

// PlanKind discriminates the two property-construction strategies.
type PlanKind int

const (
	// PlanStatic means every entry is known at compile time and the
	// property object is built with a single obj call.
	PlanStatic PlanKind = iota

	// PlanDynamic means a rest marker was present and the static base is
	// merged with a runtime-evaluated mapping.
	PlanDynamic
)

// Entry is one compiled property: the rewritten key string and the
// unevaluated value form.
type Entry struct {
	Key   string
	Value sexp.Node
}

// Plan is a compiled property specification. The kind is decided once,
// at compile time, from the presence of the rest marker; it is never
// re-decided at runtime.
type Plan struct {
	Kind    PlanKind
	Entries []Entry
	Rest    sexp.Node // rest-marker value form, PlanDynamic only
	Native  bool
}

// Form renders the plan's construction call.
//
// Static plans become (obj "k" v ...). Dynamic plans become
// (merge-props (obj ...literals...) rest native?): the merge collaborator
// applies native key rewriting to the dynamic side before merging and
// lets literal entries win key collisions.
func (p *Plan) Form() sexp.Node {
	items := []sexp.Node{sexp.Sym("obj")}
	for _, e := range p.Entries {
		items = append(items, sexp.String(e.Key), e.Value)
	}
	base := sexp.NewList(items...)
	if p.Kind == PlanStatic {
		return base
	}
	return sexp.NewList(sexp.Sym("merge-props"), base, p.Rest, &sexp.Bool{Value: p.Native})
}

// CompileProps turns a literal property mapping into a construction
// Plan. Native targets have every literal key rewritten for the host
// runtime; composite targets receive the DSL-level keys verbatim.
//
// A form that is not a literal mapping is a compile-time failure.
func (c *Compiler) CompileProps(spec sexp.Node, native bool) (*Plan, error) {
	m, ok := spec.(*sexp.Map)
	if !ok {
		return nil, fmt.Errorf("%w, got %s", ErrNotMap, spec.String())
	}

	plan := &Plan{Kind: PlanStatic, Native: native}
	for _, pair := range m.Pairs {
		name, isIdent := identName(pair.Key)
		if isIdent && name == restMarker {
			if plan.Rest != nil {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateRest, spec.String())
			}
			plan.Kind = PlanDynamic
			rest, err := c.Expand(pair.Value)
			if err != nil {
				return nil, err
			}
			plan.Rest = rest
			continue
		}

		value, err := c.Expand(pair.Value)
		if err != nil {
			return nil, err
		}
		if !isIdent {
			// Non-identifier keys pass through on their printed form.
			plan.Entries = append(plan.Entries, Entry{Key: pair.Key.String(), Value: value})
			continue
		}
		if native {
			key, rewritten := rewriteKey(name, value)
			plan.Entries = append(plan.Entries, Entry{Key: key, Value: rewritten})
		} else {
			plan.Entries = append(plan.Entries, Entry{Key: name, Value: value})
		}
	}
	return plan, nil
}

// rewriteKey maps one DSL property key and value to the host runtime's
// spelling. A handful of reserved keys translate to different attribute
// names; :style additionally rewrites its value; everything else goes
// through CamelCase with the value untouched.
func rewriteKey(name string, value sexp.Node) (string, sexp.Node) {
	switch name {
	case "class":
		return "className", value
	case "for":
		return "htmlFor", value
	case "style":
		return "style", rewriteStyleValue(value)
	default:
		return CamelCase(name), value
	}
}

// rewriteStyleValue compiles an inline-style value. A literal mapping is
// rebuilt key by key with camelCased names, recursing into nested
// mappings so vendor-prefixed sub-objects are rewritten too. Any other
// shape is unknown at compile time and is wrapped in the generic
// deep-convert call.
func rewriteStyleValue(value sexp.Node) sexp.Node {
	m, ok := value.(*sexp.Map)
	if !ok {
		return sexp.NewList(sexp.Sym("->js"), value)
	}
	return rewriteStyleMap(m)
}

func rewriteStyleMap(m *sexp.Map) sexp.Node {
	items := []sexp.Node{sexp.Sym("obj")}
	for _, pair := range m.Pairs {
		key := pair.Key.String()
		if name, isIdent := identName(pair.Key); isIdent {
			key = CamelCase(name)
		}
		value := pair.Value
		if nested, ok := value.(*sexp.Map); ok {
			value = rewriteStyleMap(nested)
		}
		items = append(items, sexp.String(key), value)
	}
	return sexp.NewList(items...)
}
