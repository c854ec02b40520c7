package helix

import (
	"fmt"

	"github.com/alidlorenzo/helix/lib/sexp"
)

// renderMember is the instance method every class component must define.
const renderMember = "render"

// staticMeta is the metadata tag marking a class member as belonging to
// the component type rather than its prototype.
const staticMeta = "static"

// ClassMember is one rendered member of a class specification: the
// member's name, kept verbatim as a string key, and its value form (a fn
// form for methods, the literal for value entries).
type ClassMember struct {
	Name  string
	Value sexp.Node
}

// ClassDef is a parsed defcomponent definition, partitioned into
// instance and static groups with each group's relative order preserved.
type ClassDef struct {
	Name     string
	Doc      string
	Instance []ClassMember
	Static   []ClassMember
}

// compileClass compiles a defcomponent definition into a create-class
// call with separate instance and statics objects.
func (c *Compiler) compileClass(name *sexp.Symbol, forms []sexp.Node) (*Compiled, error) {
	def := &ClassDef{Name: name.Name}

	if len(forms) > 0 {
		if doc, ok := forms[0].(*sexp.Str); ok {
			def.Doc = doc.Value
			forms = forms[1:]
		}
	}

	hasRender := false
	for _, form := range forms {
		entry, ok := form.(*sexp.List)
		if !ok {
			return nil, fmt.Errorf("%w: got %s", ErrBadMember, form.String())
		}
		member, static, err := c.compileMember(entry)
		if err != nil {
			return nil, err
		}
		if static {
			def.Static = append(def.Static, member)
		} else {
			def.Instance = append(def.Instance, member)
			if member.Name == renderMember {
				hasRender = true
			}
		}
	}
	if !hasRender {
		return nil, fmt.Errorf("%w: %s", ErrNoRender, def.Name)
	}

	out := &Compiled{
		Name:          def.Name,
		QualifiedName: c.qualify(def.Name),
		Doc:           def.Doc,
	}

	// Instance object always leads with the synthesized displayName.
	instance := []sexp.Node{sexp.Sym("obj"), sexp.String("displayName"), sexp.String(def.Name)}
	for _, m := range def.Instance {
		instance = append(instance, sexp.String(m.Name), m.Value)
	}
	statics := []sexp.Node{sexp.Sym("obj")}
	for _, m := range def.Static {
		statics = append(statics, sexp.String(m.Name), m.Value)
	}

	defItems := []sexp.Node{sexp.Sym("def"), sexp.Sym(def.Name)}
	if def.Doc != "" {
		defItems = append(defItems, sexp.String(def.Doc))
	}
	defItems = append(defItems, sexp.NewList(
		sexp.Sym("create-class"),
		sexp.NewList(instance...),
		sexp.NewList(statics...),
	))
	out.Form = sexp.NewList(defItems...)
	return out, nil
}

// compileMember classifies one specification entry. A call-shaped form
// with a vector second element is a method; anything else with a name
// and a value form is a value entry. The static tag may sit on the entry
// or on its name symbol.
func (c *Compiler) compileMember(entry *sexp.List) (ClassMember, bool, error) {
	if len(entry.Items) < 2 {
		return ClassMember{}, false, fmt.Errorf("%w: got %s", ErrBadMember, entry.String())
	}
	nameSym, ok := entry.Items[0].(*sexp.Symbol)
	if !ok {
		return ClassMember{}, false, fmt.Errorf("%w: member name must be a symbol, got %s", ErrBadMember, entry.Items[0].String())
	}
	static := entry.HasMeta(staticMeta) || nameSym.HasMeta(staticMeta)

	if params, ok := entry.Items[1].(*sexp.Vec); ok {
		body, err := c.expandAll(entry.Items[2:])
		if err != nil {
			return ClassMember{}, false, err
		}
		fnItems := append([]sexp.Node{sexp.Sym("fn"), sexp.Sym(nameSym.Base()), params}, body...)
		return ClassMember{Name: nameSym.Name, Value: sexp.NewList(fnItems...)}, static, nil
	}

	if len(entry.Items) != 2 {
		return ClassMember{}, false, fmt.Errorf("%w: value member %s wants a single value form", ErrBadMember, nameSym.Name)
	}
	value, err := c.Expand(entry.Items[1])
	if err != nil {
		return ClassMember{}, false, err
	}
	return ClassMember{Name: nameSym.Name, Value: value}, static, nil
}
