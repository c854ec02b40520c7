package helix

import (
	"fmt"
	"strings"

	"github.com/alidlorenzo/helix/lib/sexp"
	"github.com/alidlorenzo/helix/lib/signature"
)

// functionalKind distinguishes defnc from defhook: both share the parse
// and emission pipeline, but components constrain the binding vector to
// (props, optional ref) and get a displayName, while hooks only
// constrain the name.
type functionalKind int

const (
	componentKind functionalKind = iota
	hookKind
)

// FunctionalDef is a parsed defnc or defhook definition.
type FunctionalDef struct {
	Name     string
	Doc      string
	Params   *sexp.Vec
	Wrappers []sexp.Node
	Body     []sexp.Node
}

// parseFunctional parses, in strict order: an optional leading docstring,
// the required binding vector, an optional options map (only treated as
// options when further body forms follow), and the body.
func (c *Compiler) parseFunctional(name *sexp.Symbol, forms []sexp.Node, kind functionalKind) (*FunctionalDef, error) {
	def := &FunctionalDef{Name: name.Name}

	if len(forms) > 1 {
		if doc, ok := forms[0].(*sexp.Str); ok {
			def.Doc = doc.Value
			forms = forms[1:]
		}
	}

	if len(forms) == 0 {
		return nil, fmt.Errorf("%w: %s has no binding vector", ErrBadBinding, def.Name)
	}
	params, ok := forms[0].(*sexp.Vec)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrBadBinding, forms[0].String())
	}
	if kind == componentKind && (len(params.Items) < 1 || len(params.Items) > 2) {
		return nil, fmt.Errorf("%w: want [props] or [props ref], got %s", ErrBadBinding, params.String())
	}
	def.Params = params
	forms = forms[1:]

	// A leading map is the options form only when body forms follow it;
	// a lone trailing map is the render result.
	if len(forms) > 1 {
		if opts, ok := forms[0].(*sexp.Map); ok {
			wrappers, err := parseOptions(opts)
			if err != nil {
				return nil, err
			}
			def.Wrappers = wrappers
			forms = forms[1:]
		}
	}

	def.Body = forms
	return def, nil
}

// parseOptions reads the recognized option keys. :wrap holds an ordered
// vector of higher-order forms applied around the compiled render
// function, left to right.
func parseOptions(opts *sexp.Map) ([]sexp.Node, error) {
	var wrappers []sexp.Node
	for _, p := range opts.Pairs {
		key, ok := p.Key.(*sexp.Keyword)
		if !ok {
			return nil, fmt.Errorf("%w: key %s", ErrBadOptions, p.Key.String())
		}
		switch key.Name {
		case "wrap":
			vec, ok := p.Value.(*sexp.Vec)
			if !ok {
				return nil, fmt.Errorf("%w: :wrap wants a vector, got %s", ErrBadOptions, p.Value.String())
			}
			wrappers = vec.Items
		default:
			return nil, fmt.Errorf("%w: unknown option :%s", ErrBadOptions, key.Name)
		}
	}
	return wrappers, nil
}

// compileFunctional compiles a defnc or defhook definition into its
// bound render function plus, in debug mode, the hot-reload effects.
func (c *Compiler) compileFunctional(name *sexp.Symbol, forms []sexp.Node, kind functionalKind) (*Compiled, error) {
	if kind == hookKind && !strings.HasPrefix(name.Name, "use-") {
		return nil, fmt.Errorf("%w: %s", ErrBadHookName, name.Name)
	}

	def, err := c.parseFunctional(name, forms, kind)
	if err != nil {
		return nil, err
	}

	hooks := AnalyzeHooks(def.Body)
	body, err := c.expandAll(def.Body)
	if err != nil {
		return nil, err
	}
	wrappers, err := c.expandAll(def.Wrappers)
	if err != nil {
		return nil, err
	}

	out := &Compiled{
		Name:          def.Name,
		QualifiedName: c.qualify(def.Name),
		Doc:           def.Doc,
		Hooks:         hooks,
	}
	sigSym := sexp.Sym(def.Name + "-sig")

	// Render function. In debug mode its body first pokes the signature
	// slot; the slot is nil on first compile, so the call is guarded.
	fnItems := []sexp.Node{sexp.Sym("fn"), sexp.Sym(def.Name), def.Params}
	if c.cfg.Debug {
		fnItems = append(fnItems, sexp.NewList(sexp.Sym("when"), sigSym, sexp.NewList(sigSym)))
	}
	fnItems = append(fnItems, body...)
	render := sexp.NewList(fnItems...)

	value := c.emitValue(render, wrappers, kind, out.QualifiedName)

	defItems := []sexp.Node{sexp.Sym("def"), sexp.Sym(def.Name)}
	if def.Doc != "" {
		defItems = append(defItems, sexp.String(def.Doc))
	}
	defItems = append(defItems, value)
	out.Form = sexp.NewList(defItems...)

	if c.cfg.Debug {
		sig, err := signature.Serialize(hookNames(hooks))
		if err != nil {
			return nil, fmt.Errorf("helix: serialize hook signature for %s: %w", def.Name, err)
		}
		out.Signature = sig
		out.Effects = []Effect{
			{Kind: EffectSignatureSlot, Form: sexp.NewList(sexp.Sym("def"), sigSym, sexp.NewList(sexp.Sym("signature!")))},
			{Kind: EffectSignatureBind, Form: sexp.NewList(sexp.Sym("when"), sigSym,
				sexp.NewList(sigSym, sexp.Sym(def.Name), sexp.String(sig), &sexp.Nil{}, &sexp.Nil{}))},
			{Kind: EffectRegister, Form: sexp.NewList(sexp.Sym("register!"), sexp.Sym(def.Name), sexp.String(out.QualifiedName))},
		}
	}

	return out, nil
}

// emitValue wraps the render function for binding: attaching the debug
// display name first, then threading the wrapper forms in author order.
func (c *Compiler) emitValue(render sexp.Node, wrappers []sexp.Node, kind functionalKind, qualified string) sexp.Node {
	threaded := func(fn sexp.Node) sexp.Node {
		if len(wrappers) == 0 {
			return fn
		}
		items := append([]sexp.Node{sexp.Sym("->"), fn}, wrappers...)
		return sexp.NewList(items...)
	}

	if !c.cfg.Debug || kind == hookKind {
		return threaded(render)
	}

	// (let [render (fn ...)] (set! (.-displayName render) "ns/name") (-> render ...))
	renderSym := sexp.Sym("render")
	return sexp.NewList(
		sexp.Sym("let"),
		&sexp.Vec{Items: []sexp.Node{renderSym, render}},
		sexp.NewList(sexp.Sym("set!"),
			sexp.NewList(sexp.Sym(".-displayName"), renderSym),
			sexp.String(qualified)),
		threaded(renderSym),
	)
}
