package helix

import (
	"github.com/alidlorenzo/helix/lib/sexp"
)

// EffectKind identifies a registration side effect emitted alongside a
// compiled definition.
type EffectKind int

const (
	// EffectSignatureSlot reserves the hot-reload signature handle.
	// Emitted before the definition form.
	EffectSignatureSlot EffectKind = iota

	// EffectSignatureBind binds the reserved handle to the compiled
	// function and its serialized hook signature. Emitted after the
	// definition form.
	EffectSignatureBind

	// EffectRegister registers the bound function with the reload
	// tracking registry under its fully qualified name. Emitted after
	// the definition form.
	EffectRegister
)

// Effect is one registration side effect of compiling a definition.
//
// Effects are explicit output values rather than implicit compiler side
// effects: build tooling can emit, skip, or batch them. An effect's kind
// determines whether its form belongs before or after the definition.
type Effect struct {
	Kind EffectKind
	Form sexp.Node
}

// Pre reports whether the effect's form is emitted before the
// definition form.
func (e Effect) Pre() bool { return e.Kind == EffectSignatureSlot }

// Compiled is the output of compiling a single component definition.
// It is produced once from its source form and never mutated.
type Compiled struct {
	// Name is the definition's bound name.
	Name string

	// QualifiedName is "namespace/name", used for display names and
	// reload registration.
	QualifiedName string

	// Doc is the parsed docstring, empty when absent.
	Doc string

	// Form is the definition form binding Name.
	Form sexp.Node

	// Hooks is the ordered hook-invocation list found in the body.
	Hooks []HookCall

	// Signature is the serialized hook signature. Empty unless the
	// compiler runs in debug mode.
	Signature string

	// Effects holds the registration side effects, in emission order.
	// Empty unless the compiler runs in debug mode.
	Effects []Effect
}

// Forms returns the complete ordered emission for the definition:
// pre-definition effects, the definition form, post-definition effects.
func (r *Compiled) Forms() []sexp.Node {
	forms := make([]sexp.Node, 0, len(r.Effects)+1)
	for _, e := range r.Effects {
		if e.Pre() {
			forms = append(forms, e.Form)
		}
	}
	forms = append(forms, r.Form)
	for _, e := range r.Effects {
		if !e.Pre() {
			forms = append(forms, e.Form)
		}
	}
	return forms
}

// Source renders the emission as text, one top-level form per line.
func (r *Compiled) Source() string {
	var sb []byte
	for i, f := range r.Forms() {
		if i > 0 {
			sb = append(sb, '\n')
		}
		sb = append(sb, f.String()...)
	}
	return string(sb)
}
