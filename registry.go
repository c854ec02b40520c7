package helix

import (
	"fmt"
	"sync"

	"github.com/alidlorenzo/helix/lib/sexp"
)

// Registry collects compiled definitions in the order they were
// compiled. That order is the only cross-definition guarantee the
// compiler makes: registration effects are emitted in definition order,
// which the runtime reload registry depends on across reloads.
type Registry struct {
	mu    sync.RWMutex
	defs  map[string]*Compiled // keyed by qualified name
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Compiled)}
}

// Add registers compiled definitions.
// Panics on a qualified-name collision: two definitions bound to the
// same name in one namespace is a build bug, not a recoverable state.
func (reg *Registry) Add(defs ...*Compiled) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, def := range defs {
		if _, exists := reg.defs[def.QualifiedName]; exists {
			panic(fmt.Sprintf("helix: duplicate definition %q", def.QualifiedName))
		}
		reg.defs[def.QualifiedName] = def
		reg.order = append(reg.order, def.QualifiedName)
	}
}

// Get returns the definition registered under the qualified name.
func (reg *Registry) Get(qualified string) (*Compiled, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	def, ok := reg.defs[qualified]
	return def, ok
}

// Len returns the number of registered definitions.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.order)
}

// Forms concatenates every definition's emission in insertion order.
func (reg *Registry) Forms() []sexp.Node {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	var forms []sexp.Node
	for _, name := range reg.order {
		forms = append(forms, reg.defs[name].Forms()...)
	}
	return forms
}
