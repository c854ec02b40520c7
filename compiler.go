package helix

import (
	"fmt"

	"github.com/alidlorenzo/helix/lib/sexp"
)

// Config controls compilation.
//
// Debug is the process-wide development flag threaded in explicitly: it
// gates every piece of instrumentation (signature slots, display names,
// reload registration). The same parameterized emitter produces both the
// instrumented and the bare code shape.
type Config struct {
	Debug     bool
	Namespace string
}

// Compiler translates component-definition forms into host-runtime
// construction code. It holds no mutable state; compiling definitions in
// any order produces the same output per definition.
type Compiler struct {
	cfg Config
}

// New creates a compiler with the given configuration.
func New(cfg Config) *Compiler {
	return &Compiler{cfg: cfg}
}

// DefKind discriminates the two component-definition shapes.
type DefKind int

const (
	// KindFunctional is a defnc or defhook definition.
	KindFunctional DefKind = iota

	// KindClass is a defcomponent definition.
	KindClass
)

// IsDefinition reports whether form is a component definition the
// compiler accepts, and which kind.
func IsDefinition(form sexp.Node) (DefKind, bool) {
	list, ok := form.(*sexp.List)
	if !ok {
		return 0, false
	}
	head := list.Head()
	if head == nil {
		return 0, false
	}
	switch head.Name {
	case "defnc", "defhook":
		return KindFunctional, true
	case "defcomponent":
		return KindClass, true
	}
	return 0, false
}

// Compile compiles one author-level definition form. The head symbol is
// the single discriminant: defnc and defhook take the functional path,
// defcomponent the class path. Anything else is rejected.
func (c *Compiler) Compile(form sexp.Node) (*Compiled, error) {
	list, ok := form.(*sexp.List)
	if !ok || list.Head() == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotDefinition, form.String())
	}
	head := list.Head()
	name, ok := list.NameSymbol()
	if !ok {
		return nil, fmt.Errorf("%w: %s is missing a name", ErrNotDefinition, head.Name)
	}
	rest := list.Items[2:]

	switch head.Name {
	case "defnc":
		return c.compileFunctional(name, rest, componentKind)
	case "defhook":
		return c.compileFunctional(name, rest, hookKind)
	case "defcomponent":
		return c.compileClass(name, rest)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotDefinition, head.Name)
	}
}

// qualify builds the fully qualified name used for display names and
// reload registration.
func (c *Compiler) qualify(name string) string {
	if c.cfg.Namespace == "" {
		return name
	}
	return c.cfg.Namespace + "/" + name
}
