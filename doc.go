// Package helix compiles a Lisp-style component-definition DSL into
// construction calls against a host UI runtime's element-creation and
// class-component APIs.
//
// helix is a small compiler: it pattern matches over unevaluated forms,
// decides at compile time whether property objects can be built
// statically or must be merged at runtime, and emits the most efficient
// construction code it can prove correct, falling back to a dynamic
// path whenever the author's intent is ambiguous.
//
// # Definitions
//
// Three definition forms are compiled:
//
//	(defnc greeting "docstring" [props ref]
//	  {:wrap [memo]}
//	  ($ :div {:class "greeting"} (. props name)))
//
//	(defhook use-counter [initial]
//	  (use-state initial))
//
//	(defcomponent error-boundary
//	  (render [this] ($ :div "oops"))
//	  (^:static derived-state-from-error [err] {:failed true}))
//
// defnc and defhook produce a wrapped render function; defcomponent
// partitions its members into instance and static objects and passes
// both to the class factory. Nested ($ target props? children...) forms
// expand to (create-element target props-or-nil children...), and (<>
// children...) to a Fragment element.
//
// # Static versus dynamic properties
//
// A literal property map without the :& rest marker compiles to a single
// (obj "key" value ...) call with every key rewritten for native
// targets (:class becomes "className", dashed names camelCase, aria-
// and data- prefixes stay verbatim). With the rest marker, the literal
// entries still compile statically and the result is merged at runtime
// with the marker's mapping, literal entries winning collisions.
//
// # Development instrumentation
//
// With Config.Debug set, each functional definition additionally emits a
// hot-reload signature slot, a displayName, and the signature-bind and
// register! calls the reload tooling consumes. These side effects are
// explicit Effect values on the Compiled result, so build tooling can
// emit, skip, or batch them. With Debug unset the emitted code carries
// no instrumentation at all.
//
// All compilation is synchronous and per definition; a failed definition
// aborts only itself.
package helix
