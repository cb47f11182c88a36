package parsectx

import (
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/location"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/evaluator"
)

// Context is the specification's "Parse context": an input descriptor, a
// message sink, an output command list, a shared evaluator handle, and the
// context-flag word. It is never shared across goroutines — per the
// concurrency model, "the context-flag word is thread-local by virtue of
// being an in-call value" — so Context carries no internal synchronization.
type Context struct {
	Indesc    *location.Descriptor
	Errors    *errqueue.Queue
	Commands  []*ast.Command
	Evaluator evaluator.Evaluator
	Flags     Flags
}

// New returns a Context ready to parse one document. eval may be nil, in
// which case evaluator.Nop{} is used (every command is accepted
// unconditionally — useful for parse-only callers and tests).
func New(indesc *location.Descriptor, eval evaluator.Evaluator) *Context {
	if eval == nil {
		eval = evaluator.Nop{}
	}
	return &Context{
		Indesc:    indesc,
		Errors:    errqueue.New(),
		Evaluator: eval,
	}
}

// WithFlags returns a shallow copy of ctx with exactly `set` substituted for
// the active flags, and runs fn with it. This is the "flag-scoped helper"
// the specification's §4.2 requires: "recursion into operands is always
// via a flag-scoped helper that sets exactly one of {RHS, STMT, PRIMARY,
// SET_RHS, MANGLE, SES, MAP} for the duration of the sub-parse and restores
// on return". Because Context is passed by value into fn's sub-call and
// never mutated in place here, the caller's own Flags field is untouched —
// restoration on return is automatic rather than needing an explicit
// pop/defer pair, matching the "push/pop with guaranteed restore on all
// exit paths" design note while keeping every call site a one-liner.
func (ctx *Context) WithFlags(set Flags, fn func(sub *Context)) {
	child := *ctx
	child.Flags = set
	fn(&child)
}

// Scoped returns a new *Context identical to ctx except for Flags, without
// invoking a callback — used where the caller needs to pass the scoped
// context into a function that returns a value, rather than a void
// callback (most builders use this form).
func (ctx *Context) Scoped(set Flags) *Context {
	child := *ctx
	child.Flags = set
	return &child
}

// Loc returns the location to stamp on a node built while parsing a node
// with no independent position tracking of its own. Document nodes decoded
// through docnode carry no line/column information (specification §3 notes
// the document node is a structural value, not a token stream), so every
// location in this module is the input descriptor paired with the Internal
// marker — real line/column spans are reserved for a future decoder that
// tracks json.Decoder token offsets.
func (ctx *Context) Loc() location.Location {
	return location.Location{Indesc: ctx.Indesc, Internal: true}
}

// Emit splices a successfully built command onto the output list — "Built
// commands are appended to the caller's list only after successful
// evaluation" (specification §3, Lifecycle).
func (ctx *Context) Emit(cmd *ast.Command) {
	ctx.Commands = append(ctx.Commands, cmd)
}
