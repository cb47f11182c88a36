// Package primitive is the specification's §4.1 "primitive value reader":
// the leaf of the recursive-descent parser, reached once the expression and
// statement dispatchers have ruled out every composite shape and are left
// holding a scalar document node. It never recurses back into exprparse —
// the only upward dependency is pkg/types, for the named-constant and
// reserved-keyword vocabularies.
package primitive

import (
	"strconv"
	"strings"

	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/types"
)

// setReferenceSigil marks a string value as naming a named set rather than
// holding a literal symbol, e.g. "@blacklist".
const setReferenceSigil = "@"

// Read consumes a scalar document node and returns the immediate or constant
// expression it denotes. ok is false once a diagnostic has been queued on
// ctx.Errors; callers must not use the returned *ast.Expr in that case (it
// may be nil).
func Read(ctx *parsectx.Context, n *docnode.Node) (*ast.Expr, bool) {
	if n == nil || n.IsNull() {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "null is not a valid value in this position")
		return nil, false
	}

	switch n.Kind {
	case docnode.Integer:
		return ast.NewImmediateInteger(ctx.Loc(), strconv.FormatInt(n.Int, 10)), true

	case docnode.Boolean:
		if !ctx.Flags.Has(parsectx.RHS) {
			ctx.Errors.Add(errqueue.Context, ctx.Loc(), "boolean value is only admissible in context %s, got %s", parsectx.RHS, ctx.Flags)
			return nil, false
		}
		return ast.NewImmediateBoolean(ctx.Loc(), n.Bool), true

	case docnode.String:
		return readString(ctx, n.Str)

	case docnode.Real:
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "floating point value %q is not valid in any slot", n.Str)
		return nil, false

	default:
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "expected a scalar value, found %s", n.Kind)
		return nil, false
	}
}

// readString implements the string branch of §4.1 exactly: a leading `@`
// always strips to a set reference; otherwise a reserved keyword is always a
// bare symbol, a named constant is a typed byte constant but only in RHS
// context, and everything else is a plain symbol.
func readString(ctx *parsectx.Context, s string) (*ast.Expr, bool) {
	if name, ok := strings.CutPrefix(s, setReferenceSigil); ok {
		if name == "" {
			ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "set reference is missing a name after %q", setReferenceSigil)
			return nil, false
		}
		return ast.NewImmediateSetReference(ctx.Loc(), name), true
	}

	if types.IsKeyword(s) {
		return ast.NewImmediateSymbol(ctx.Loc(), s), true
	}

	if value, dtName, ok := types.NamedConstant(s); ok && ctx.Flags.Has(parsectx.RHS) {
		dt, _ := types.ParseDatatype(dtName)
		return ast.NewConstant(ctx.Loc(), dt, value), true
	}

	return ast.NewImmediateSymbol(ctx.Loc(), s), true
}
