package stmtparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/registry"
	"github.com/joshuapare/nftkit/pkg/ast"
)

// buildMeter implements `meter`: {key, stmt} both required, name optional.
// The inner statement is a full recursive statement parse, not an
// expression.
func buildMeter(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	obj, ok := requireObject(ctx, operand, "meter")
	if !ok {
		return nil, false
	}
	keyNode, ok := requiredKey(ctx, obj, "key")
	if !ok {
		return nil, false
	}
	stmtNode, ok := requiredKey(ctx, obj, "stmt")
	if !ok {
		return nil, false
	}
	name, hasName, ok := optionalString(ctx, obj, "name")
	if !ok {
		return nil, false
	}
	key, ok := exprAt(ctx, parsectx.STMT, keyNode)
	if !ok {
		return nil, false
	}
	inner, ok := Parse(ctx, stmtNode)
	if !ok {
		return nil, false
	}
	return ast.NewMeterStmt(ctx.Loc(), name, hasName, key, inner), true
}

// buildQueue implements `queue`: num optional (STMT expr), flags optional
// string-or-array of {bypass, fanout}.
func buildQueue(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	obj, ok := requireObject(ctx, operand, "queue")
	if !ok {
		return nil, false
	}
	var num *ast.Expr
	if numNode, has := obj.Get("num"); has && !numNode.IsNull() {
		num, ok = exprAt(ctx, parsectx.STMT, numNode)
		if !ok {
			return nil, false
		}
	}
	var flags []string
	if flagsNode, has := obj.Get("flags"); has && !flagsNode.IsNull() {
		flags, ok = stringSet(ctx, flagsNode, "queue flags")
		if !ok {
			return nil, false
		}
		for _, f := range flags {
			if !registry.IsQueueFlag(f) {
				ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown queue flag %q", f)
				return nil, false
			}
		}
	}
	return ast.NewQueueStmt(ctx.Loc(), num, flags), true
}

// buildCtHelperRef implements the top-level `ct helper` statement: a
// reference expression parsed at STMT, distinct from the ct-helper
// sub-case inside `mangle`.
func buildCtHelperRef(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	ref, ok := exprAt(ctx, parsectx.STMT, operand)
	if !ok {
		return nil, false
	}
	return ast.NewCtHelperRefStmt(ctx.Loc(), ref), true
}

// buildVerdictMap implements the statement-position `map` form (a verdict
// map used directly as a rule statement rather than as an RHS value) —
// named in the specification's statement vocabulary though absent from the
// reference parser's statement table (Supplemented Feature). It reuses the
// expression-level map builder's contract and wraps the result as a
// verdict statement.
func buildVerdictMap(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	obj, ok := requireObject(ctx, operand, "map")
	if !ok {
		return nil, false
	}
	leftNode, ok := requiredKey(ctx, obj, "left")
	if !ok {
		return nil, false
	}
	rightNode, ok := requiredKey(ctx, obj, "right")
	if !ok {
		return nil, false
	}
	left, ok := exprAt(ctx, parsectx.STMT, leftNode)
	if !ok {
		return nil, false
	}
	right, ok := exprAt(ctx, parsectx.RHS, rightNode)
	if !ok {
		return nil, false
	}
	return ast.NewVerdictStmt(ctx.Loc(), ast.NewMap(ctx.Loc(), left, right)), true
}
