package stmtparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/registry"
	"github.com/joshuapare/nftkit/pkg/ast"
)

// buildMatch implements the `match` statement: {left, right, op}, left
// parsed with the caller's active flags and right at RHS, op optional and defaulting to
// implicit equality.
func buildMatch(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	obj, ok := requireObject(ctx, operand, "match")
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
	left, ok := exprAt(ctx, ctx.Flags, leftNode)
	if !ok {
		return nil, false
	}
	right, ok := exprAt(ctx, parsectx.RHS, rightNode)
	if !ok {
		return nil, false
	}
	op, present, ok := optionalString(ctx, obj, "op")
	if !ok {
		return nil, false
	}
	if !present {
		op = registry.DefaultRelationalOp
	} else if !registry.IsRelationalOp(op) {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown relational operator %q", op)
		return nil, false
	}
	return ast.NewMatchStmt(ctx.Loc(), ast.NewRelational(ctx.Loc(), op, left, right)), true
}

// buildCounter implements the `counter` statement: null/absent and
// {packets, bytes} both present build an inline counter; anything else is
// parsed as an object reference at STMT.
func buildCounter(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	if operand == nil || operand.IsNull() {
		return ast.NewInlineCounterStmt(ctx.Loc(), 0, 0), true
	}
	if operand.Kind == docnode.Object {
		packets, hasPackets, ok := optionalInt(ctx, operand, "packets")
		if !ok {
			return nil, false
		}
		bytes, hasBytes, ok := optionalInt(ctx, operand, "bytes")
		if !ok {
			return nil, false
		}
		if hasPackets && hasBytes {
			return ast.NewInlineCounterStmt(ctx.Loc(), packets, bytes), true
		}
	}
	ref, ok := exprAt(ctx, parsectx.STMT, operand)
	if !ok {
		return nil, false
	}
	return ast.NewCounterRefStmt(ctx.Loc(), ref), true
}

// buildNotrack implements `notrack`, which carries no payload.
func buildNotrack(ctx *parsectx.Context, _ *docnode.Node) (*ast.Stmt, bool) {
	return &ast.Stmt{Kind: ast.StmtNotrack, Loc: ctx.Loc()}, true
}

// buildVerdict returns a builder for one of the six bare verdict
// statements, wrapping the corresponding verdict expression.
func buildVerdict(kind string) builderFunc {
	return func(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
		target := ""
		if kind == "jump" || kind == "goto" {
			if operand == nil || operand.Kind != docnode.String {
				ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "%s requires a string chain target", kind)
				return nil, false
			}
			target = operand.Str
		}
		return ast.NewVerdictStmt(ctx.Loc(), ast.NewVerdict(ctx.Loc(), kind, target)), true
	}
}
