package exprparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
)

// buildNumgen implements §4.2's numgen contract.
func buildNumgen(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	obj, ok := requireObject(ctx, operand, "numgen")
	if !ok {
		return nil, false
	}
	mode, ok := requiredString(ctx, obj, "mode")
	if !ok {
		return nil, false
	}
	if mode != "inc" && mode != "random" {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown numgen mode %q", mode)
		return nil, false
	}
	mod, ok := requiredInt(ctx, obj, "mod")
	if !ok {
		return nil, false
	}
	offset, _, ok := optionalInt(ctx, obj, "offset")
	if !ok {
		return nil, false
	}
	return ast.NewNumgen(ctx.Loc(), mode, int64(mod), int64(offset)), true
}

// buildSymHash implements §4.2's symhash contract: no sub-expression.
func buildSymHash(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	obj, ok := requireObject(ctx, operand, "symhash")
	if !ok {
		return nil, false
	}
	mod, ok := requiredInt(ctx, obj, "mod")
	if !ok {
		return nil, false
	}
	seed, hasSeed, ok := optionalInt(ctx, obj, "seed")
	if !ok {
		return nil, false
	}
	offset, _, ok := optionalInt(ctx, obj, "offset")
	if !ok {
		return nil, false
	}
	return ast.NewHash(ctx.Loc(), "symhash", int64(mod), int64(seed), hasSeed, int64(offset), nil), true
}

// buildJHash implements §4.2's jhash contract: a required `expr` parsed at
// the current context, and an optional integer seed.
func buildJHash(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	obj, ok := requireObject(ctx, operand, "jhash")
	if !ok {
		return nil, false
	}
	mod, ok := requiredInt(ctx, obj, "mod")
	if !ok {
		return nil, false
	}
	exprNode, ok := requiredKey(ctx, obj, "expr")
	if !ok {
		return nil, false
	}
	subExpr, ok := sub(ctx, ctx.Flags, exprNode)
	if !ok {
		return nil, false
	}
	seed, hasSeed, ok := optionalInt(ctx, obj, "seed")
	if !ok {
		return nil, false
	}
	offset, _, ok := optionalInt(ctx, obj, "offset")
	if !ok {
		return nil, false
	}
	return ast.NewHash(ctx.Loc(), "jhash", int64(mod), int64(seed), hasSeed, int64(offset), subExpr), true
}
