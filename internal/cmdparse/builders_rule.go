package cmdparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/types"
)

// buildCmdRule implements the rule object kind: {family, table, chain,
// expr} for add/create, {family, table, chain, handle} for delete. expr is
// an array of one-key statement objects; pos and comment are optional.
func buildCmdRule(ctx *parsectx.Context, op ast.Op, operand *docnode.Node) (*ast.Command, bool) {
	obj, ok := requireObject(ctx, operand, "rule")
	if !ok {
		return nil, false
	}
	family, ok := requiredFamily(ctx, obj)
	if !ok {
		return nil, false
	}
	table, ok := requiredString(ctx, obj, "table")
	if !ok {
		return nil, false
	}
	chain, ok := requiredString(ctx, obj, "chain")
	if !ok {
		return nil, false
	}
	h := types.Handle{Family: family, Table: table, Chain: chain}

	if op == ast.OpDelete {
		handle, ok := requiredInt(ctx, obj, "handle")
		if !ok {
			return nil, false
		}
		h.ID, h.HasID = handle, true
		return ast.NewCommand(op, ast.ObjRule, h, ctx.Loc()), true
	}

	exprNode, ok := requiredKey(ctx, obj, "expr")
	if !ok {
		return nil, false
	}
	if exprNode.Kind != docnode.Array {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "value of property \"expr\" must be an array")
		return nil, false
	}

	if pos, hasPos, ok := optionalInt(ctx, obj, "pos"); !ok {
		return nil, false
	} else if hasPos {
		h.Position, h.HasPos = pos, true
	}

	cmd := ast.NewCommand(op, ast.ObjRule, h, ctx.Loc())

	comment, hasComment, ok := optionalString(ctx, obj, "comment")
	if !ok {
		return nil, false
	}
	cmd.Comment, cmd.HasComment = comment, hasComment

	stmts := make([]*ast.Stmt, 0, exprNode.Len())
	for i, item := range exprNode.Items() {
		if item.Kind != docnode.Object {
			ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "expr array element %d must be an object", i)
			return nil, false
		}
		s, ok := stmtAt(ctx, item)
		if !ok {
			return nil, false
		}
		stmts = append(stmts, s)
	}
	cmd.Statements = stmts
	return cmd, true
}

// buildCmdReplace implements the shared rule-only builder for `replace`
// (handle required) and `insert` (pos required): {family, table, chain,
// expr, handle | pos}. A stray `rule` property is rejected as a Structural
// error — the reference parser's equivalent function declares a local rule
// pointer and unpacks a "rule" key into it, which reads as an attempt to
// detect an unexpected nested `rule` sub-document rather than to parse one;
// this builder honours that apparent intent instead of the literal
// always-required reading.
func buildCmdReplace(ctx *parsectx.Context, op ast.Op, operand *docnode.Node) (*ast.Command, bool) {
	obj, ok := requireObject(ctx, operand, "replace")
	if !ok {
		return nil, false
	}
	if _, has := obj.Get("rule"); has {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "unexpected %q property in replace/insert command", "rule")
		return nil, false
	}
	family, ok := requiredFamily(ctx, obj)
	if !ok {
		return nil, false
	}
	table, ok := requiredString(ctx, obj, "table")
	if !ok {
		return nil, false
	}
	chain, ok := requiredString(ctx, obj, "chain")
	if !ok {
		return nil, false
	}
	exprNode, ok := requiredKey(ctx, obj, "expr")
	if !ok {
		return nil, false
	}
	if exprNode.Kind != docnode.Array {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "value of property \"expr\" must be an array")
		return nil, false
	}

	h := types.Handle{Family: family, Table: table, Chain: chain}
	switch op {
	case ast.OpReplace:
		handle, ok := requiredInt(ctx, obj, "handle")
		if !ok {
			return nil, false
		}
		h.ID, h.HasID = handle, true
	case ast.OpInsert:
		pos, ok := requiredInt(ctx, obj, "pos")
		if !ok {
			return nil, false
		}
		h.Position, h.HasPos = pos, true
	}

	cmd := ast.NewCommand(op, ast.ObjRule, h, ctx.Loc())

	comment, hasComment, ok := optionalString(ctx, obj, "comment")
	if !ok {
		return nil, false
	}
	cmd.Comment, cmd.HasComment = comment, hasComment

	stmts := make([]*ast.Stmt, 0, exprNode.Len())
	for i, item := range exprNode.Items() {
		if item.Kind != docnode.Object {
			ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "expr array element %d must be an object", i)
			return nil, false
		}
		s, ok := stmtAt(ctx, item)
		if !ok {
			return nil, false
		}
		stmts = append(stmts, s)
	}
	cmd.Statements = stmts
	return cmd, true
}
