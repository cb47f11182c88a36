package stmtparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/registry"
	"github.com/joshuapare/nftkit/pkg/ast"
)

// buildReject implements `reject`: an optional named `type` selecting the
// reject kind/family/code-vocabulary, and an optional `expr` giving the
// code. type left absent (the zero RejectKind) defers the protocol-specific
// default to the evaluator, matching the Open Question resolution recorded
// in the reject variant table's grounding note.
func buildReject(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	obj, ok := requireObject(ctx, operand, "reject")
	if !ok {
		return nil, false
	}

	var variant registry.RejectVariant
	var hasVariant bool
	typ, present, ok := optionalString(ctx, obj, "type")
	if !ok {
		return nil, false
	}
	if present {
		variant, hasVariant = registry.LookupRejectVariant(typ)
		if !hasVariant {
			ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown reject type %q", typ)
			return nil, false
		}
	}

	var code *ast.Expr
	if exprNode, has := obj.Get("expr"); has && !exprNode.IsNull() {
		code, ok = exprAt(ctx, parsectx.RHS, exprNode)
		if !ok {
			return nil, false
		}
		if hasVariant && variant.HasCode && code.Kind == ast.ExprImmediate &&
			code.ImmKind == ast.ImmSymbol && !variant.HasCodeName(code.Str) {
			ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "%q is not a valid code for reject type %q", code.Str, typ)
			return nil, false
		}
	}

	kind := ""
	if hasVariant {
		kind = variant.Kind
	}
	stmt := ast.NewRejectStmt(ctx.Loc(), kind, code)
	if hasVariant {
		stmt.RejectFamily = variant.Family
	}
	return stmt, true
}
