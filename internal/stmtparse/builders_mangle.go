package stmtparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
)

// mangleKindOf names the LHS expression kind admissible as a mangle
// target, mirroring the original's mangle statement key derived from the
// LHS expression type.
func mangleKindOf(e *ast.Expr) (string, bool) {
	switch e.Kind {
	case ast.ExprExthdr:
		return "exthdr", true
	case ast.ExprPayload, ast.ExprPayloadRaw:
		return "payload", true
	case ast.ExprMeta:
		return "meta", true
	case ast.ExprCT:
		return "ct", true
	default:
		return "", false
	}
}

// buildMangle implements the `mangle` statement: {key, value}, key parsed
// at MANGLE, value at STMT. A key that resolves to a ct helper reference
// (`ct key "helper"`) is a distinct object-reference form rather than a
// field rewrite, and is returned as an ObjRef statement instead.
func buildMangle(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	obj, ok := requireObject(ctx, operand, "mangle")
	if !ok {
		return nil, false
	}
	keyNode, ok := requiredKey(ctx, obj, "key")
	if !ok {
		return nil, false
	}
	valueNode, ok := requiredKey(ctx, obj, "value")
	if !ok {
		return nil, false
	}
	lhs, ok := exprAt(ctx, parsectx.MANGLE, keyNode)
	if !ok {
		return nil, false
	}

	if lhs.Kind == ast.ExprCT && lhs.CTKey == "helper" {
		rhs, ok := exprAt(ctx, parsectx.STMT, valueNode)
		if !ok {
			return nil, false
		}
		return ast.NewObjRefStmt(ctx.Loc(), "ct helper", rhs), true
	}

	kind, known := mangleKindOf(lhs)
	if !known {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "expression type %q is not a valid mangle target", lhs.Kind)
		return nil, false
	}
	rhs, ok := exprAt(ctx, parsectx.STMT, valueNode)
	if !ok {
		return nil, false
	}
	return ast.NewMangleStmt(ctx.Loc(), kind, lhs, rhs), true
}
