package stmtparse

import (
	"strings"

	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
)

// buildSetUpdate implements the dynamic set-update statement: {op, elem,
// set}, all required. elem is parsed at SES and wrapped in a SetElem node
// unless it already is one (mirroring exprparse's idempotent wrapping); set
// must carry the set-reference sigil.
//
// Per-element timeout/expiration/comment data is carried exclusively
// through the `elem` keyword wrapper form (internal/exprparse's buildElem),
// consistent with how rule-level set literals attach the same fields — this
// module never reads those fields as sibling keys alongside an expression's
// own dispatch key.
func buildSetUpdate(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	obj, ok := requireObject(ctx, operand, "set")
	if !ok {
		return nil, false
	}
	op, ok := requiredString(ctx, obj, "op")
	if !ok {
		return nil, false
	}
	if op != "add" && op != "update" {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown set statement op %q", op)
		return nil, false
	}
	elemNode, ok := requiredKey(ctx, obj, "elem")
	if !ok {
		return nil, false
	}
	elem, ok := exprAt(ctx, parsectx.SES, elemNode)
	if !ok {
		return nil, false
	}
	if elem.Kind != ast.ExprSetElem {
		elem = ast.NewSetElem(ctx.Loc(), elem)
	}
	setName, ok := requiredString(ctx, obj, "set")
	if !ok {
		return nil, false
	}
	name, hasSigil := strings.CutPrefix(setName, "@")
	if !hasSigil {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "illegal set reference %q in set statement", setName)
		return nil, false
	}
	return ast.NewSetUpdateStmt(ctx.Loc(), op, elem, name), true
}
