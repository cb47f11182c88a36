package stmtparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/types"
)

// buildFwd implements `fwd`: the entire operand is the forward target,
// parsed directly as a statement expression with no wrapping object.
func buildFwd(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	to, ok := exprAt(ctx, parsectx.STMT, operand)
	if !ok {
		return nil, false
	}
	return ast.NewFwdStmt(ctx.Loc(), to, types.FamilyUnspecified), true
}

// buildDup implements `dup`: {addr, dev}, addr required, dev optional, both
// parsed at STMT.
func buildDup(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	obj, ok := requireObject(ctx, operand, "dup")
	if !ok {
		return nil, false
	}
	addrNode, ok := requiredKey(ctx, obj, "addr")
	if !ok {
		return nil, false
	}
	addr, ok := exprAt(ctx, parsectx.STMT, addrNode)
	if !ok {
		return nil, false
	}
	devNode, hasDev := obj.Get("dev")
	if !hasDev || devNode.IsNull() {
		return ast.NewDupStmt(ctx.Loc(), addr, nil), true
	}
	dev, ok := exprAt(ctx, parsectx.STMT, devNode)
	if !ok {
		return nil, false
	}
	return ast.NewDupStmt(ctx.Loc(), addr, dev), true
}
