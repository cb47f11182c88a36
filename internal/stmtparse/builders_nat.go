package stmtparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/registry"
	"github.com/joshuapare/nftkit/pkg/ast"
)

func parseNatFlags(ctx *parsectx.Context, n *docnode.Node) ([]string, bool) {
	flags, ok := stringSet(ctx, n, "nat flags")
	if !ok {
		return nil, false
	}
	for _, f := range flags {
		if !registry.IsNatFlag(f) {
			ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown nat flag %q", f)
			return nil, false
		}
	}
	return flags, true
}

// buildNat returns a builder for one of the four nat statement kinds:
// {addr, port, flags}, all optional, addr/port parsed at STMT.
func buildNat(kind string) builderFunc {
	return func(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
		obj, ok := requireObject(ctx, operand, kind)
		if !ok {
			return nil, false
		}
		var addr, port *ast.Expr
		if addrNode, has := obj.Get("addr"); has && !addrNode.IsNull() {
			addr, ok = exprAt(ctx, parsectx.STMT, addrNode)
			if !ok {
				return nil, false
			}
		}
		if portNode, has := obj.Get("port"); has && !portNode.IsNull() {
			port, ok = exprAt(ctx, parsectx.STMT, portNode)
			if !ok {
				return nil, false
			}
		}
		var flags []string
		if flagsNode, has := obj.Get("flags"); has && !flagsNode.IsNull() {
			flags, ok = parseNatFlags(ctx, flagsNode)
			if !ok {
				return nil, false
			}
		}
		return ast.NewNatStmt(ctx.Loc(), kind, addr, port, flags), true
	}
}
