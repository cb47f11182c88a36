package cmdparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/types"
)

// buildCmdTable implements the table object kind: {family, name}, name
// replaced by name-or-handle when op is delete.
func buildCmdTable(ctx *parsectx.Context, op ast.Op, operand *docnode.Node) (*ast.Command, bool) {
	obj, ok := requireObject(ctx, operand, "table")
	if !ok {
		return nil, false
	}
	family, ok := requiredFamily(ctx, obj)
	if !ok {
		return nil, false
	}
	h := types.Handle{Family: family}
	if op == ast.OpDelete {
		if !resolveDeleteHandle(ctx, obj, &h, "table") {
			return nil, false
		}
	} else {
		name, ok := requiredString(ctx, obj, "name")
		if !ok {
			return nil, false
		}
		h.Name = name
	}
	return ast.NewCommand(op, ast.ObjTable, h, ctx.Loc()), true
}
