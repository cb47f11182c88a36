package cmdparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/types"
)

// buildCmdRename implements the only rename target: a chain, nested one
// level deeper than every other command shape — {chain: {family, table,
// name, newname}}.
func buildCmdRename(ctx *parsectx.Context, operand *docnode.Node) (*ast.Command, bool) {
	obj, ok := requireObject(ctx, operand, "rename")
	if !ok {
		return nil, false
	}
	chainNode, ok := requiredKey(ctx, obj, "chain")
	if !ok {
		return nil, false
	}
	chainObj, ok := requireObject(ctx, chainNode, "chain")
	if !ok {
		return nil, false
	}
	family, ok := requiredFamily(ctx, chainObj)
	if !ok {
		return nil, false
	}
	table, ok := requiredString(ctx, chainObj, "table")
	if !ok {
		return nil, false
	}
	name, ok := requiredString(ctx, chainObj, "name")
	if !ok {
		return nil, false
	}
	newName, ok := requiredString(ctx, chainObj, "newname")
	if !ok {
		return nil, false
	}

	h := types.Handle{Family: family, Table: table, Name: name}
	cmd := ast.NewCommand(ast.OpRename, ast.ObjChain, h, ctx.Loc())
	cmd.NewName = newName
	return cmd, true
}
