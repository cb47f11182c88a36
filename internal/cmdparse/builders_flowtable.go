package cmdparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/registry"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/types"
)

// buildCmdFlowtable implements the flowtable object kind: {family, table,
// name} always required; delete stops there, otherwise {hook, prio, dev}
// are additionally required (dev accepting either a bare device name or an
// array of them).
func buildCmdFlowtable(ctx *parsectx.Context, op ast.Op, operand *docnode.Node) (*ast.Command, bool) {
	obj, ok := requireObject(ctx, operand, "flowtable")
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
	name, ok := requiredString(ctx, obj, "name")
	if !ok {
		return nil, false
	}
	h := types.Handle{Family: family, Table: table, Name: name}
	cmd := ast.NewCommand(op, ast.ObjFlowtable, h, ctx.Loc())
	if op == ast.OpDelete {
		return cmd, true
	}

	hook, ok := requiredString(ctx, obj, "hook")
	if !ok {
		return nil, false
	}
	if !registry.IsHook(hook) {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "invalid flowtable hook %q", hook)
		return nil, false
	}
	prio, ok := requiredInt(ctx, obj, "prio")
	if !ok {
		return nil, false
	}
	devNode, ok := requiredKey(ctx, obj, "dev")
	if !ok {
		return nil, false
	}
	devs, ok := flowtableDevs(ctx, devNode)
	if !ok {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "invalid flowtable dev")
		return nil, false
	}

	cmd.Hook = hook
	cmd.Prio, cmd.HasPrio = prio, true
	cmd.FlowtableDev = devs
	return cmd, true
}

// flowtableDevs accepts a bare device-name string or an array of them.
func flowtableDevs(ctx *parsectx.Context, n *docnode.Node) ([]string, bool) {
	if n.Kind == docnode.String {
		return []string{n.Str}, true
	}
	if n.Kind != docnode.Array {
		return nil, false
	}
	out := make([]string, 0, n.Len())
	for i, item := range n.Items() {
		if item.Kind != docnode.String {
			ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "invalid flowtable dev at index %d", i)
			return nil, false
		}
		out = append(out, item.Str)
	}
	return out, true
}
