package cmdparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/registry"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/types"
)

// buildCmdChain implements the chain object kind: {family, table, name},
// name replaced by name-or-handle for delete. Unless op is delete/list/
// flush, an optional {type, hook, prio} base-chain triple is read — but
// only when all three are present together; a partial triple is silently
// treated the same as an absent one rather than reported as an error,
// matching the reference parser's unpack-all-or-nothing read.
func buildCmdChain(ctx *parsectx.Context, op ast.Op, operand *docnode.Node) (*ast.Command, bool) {
	obj, ok := requireObject(ctx, operand, "chain")
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
	h := types.Handle{Family: family, Table: table}
	if op == ast.OpDelete {
		if !resolveDeleteHandle(ctx, obj, &h, "chain") {
			return nil, false
		}
	} else {
		name, ok := requiredString(ctx, obj, "name")
		if !ok {
			return nil, false
		}
		h.Name = name
	}

	cmd := ast.NewCommand(op, ast.ObjChain, h, ctx.Loc())
	if op == ast.OpDelete || op == ast.OpList || op == ast.OpFlush {
		return cmd, true
	}

	typ, hasType, ok := optionalString(ctx, obj, "type")
	if !ok {
		return nil, false
	}
	hook, hasHook, ok := optionalString(ctx, obj, "hook")
	if !ok {
		return nil, false
	}
	prio, hasPrio, ok := optionalInt(ctx, obj, "prio")
	if !ok {
		return nil, false
	}
	if !hasType || !hasHook || !hasPrio {
		return cmd, true
	}

	if !registry.IsHook(hook) {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "invalid chain hook %q", hook)
		return nil, false
	}
	cmd.IsBaseChain = true
	cmd.ChainType = typ
	cmd.Hook = hook
	cmd.Prio, cmd.HasPrio = prio, true

	dev, hasDev, ok := optionalString(ctx, obj, "dev")
	if !ok {
		return nil, false
	}
	cmd.ChainDev, cmd.HasChainDev = dev, hasDev

	policy, hasPolicy, ok := optionalString(ctx, obj, "policy")
	if !ok {
		return nil, false
	}
	if hasPolicy {
		if !registry.IsChainPolicy(policy) {
			ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown chain policy %q", policy)
			return nil, false
		}
		cmd.Policy, cmd.HasPolicy = policy, true
	}
	return cmd, true
}
