package cmdparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/exprparse"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/registry"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/types"
)

// buildCmdSet implements the set/map/meter object kind: {family, table,
// name}, name replaced by name-or-handle for delete. kind selects which
// ObjKind the resulting command carries (Set, Map, or Meter) — the
// reference parser reuses one builder across all three JSON keys since
// "set", "map", and "meter" share an identical wire shape.
func buildCmdSet(kind ast.ObjKind) func(ctx *parsectx.Context, op ast.Op, operand *docnode.Node) (*ast.Command, bool) {
	return func(ctx *parsectx.Context, op ast.Op, operand *docnode.Node) (*ast.Command, bool) {
		obj, ok := requireObject(ctx, operand, "set")
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
			if !resolveDeleteHandle(ctx, obj, &h, "set") {
				return nil, false
			}
		} else {
			name, ok := requiredString(ctx, obj, "name")
			if !ok {
				return nil, false
			}
			h.Name = name
		}

		cmd := ast.NewCommand(op, kind, h, ctx.Loc())
		if op == ast.OpDelete || op == ast.OpList || op == ast.OpFlush {
			return cmd, true
		}

		if typeNode, has := obj.Get("type"); has && !typeNode.IsNull() {
			dt, ok := parseDtype(ctx, typeNode)
			if !ok {
				return nil, false
			}
			cmd.SetType, cmd.HasSetType = dt, true
		}

		if mapName, present, ok := optionalString(ctx, obj, "map"); !ok {
			return nil, false
		} else if present {
			if registry.IsMapObjectKind(mapName) {
				cmd.MapObjKind, cmd.HasMapObjKind = mapName, true
			} else if dt, ok := types.ParseDatatype(mapName); ok {
				cmd.MapType, cmd.HasMapType = dt, true
			} else {
				ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "invalid map type %q", mapName)
				return nil, false
			}
		}

		if policy, present, ok := optionalString(ctx, obj, "policy"); !ok {
			return nil, false
		} else if present {
			if !registry.IsSetPolicy(policy) {
				ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown set policy %q", policy)
				return nil, false
			}
			cmd.SetPolicy, cmd.HasSetPolicy = policy, true
		}

		if flagsNode, has := obj.Get("flags"); has && !flagsNode.IsNull() {
			flags, ok := stringSet(ctx, flagsNode, "set flags")
			if !ok {
				return nil, false
			}
			for _, f := range flags {
				if !registry.IsSetFlag(f) {
					ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown set flag %q", f)
					return nil, false
				}
			}
			cmd.SetFlags = flags
		}

		if elemNode, has := obj.Get("elem"); has && !elemNode.IsNull() {
			elems, ok := parseElemSet(ctx, elemNode)
			if !ok {
				ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "invalid set elem expression")
				return nil, false
			}
			cmd.Elements = elems
		}

		if timeout, present, ok := optionalInt(ctx, obj, "timeout"); !ok {
			return nil, false
		} else if present {
			cmd.TimeoutMS, cmd.HasTimeout = timeout*1000, true
		}

		if gcInterval, present, ok := optionalInt(ctx, obj, "gc-interval"); !ok {
			return nil, false
		} else if present {
			cmd.GCIntervalMS, cmd.HasGCInterval = gcInterval*1000, true
		}

		if size, present, ok := optionalInt(ctx, obj, "size"); !ok {
			return nil, false
		} else if present {
			cmd.Size, cmd.HasSize = size, true
		}

		return cmd, true
	}
}

// parseElemSet parses a set/map initializer or dynamic-add element array
// directly off its raw node — the `elem` key's value is the bare array
// itself, not wrapped in a one-key {"set": [...]} expression object. A
// single non-array/non-object value is accepted too and wrapped as a
// one-element set, mirroring the reference parser's fallback for a bare
// immediate.
func parseElemSet(ctx *parsectx.Context, n *docnode.Node) ([]*ast.Expr, bool) {
	if n.Kind == docnode.Array {
		set, ok := exprparse.ParseSetLiteral(ctx, n)
		if !ok {
			return nil, false
		}
		return set.Children, true
	}
	e, ok := exprAt(ctx, parsectx.RHS, n)
	if !ok {
		return nil, false
	}
	if e.Kind == ast.ExprImmediate && e.ImmKind == ast.ImmSetReference {
		return []*ast.Expr{e}, true
	}
	if e.Kind != ast.ExprSetElem {
		e = ast.NewSetElem(ctx.Loc(), e)
	}
	return []*ast.Expr{e}, true
}

// buildCmdElement implements the element object kind (dynamic element
// add): {family, table, name, elem}, all required.
func buildCmdElement(ctx *parsectx.Context, op ast.Op, operand *docnode.Node) (*ast.Command, bool) {
	obj, ok := requireObject(ctx, operand, "element")
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
	elemNode, ok := requiredKey(ctx, obj, "elem")
	if !ok {
		return nil, false
	}
	elems, ok := parseElemSet(ctx, elemNode)
	if !ok {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "invalid set elem expression")
		return nil, false
	}
	h := types.Handle{Family: family, Table: table, Name: name}
	cmd := ast.NewCommand(op, ast.ObjElement, h, ctx.Loc())
	cmd.Elements = elems
	return cmd, true
}
