package cmdparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/registry"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/types"
)

// buildCmdObject implements the stateful-object kinds (counter, quota,
// ct helper, limit): {family, table, name}; name is optional on delete for
// every kind except ct helper, which requires it. delete/list both stop
// after the handle.
func buildCmdObject(kind ast.ObjKind) func(ctx *parsectx.Context, op ast.Op, operand *docnode.Node) (*ast.Command, bool) {
	return func(ctx *parsectx.Context, op ast.Op, operand *docnode.Node) (*ast.Command, bool) {
		obj, ok := requireObject(ctx, operand, "object")
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

		nameRequired := op != ast.OpDelete || kind == ast.ObjCtHelper
		if nameRequired {
			name, ok := requiredString(ctx, obj, "name")
			if !ok {
				return nil, false
			}
			h.Name = name
		} else if !resolveDeleteHandle(ctx, obj, &h, "object") {
			return nil, false
		}

		cmd := ast.NewCommand(op, kind, h, ctx.Loc())
		if op == ast.OpDelete || op == ast.OpList {
			return cmd, true
		}

		switch kind {
		case ast.ObjCounter:
			if v, present, ok := optionalInt(ctx, obj, "packets"); !ok {
				return nil, false
			} else if present {
				cmd.CounterPackets = v
			}
			if v, present, ok := optionalInt(ctx, obj, "bytes"); !ok {
				return nil, false
			} else if present {
				cmd.CounterBytes = v
			}
		case ast.ObjQuota:
			if v, present, ok := optionalInt(ctx, obj, "bytes"); !ok {
				return nil, false
			} else if present {
				cmd.QuotaValue = v
			}
			if v, present, ok := optionalInt(ctx, obj, "used"); !ok {
				return nil, false
			} else if present {
				cmd.QuotaUsed = v
			}
			if v, present, ok := optionalBool(ctx, obj, "inv"); !ok {
				return nil, false
			} else if present {
				cmd.QuotaInv = v
			}
		case ast.ObjCtHelper:
			if !buildCtHelperObject(ctx, obj, cmd) {
				return nil, false
			}
		case ast.ObjLimit:
			if !buildLimitObject(ctx, obj, cmd) {
				return nil, false
			}
		}
		return cmd, true
	}
}

func buildCtHelperObject(ctx *parsectx.Context, obj *docnode.Node, cmd *ast.Command) bool {
	if typ, present, ok := optionalString(ctx, obj, "type"); !ok {
		return false
	} else if present {
		if len(typ) > registry.CtHelperMaxTypeLen {
			ctx.Errors.Add(errqueue.Resource, ctx.Loc(),
				"invalid ct helper type %q, max length is %d", typ, registry.CtHelperMaxTypeLen)
			return false
		}
		cmd.CtHelperType = typ
	}
	if proto, present, ok := optionalString(ctx, obj, "protocol"); !ok {
		return false
	} else if present {
		if !registry.IsCtHelperProtocol(proto) {
			ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "invalid ct helper protocol %q", proto)
			return false
		}
		cmd.CtHelperProtocol = proto
	}
	l3proto, present, ok := optionalString(ctx, obj, "l3proto")
	if !ok {
		return false
	}
	if present {
		f, ok := types.ParseFamily(l3proto)
		if !ok {
			ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "invalid ct helper l3proto %q", l3proto)
			return false
		}
		cmd.CtHelperL3Proto = f
	} else {
		cmd.CtHelperL3Proto = types.FamilyIP
	}
	return true
}

func buildLimitObject(ctx *parsectx.Context, obj *docnode.Node, cmd *ast.Command) bool {
	if rate, present, ok := optionalInt(ctx, obj, "rate"); !ok {
		return false
	} else if present {
		cmd.LimitRate = rate
	}
	if per, present, ok := optionalString(ctx, obj, "per"); !ok {
		return false
	} else if present {
		seconds, ok := registry.TimeUnitSeconds(per)
		if !ok {
			ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "invalid limit time unit %q", per)
			return false
		}
		cmd.LimitPer = seconds
	}
	if burst, present, ok := optionalInt(ctx, obj, "burst"); !ok {
		return false
	} else if present {
		cmd.LimitBurst = burst
	}
	if unit, present, ok := optionalString(ctx, obj, "unit"); !ok {
		return false
	} else if present {
		if unit != "packets" && unit != "bytes" {
			ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "invalid limit unit %q", unit)
			return false
		}
		cmd.LimitRateUnit = unit
		cmd.LimitBurstUnit = unit
	}
	if inv, present, ok := optionalBool(ctx, obj, "inv"); !ok {
		return false
	} else if present {
		cmd.LimitInv = inv
	}
	return true
}
