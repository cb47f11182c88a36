package stmtparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/registry"
	"github.com/joshuapare/nftkit/pkg/ast"
)

func toBytes(ctx *parsectx.Context, val int64, unit string) (int64, bool) {
	mult, ok := registry.ByteUnitMultiplier(unit)
	if !ok {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown byte unit %q", unit)
		return 0, false
	}
	return val * mult, true
}

// buildQuota implements `quota`: inline iff `val` is present, else an
// object reference parsed at STMT.
func buildQuota(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	if operand == nil || operand.Kind != docnode.Object {
		ref, ok := exprAt(ctx, parsectx.STMT, operand)
		if !ok {
			return nil, false
		}
		return ast.NewObjRefStmt(ctx.Loc(), "quota", ref), true
	}
	obj := operand
	val, hasVal, ok := optionalInt(ctx, obj, "val")
	if !ok {
		return nil, false
	}
	if !hasVal {
		ref, ok := exprAt(ctx, parsectx.STMT, operand)
		if !ok {
			return nil, false
		}
		return ast.NewObjRefStmt(ctx.Loc(), "quota", ref), true
	}

	valUnit, _, ok := optionalString(ctx, obj, "val_unit")
	if !ok {
		return nil, false
	}
	if valUnit == "" {
		valUnit = "bytes"
	}
	bytes, ok := toBytes(ctx, val, valUnit)
	if !ok {
		return nil, false
	}

	used, hasUsed, ok := optionalInt(ctx, obj, "used")
	if !ok {
		return nil, false
	}
	usedUnit, _, ok := optionalString(ctx, obj, "used_unit")
	if !ok {
		return nil, false
	}
	if usedUnit == "" {
		usedUnit = "bytes"
	}
	var usedBytes int64
	if hasUsed && used != 0 {
		usedBytes, ok = toBytes(ctx, used, usedUnit)
		if !ok {
			return nil, false
		}
	}

	inv, _, ok := optionalBool(ctx, obj, "inv")
	if !ok {
		return nil, false
	}

	stmt := ast.NewQuotaStmt(ctx.Loc())
	stmt.Value, stmt.ValueUnit = bytes, valUnit
	stmt.QuotaUsed, stmt.QuotaHasUsed = usedBytes, hasUsed && used != 0
	stmt.Inv = inv
	return stmt, true
}

// buildLimit implements `limit`: inline iff BOTH `rate` and `per` are
// present together, else an object reference parsed at STMT.
func buildLimit(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	if operand == nil || operand.Kind != docnode.Object {
		ref, ok := exprAt(ctx, parsectx.STMT, operand)
		if !ok {
			return nil, false
		}
		return ast.NewObjRefStmt(ctx.Loc(), "limit", ref), true
	}
	obj := operand
	rate, hasRate, ok := optionalInt(ctx, obj, "rate")
	if !ok {
		return nil, false
	}
	per, hasPer, ok := optionalString(ctx, obj, "per")
	if !ok {
		return nil, false
	}
	if !(hasRate && hasPer) {
		ref, ok := exprAt(ctx, parsectx.STMT, operand)
		if !ok {
			return nil, false
		}
		return ast.NewObjRefStmt(ctx.Loc(), "limit", ref), true
	}

	rateUnit, _, ok := optionalString(ctx, obj, "rate_unit")
	if !ok {
		return nil, false
	}
	if rateUnit == "" {
		rateUnit = "packets"
	}

	burst, _, ok := optionalInt(ctx, obj, "burst")
	if !ok {
		return nil, false
	}
	burstUnit, _, ok := optionalString(ctx, obj, "burst_unit")
	if !ok {
		return nil, false
	}
	if burstUnit == "" {
		burstUnit = "bytes"
	}

	var finalRate, finalBurst int64
	if rateUnit == "packets" {
		finalRate, finalBurst = rate, burst
	} else {
		finalRate, ok = toBytes(ctx, rate, rateUnit)
		if !ok {
			return nil, false
		}
		rateUnit = "bytes"
		finalBurst, ok = toBytes(ctx, burst, burstUnit)
		if !ok {
			return nil, false
		}
	}

	perSeconds, ok := registry.TimeUnitSeconds(per)
	if !ok {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown time unit %q", per)
		return nil, false
	}

	inv, _, ok := optionalBool(ctx, obj, "inv")
	if !ok {
		return nil, false
	}

	stmt := ast.NewLimitStmt(ctx.Loc())
	stmt.Rate, stmt.RateUnit = finalRate, rateUnit
	stmt.Burst, stmt.BurstUnit = finalBurst, burstUnit
	stmt.PerSecond = perSeconds
	stmt.Inv = inv
	return stmt, true
}
