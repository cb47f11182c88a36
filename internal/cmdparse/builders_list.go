package cmdparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/types"
)

// buildCmdListMultiple implements the plural "list/reset/flush every
// instance of a kind" object shapes: family is optional (absent means every
// family), and for a handful of kinds (sets, counters, ct helpers) table is
// also read when present. Listing ct helpers additionally requires a table
// reference — the reference implementation has no way to enumerate every
// ct helper across every table.
func buildCmdListMultiple(kind ast.ObjKind, tableAware, tableRequired bool) func(ctx *parsectx.Context, op ast.Op, operand *docnode.Node) (*ast.Command, bool) {
	return func(ctx *parsectx.Context, op ast.Op, operand *docnode.Node) (*ast.Command, bool) {
		obj, ok := requireObject(ctx, operand, "list")
		if !ok {
			return nil, false
		}
		family, ok := optionalFamily(ctx, obj)
		if !ok {
			return nil, false
		}
		h := types.Handle{Family: family}
		if tableAware {
			table, present, ok := optionalString(ctx, obj, "table")
			if !ok {
				return nil, false
			}
			if present {
				h.Table = table
			} else if tableRequired {
				ctx.Errors.Add(errqueue.CrossField, ctx.Loc(), "listing %s requires table reference", kind)
				return nil, false
			}
		}
		return ast.NewCommand(op, kind, h, ctx.Loc()), true
	}
}
