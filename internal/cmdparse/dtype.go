package cmdparse

import (
	"strings"

	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/types"
)

// parseDtype resolves a set/map key `type` field: a bare string names a
// leaf datatype, an array recursively concatenates the datatypes of its
// elements. This is its own small grammar distinct from exprparse's DTYPE
// context handling — a set's declared key type is read directly off the
// document here, never routed through an expression dispatch.
func parseDtype(ctx *parsectx.Context, n *docnode.Node) (types.Datatype, bool) {
	if n == nil {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "missing datatype")
		return types.Datatype{}, false
	}
	switch n.Kind {
	case docnode.String:
		dt, ok := types.ParseDatatype(n.Str)
		if !ok {
			ctx.Errors.Add(errqueue.Resource, ctx.Loc(), "invalid datatype %q", n.Str)
			return types.Datatype{}, false
		}
		return dt, true
	case docnode.Array:
		items := n.Items()
		if len(items) == 0 {
			ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "datatype array must not be empty")
			return types.Datatype{}, false
		}
		names := make([]string, 0, len(items))
		for i, item := range items {
			dt, ok := parseDtype(ctx, item)
			if !ok {
				ctx.Errors.Add(errqueue.Resource, ctx.Loc(), "invalid datatype at index %d", i)
				return types.Datatype{}, false
			}
			if len(dt.Concat) > 0 {
				names = append(names, dt.Concat...)
			} else {
				names = append(names, dt.Name)
			}
		}
		return types.Datatype{Name: strings.Join(names, " . "), Concat: names}, true
	default:
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "datatype must be a string or array")
		return types.Datatype{}, false
	}
}
