package stmtparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/exprparse"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
)

func requireObject(ctx *parsectx.Context, n *docnode.Node, what string) (*docnode.Node, bool) {
	if n == nil || n.Kind != docnode.Object {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "%s must be an object", what)
		return nil, false
	}
	return n, true
}

func requiredKey(ctx *parsectx.Context, obj *docnode.Node, key string) (*docnode.Node, bool) {
	v, ok := obj.Get(key)
	if !ok {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "missing required key %q", key)
		return nil, false
	}
	return v, true
}

func requiredString(ctx *parsectx.Context, obj *docnode.Node, key string) (string, bool) {
	v, ok := requiredKey(ctx, obj, key)
	if !ok {
		return "", false
	}
	if v.Kind != docnode.String {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "key %q must be a string", key)
		return "", false
	}
	return v.Str, true
}

func optionalString(ctx *parsectx.Context, obj *docnode.Node, key string) (val string, present, ok bool) {
	v, has := obj.Get(key)
	if !has || v.IsNull() {
		return "", false, true
	}
	if v.Kind != docnode.String {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "key %q must be a string", key)
		return "", true, false
	}
	return v.Str, true, true
}

func requiredInt(ctx *parsectx.Context, obj *docnode.Node, key string) (int64, bool) {
	v, ok := requiredKey(ctx, obj, key)
	if !ok {
		return 0, false
	}
	if v.Kind != docnode.Integer {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "key %q must be an integer", key)
		return 0, false
	}
	return v.Int, true
}

func optionalInt(ctx *parsectx.Context, obj *docnode.Node, key string) (val int64, present, ok bool) {
	v, has := obj.Get(key)
	if !has || v.IsNull() {
		return 0, false, true
	}
	if v.Kind != docnode.Integer {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "key %q must be an integer", key)
		return 0, true, false
	}
	return v.Int, true, true
}

func optionalBool(ctx *parsectx.Context, obj *docnode.Node, key string) (val bool, present, ok bool) {
	v, has := obj.Get(key)
	if !has || v.IsNull() {
		return false, false, true
	}
	if v.Kind != docnode.Boolean {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "key %q must be a boolean", key)
		return false, true, false
	}
	return v.Bool, true, true
}

func stringSet(ctx *parsectx.Context, n *docnode.Node, what string) ([]string, bool) {
	if n == nil || n.IsNull() {
		return nil, true
	}
	switch n.Kind {
	case docnode.String:
		return []string{n.Str}, true
	case docnode.Array:
		out := make([]string, 0, n.Len())
		for _, item := range n.Items() {
			if item.Kind != docnode.String {
				ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "%s array elements must be strings", what)
				return nil, false
			}
			out = append(out, item.Str)
		}
		return out, true
	default:
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "%s must be a string or array of strings", what)
		return nil, false
	}
}

// exprAt is the flag-scoped helper statement builders use to recurse into
// exprparse for a sub-expression, mirroring exprparse's own `sub` helper.
func exprAt(ctx *parsectx.Context, set parsectx.Flags, n *docnode.Node) (*ast.Expr, bool) {
	return exprparse.Parse(ctx.Scoped(set), n)
}
