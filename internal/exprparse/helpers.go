package exprparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
)

// requireObject reports a Structural error unless n is an object node.
func requireObject(ctx *parsectx.Context, n *docnode.Node, what string) (*docnode.Node, bool) {
	if n == nil || n.Kind != docnode.Object {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "%s must be an object", what)
		return nil, false
	}
	return n, true
}

// requiredKey fetches a required object key, reporting Structural on
// absence.
func requiredKey(ctx *parsectx.Context, obj *docnode.Node, key string) (*docnode.Node, bool) {
	v, ok := obj.Get(key)
	if !ok {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "missing required key %q", key)
		return nil, false
	}
	return v, true
}

// requiredString fetches and type-checks a required string key.
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

// optionalString fetches an optional string key. present is false if the
// key is absent or null; ok is false only on a type mismatch.
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

// requiredInt fetches and type-checks a required integer key.
func requiredInt(ctx *parsectx.Context, obj *docnode.Node, key string) (int, bool) {
	v, ok := requiredKey(ctx, obj, key)
	if !ok {
		return 0, false
	}
	if v.Kind != docnode.Integer {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "key %q must be an integer", key)
		return 0, false
	}
	return int(v.Int), true
}

// optionalInt fetches an optional integer key.
func optionalInt(ctx *parsectx.Context, obj *docnode.Node, key string) (val int, present, ok bool) {
	v, has := obj.Get(key)
	if !has || v.IsNull() {
		return 0, false, true
	}
	if v.Kind != docnode.Integer {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "key %q must be an integer", key)
		return 0, true, false
	}
	return int(v.Int), true, true
}

// stringSet collects a `flags`-shaped value (a single string or an array of
// strings) into a slice, per the repeated pattern in §4.2/§4.3 ("a string or
// array of strings").
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

func contains(set []string, want string) bool {
	for _, s := range set {
		if s == want {
			return true
		}
	}
	return false
}
