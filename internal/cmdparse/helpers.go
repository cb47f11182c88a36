// Package cmdparse is the command dispatcher of specification §4.4: each
// top-level document entry is a one-key object naming an operator (add,
// create, replace, insert, delete, list, reset, flush, rename), whose value
// in turn names the target object kind (table, chain, rule, set, map,
// element, flowtable, counter, quota, ct helper, limit, or one of the
// plural "list every instance" forms). Dispatch here is two levels deep
// rather than exprparse/stmtparse's one, mirroring the reference
// implementation's nested parse_cb_table / cmd_obj_table pair.
package cmdparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/exprparse"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/stmtparse"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/types"
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

// requiredFamily fetches and resolves the mandatory `family` field every
// object-kind builder starts with.
func requiredFamily(ctx *parsectx.Context, obj *docnode.Node) (types.Family, bool) {
	name, ok := requiredString(ctx, obj, "family")
	if !ok {
		return types.FamilyUnspecified, false
	}
	f, ok := types.ParseFamily(name)
	if !ok {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown family %q", name)
		return types.FamilyUnspecified, false
	}
	return f, true
}

// optionalFamily resolves an optional `family` field, used by the plural
// "list every instance" builders where a missing family means "all
// families" rather than an error.
func optionalFamily(ctx *parsectx.Context, obj *docnode.Node) (types.Family, bool) {
	name, present, ok := optionalString(ctx, obj, "family")
	if !ok {
		return types.FamilyUnspecified, false
	}
	if !present {
		return types.FamilyUnspecified, true
	}
	f, ok := types.ParseFamily(name)
	if !ok {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown family %q", name)
		return types.FamilyUnspecified, false
	}
	return f, true
}

// resolveDeleteHandle implements the shared "name or handle required to
// delete a <kind>" pattern every delete-capable object builder uses: both
// are independently optional reads (whichever is present is adopted), it is
// only an error when neither is given.
func resolveDeleteHandle(ctx *parsectx.Context, obj *docnode.Node, h *types.Handle, what string) bool {
	name, hasName, ok := optionalString(ctx, obj, "name")
	if !ok {
		return false
	}
	id, hasID, ok := optionalInt(ctx, obj, "handle")
	if !ok {
		return false
	}
	if !hasName && !hasID {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "either name or handle required to delete a %s", what)
		return false
	}
	if hasName {
		h.Name = name
	}
	if hasID {
		h.ID, h.HasID = id, true
	}
	return true
}

// exprAt is the flag-scoped helper command builders use to recurse into
// exprparse, mirroring the identical helper in internal/stmtparse.
func exprAt(ctx *parsectx.Context, set parsectx.Flags, n *docnode.Node) (*ast.Expr, bool) {
	return exprparse.Parse(ctx.Scoped(set), n)
}

// stmtAt parses a single rule statement, used by the rule/replace builders
// to walk the `expr` array.
func stmtAt(ctx *parsectx.Context, n *docnode.Node) (*ast.Stmt, bool) {
	return stmtparse.Parse(ctx, n)
}
