package exprparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/registry"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/types"
)

var rtKeys = map[string]bool{"classid": true, "nexthop": true, "mtu": true}

// parseOptionalFamily fetches an optional `family` key restricted to
// {ip, ip6}, the narrower vocabulary rt/ct accept (as opposed to the full
// six-member family table the command parser validates against).
func parseOptionalFamily(ctx *parsectx.Context, obj *docnode.Node) (types.Family, bool, bool) {
	name, present, ok := optionalString(ctx, obj, "family")
	if !ok || !present {
		return types.FamilyUnspecified, present, ok
	}
	fam, known := types.ParseFamily(name)
	if !known || (fam != types.FamilyIP && fam != types.FamilyIP6) {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "family %q is not admissible here (expected ip or ip6)", name)
		return types.FamilyUnspecified, true, false
	}
	return fam, true, true
}

// buildRT implements §4.2's rt contract: nexthop remaps to the IPv6 variant
// when family is v6.
func buildRT(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	obj, ok := requireObject(ctx, operand, "rt")
	if !ok {
		return nil, false
	}
	key, ok := requiredString(ctx, obj, "key")
	if !ok {
		return nil, false
	}
	if !rtKeys[key] {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown rt key %q", key)
		return nil, false
	}
	family, _, ok := parseOptionalFamily(ctx, obj)
	if !ok {
		return nil, false
	}
	if key == "nexthop" && family == types.FamilyIP6 {
		key = "nexthop6"
	}
	return ast.NewRT(ctx.Loc(), key, family), true
}

// buildCT implements §4.2's ct contract: dir is only admissible on a
// directional key.
func buildCT(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	obj, ok := requireObject(ctx, operand, "ct")
	if !ok {
		return nil, false
	}
	key, ok := requiredString(ctx, obj, "key")
	if !ok {
		return nil, false
	}
	if !registry.IsCtKey(key) {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown ct key %q", key)
		return nil, false
	}
	family, _, ok := parseOptionalFamily(ctx, obj)
	if !ok {
		return nil, false
	}
	dir, present, ok := optionalString(ctx, obj, "dir")
	if !ok {
		return nil, false
	}
	if present {
		if dir != "original" && dir != "reply" {
			ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown ct direction %q", dir)
			return nil, false
		}
		if !registry.IsCtDirectionalKey(key) {
			ctx.Errors.Add(errqueue.CrossField, ctx.Loc(), "ct key %q does not accept a direction", key)
			return nil, false
		}
	}
	return ast.NewCT(ctx.Loc(), key, dir, family), true
}

// buildFib implements §4.2's fib contract and its two cross-field checks.
func buildFib(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	obj, ok := requireObject(ctx, operand, "fib")
	if !ok {
		return nil, false
	}
	result, ok := requiredString(ctx, obj, "result")
	if !ok {
		return nil, false
	}
	if !registry.IsFibResult(result) {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown fib result %q", result)
		return nil, false
	}
	flagsNode, ok := requiredKey(ctx, obj, "flags")
	if !ok {
		return nil, false
	}
	flags, ok := stringSet(ctx, flagsNode, "fib flags")
	if !ok {
		return nil, false
	}
	for _, f := range flags {
		if !registry.IsFibFlag(f) {
			ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown fib flag %q", f)
			return nil, false
		}
	}
	hasSaddr, hasDaddr := contains(flags, "saddr"), contains(flags, "daddr")
	if hasSaddr == hasDaddr {
		ctx.Errors.Add(errqueue.CrossField, ctx.Loc(), "fib requires exactly one of saddr or daddr")
		return nil, false
	}
	if contains(flags, "iif") && contains(flags, "oif") {
		ctx.Errors.Add(errqueue.CrossField, ctx.Loc(), "fib iif and oif are mutually exclusive")
		return nil, false
	}
	return ast.NewFib(ctx.Loc(), flags, result), true
}
