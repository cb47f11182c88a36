package exprparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/registry"
	"github.com/joshuapare/nftkit/pkg/ast"
)

// buildPayload implements the `payload` builder contract of §4.2: a raw
// access (name == "raw") requires base/offset/len; otherwise name selects a
// protocol header template and field is resolved against it.
func buildPayload(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	obj, ok := requireObject(ctx, operand, "payload")
	if !ok {
		return nil, false
	}
	name, ok := requiredString(ctx, obj, "name")
	if !ok {
		return nil, false
	}

	if name == "raw" {
		baseName, ok := requiredString(ctx, obj, "base")
		if !ok {
			return nil, false
		}
		if !registry.RawBases[baseName] {
			ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown payload raw base %q", baseName)
			return nil, false
		}
		offset, ok := requiredInt(ctx, obj, "offset")
		if !ok {
			return nil, false
		}
		length, ok := requiredInt(ctx, obj, "len")
		if !ok {
			return nil, false
		}
		return ast.NewPayloadRaw(ctx.Loc(), baseName, offset, length), true
	}

	proto, ok := registry.LookupProtocol(name)
	if !ok {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown payload protocol %q", name)
		return nil, false
	}
	field, ok := requiredString(ctx, obj, "field")
	if !ok {
		return nil, false
	}
	if !proto.HasField(field) {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "protocol %q has no field %q", name, field)
		return nil, false
	}
	return ast.NewPayload(ctx.Loc(), name, field), true
}

// buildExthdr implements §4.2's exthdr contract, including the rt0
// additional integer `offset`.
func buildExthdr(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	obj, ok := requireObject(ctx, operand, "exthdr")
	if !ok {
		return nil, false
	}
	name, ok := requiredString(ctx, obj, "name")
	if !ok {
		return nil, false
	}
	desc, ok := registry.LookupExtHeader(name)
	if !ok {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown extension header %q", name)
		return nil, false
	}

	field, present, ok := optionalString(ctx, obj, "field")
	if !ok {
		return nil, false
	}
	if present && !desc.HasField(field) {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "extension header %q has no field %q", name, field)
		return nil, false
	}

	offset, hasOffset, ok := optionalInt(ctx, obj, "offset")
	if !ok {
		return nil, false
	}
	if hasOffset && !desc.AcceptsOffset {
		ctx.Errors.Add(errqueue.CrossField, ctx.Loc(), "extension header %q does not accept an offset", name)
		return nil, false
	}

	return ast.NewExthdr(ctx.Loc(), name, field, offset), true
}

// buildTCPOption implements §4.2's "tcp option" contract, including the
// sack0..sack3 special forms resolved by registry.LookupTCPOption.
func buildTCPOption(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	obj, ok := requireObject(ctx, operand, "tcp option")
	if !ok {
		return nil, false
	}
	name, ok := requiredString(ctx, obj, "name")
	if !ok {
		return nil, false
	}
	opt, ok := registry.LookupTCPOption(name)
	if !ok {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown tcp option %q", name)
		return nil, false
	}
	field, present, ok := optionalString(ctx, obj, "field")
	if !ok {
		return nil, false
	}
	if present && !opt.HasField(field) {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "tcp option %q has no field %q", name, field)
		return nil, false
	}
	return ast.NewTCPOption(ctx.Loc(), name, field), true
}

// buildMeta implements §4.2's meta contract: a single string key resolved
// via the meta-key registry.
func buildMeta(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	if operand == nil || operand.Kind != docnode.String {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "meta operand must be a string key")
		return nil, false
	}
	if !registry.IsMetaKey(operand.Str) {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown meta key %q", operand.Str)
		return nil, false
	}
	return ast.NewMeta(ctx.Loc(), operand.Str), true
}
