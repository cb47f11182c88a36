package exprparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
)

// buildBinop returns a builder for one of the bitwise operators; both
// operands parse as PRIMARY (§4.2).
func buildBinop(op string) builderFunc {
	return func(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
		if operand == nil || operand.Kind != docnode.Array || operand.Len() != 2 {
			ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "operator %q requires a two-element array", op)
			return nil, false
		}
		items := operand.Items()
		lhs, ok := sub(ctx, parsectx.PRIMARY, items[0])
		if !ok {
			return nil, false
		}
		rhs, ok := sub(ctx, parsectx.PRIMARY, items[1])
		if !ok {
			return nil, false
		}
		return ast.NewBinop(ctx.Loc(), op, lhs, rhs), true
	}
}

// buildConcat implements §4.2's concat contract: an array of >= 2 primaries,
// flattened so a concat never nests another concat.
func buildConcat(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	if operand == nil || operand.Kind != docnode.Array || operand.Len() < 2 {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "concat requires an array of at least two elements")
		return nil, false
	}
	children := make([]*ast.Expr, 0, operand.Len())
	for _, item := range operand.Items() {
		e, ok := sub(ctx, parsectx.PRIMARY, item)
		if !ok {
			return nil, false
		}
		if e.Kind == ast.ExprConcat {
			children = append(children, e.Children...)
			continue
		}
		children = append(children, e)
	}
	return ast.NewConcat(ctx.Loc(), children), true
}

// buildPrefix implements §4.2's prefix contract.
func buildPrefix(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	obj, ok := requireObject(ctx, operand, "prefix")
	if !ok {
		return nil, false
	}
	addrNode, ok := requiredKey(ctx, obj, "addr")
	if !ok {
		return nil, false
	}
	length, ok := requiredInt(ctx, obj, "len")
	if !ok {
		return nil, false
	}
	addr, ok := sub(ctx, parsectx.PRIMARY, addrNode)
	if !ok {
		return nil, false
	}
	return ast.NewPrefix(ctx.Loc(), addr, length), true
}

// buildRange implements §4.2's range contract: a two-element [lo, hi] array
// parsed as PRIMARY.
func buildRange(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	if operand == nil || operand.Kind != docnode.Array || operand.Len() != 2 {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "range requires a two-element array")
		return nil, false
	}
	items := operand.Items()
	lo, ok := sub(ctx, parsectx.PRIMARY, items[0])
	if !ok {
		return nil, false
	}
	hi, ok := sub(ctx, parsectx.PRIMARY, items[1])
	if !ok {
		return nil, false
	}
	return ast.NewRange(ctx.Loc(), lo, hi), true
}

// buildWildcard implements `*`: a zero-length zero-prefix, ignoring its
// (typically null) operand.
func buildWildcard(ctx *parsectx.Context, _ *docnode.Node) (*ast.Expr, bool) {
	return ast.NewWildcard(ctx.Loc()), true
}

// buildVerdict returns a builder for one of the six bare verdict kinds;
// jump/goto additionally require a string chain target carried as the
// operand itself.
func buildVerdict(kind string) builderFunc {
	return func(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
		target := ""
		if kind == "jump" || kind == "goto" {
			if operand == nil || operand.Kind != docnode.String {
				ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "%s requires a string chain target", kind)
				return nil, false
			}
			target = operand.Str
		}
		return ast.NewVerdict(ctx.Loc(), kind, target), true
	}
}

// buildMap implements §4.2's map contract: {left, right}, left parsed with
// MAP, right with RHS.
func buildMap(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	obj, ok := requireObject(ctx, operand, "map")
	if !ok {
		return nil, false
	}
	leftNode, ok := requiredKey(ctx, obj, "left")
	if !ok {
		return nil, false
	}
	rightNode, ok := requiredKey(ctx, obj, "right")
	if !ok {
		return nil, false
	}
	left, ok := sub(ctx, parsectx.MAP, leftNode)
	if !ok {
		return nil, false
	}
	right, ok := sub(ctx, parsectx.RHS, rightNode)
	if !ok {
		return nil, false
	}
	return ast.NewMap(ctx.Loc(), left, right), true
}

// buildElem implements §4.2's elem contract: a required `val`, plus the
// optional timeout/expires pair stored as milliseconds (seconds × 1000) and
// an optional comment.
func buildElem(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	obj, ok := requireObject(ctx, operand, "elem")
	if !ok {
		return nil, false
	}
	valNode, ok := requiredKey(ctx, obj, "val")
	if !ok {
		return nil, false
	}
	val, ok := sub(ctx, parsectx.RHS, valNode)
	if !ok {
		return nil, false
	}
	elem := ast.NewSetElem(ctx.Loc(), val)

	timeout, hasTimeout, ok := optionalInt(ctx, obj, "elem_timeout")
	if !ok {
		return nil, false
	}
	if hasTimeout {
		elem.ElemTimeoutMS, elem.ElemHasTimeout = int64(timeout)*1000, true
	}

	expires, hasExpires, ok := optionalInt(ctx, obj, "elem_expires")
	if !ok {
		return nil, false
	}
	if hasExpires {
		elem.ElemExpiresMS, elem.ElemHasExpires = int64(expires)*1000, true
	}

	comment, hasComment, ok := optionalString(ctx, obj, "elem_comment")
	if !ok {
		return nil, false
	}
	if hasComment {
		elem.ElemComment = comment
	}
	return elem, true
}

// wrapSetElem wraps v in a SetElem node unless it already is one, per the
// specification's idempotent-wrapping invariant (§3).
func wrapSetElem(ctx *parsectx.Context, v *ast.Expr) *ast.Expr {
	if v.Kind == ast.ExprSetElem {
		return v
	}
	return ast.NewSetElem(ctx.Loc(), v)
}

// parseSetElement implements §4.2's per-element grammar inside `set`: a
// 2-tuple becomes a Mapping, anything else parses as RHS and is wrapped in
// a SetElem unless it already short-circuited to a bare set-reference
// immediate.
func parseSetElement(ctx *parsectx.Context, n *docnode.Node) (*ast.Expr, bool) {
	if n != nil && n.Kind == docnode.Array {
		items := n.Items()
		if len(items) != 2 {
			ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "set element tuple must have exactly two items")
			return nil, false
		}
		k, ok := sub(ctx, parsectx.RHS, items[0])
		if !ok {
			return nil, false
		}
		v, ok := sub(ctx, parsectx.SET_RHS, items[1])
		if !ok {
			return nil, false
		}
		return ast.NewMapping(ctx.Loc(), wrapSetElem(ctx, k), v), true
	}

	v, ok := sub(ctx, parsectx.RHS, n)
	if !ok {
		return nil, false
	}
	if v.Kind == ast.ExprImmediate && v.ImmKind == ast.ImmSetReference {
		return v, true
	}
	return wrapSetElem(ctx, v), true
}

// buildSet implements §4.2's set contract.
func buildSet(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool) {
	if operand == nil || operand.Kind != docnode.Array {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "set operand must be an array")
		return nil, false
	}
	elems := make([]*ast.Expr, 0, operand.Len())
	for _, item := range operand.Items() {
		e, ok := parseSetElement(ctx, item)
		if !ok {
			return nil, false
		}
		elems = append(elems, e)
	}
	return ast.NewSet(ctx.Loc(), elems), true
}

// ParseSetLiteral parses a bare array of set elements directly, the shape
// the command parser sees for a set/map initializer list (`elem` key on
// `add set`/`add map`) and for the element-addition command's `elem`
// field — the array is inline at that key rather than wrapped in a one-key
// {"set": [...]} expression object, so this bypasses the dispatch table and
// calls the same element grammar buildSet uses.
func ParseSetLiteral(ctx *parsectx.Context, n *docnode.Node) (*ast.Expr, bool) {
	return buildSet(ctx.Scoped(parsectx.RHS), n)
}
