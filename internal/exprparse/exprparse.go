// Package exprparse is the context-guarded expression dispatcher: given a
// document node and the active context flags, it classifies the node
// against the expression kind table and calls the matching builder, or
// falls through to the primitive value reader for bare scalars. Every
// builder recurses back into Parse through a flag-scoped parsectx.Context —
// never by calling another builder directly — so the admissibility check in
// dispatch (step 5) is the single place a context violation can be caught.
package exprparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/primitive"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/types"
)

type builderFunc func(ctx *parsectx.Context, operand *docnode.Node) (*ast.Expr, bool)

type kindEntry struct {
	permitted parsectx.Flags
	build     builderFunc
}

// table is the expression kind table from specification §6: discriminator
// key -> (permitted context flags, builder). It is package-level constant
// data populated once at init, never mutated — the admissibility check
// (step 5) is the single membership test the design notes ask for, never
// scattered into individual builders.
var table = map[string]kindEntry{
	"concat": {parsectx.RHS | parsectx.STMT | parsectx.DTYPE | parsectx.SET_RHS | parsectx.SES | parsectx.MAP, buildConcat},
	"set":    {parsectx.RHS | parsectx.STMT, buildSet},
	"map":    {parsectx.STMT | parsectx.PRIMARY | parsectx.SET_RHS, buildMap},
	"prefix": {parsectx.RHS | parsectx.STMT, buildPrefix},
	"range":  {parsectx.RHS | parsectx.STMT, buildRange},
	"*":      {parsectx.RHS | parsectx.STMT, buildWildcard},

	"payload":    {parsectx.STMT | parsectx.PRIMARY | parsectx.SET_RHS | parsectx.MANGLE | parsectx.SES | parsectx.MAP, buildPayload},
	"exthdr":     {parsectx.PRIMARY | parsectx.SET_RHS | parsectx.SES | parsectx.MAP, buildExthdr},
	"tcp option": {parsectx.PRIMARY | parsectx.SET_RHS | parsectx.MANGLE | parsectx.SES, buildTCPOption},
	"meta":       {parsectx.STMT | parsectx.PRIMARY | parsectx.SET_RHS | parsectx.MANGLE | parsectx.SES | parsectx.MAP, buildMeta},
	"rt":         {parsectx.STMT | parsectx.PRIMARY | parsectx.SET_RHS | parsectx.SES | parsectx.MAP, buildRT},
	"ct":         {parsectx.STMT | parsectx.PRIMARY | parsectx.SET_RHS | parsectx.MANGLE | parsectx.SES | parsectx.MAP, buildCT},

	"numgen":  {parsectx.STMT | parsectx.PRIMARY | parsectx.SET_RHS | parsectx.SES | parsectx.MAP, buildNumgen},
	"jhash":   {parsectx.STMT | parsectx.PRIMARY | parsectx.SET_RHS | parsectx.SES | parsectx.MAP, buildJHash},
	"symhash": {parsectx.STMT | parsectx.PRIMARY | parsectx.SET_RHS | parsectx.SES | parsectx.MAP, buildSymHash},
	"fib":     {parsectx.PRIMARY | parsectx.SET_RHS | parsectx.SES | parsectx.MAP, buildFib},

	"|":  {parsectx.RHS | parsectx.STMT | parsectx.PRIMARY | parsectx.SET_RHS | parsectx.SES | parsectx.MAP, buildBinop("|")},
	"^":  {parsectx.RHS | parsectx.STMT | parsectx.PRIMARY | parsectx.SET_RHS | parsectx.SES | parsectx.MAP, buildBinop("^")},
	"&":  {parsectx.RHS | parsectx.STMT | parsectx.PRIMARY | parsectx.SET_RHS | parsectx.SES | parsectx.MAP, buildBinop("&")},
	">>": {parsectx.RHS | parsectx.STMT | parsectx.PRIMARY | parsectx.SET_RHS | parsectx.SES | parsectx.MAP, buildBinop(">>")},
	"<<": {parsectx.RHS | parsectx.STMT | parsectx.PRIMARY | parsectx.SET_RHS | parsectx.SES | parsectx.MAP, buildBinop("<<")},

	"accept":   {parsectx.RHS | parsectx.SET_RHS, buildVerdict("accept")},
	"drop":     {parsectx.RHS | parsectx.SET_RHS, buildVerdict("drop")},
	"continue": {parsectx.RHS | parsectx.SET_RHS, buildVerdict("continue")},
	"jump":     {parsectx.RHS | parsectx.SET_RHS, buildVerdict("jump")},
	"goto":     {parsectx.RHS | parsectx.SET_RHS, buildVerdict("goto")},
	"return":   {parsectx.RHS | parsectx.SET_RHS, buildVerdict("return")},

	"elem": {parsectx.RHS | parsectx.STMT | parsectx.PRIMARY, buildElem},
}

// kinds is the view of table that Parse reads. It is assigned in init
// because the builders in table call back into Parse, so Parse reading
// table directly would make table's initializer depend on itself.
var kinds map[string]kindEntry

func init() { kinds = table }

// Parse implements the dispatcher algorithm of specification §4.2, in
// order, first match wins.
func Parse(ctx *parsectx.Context, n *docnode.Node) (*ast.Expr, bool) {
	if n == nil || n.IsNull() {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "expression is missing")
		return nil, false
	}

	// Step 1: array in RHS/STMT (not PRIMARY) -> List.
	if n.Kind == docnode.Array {
		if ctx.Flags.Any(parsectx.RHS|parsectx.STMT) && !ctx.Flags.Has(parsectx.PRIMARY) {
			return buildList(ctx, n)
		}
		ctx.Errors.Add(errqueue.Context, ctx.Loc(), "array is not admissible in context %s", ctx.Flags)
		return nil, false
	}

	// Step 2: string in DTYPE -> zero-bytes typed Constant.
	if n.Kind == docnode.String && ctx.Flags.Has(parsectx.DTYPE) {
		dt, ok := types.ParseDatatype(n.Str)
		if !ok {
			ctx.Errors.Add(errqueue.Resource, ctx.Loc(), "unknown datatype %q", n.Str)
			return nil, false
		}
		return ast.NewConstantZero(ctx.Loc(), dt), true
	}

	// Step 3: scalar leaf -> primitive reader, admissible in every context
	// the "immediate" row of the expression kind table names: RHS, STMT,
	// PRIMARY, SET_RHS, SES, MAP. SES is included because a set-update
	// statement's element is always parsed while already inside a
	// statement's ambient context — the original implementation ORs
	// CTX_F_SES onto the still-active CTX_F_STMT bit rather than replacing
	// it, so a bare scalar element value is admissible there exactly as it
	// is at STMT.
	if (n.Kind == docnode.String || n.Kind == docnode.Integer || n.Kind == docnode.Boolean) &&
		ctx.Flags.Any(parsectx.RHS|parsectx.STMT|parsectx.PRIMARY|parsectx.SET_RHS|parsectx.SES|parsectx.MAP) {
		return primitive.Read(ctx, n)
	}

	// Step 4/5: one-key object naming an expression kind.
	key, val, ok := n.SoleKey()
	if !ok {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "expected a one-key object naming an expression type")
		return nil, false
	}
	entry, known := kinds[key]
	if !known {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown expression type %q", key)
		return nil, false
	}
	if !ctx.Flags.SubsetOf(entry.permitted) {
		ctx.Errors.Add(errqueue.Context, ctx.Loc(), "expression type %q not allowed in context %s", key, ctx.Flags)
		return nil, false
	}
	return entry.build(ctx, val)
}

// sub is the flag-scoped recursion helper every builder uses to parse an
// operand sub-node: it replaces the active flags with `set` for the
// duration of the sub-parse. Most builders pass a single flag; buildList
// and buildJHash pass the caller's current flags through unchanged.
func sub(ctx *parsectx.Context, set parsectx.Flags, n *docnode.Node) (*ast.Expr, bool) {
	return Parse(ctx.Scoped(set), n)
}

func buildList(ctx *parsectx.Context, n *docnode.Node) (*ast.Expr, bool) {
	items := n.Items()
	children := make([]*ast.Expr, 0, len(items))
	for _, item := range items {
		e, ok := sub(ctx, ctx.Flags, item)
		if !ok {
			return nil, false
		}
		children = append(children, e)
	}
	return ast.NewList(ctx.Loc(), children), true
}
