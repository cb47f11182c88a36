// Package stmtparse is the statement dispatcher of specification §4.3: a
// one-key object names a statement kind, looked up in a package-level
// dispatch table exactly like internal/exprparse's expression table, and
// routed to the matching builder. Statements carry no permitted-context
// mask of their own — a rule's top-level expr array hands each statement
// to Parse with the caller's context unchanged (no flags set when it comes
// from the command parser) — so the table here is a
// plain key -> builder map rather than exprparse's (permitted, builder)
// pair.
package stmtparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
)

type builderFunc func(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool)

var table = map[string]builderFunc{
	"match":   buildMatch,
	"counter": buildCounter,
	"mangle":  buildMangle,
	"quota":   buildQuota,
	"limit":   buildLimit,
	"fwd":     buildFwd,
	"dup":     buildDup,

	"snat":       buildNat("snat"),
	"dnat":       buildNat("dnat"),
	"masquerade": buildNat("masquerade"),
	"redirect":   buildNat("redirect"),

	"reject":  buildReject,
	"set":     buildSetUpdate,
	"log":     buildLog,
	"meter":   buildMeter,
	"queue":   buildQueue,
	"notrack": buildNotrack,

	"accept":   buildVerdict("accept"),
	"drop":     buildVerdict("drop"),
	"continue": buildVerdict("continue"),
	"jump":     buildVerdict("jump"),
	"goto":     buildVerdict("goto"),
	"return":   buildVerdict("return"),

	"ct helper": buildCtHelperRef,
	"map":       buildVerdictMap,
}

// stmts is the view of table that Parse reads. It is assigned in init
// because buildMeter calls back into Parse, so Parse reading table directly
// would make table's initializer depend on itself.
var stmts map[string]builderFunc

func init() { stmts = table }

// Parse dispatches a one-key statement object to its builder.
func Parse(ctx *parsectx.Context, n *docnode.Node) (*ast.Stmt, bool) {
	key, val, ok := n.SoleKey()
	if !ok {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "expected a one-key object naming a statement type")
		return nil, false
	}
	build, known := stmts[key]
	if !known {
		ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown statement type %q", key)
		return nil, false
	}
	return build(ctx, val)
}
