package stmtparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/registry"
	"github.com/joshuapare/nftkit/pkg/ast"
)

// buildLog implements `log`: every field is independently optional — each
// presence is tracked on the statement via its own LogHas* flag so a caller
// can distinguish "absent" from "zero".
func buildLog(ctx *parsectx.Context, operand *docnode.Node) (*ast.Stmt, bool) {
	obj, ok := requireObject(ctx, operand, "log")
	if !ok {
		return nil, false
	}
	stmt := ast.NewLogStmt(ctx.Loc())

	prefix, hasPrefix, ok := optionalString(ctx, obj, "prefix")
	if !ok {
		return nil, false
	}
	stmt.LogPrefix, stmt.LogHasPrefix = prefix, hasPrefix

	group, hasGroup, ok := optionalInt(ctx, obj, "group")
	if !ok {
		return nil, false
	}
	stmt.LogGroup, stmt.LogHasGroup = group, hasGroup

	snaplen, hasSnaplen, ok := optionalInt(ctx, obj, "snaplen")
	if !ok {
		return nil, false
	}
	stmt.LogSnaplen, stmt.LogHasSnaplen = snaplen, hasSnaplen

	qthresh, hasQThresh, ok := optionalInt(ctx, obj, "queue-threshold")
	if !ok {
		return nil, false
	}
	stmt.LogQThreshold, stmt.LogHasQThreshold = qthresh, hasQThresh

	level, hasLevel, ok := optionalString(ctx, obj, "level")
	if !ok {
		return nil, false
	}
	if hasLevel {
		if !registry.IsLogLevel(level) {
			ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "invalid log level %q", level)
			return nil, false
		}
		stmt.LogLevel, stmt.LogHasLevel = level, true
	}

	if flagsNode, has := obj.Get("flags"); has && !flagsNode.IsNull() {
		flags, ok := stringSet(ctx, flagsNode, "log flags")
		if !ok {
			return nil, false
		}
		for _, f := range flags {
			if !registry.IsLogFlag(f) {
				ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown log flag %q", f)
				return nil, false
			}
		}
		stmt.LogFlags = flags
	}

	return stmt, true
}
