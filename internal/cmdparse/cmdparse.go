package cmdparse

import (
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
)

type objBuilder func(ctx *parsectx.Context, op ast.Op, operand *docnode.Node) (*ast.Command, bool)

// objEntry pairs a JSON key with the builder it routes to, mirroring the
// reference parser's cmd_obj_table rows.
type objEntry struct {
	key   string
	build objBuilder
}

// addTable is the object-kind table shared by `add`, `create`, and
// `delete` — all three route through the same builders, differing only in
// the Op value passed down (and `create` additionally forbidding rule).
var addTable = []objEntry{
	{"table", buildCmdTable},
	{"chain", buildCmdChain},
	{"rule", buildCmdRule},
	{"set", buildCmdSet(ast.ObjSet)},
	{"map", buildCmdSet(ast.ObjMap)},
	{"element", buildCmdElement},
	{"flowtable", buildCmdFlowtable},
	{"counter", buildCmdObject(ast.ObjCounter)},
	{"quota", buildCmdObject(ast.ObjQuota)},
	{"ct helper", buildCmdObject(ast.ObjCtHelper)},
	{"limit", buildCmdObject(ast.ObjLimit)},
}

// listTable additionally carries every plural "list every instance" form.
// "maps" reuses buildCmdSet rather than the list-multiple builder — a
// literal idiosyncrasy of the reference parser's table, carried over
// unchanged since nothing about the wire format distinguishes it from a
// deliberate choice.
var listTable = append(append([]objEntry{}, addTable...), []objEntry{
	{"tables", buildCmdListMultiple(ast.ObjTable, false, false)},
	{"chains", buildCmdListMultiple(ast.ObjChain, false, false)},
	{"sets", buildCmdListMultiple(ast.ObjSet, true, false)},
	{"maps", buildCmdSet(ast.ObjMap)},
	{"counters", buildCmdListMultiple(ast.ObjCounter, true, false)},
	{"quotas", buildCmdListMultiple(ast.ObjQuota, false, false)},
	{"ct helpers", buildCmdListMultiple(ast.ObjCtHelper, true, true)},
	{"limits", buildCmdListMultiple(ast.ObjLimit, false, false)},
	{"ruleset", buildCmdListMultiple(ast.ObjRuleset, false, false)},
	{"meter", buildCmdSet(ast.ObjMeter)},
	{"meters", buildCmdListMultiple(ast.ObjMeter, false, false)},
	{"flowtables", buildCmdListMultiple(ast.ObjFlowtable, false, false)},
}...)

var resetTable = []objEntry{
	{"counter", buildCmdObject(ast.ObjCounter)},
	{"counters", buildCmdListMultiple(ast.ObjCounter, true, false)},
	{"quota", buildCmdObject(ast.ObjQuota)},
	{"quotas", buildCmdListMultiple(ast.ObjQuota, false, false)},
}

var flushTable = []objEntry{
	{"table", buildCmdTable},
	{"chain", buildCmdChain},
	{"set", buildCmdSet(ast.ObjSet)},
	{"map", buildCmdSet(ast.ObjMap)},
	{"meter", buildCmdSet(ast.ObjMeter)},
	{"ruleset", buildCmdListMultiple(ast.ObjRuleset, false, false)},
}

// dispatchObj walks an object table in order and calls the first builder
// whose key is present in root, exactly as the reference implementation's
// linear cmd_obj_table scan does (so the first matching key wins if a
// caller were to supply more than one, though a well-formed document never
// does).
func dispatchObj(ctx *parsectx.Context, op ast.Op, root *docnode.Node, table []objEntry, what string) (*ast.Command, bool) {
	obj, ok := requireObject(ctx, root, what)
	if !ok {
		return nil, false
	}
	for _, e := range table {
		val, has := obj.Get(e.key)
		if !has {
			continue
		}
		if op == ast.OpCreate && e.key == "rule" {
			ctx.Errors.Add(errqueue.CrossField, ctx.Loc(), "create command not available for rules")
			return nil, false
		}
		return e.build(ctx, op, val)
	}
	ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown object passed to %s command", what)
	return nil, false
}

func parseAdd(ctx *parsectx.Context, op ast.Op, root *docnode.Node) (*ast.Command, bool) {
	return dispatchObj(ctx, op, root, addTable, "add")
}

func parseList(ctx *parsectx.Context, _ ast.Op, root *docnode.Node) (*ast.Command, bool) {
	return dispatchObj(ctx, ast.OpList, root, listTable, "list")
}

func parseReset(ctx *parsectx.Context, _ ast.Op, root *docnode.Node) (*ast.Command, bool) {
	return dispatchObj(ctx, ast.OpReset, root, resetTable, "reset")
}

func parseFlush(ctx *parsectx.Context, _ ast.Op, root *docnode.Node) (*ast.Command, bool) {
	return dispatchObj(ctx, ast.OpFlush, root, flushTable, "flush")
}

func parseReplace(ctx *parsectx.Context, op ast.Op, root *docnode.Node) (*ast.Command, bool) {
	return buildCmdReplace(ctx, op, root)
}

func parseRename(ctx *parsectx.Context, _ ast.Op, root *docnode.Node) (*ast.Command, bool) {
	return buildCmdRename(ctx, root)
}

type opEntry struct {
	key   string
	op    ast.Op
	parse func(ctx *parsectx.Context, op ast.Op, root *docnode.Node) (*ast.Command, bool)
}

// opTable is the top-level operator dispatch of specification §4.4. export,
// monitor, and describe are named in the reference implementation's
// equivalent table but commented out there as unimplemented, so they carry
// no entry here either.
var opTable = []opEntry{
	{"add", ast.OpAdd, parseAdd},
	{"replace", ast.OpReplace, parseReplace},
	{"create", ast.OpCreate, parseAdd},
	{"insert", ast.OpInsert, parseReplace},
	{"delete", ast.OpDelete, parseAdd},
	{"list", ast.OpList, parseList},
	{"reset", ast.OpReset, parseReset},
	{"flush", ast.OpFlush, parseFlush},
	{"rename", ast.OpRename, parseRename},
}

// Parse dispatches a single top-level command object to its operator
// builder, per specification §4.4.
func Parse(ctx *parsectx.Context, n *docnode.Node) (*ast.Command, bool) {
	obj, ok := requireObject(ctx, n, "command")
	if !ok {
		return nil, false
	}
	for _, e := range opTable {
		val, has := obj.Get(e.key)
		if !has {
			continue
		}
		return e.parse(ctx, e.op, val)
	}
	ctx.Errors.Add(errqueue.Vocabulary, ctx.Loc(), "unknown command object")
	return nil, false
}
