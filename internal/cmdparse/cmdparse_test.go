package cmdparse_test

import (
	"testing"

	"github.com/joshuapare/nftkit/internal/cmdparse"
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/location"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/evaluator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCtx() *parsectx.Context {
	return parsectx.New(&location.Descriptor{Name: "test"}, evaluator.Nop{})
}

func obj(pairs ...docnode.Pair) *docnode.Node {
	n := docnode.NewObject()
	for _, p := range pairs {
		n.Set(p.Key, p.Value)
	}
	return n
}

func pair(k string, v *docnode.Node) docnode.Pair { return docnode.Pair{Key: k, Value: v} }
func str(s string) *docnode.Node                  { return docnode.NewString(s) }
func num(i int64) *docnode.Node                   { return docnode.NewInteger(i) }

func wrapOp(op string, payload *docnode.Node) *docnode.Node {
	return obj(pair(op, payload))
}

func wrapObj(key string, payload *docnode.Node) *docnode.Node {
	return obj(pair(key, payload))
}

func TestParse_AddTable(t *testing.T) {
	n := wrapOp("add", wrapObj("table", obj(
		pair("family", str("ip")),
		pair("name", str("filter")),
	)))

	cmd, ok := cmdparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, cmd.Op)
	assert.Equal(t, ast.ObjTable, cmd.ObjKind)
	assert.Equal(t, "filter", cmd.Handle.Name)
}

func TestParse_AddChain_BaseChainRequiresAllThree(t *testing.T) {
	// Only "type" given, no hook/prio: per the original's unpack-all-or-
	// nothing semantics this is silently NOT a base chain, not an error.
	n := wrapOp("add", wrapObj("chain", obj(
		pair("family", str("ip")),
		pair("table", str("filter")),
		pair("name", str("input")),
		pair("type", str("filter")),
	)))

	cmd, ok := cmdparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.False(t, cmd.IsBaseChain)
}

func TestParse_AddChain_BaseChainAllThreePresent(t *testing.T) {
	n := wrapOp("add", wrapObj("chain", obj(
		pair("family", str("ip")),
		pair("table", str("filter")),
		pair("name", str("input")),
		pair("type", str("filter")),
		pair("hook", str("input")),
		pair("prio", num(0)),
	)))

	cmd, ok := cmdparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.True(t, cmd.IsBaseChain)
	assert.Equal(t, "filter", cmd.ChainType)
	assert.Equal(t, "input", cmd.Hook)
}

func TestParse_DeleteTable_RequiresNameOrHandle(t *testing.T) {
	n := wrapOp("delete", wrapObj("table", obj(
		pair("family", str("ip")),
	)))

	ctx := newCtx()
	_, ok := cmdparse.Parse(ctx, n)
	require.False(t, ok)
	require.False(t, ctx.Errors.Empty())
}

func TestParse_DeleteTable_ByHandle(t *testing.T) {
	n := wrapOp("delete", wrapObj("table", obj(
		pair("family", str("ip")),
		pair("handle", num(3)),
	)))

	cmd, ok := cmdparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.True(t, cmd.Handle.HasID)
	assert.EqualValues(t, 3, cmd.Handle.ID)
}

func TestParse_CreateForbidsRule(t *testing.T) {
	n := wrapOp("create", wrapObj("rule", obj(
		pair("family", str("ip")),
		pair("table", str("filter")),
		pair("chain", str("input")),
		pair("expr", docnode.NewArray()),
	)))

	ctx := newCtx()
	_, ok := cmdparse.Parse(ctx, n)
	require.False(t, ok)
}

func TestParse_Replace_RejectsStrayRule(t *testing.T) {
	n := wrapOp("replace", obj(
		pair("family", str("ip")),
		pair("table", str("filter")),
		pair("chain", str("input")),
		pair("handle", num(1)),
		pair("expr", docnode.NewArray()),
		pair("rule", obj()),
	))

	ctx := newCtx()
	_, ok := cmdparse.Parse(ctx, n)
	require.False(t, ok)
	require.False(t, ctx.Errors.Empty())
}

func TestParse_Replace_RequiresHandle(t *testing.T) {
	n := wrapOp("replace", obj(
		pair("family", str("ip")),
		pair("table", str("filter")),
		pair("chain", str("input")),
		pair("expr", docnode.NewArray()),
	))

	_, ok := cmdparse.Parse(newCtx(), n)
	require.False(t, ok)
}

func TestParse_ListMaps_UsesSetBuilder(t *testing.T) {
	// "maps" is deliberately routed through buildCmdSet (the literal
	// idiosyncrasy preserved from the reference table), not the
	// list-multiple builder every other plural key uses.
	n := wrapOp("list", wrapObj("maps", obj(
		pair("family", str("ip")),
		pair("table", str("filter")),
		pair("name", str("portmap")),
	)))

	cmd, ok := cmdparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.ObjMap, cmd.ObjKind)
	assert.Equal(t, "portmap", cmd.Handle.Name)
}

func TestParse_ListCtHelpers_RequiresTable(t *testing.T) {
	n := wrapOp("list", wrapObj("ct helpers", obj(
		pair("family", str("ip")),
	)))

	ctx := newCtx()
	_, ok := cmdparse.Parse(ctx, n)
	require.False(t, ok)
}

func TestParse_ListCounters_TableOptional(t *testing.T) {
	n := wrapOp("list", wrapObj("counters", obj(
		pair("family", str("ip")),
	)))

	cmd, ok := cmdparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.ObjCounter, cmd.ObjKind)
	assert.Equal(t, "", cmd.Handle.Table)
}

func TestParse_CtHelper_NameRequiredEvenOnDelete(t *testing.T) {
	n := wrapOp("delete", wrapObj("ct helper", obj(
		pair("family", str("ip")),
		pair("table", str("filter")),
		pair("handle", num(2)),
	)))

	ctx := newCtx()
	_, ok := cmdparse.Parse(ctx, n)
	require.False(t, ok, "ct helper delete must require name even though handle is present")
}

func TestParse_Counter_DeleteByHandleIsFine(t *testing.T) {
	n := wrapOp("delete", wrapObj("counter", obj(
		pair("family", str("ip")),
		pair("table", str("filter")),
		pair("handle", num(2)),
	)))

	cmd, ok := cmdparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.True(t, cmd.Handle.HasID)
}

func TestParse_CtHelper_TypeOverflowIsResourceError(t *testing.T) {
	n := wrapOp("add", wrapObj("ct helper", obj(
		pair("family", str("ip")),
		pair("table", str("filter")),
		pair("name", str("ftp")),
		pair("type", str("this-name-is-far-too-long-for-a-ct-helper")),
	)))

	ctx := newCtx()
	_, ok := cmdparse.Parse(ctx, n)
	require.False(t, ok)
	require.False(t, ctx.Errors.Empty())
	last := ctx.Errors.Records()[ctx.Errors.Len()-1]
	assert.Equal(t, "resource", last.Kind.String())
}

func TestParse_Rename(t *testing.T) {
	n := wrapOp("rename", wrapObj("chain", obj(
		pair("family", str("ip")),
		pair("table", str("filter")),
		pair("name", str("input")),
		pair("newname", str("input2")),
	)))

	cmd, ok := cmdparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.OpRename, cmd.Op)
	assert.Equal(t, "input2", cmd.NewName)
}

func TestParse_UnknownOperator(t *testing.T) {
	n := wrapOp("frobnicate", obj())
	ctx := newCtx()
	_, ok := cmdparse.Parse(ctx, n)
	require.False(t, ok)
	require.False(t, ctx.Errors.Empty())
}

func TestParse_AddSet_WithTypeAndElements(t *testing.T) {
	n := wrapOp("add", wrapObj("set", obj(
		pair("family", str("ip")),
		pair("table", str("filter")),
		pair("name", str("blackhole")),
		pair("type", str("ipv4_addr")),
		pair("flags", docnode.NewArray(str("interval"))),
		pair("elem", docnode.NewArray(str("10.0.0.0"))),
	)))

	cmd, ok := cmdparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, "ipv4_addr", cmd.SetType.Name)
	assert.Contains(t, cmd.SetFlags, "interval")
	require.Len(t, cmd.Elements, 1)
}

func TestParse_AddElement(t *testing.T) {
	n := wrapOp("add", wrapObj("element", obj(
		pair("family", str("ip")),
		pair("table", str("filter")),
		pair("name", str("blackhole")),
		pair("elem", docnode.NewArray(str("10.0.0.1"))),
	)))

	cmd, ok := cmdparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.ObjElement, cmd.ObjKind)
	require.Len(t, cmd.Elements, 1)
}
