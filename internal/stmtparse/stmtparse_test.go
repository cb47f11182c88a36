package stmtparse_test

import (
	"testing"

	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/location"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/stmtparse"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCtx() *parsectx.Context {
	ctx := parsectx.New(&location.Descriptor{Name: "test"}, nil)
	ctx.Flags = parsectx.STMT
	return ctx
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
func wrap(key string, payload *docnode.Node) *docnode.Node {
	return obj(pair(key, payload))
}

func TestParse_Match(t *testing.T) {
	n := wrap("match", obj(
		pair("left", wrap("meta", str("iifname"))),
		pair("right", str("eth0")),
		pair("op", str("==")),
	))
	s, ok := stmtparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.StmtMatch, s.Kind)
	assert.Equal(t, "==", s.Rel.RelOp)
}

func TestParse_Match_DefaultsOpToEquality(t *testing.T) {
	n := wrap("match", obj(
		pair("left", wrap("meta", str("iifname"))),
		pair("right", str("eth0")),
	))
	s, ok := stmtparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, "==", s.Rel.RelOp)
}

func TestParse_Match_UnknownOperator(t *testing.T) {
	n := wrap("match", obj(
		pair("left", wrap("meta", str("iifname"))),
		pair("right", str("eth0")),
		pair("op", str("~~")),
	))
	_, ok := stmtparse.Parse(newCtx(), n)
	require.False(t, ok)
}

func TestParse_Counter_Inline(t *testing.T) {
	n := wrap("counter", obj(pair("packets", num(10)), pair("bytes", num(2000))))
	s, ok := stmtparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.StmtCounter, s.Kind)
	assert.False(t, s.CounterIsRef)
	assert.EqualValues(t, 10, s.CounterPackets)
}

func TestParse_Counter_BareNullIsZeroInline(t *testing.T) {
	n := wrap("counter", docnode.NewNull())
	s, ok := stmtparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.False(t, s.CounterIsRef)
	assert.EqualValues(t, 0, s.CounterPackets)
}

func TestParse_Counter_Reference(t *testing.T) {
	n := wrap("counter", str("mycounter"))
	s, ok := stmtparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.True(t, s.CounterIsRef)
}

func TestParse_Notrack(t *testing.T) {
	n := wrap("notrack", docnode.NewNull())
	s, ok := stmtparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.StmtNotrack, s.Kind)
}

func TestParse_Verdict_Accept(t *testing.T) {
	n := wrap("accept", docnode.NewNull())
	s, ok := stmtparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.StmtVerdict, s.Kind)
	assert.Equal(t, "accept", s.Verdict.VerdictKind)
}

func TestParse_Verdict_JumpRequiresTarget(t *testing.T) {
	_, ok := stmtparse.Parse(newCtx(), wrap("jump", docnode.NewNull()))
	require.False(t, ok)

	s, ok := stmtparse.Parse(newCtx(), wrap("jump", str("accept_chain")))
	require.True(t, ok)
	assert.Equal(t, "accept_chain", s.Verdict.VerdictTarget)
}

func TestParse_Quota_Inline(t *testing.T) {
	n := wrap("quota", obj(pair("val", num(10)), pair("val_unit", str("kbytes"))))
	s, ok := stmtparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.StmtQuota, s.Kind)
	assert.False(t, s.IsRef)
}

func TestParse_Quota_Reference(t *testing.T) {
	n := wrap("quota", str("myquota"))
	s, ok := stmtparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.StmtObjRef, s.Kind)
	assert.Equal(t, "quota", s.ObjRefKind)
}

func TestParse_Limit_RequiresBothRateAndPer(t *testing.T) {
	n := wrap("limit", obj(pair("rate", num(10))))
	ctx := newCtx()
	_, ok := stmtparse.Parse(ctx, n)
	require.False(t, ok, "rate without per is not inline, and the object is not a reference expression")
	assert.False(t, ctx.Errors.Empty())
}

func TestParse_Limit_Inline(t *testing.T) {
	n := wrap("limit", obj(pair("rate", num(10)), pair("per", str("second"))))
	s, ok := stmtparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.StmtLimit, s.Kind)
	assert.EqualValues(t, 10, s.Rate)
}

func TestParse_Limit_UnknownTimeUnit(t *testing.T) {
	n := wrap("limit", obj(pair("rate", num(10)), pair("per", str("fortnight"))))
	_, ok := stmtparse.Parse(newCtx(), n)
	require.False(t, ok)
}

func TestParse_Reject_WithType(t *testing.T) {
	n := wrap("reject", obj(pair("type", str("icmp"))))
	s, ok := stmtparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.StmtReject, s.Kind)
}

func TestParse_Reject_UnknownType(t *testing.T) {
	n := wrap("reject", obj(pair("type", str("bogus-type"))))
	_, ok := stmtparse.Parse(newCtx(), n)
	require.False(t, ok)
}

func TestParse_SetUpdate_RequiresSetSigil(t *testing.T) {
	n := wrap("set", obj(
		pair("op", str("add")),
		pair("elem", str("10.0.0.1")),
		pair("set", str("blackhole")),
	))
	_, ok := stmtparse.Parse(newCtx(), n)
	require.False(t, ok)
}

func TestParse_SetUpdate_Valid(t *testing.T) {
	n := wrap("set", obj(
		pair("op", str("add")),
		pair("elem", str("10.0.0.1")),
		pair("set", str("@blackhole")),
	))
	s, ok := stmtparse.Parse(newCtx(), n)
	require.True(t, ok)
	assert.Equal(t, ast.StmtSetUpdate, s.Kind)
	assert.Equal(t, "blackhole", s.SetName)
	assert.Equal(t, ast.ExprSetElem, s.Elem.Kind)
}

func TestParse_SetUpdate_UnknownOp(t *testing.T) {
	n := wrap("set", obj(
		pair("op", str("bogus")),
		pair("elem", str("10.0.0.1")),
		pair("set", str("@blackhole")),
	))
	_, ok := stmtparse.Parse(newCtx(), n)
	require.False(t, ok)
}

func TestParse_UnknownStatementKind(t *testing.T) {
	n := wrap("bogus-stmt", docnode.NewNull())
	_, ok := stmtparse.Parse(newCtx(), n)
	require.False(t, ok)
}
