package exprparse_test

import (
	"testing"

	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/exprparse"
	"github.com/joshuapare/nftkit/internal/location"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCtx(flags parsectx.Flags) *parsectx.Context {
	ctx := parsectx.New(&location.Descriptor{Name: "test"}, nil)
	ctx.Flags = flags
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

func TestParse_BareScalar_InStmtContext(t *testing.T) {
	e, ok := exprparse.Parse(newCtx(parsectx.STMT), str("eth0"))
	require.True(t, ok)
	assert.Equal(t, ast.ExprImmediate, e.Kind)
}

func TestParse_ArrayInPrimary_IsRejected(t *testing.T) {
	_, ok := exprparse.Parse(newCtx(parsectx.PRIMARY), docnode.NewArray(str("a"), str("b")))
	require.False(t, ok)
}

func TestParse_ArrayInStmt_BecomesList(t *testing.T) {
	e, ok := exprparse.Parse(newCtx(parsectx.STMT), docnode.NewArray(str("eth0"), str("eth1")))
	require.True(t, ok)
	assert.Equal(t, ast.ExprList, e.Kind)
	assert.Len(t, e.Children, 2)
}

func TestParse_Payload(t *testing.T) {
	n := wrap("payload", obj(pair("name", str("ip")), pair("field", str("saddr"))))
	e, ok := exprparse.Parse(newCtx(parsectx.STMT), n)
	require.True(t, ok)
	assert.Equal(t, ast.ExprPayload, e.Kind)
	assert.Equal(t, "ip", e.Proto)
	assert.Equal(t, "saddr", e.Field)
}

func TestParse_Payload_UnknownField(t *testing.T) {
	n := wrap("payload", obj(pair("name", str("ip")), pair("field", str("bogus"))))
	_, ok := exprparse.Parse(newCtx(parsectx.STMT), n)
	require.False(t, ok)
}

func TestParse_Payload_Raw(t *testing.T) {
	n := wrap("payload", obj(
		pair("base", str("nh")),
		pair("name", str("raw")),
		pair("offset", num(8)),
		pair("len", num(16)),
	))
	e, ok := exprparse.Parse(newCtx(parsectx.STMT), n)
	require.True(t, ok)
	assert.Equal(t, ast.ExprPayloadRaw, e.Kind)
	assert.True(t, e.Raw)
}

func TestParse_Prefix(t *testing.T) {
	n := wrap("prefix", obj(pair("addr", str("10.0.0.0")), pair("len", num(24))))
	e, ok := exprparse.Parse(newCtx(parsectx.STMT), n)
	require.True(t, ok)
	assert.Equal(t, ast.ExprPrefix, e.Kind)
	assert.Equal(t, 24, e.PrefixLen)
	assert.Equal(t, "10.0.0.0", e.PrefixAddr.Str)
}

func TestParse_Range(t *testing.T) {
	n := wrap("range", docnode.NewArray(str("1024"), str("2048")))
	e, ok := exprparse.Parse(newCtx(parsectx.STMT), n)
	require.True(t, ok)
	assert.Equal(t, ast.ExprRange, e.Kind)
}

func TestParse_Range_WrongArity(t *testing.T) {
	n := wrap("range", docnode.NewArray(str("1024")))
	_, ok := exprparse.Parse(newCtx(parsectx.STMT), n)
	require.False(t, ok)
}

func TestParse_Concat_RejectsNestedConcatAndBuildsFlatNary(t *testing.T) {
	// Concat elements parse at PRIMARY, where concat is not admissible.
	inner := wrap("concat", docnode.NewArray(str("a"), str("b")))
	_, ok := exprparse.Parse(newCtx(parsectx.STMT), wrap("concat", docnode.NewArray(inner, str("c"))))
	require.False(t, ok)

	n := wrap("concat", docnode.NewArray(str("a"), str("b"), str("c")))
	e, ok := exprparse.Parse(newCtx(parsectx.STMT), n)
	require.True(t, ok)
	assert.Equal(t, ast.ExprConcat, e.Kind)
	assert.Len(t, e.Children, 3)
}

func TestParse_Concat_RequiresTwoElements(t *testing.T) {
	n := wrap("concat", docnode.NewArray(str("a")))
	_, ok := exprparse.Parse(newCtx(parsectx.STMT), n)
	require.False(t, ok)
}

func TestParse_Wildcard(t *testing.T) {
	n := wrap("*", docnode.NewNull())
	e, ok := exprparse.Parse(newCtx(parsectx.STMT), n)
	require.True(t, ok)
	assert.Equal(t, ast.ExprWildcard, e.Kind)
}

func TestParse_Verdict_JumpRequiresStringTarget(t *testing.T) {
	n := wrap("jump", str("forward_chain"))
	e, ok := exprparse.Parse(newCtx(parsectx.RHS), n)
	require.True(t, ok)
	assert.Equal(t, "forward_chain", e.VerdictTarget)

	_, ok = exprparse.Parse(newCtx(parsectx.RHS), wrap("jump", docnode.NewNull()))
	require.False(t, ok)
}

func TestParse_Verdict_NotAdmissibleInStmt(t *testing.T) {
	// accept/drop/etc. are only admissible at RHS/SET_RHS, never bare STMT.
	_, ok := exprparse.Parse(newCtx(parsectx.STMT), wrap("accept", docnode.NewNull()))
	require.False(t, ok)
}

func TestParse_UnknownExpressionKind(t *testing.T) {
	_, ok := exprparse.Parse(newCtx(parsectx.STMT), wrap("bogus-kind", docnode.NewNull()))
	require.False(t, ok)
}

func TestParse_Meta(t *testing.T) {
	n := wrap("meta", str("iifname"))
	e, ok := exprparse.Parse(newCtx(parsectx.STMT), n)
	require.True(t, ok)
	assert.Equal(t, ast.ExprMeta, e.Kind)
	assert.Equal(t, "iifname", e.MetaKey)
}

func TestParse_Meta_UnknownKey(t *testing.T) {
	n := wrap("meta", str("not-a-real-key"))
	_, ok := exprparse.Parse(newCtx(parsectx.STMT), n)
	require.False(t, ok)
}

func TestParse_CT_DirectionRequiresDirectionalKey(t *testing.T) {
	n := wrap("ct", obj(pair("key", str("state")), pair("dir", str("reply"))))
	_, ok := exprparse.Parse(newCtx(parsectx.STMT), n)
	require.False(t, ok)
}

func TestParse_Fib_RequiresExactlyOneOfSaddrDaddr(t *testing.T) {
	n := wrap("fib", obj(
		pair("result", str("oif")),
		pair("flags", docnode.NewArray(str("saddr"), str("daddr"))),
	))
	_, ok := exprparse.Parse(newCtx(parsectx.PRIMARY), n)
	require.False(t, ok)
}

func TestParse_Fib_Valid(t *testing.T) {
	n := wrap("fib", obj(
		pair("result", str("oif")),
		pair("flags", docnode.NewArray(str("saddr"))),
	))
	e, ok := exprparse.Parse(newCtx(parsectx.PRIMARY), n)
	require.True(t, ok)
	assert.Equal(t, "oif", e.FibResult)
}

func TestParse_Set_WithMappingElements(t *testing.T) {
	n := wrap("set", docnode.NewArray(
		docnode.NewArray(str("80"), str("http")),
		str("443"),
	))
	e, ok := exprparse.Parse(newCtx(parsectx.RHS), n)
	require.True(t, ok)
	require.Len(t, e.Children, 2)
	assert.Equal(t, ast.ExprMapping, e.Children[0].Kind)
}

func TestParse_Elem_WithTimeoutConvertsToMilliseconds(t *testing.T) {
	n := wrap("elem", obj(
		pair("val", str("10.0.0.1")),
		pair("elem_timeout", num(5)),
	))
	e, ok := exprparse.Parse(newCtx(parsectx.RHS), n)
	require.True(t, ok)
	assert.True(t, e.ElemHasTimeout)
	assert.EqualValues(t, 5000, e.ElemTimeoutMS)
}

func TestParse_NilNode_IsStructuralError(t *testing.T) {
	ctx := newCtx(parsectx.STMT)
	_, ok := exprparse.Parse(ctx, nil)
	require.False(t, ok)
	require.False(t, ctx.Errors.Empty())
}
