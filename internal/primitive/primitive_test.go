package primitive_test

import (
	"testing"

	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/location"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/internal/primitive"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCtx(flags parsectx.Flags) *parsectx.Context {
	ctx := parsectx.New(&location.Descriptor{Name: "test"}, nil)
	ctx.Flags = flags
	return ctx
}

func TestRead_Integer(t *testing.T) {
	e, ok := primitive.Read(newCtx(parsectx.STMT), docnode.NewInteger(443))
	require.True(t, ok)
	assert.Equal(t, ast.ImmInteger, e.ImmKind)
	assert.Equal(t, "443", e.Str)
}

func TestRead_NegativeInteger(t *testing.T) {
	e, ok := primitive.Read(newCtx(parsectx.STMT), docnode.NewInteger(-7))
	require.True(t, ok)
	assert.Equal(t, "-7", e.Str)
}

func TestRead_Boolean_RequiresRHS(t *testing.T) {
	_, ok := primitive.Read(newCtx(parsectx.STMT), docnode.NewBoolean(true))
	require.False(t, ok)

	e, ok := primitive.Read(newCtx(parsectx.RHS), docnode.NewBoolean(true))
	require.True(t, ok)
	assert.True(t, e.Bool)
}

func TestRead_SetReference(t *testing.T) {
	e, ok := primitive.Read(newCtx(parsectx.RHS), docnode.NewString("@blackhole"))
	require.True(t, ok)
	assert.Equal(t, ast.ImmSetReference, e.ImmKind)
	assert.Equal(t, "blackhole", e.Str)
}

func TestRead_SetReference_EmptyNameIsError(t *testing.T) {
	_, ok := primitive.Read(newCtx(parsectx.RHS), docnode.NewString("@"))
	require.False(t, ok)
}

func TestRead_ReservedKeyword_AdmissibleOutsideRHS(t *testing.T) {
	e, ok := primitive.Read(newCtx(parsectx.STMT), docnode.NewString("ip"))
	require.True(t, ok)
	assert.Equal(t, ast.ImmSymbol, e.ImmKind)
	assert.Equal(t, "ip", e.Str)
}

func TestRead_NamedConstant_OnlyInRHS(t *testing.T) {
	e, ok := primitive.Read(newCtx(parsectx.RHS), docnode.NewString("tcp"))
	require.True(t, ok)
	assert.Equal(t, ast.ExprConstant, e.Kind)
	assert.Equal(t, "inet_proto", e.Datatype.Name)
	assert.Equal(t, []byte{6}, e.Bytes)
}

func TestRead_NamedConstant_FallsBackToSymbolOutsideRHS(t *testing.T) {
	e, ok := primitive.Read(newCtx(parsectx.STMT), docnode.NewString("tcp"))
	require.True(t, ok)
	assert.Equal(t, ast.ExprImmediate, e.Kind)
	assert.Equal(t, ast.ImmSymbol, e.ImmKind)
}

func TestRead_PlainSymbol(t *testing.T) {
	e, ok := primitive.Read(newCtx(parsectx.STMT), docnode.NewString("eth0"))
	require.True(t, ok)
	assert.Equal(t, ast.ImmSymbol, e.ImmKind)
	assert.Equal(t, "eth0", e.Str)
}

func TestRead_Null_IsError(t *testing.T) {
	_, ok := primitive.Read(newCtx(parsectx.STMT), docnode.NewNull())
	require.False(t, ok)
}

func TestRead_Real_IsRejected(t *testing.T) {
	_, ok := primitive.Read(newCtx(parsectx.RHS), docnode.NewReal("1.5"))
	require.False(t, ok)
}
