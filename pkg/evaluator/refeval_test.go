package evaluator_test

import (
	"net/netip"
	"testing"

	"github.com/joshuapare/nftkit/internal/location"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/evaluator"
	"github.com/joshuapare/nftkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(family types.Family, table, name string) types.Handle {
	return types.Handle{Family: family, Table: table, Name: name}
}

func immediate(addr string) *ast.Expr {
	return ast.NewImmediateSymbol(location.Location{}, addr)
}

func TestReference_IntervalSet_MembershipAfterDecl(t *testing.T) {
	r := evaluator.NewReference()

	cmd := &ast.Command{
		Op:         ast.OpAdd,
		ObjKind:    ast.ObjSet,
		Handle:     handle(types.FamilyIP, "filter", "blackhole"),
		SetType:    types.Datatype{Name: "ipv4_addr"},
		HasSetType: true,
		SetFlags:   []string{"interval"},
		Elements: []*ast.Expr{
			ast.NewPrefix(location.Location{}, immediate("10.0.0.0"), 24),
		},
	}

	require.NoError(t, r.Evaluate(cmd))
	assert.True(t, r.Contains("ip", "filter", "blackhole", netip.MustParseAddr("10.0.0.5")))
	assert.False(t, r.Contains("ip", "filter", "blackhole", netip.MustParseAddr("10.0.1.5")))
}

func TestReference_ElementAdd_ExtendsKnownSet(t *testing.T) {
	r := evaluator.NewReference()

	decl := &ast.Command{
		Op:         ast.OpAdd,
		ObjKind:    ast.ObjSet,
		Handle:     handle(types.FamilyIP, "filter", "blackhole"),
		SetType:    types.Datatype{Name: "ipv4_addr"},
		HasSetType: true,
		SetFlags:   []string{"interval"},
	}
	require.NoError(t, r.Evaluate(decl))

	add := &ast.Command{
		Op:       ast.OpAdd,
		ObjKind:  ast.ObjElement,
		Handle:   handle(types.FamilyIP, "filter", "blackhole"),
		Elements: []*ast.Expr{ast.NewPrefix(location.Location{}, immediate("192.168.1.0"), 24)},
	}
	require.NoError(t, r.Evaluate(add))

	assert.True(t, r.Contains("ip", "filter", "blackhole", netip.MustParseAddr("192.168.1.200")))
}

func TestReference_ElementAdd_UndeclaredSetIsError(t *testing.T) {
	r := evaluator.NewReference()

	add := &ast.Command{
		Op:       ast.OpAdd,
		ObjKind:  ast.ObjElement,
		Handle:   handle(types.FamilyIP, "filter", "nonexistent"),
		Elements: []*ast.Expr{immediate("10.0.0.1")},
	}

	err := r.Evaluate(add)
	require.Error(t, err)
}

func TestReference_ElementDelete_UndeclaredSetIsNotError(t *testing.T) {
	r := evaluator.NewReference()

	del := &ast.Command{
		Op:       ast.OpDelete,
		ObjKind:  ast.ObjElement,
		Handle:   handle(types.FamilyIP, "filter", "nonexistent"),
		Elements: []*ast.Expr{immediate("10.0.0.1")},
	}

	require.NoError(t, r.Evaluate(del))
}

func TestReference_SetDelete_ForgetsPriorElements(t *testing.T) {
	r := evaluator.NewReference()

	decl := &ast.Command{
		Op:         ast.OpAdd,
		ObjKind:    ast.ObjSet,
		Handle:     handle(types.FamilyIP, "filter", "blackhole"),
		SetType:    types.Datatype{Name: "ipv4_addr"},
		HasSetType: true,
		SetFlags:   []string{"interval"},
		Elements:   []*ast.Expr{ast.NewPrefix(location.Location{}, immediate("10.0.0.0"), 24)},
	}
	require.NoError(t, r.Evaluate(decl))
	require.True(t, r.Contains("ip", "filter", "blackhole", netip.MustParseAddr("10.0.0.1")))

	del := &ast.Command{
		Op:      ast.OpDelete,
		ObjKind: ast.ObjSet,
		Handle:  handle(types.FamilyIP, "filter", "blackhole"),
	}
	require.NoError(t, r.Evaluate(del))
	assert.False(t, r.Contains("ip", "filter", "blackhole", netip.MustParseAddr("10.0.0.1")))
}

func TestReference_NonAddressSet_AcceptedWithoutCaching(t *testing.T) {
	r := evaluator.NewReference()

	decl := &ast.Command{
		Op:         ast.OpAdd,
		ObjKind:    ast.ObjSet,
		Handle:     handle(types.FamilyIP, "filter", "ports"),
		SetType:    types.Datatype{Name: "inet_service"},
		HasSetType: true,
		Elements:   []*ast.Expr{immediate("443")},
	}
	require.NoError(t, r.Evaluate(decl))
	assert.False(t, r.Contains("ip", "filter", "ports", netip.MustParseAddr("10.0.0.1")))
}
