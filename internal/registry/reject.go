package registry

import "github.com/joshuapare/nftkit/pkg/types"

// RejectVariant describes one `reject` statement `type` value: the reject
// kind it selects, the address family it implies (if any), and the named
// code vocabulary admissible for that kind.
//
// Per the Open Question resolution recorded in specification §9: "for
// unknown `type` the statement is returned with code = -1 and kind = -1. A
// faithful port should reject unknown `type` strings explicitly rather
// than emit a partially-initialised statement" — LookupRejectVariant's ok
// return is exactly that explicit rejection; stmtparse's reject builder
// must not fall back to a zero-value RejectVariant.
type RejectVariant struct {
	Kind      string // matches ast.Stmt.RejectKind
	Family    types.Family
	CodeNames map[string]bool
	HasCode   bool // false only for "tcp reset", which takes no code
}

var rejectVariants = map[string]RejectVariant{
	"tcp reset": {Kind: "tcp-reset", HasCode: false},
	"icmpx": {
		Kind: "icmpx", HasCode: true,
		CodeNames: set("no-route", "port-unreachable", "host-unreachable", "admin-prohibited"),
	},
	"icmp": {
		Kind: "icmp", Family: types.FamilyIP, HasCode: true,
		CodeNames: set(
			"net-unreachable", "host-unreachable", "prot-unreachable",
			"port-unreachable", "net-prohibited", "host-prohibited",
			"admin-prohibited",
		),
	},
	"icmpv6": {
		Kind: "icmpv6", Family: types.FamilyIP6, HasCode: true,
		CodeNames: set(
			"no-route", "admin-prohibited", "addr-unreachable",
			"port-unreachable", "policy-fail", "reject-route",
		),
	},
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// LookupRejectVariant resolves a reject `type` string. ok is false for any
// unrecognised spelling.
func LookupRejectVariant(typ string) (RejectVariant, bool) {
	v, ok := rejectVariants[typ]
	return v, ok
}

// HasCodeName reports whether name is a recognised code for this variant.
func (v RejectVariant) HasCodeName(name string) bool {
	return v.CodeNames[name]
}
