// Package types holds the small, widely shared value types of the AST:
// address families, datatypes, and the command handle. These are kept
// separate from pkg/ast so that internal/registry (which the parser
// packages depend on) can import them without an import cycle.
package types

// Family is the address-family selector for a rule, per the
// specification's §3 invariant "Families are one of {ip, ip6, inet, arp,
// bridge, netdev}; families outside this set are rejected at the ingest
// point", mirroring the reference implementation's NFPROTO_* constants.
type Family int

const (
	FamilyUnspecified Family = iota
	FamilyIP
	FamilyIP6
	FamilyInet
	FamilyARP
	FamilyBridge
	FamilyNetdev
)

var familyNames = map[string]Family{
	"ip":     FamilyIP,
	"ip6":    FamilyIP6,
	"inet":   FamilyInet,
	"arp":    FamilyARP,
	"bridge": FamilyBridge,
	"netdev": FamilyNetdev,
}

// ParseFamily resolves a family name against the family table. ok is false
// for any name outside the fixed set, per the §3 invariant above — the
// caller (cmdparse) is responsible for queuing the Vocabulary error.
func ParseFamily(name string) (Family, bool) {
	f, ok := familyNames[name]
	return f, ok
}

func (f Family) String() string {
	switch f {
	case FamilyIP:
		return "ip"
	case FamilyIP6:
		return "ip6"
	case FamilyInet:
		return "inet"
	case FamilyARP:
		return "arp"
	case FamilyBridge:
		return "bridge"
	case FamilyNetdev:
		return "netdev"
	default:
		return "unspecified"
	}
}
