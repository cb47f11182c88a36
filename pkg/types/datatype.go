package types

import "strings"

// Datatype names a value type in the datatype registry: a concrete leaf
// type (e.g. "ipv4_addr") or a concatenation of leaf types joined by ".",
// as produced when a `concat` expression's type is resolved in DTYPE
// context (e.g. "ipv4_addr . inet_service").
type Datatype struct {
	Name   string
	Concat []string // len > 1 when Name is a "."-joined concatenation
}

// datatypeNames is the registry of leaf datatypes the `DTYPE` context
// resolves a bare string against (specification §4.2, dispatcher step 2),
// and that set/map/element type declarations are built from.
var datatypeNames = map[string]bool{
	"ipv4_addr":  true,
	"ipv6_addr":  true,
	"ether_addr": true,
	"inet_proto": true,
	"inet_service": true,
	"mark":       true,
	"counter":    true,
	"quota":      true,
	"ct_helper":  true,
	"limit":      true,
	"realm":      true,
	"devgroup":   true,
	"string":     true,
	"boolean":    true,
	"time":       true,
	"icmp_type":  true,
	"icmpx_code": true,
	"icmp_code":  true,
	"icmpv6_code": true,
}

// ParseDatatype resolves a name against the datatype registry. A "."
// separated name (e.g. "ipv4_addr . inet_service") is a concatenation of
// leaf types; every component must itself be a known leaf type.
func ParseDatatype(name string) (Datatype, bool) {
	parts := splitConcatType(name)
	for _, p := range parts {
		if !datatypeNames[p] {
			return Datatype{}, false
		}
	}
	if len(parts) == 1 {
		return Datatype{Name: parts[0]}, true
	}
	return Datatype{Name: name, Concat: parts}, true
}

func splitConcatType(name string) []string {
	raw := strings.Split(name, ".")
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		out = append(out, strings.TrimSpace(r))
	}
	return out
}

// namedConstants maps the reserved constant spellings recognised in RHS
// context (specification §4.1) to the byte value and datatype the
// reference implementation's constant_tbl assigns them.
var namedConstants = map[string]struct {
	Value    byte
	Datatype string
}{
	"tcp":      {6, "inet_proto"},
	"udp":      {17, "inet_proto"},
	"udplite":  {136, "inet_proto"},
	"esp":      {50, "inet_proto"},
	"ah":       {51, "inet_proto"},
	"icmp":     {1, "inet_proto"},
	"icmpv6":   {58, "inet_proto"},
	"comp":     {108, "inet_proto"},
	"dccp":     {33, "inet_proto"},
	"sctp":     {132, "inet_proto"},
	"redirect": {5, "icmp_type"},
}

// NamedConstant looks up a spelling in the named-constant table used by the
// primitive value reader's string case. ok is false if name is not a
// recognised constant (the caller then falls back to a bare symbol).
func NamedConstant(name string) (value byte, datatype string, ok bool) {
	c, found := namedConstants[name]
	if !found {
		return 0, "", false
	}
	return c.Value, c.Datatype, true
}

// reservedKeywords is the set of bare-symbol reserved spellings recognised
// in RHS context (specification §4.1).
var reservedKeywords = map[string]bool{
	"ether":    true,
	"ip":       true,
	"ip6":      true,
	"vlan":     true,
	"arp":      true,
	"dnat":     true,
	"snat":     true,
	"ecn":      true,
	"reset":    true,
	"original": true,
	"reply":    true,
	"label":    true,
}

// IsKeyword reports whether name is a reserved keyword spelling.
func IsKeyword(name string) bool {
	return reservedKeywords[name]
}

// IsNamedConstant reports whether name is a named-constant spelling.
func IsNamedConstant(name string) bool {
	_, ok := namedConstants[name]
	return ok
}
