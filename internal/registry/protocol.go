// Package registry holds the process-wide, immutable-after-init vocabulary
// tables the parser validates against: protocol header field templates,
// extension headers, TCP options, meta keys, ct keys, hooks, and the
// reject type/code tables. Per specification §5, "may be read freely
// without synchronization" — every table here is a package-level map
// populated once at init time and never written to afterward.
//
// Field names are grounded on the proto_tbl / proto_desc templates in
// original_source/src/parser_json.c (proto_eth, proto_vlan, proto_arp,
// proto_ip, proto_ip6, proto_tcp, proto_udp, proto_udplite, proto_icmp,
// proto_icmp6, proto_ah, proto_esp, proto_comp, proto_dccp, proto_sctp).
package registry

// Protocol describes one payload protocol's admissible `field` names.
type Protocol struct {
	Name   string
	Fields map[string]bool
}

func proto(name string, fields ...string) Protocol {
	m := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f] = true
	}
	return Protocol{Name: name, Fields: m}
}

var protocols = map[string]Protocol{
	"ether": proto("ether", "daddr", "saddr", "type"),
	"vlan":  proto("vlan", "id", "cfi", "dei", "pcp", "type"),
	"arp": proto("arp",
		"htype", "ptype", "hlen", "plen", "operation",
		"saddr ether", "daddr ether", "saddr ip", "daddr ip",
	),
	"ip": proto("ip",
		"version", "hdrlength", "dscp", "ecn", "length", "id",
		"frag-off", "rd", "df", "mf", "ttl", "protocol", "checksum",
		"saddr", "daddr",
	),
	"ip6": proto("ip6",
		"version", "dscp", "ecn", "flowlabel", "length", "nexthdr",
		"hoplimit", "saddr", "daddr",
	),
	"tcp": proto("tcp",
		"sport", "dport", "sequence", "ackseq", "doff", "reserved",
		"flags", "fin", "syn", "rst", "psh", "ack", "urg", "ecn", "cwr",
		"window", "checksum", "urgptr",
	),
	"udp":     proto("udp", "sport", "dport", "length", "checksum"),
	"udplite": proto("udplite", "sport", "dport", "length", "checksum"),
	"icmp":    proto("icmp", "type", "code", "checksum", "id", "sequence", "mtu"),
	"icmpv6":  proto("icmpv6", "type", "code", "checksum", "id", "sequence", "mtu"),
	"esp":     proto("esp", "spi", "sequence"),
	"ah":      proto("ah", "nexthdr", "hdrlength", "reserved", "spi", "sequence"),
	"comp":    proto("comp", "flags", "cpi"),
	"dccp":    proto("dccp", "sport", "dport"),
	"sctp":    proto("sctp", "sport", "dport", "vtag", "checksum"),
}

// LookupProtocol resolves a payload protocol name.
func LookupProtocol(name string) (Protocol, bool) {
	p, ok := protocols[name]
	return p, ok
}

// HasField reports whether field is a recognised header field of p.
func (p Protocol) HasField(field string) bool {
	return p.Fields[field]
}

// RawBases is the set of admissible `base` values for payload raw access.
var RawBases = map[string]bool{"ll": true, "nh": true, "th": true}
