package registry

import "strconv"

// TCPOption describes one TCP option's admissible `field` names, grounded
// on tcpopthdr_protocols / the sack0..sack3 special case in the original
// implementation's json_parse_tcp_option_type.
type TCPOption struct {
	Name   string
	Fields map[string]bool
}

var tcpOptions = map[string]TCPOption{
	"eol":            tcpOpt("eol", "kind", "length"),
	"noop":           tcpOpt("noop", "kind"),
	"maxseg":         tcpOpt("maxseg", "kind", "length", "size"),
	"window":         tcpOpt("window", "kind", "length", "count"),
	"sack-permitted": tcpOpt("sack-permitted", "kind", "length"),
	"timestamp":      tcpOpt("timestamp", "kind", "length", "tsval", "tsecr"),
}

func tcpOpt(name string, fields ...string) TCPOption {
	m := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f] = true
	}
	return TCPOption{Name: name, Fields: m}
}

// sackFields are the fields admissible on the sack0..sack3 special forms.
var sackFields = map[string]bool{"kind": true, "length": true, "left": true, "right": true}

// LookupTCPOption resolves a TCP option name, including the sack0..sack3
// special forms which are synthesised on the fly rather than pre-tabled.
func LookupTCPOption(name string) (TCPOption, bool) {
	if idx, ok := sackIndex(name); ok {
		return TCPOption{Name: name, Fields: sackFields}, ok && idx >= 0
	}
	o, ok := tcpOptions[name]
	return o, ok
}

// sackIndex reports whether name is one of sack0..sack3, and its index.
func sackIndex(name string) (int, bool) {
	const prefix = "sack"
	if len(name) != len(prefix)+1 || name[:len(prefix)] != prefix {
		return 0, false
	}
	n, err := strconv.Atoi(name[len(prefix):])
	if err != nil || n < 0 || n > 3 {
		return 0, false
	}
	return n, true
}

func (o TCPOption) HasField(field string) bool {
	return o.Fields[field]
}
