package registry

// ExtHeader describes one IPv6 extension header's admissible `field` names,
// grounded on the hbh/rt/rt0/rt2/frag/dst/mh descriptors the original
// implementation's exthdr builder resolves against.
type ExtHeader struct {
	Name          string
	Fields        map[string]bool
	AcceptsOffset bool // rt0 additionally accepts an integer `offset`
}

var extHeaders = map[string]ExtHeader{
	"hbh":       extHdr("hbh", false, "nexthdr", "hdrlength"),
	"hbh-1":     extHdr("hbh-1", false, "nexthdr", "hdrlength"),
	"rt":        extHdr("rt", false, "nexthdr", "hdrlength"),
	"rt0":       extHdr("rt0", true, "nexthdr", "hdrlength"),
	"rt2":       extHdr("rt2", false, "nexthdr", "hdrlength"),
	"frag":      extHdr("frag", false, "nexthdr", "reserved2", "id", "frag-off", "more-fragments"),
	"dst":       extHdr("dst", false, "nexthdr", "hdrlength"),
	"mh":        extHdr("mh", false, "nexthdr", "hdrlength", "type"),
}

func extHdr(name string, offset bool, fields ...string) ExtHeader {
	m := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f] = true
	}
	return ExtHeader{Name: name, Fields: m, AcceptsOffset: offset}
}

// LookupExtHeader resolves an extension-header descriptor name.
func LookupExtHeader(name string) (ExtHeader, bool) {
	h, ok := extHeaders[name]
	return h, ok
}

func (h ExtHeader) HasField(field string) bool {
	return h.Fields[field]
}
