package registry

// ctKeys is the ct expression's key registry.
var ctKeys = map[string]bool{
	"state": true, "direction": true, "expiration": true, "helper": true,
	"l3proto": true, "saddr": true, "daddr": true, "proto": true,
	"proto-src": true, "proto-dst": true, "label": true, "event": true,
	"secmark": true, "zone": true, "id": true, "status": true,
	"mark": true, "bytes": true, "packets": true, "avgpkt": true,
}

// ctDirectionalKeys is the subset of ctKeys for which an optional `dir`
// field is admissible, per specification §4.2's ct cross-check list.
var ctDirectionalKeys = map[string]bool{
	"l3proto": true, "saddr": true, "daddr": true, "proto": true,
	"proto-src": true, "proto-dst": true, "bytes": true, "packets": true,
	"avgpkt": true, "zone": true,
}

// IsCtKey reports whether name is a recognised ct key.
func IsCtKey(name string) bool {
	return ctKeys[name]
}

// IsCtDirectionalKey reports whether name admits an optional `dir` field.
func IsCtDirectionalKey(name string) bool {
	return ctDirectionalKeys[name]
}

// ctStateFlags / ctStatusFlags are the symbolic flag-set vocabularies for
// `ct state`/`ct status` match values, recovered from the original
// implementation's nf_ct_state_names / nf_ct_status_names (Supplemented
// Feature, SPEC_FULL §8 — spec.md names the ct key table but not this
// flag vocabulary).
var ctStateFlags = map[string]bool{
	"invalid": true, "established": true, "related": true, "new": true,
	"untracked": true,
}

var ctStatusFlags = map[string]bool{
	"snat": true, "dnat": true, "confirmed": true, "dying": true,
}

func IsCtStateFlag(name string) bool  { return ctStateFlags[name] }
func IsCtStatusFlag(name string) bool { return ctStatusFlags[name] }
