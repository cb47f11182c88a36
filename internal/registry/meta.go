package registry

// metaKeys is the meta expression's key registry, grounded on the meta_key
// table in the original implementation's meta_key_parse.
var metaKeys = map[string]bool{
	"length": true, "protocol": true, "priority": true, "mark": true,
	"iif": true, "iifname": true, "iiftype": true,
	"oif": true, "oifname": true, "oiftype": true,
	"skuid": true, "skgid": true, "nftrace": true, "rtclassid": true,
	"ibrpvid": true, "ibriportpvid": true, "ibridgename": true, "obridgename": true,
	"pkttype": true, "cpu": true, "iifgroup": true, "oifgroup": true,
	"cgroup": true, "nfproto": true, "l4proto": true, "secpath": true,
	"time": true, "hour": true, "day": true, "random": true,
	"sdif": true, "sdifname": true,
}

// IsMetaKey reports whether name is a recognised meta key.
func IsMetaKey(name string) bool {
	return metaKeys[name]
}
