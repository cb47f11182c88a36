package registry

// Flag vocabularies for the various `flags` string-or-array fields across
// statement and command builders (specification §4.3/§4.4).
var (
	natFlags   = map[string]bool{"random": true, "fully-random": true, "persistent": true}
	logFlags   = map[string]bool{"tcp sequence": true, "tcp options": true, "ip options": true, "skuid": true, "ether": true, "all": true}
	queueFlags = map[string]bool{"bypass": true, "fanout": true}

	setFlags    = map[string]bool{"constant": true, "interval": true, "timeout": true}
	setPolicies = map[string]bool{"performance": true, "memory": true}

	// mapObjectKinds are the named object kinds a set/map `map` field may
	// reference instead of a value datatype (specification §4.4).
	mapObjectKinds = map[string]bool{"counter": true, "quota": true, "ct helper": true, "limit": true}
)

func IsNatFlag(name string) bool      { return natFlags[name] }
func IsLogFlag(name string) bool      { return logFlags[name] }
func IsQueueFlag(name string) bool    { return queueFlags[name] }
func IsSetFlag(name string) bool      { return setFlags[name] }
func IsSetPolicy(name string) bool    { return setPolicies[name] }
func IsMapObjectKind(name string) bool { return mapObjectKinds[name] }

// ctHelperProtocols / ctHelperMaxTypeLen ground the ct-helper object-kind
// contract from specification §4.4 / SPEC_FULL §8: "protocol ∈ {tcp, udp}"
// and a bounded type-name length (16 bytes, the reference implementation's
// NFT_CTHELPER_NAME_LEN), overflow rejected rather than silently truncated.
var ctHelperProtocols = map[string]bool{"tcp": true, "udp": true}

const CtHelperMaxTypeLen = 16

func IsCtHelperProtocol(name string) bool { return ctHelperProtocols[name] }
