package registry

// fibFlags / fibResults are the `fib` expression's admissible `flags` and
// `result` vocabularies (specification §4.2).
var fibFlags = map[string]bool{
	"saddr": true, "daddr": true, "mark": true, "iif": true, "oif": true,
}

var fibResults = map[string]bool{"oif": true, "oifname": true, "type": true}

func IsFibFlag(name string) bool   { return fibFlags[name] }
func IsFibResult(name string) bool { return fibResults[name] }
