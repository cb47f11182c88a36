package registry

// hooks is the chain hook registry (specification §4.4, chain contract).
var hooks = map[string]bool{
	"prerouting": true, "input": true, "forward": true, "output": true,
	"postrouting": true, "ingress": true, "egress": true,
}

// IsHook reports whether name is a recognised hook.
func IsHook(name string) bool {
	return hooks[name]
}

// chainPolicies is the base-chain policy registry.
var chainPolicies = map[string]bool{"accept": true, "drop": true}

// IsChainPolicy reports whether name is a recognised base-chain policy.
func IsChainPolicy(name string) bool {
	return chainPolicies[name]
}
