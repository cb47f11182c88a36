package registry

// ByteUnitMultiplier resolves a quota/limit burst or rate byte-count unit
// to its multiplier. Per specification §4.3: "Rate/burst units
// kbytes/mbytes multiply by 1024/1024²."
func ByteUnitMultiplier(unit string) (int64, bool) {
	switch unit {
	case "", "bytes":
		return 1, true
	case "kbytes":
		return 1024, true
	case "mbytes":
		return 1024 * 1024, true
	default:
		return 0, false
	}
}

// TimeUnitSeconds resolves a limit "per" time unit to seconds. Per
// specification §4.3: "Time units {week, day, hour, minute, second} are
// stored as seconds; bare seconds default."
func TimeUnitSeconds(unit string) (int64, bool) {
	switch unit {
	case "", "second":
		return 1, true
	case "minute":
		return 60, true
	case "hour":
		return 3600, true
	case "day":
		return 86400, true
	case "week":
		return 604800, true
	default:
		return 0, false
	}
}

// relationalOps is the match statement's admissible `op` vocabulary.
var relationalOps = map[string]bool{
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true, "in": true,
}

// IsRelationalOp reports whether op is a recognised relational operator.
func IsRelationalOp(op string) bool {
	return relationalOps[op]
}

// DefaultRelationalOp is used when a match statement omits `op`
// (specification §4.3: "If op is absent the comparison is implicit
// equality.").
const DefaultRelationalOp = "=="
