package registry

// logLevels is the `log` statement's `level` vocabulary — the syslog
// priority names the reference implementation accepts (Supplemented
// Feature, SPEC_FULL §8: spec.md's log statement prose names the field but
// not its closed vocabulary).
var logLevels = map[string]bool{
	"emerg": true, "alert": true, "crit": true, "err": true,
	"warn": true, "notice": true, "info": true, "debug": true,
	"audit": true,
}

// IsLogLevel reports whether name is a recognised log level.
func IsLogLevel(name string) bool {
	return logLevels[name]
}
