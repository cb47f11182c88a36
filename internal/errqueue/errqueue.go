// Package errqueue is the parser's error-record sink. Builders never return
// a Go error from the middle of a parse; they enqueue a Record describing
// what went wrong and return a nil AST node, the way the reference
// implementation calls erec_queue() instead of unwinding with an exception.
//
// Adapted from the teacher's internal/repair diagnostic-report system
// (Severity, categorized records, Add/Finalize/format): the repair-specific
// fields (RepairAction, RiskLevel, byte Offset into a hive file) are dropped
// since nothing here is auto-repairable, and Category is replaced by the six
// error Kinds named in the specification's error handling design.
package errqueue

import (
	"fmt"
	"strings"

	"github.com/joshuapare/nftkit/internal/location"
)

// Severity classifies how serious a record is. Only Error is currently
// produced by the parser and the document driver; Warning, Info and
// Critical are reserved for future use (e.g. deprecated spelling accepted
// with a warning).
type Severity int

const (
	SevInfo Severity = iota
	SevWarning
	SevError
	SevCritical
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Kind classifies the category of failure, per the specification's error
// handling design (§7).
type Kind int

const (
	// Structural: wrong document shape, wrong key count, missing required key.
	Structural Kind = iota
	// Vocabulary: unknown family/hook/policy/kind/flag/operator, or a name
	// valid elsewhere but not in this context.
	Vocabulary
	// Context: a syntactically valid expression kind in a grammatical slot
	// that doesn't admit it (F ⊄ M_T).
	Context
	// CrossField: semantic rules violated across fields.
	CrossField
	// Resource: downstream allocation or registry lookup failure.
	Resource
	// Evaluator: reported by the external evaluator.
	Evaluator
)

func (k Kind) String() string {
	switch k {
	case Structural:
		return "structural"
	case Vocabulary:
		return "vocabulary"
	case Context:
		return "context"
	case CrossField:
		return "cross-field"
	case Resource:
		return "resource"
	case Evaluator:
		return "evaluator"
	default:
		return "unknown"
	}
}

// Record is a single queued error.
type Record struct {
	Severity Severity
	Kind     Kind
	Location location.Location
	Message  string
}

func (r Record) String() string {
	return fmt.Sprintf("%s: %s: %s", r.Location, r.Severity, r.Message)
}

// Queue is an append-only error sink owned by the calling document, per the
// specification's resource model: "The message-sink error queue is
// append-only and exclusively owned by the calling document."
type Queue struct {
	records []Record
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Add enqueues a record at Error severity.
func (q *Queue) Add(kind Kind, loc location.Location, format string, args ...interface{}) {
	q.AddSeverity(SevError, kind, loc, format, args...)
}

// AddSeverity enqueues a record at the given severity.
func (q *Queue) AddSeverity(sev Severity, kind Kind, loc location.Location, format string, args ...interface{}) {
	q.records = append(q.records, Record{
		Severity: sev,
		Kind:     kind,
		Location: loc,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Records returns the accumulated records in enqueue order.
func (q *Queue) Records() []Record {
	return q.records
}

// Empty reports whether no records have been queued.
func (q *Queue) Empty() bool {
	return len(q.records) == 0
}

// HasErrors reports whether any Error or Critical severity record exists.
func (q *Queue) HasErrors() bool {
	for _, r := range q.records {
		if r.Severity >= SevError {
			return true
		}
	}
	return false
}

// Len returns the number of queued records.
func (q *Queue) Len() int {
	return len(q.records)
}

// FormatText renders all records, one per line, for CLI / test output.
func (q *Queue) FormatText() string {
	var b strings.Builder
	for _, r := range q.records {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}
