// Package location stamps AST nodes and diagnostic records with a position
// in the input document, mirroring struct location / struct input_descriptor
// from the reference implementation's erec.h.
package location

// Descriptor identifies the input a document was read from, for use in
// diagnostic output. It carries no position information by itself.
type Descriptor struct {
	Name string // file path, "-" for stdin, or a synthetic name for embedded documents
}

// Location stamps a single span in the input. FirstLine/LastLine and
// FirstColumn/LastColumn describe a range; for structured-document inputs
// with no real line/column tracking (e.g. values built in-memory by a
// caller rather than decoded from text), Internal is set instead and the
// line/column fields are zero.
type Location struct {
	Indesc      *Descriptor
	FirstLine   int
	LastLine    int
	FirstColumn int
	LastColumn  int
	Internal    bool
}

// Internal is the sentinel location used when no real input position is
// available, matching the reference implementation's internal_location.
var Internal = Location{Internal: true}

// String renders the location the way diagnostic output expects it:
// "file:line:col-col" for real locations, "<internal>" otherwise.
func (l Location) String() string {
	if l.Internal || l.Indesc == nil {
		return "<internal>"
	}
	name := l.Indesc.Name
	if name == "" {
		name = "<input>"
	}
	if l.FirstColumn == l.LastColumn {
		return name + ":" + itoa(l.FirstLine) + ":" + itoa(l.FirstColumn)
	}
	return name + ":" + itoa(l.FirstLine) + ":" + itoa(l.FirstColumn) + "-" + itoa(l.LastColumn)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
