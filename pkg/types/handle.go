package types

// Handle is the identifying tuple attached to every command: family, table,
// and the chain/set/flowtable/object name or numeric id, plus an optional
// rule position. Per the specification's §3 invariant, "a handle populated
// during command construction owns its string fields (deep-copied on
// adoption)" — Adopt() performs that copy so a Handle never aliases a
// string slice owned by the document-node tree it was parsed from.
type Handle struct {
	Family   Family
	Table    string
	Chain    string
	Name     string
	ID       int64 // numeric handle, when addressing by id rather than name
	Position int64 // insert/add position, when specified
	HasID    bool
	HasPos   bool
}

// Adopt returns a copy of h with every string field backed by a fresh
// array, so the returned Handle can outlive the buffer (e.g. a docnode.Node
// tree) its strings were sliced from.
func (h Handle) Adopt() Handle {
	h.Table = cloneString(h.Table)
	h.Chain = cloneString(h.Chain)
	h.Name = cloneString(h.Name)
	return h
}

func cloneString(s string) string {
	if s == "" {
		return s
	}
	b := make([]byte, len(s))
	copy(b, s)
	return string(b)
}
