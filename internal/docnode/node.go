// Package docnode is the generic structured-document value type the parser
// consumes (specification §3, "Document node"). It is deliberately the only
// package in this module that knows about raw JSON bytes; the core parser
// packages (primitive, exprparse, stmtparse, cmdparse, nft) import
// only Node and never encoding/json, so a caller that already has a decoded
// document (e.g. from a different transport) can hand it a Node tree built
// by hand without going through Decode at all.
//
// The ordered-object representation is adapted from the pack's mcvoid/json
// parser, which builds a Value tree with an explicit []pair slice for
// objects instead of a map so that key order and duplicate keys survive
// decode; that property is what makes the "one-key object" structural
// checks in cmdparse/stmtparse able to name the offending object precisely
// in diagnostics.
package docnode

import "fmt"

// Kind discriminates the seven leaf/composite shapes a Node can take,
// matching the specification's data model exactly.
type Kind int

const (
	Object Kind = iota
	Array
	String
	Integer
	Boolean
	Null
	Real
)

func (k Kind) String() string {
	switch k {
	case Object:
		return "object"
	case Array:
		return "array"
	case String:
		return "string"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Null:
		return "null"
	case Real:
		return "real"
	default:
		return "unknown"
	}
}

// Pair is one key/value entry of an Object node, kept in decode order.
type Pair struct {
	Key   string
	Value *Node
}

// Node is the recursively-typed document value described in the
// specification: one of {object, array, string, integer, boolean, null,
// real}. Only the fields relevant to Kind are populated.
type Node struct {
	Kind Kind

	// Object
	pairs []Pair
	index map[string]int // key -> position in pairs, for O(1) lookup

	// Array
	items []*Node

	// Scalars
	Str  string
	Int  int64
	Bool bool
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{Kind: Object, index: make(map[string]int)}
}

// NewArray returns an array node wrapping items.
func NewArray(items ...*Node) *Node {
	return &Node{Kind: Array, items: items}
}

// NewString returns a string scalar node.
func NewString(s string) *Node {
	return &Node{Kind: String, Str: s}
}

// NewInteger returns an integer scalar node.
func NewInteger(i int64) *Node {
	return &Node{Kind: Integer, Int: i}
}

// NewBoolean returns a boolean scalar node.
func NewBoolean(b bool) *Node {
	return &Node{Kind: Boolean, Bool: b}
}

// NewNull returns the null scalar node.
func NewNull() *Node {
	return &Node{Kind: Null}
}

// NewReal returns a real (floating point) scalar node. The value is kept
// only as text since the core parser never computes with it — real is
// accepted in no slot, so its sole use is being reported as the wrong kind.
func NewReal(text string) *Node {
	return &Node{Kind: Real, Str: text}
}

// Set adds or overwrites a key on an object node, preserving first-seen
// order on overwrite (matching how a JSON decoder would reassign a
// duplicate key in place).
func (n *Node) Set(key string, val *Node) {
	if n.Kind != Object {
		panic("docnode: Set on non-object node")
	}
	if n.index == nil {
		n.index = make(map[string]int)
	}
	if i, ok := n.index[key]; ok {
		n.pairs[i].Value = val
		return
	}
	n.index[key] = len(n.pairs)
	n.pairs = append(n.pairs, Pair{Key: key, Value: val})
}

// Pairs returns an object node's key/value pairs in decode order. Returns
// nil for non-object nodes.
func (n *Node) Pairs() []Pair {
	if n == nil || n.Kind != Object {
		return nil
	}
	return n.pairs
}

// Len returns the number of keys (for Object) or elements (for Array).
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case Object:
		return len(n.pairs)
	case Array:
		return len(n.items)
	default:
		return 0
	}
}

// Get looks up a key on an object node. Returns nil, false if absent or if
// n is not an object.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != Object {
		return nil, false
	}
	i, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return n.pairs[i].Value, true
}

// Items returns an array node's elements. Returns nil for non-array nodes.
func (n *Node) Items() []*Node {
	if n == nil || n.Kind != Array {
		return nil
	}
	return n.items
}

// SoleKey returns the single key/value pair of a one-key object, and true.
// Returns false (with ok=false) if n is not an object or does not have
// exactly one key — this is the structural check used throughout cmdparse
// and stmtparse for "a one-key object whose key is the discriminator".
func (n *Node) SoleKey() (key string, val *Node, ok bool) {
	if n == nil || n.Kind != Object || len(n.pairs) != 1 {
		return "", nil, false
	}
	return n.pairs[0].Key, n.pairs[0].Value, true
}

// IsNull reports whether n is absent or the null scalar.
func (n *Node) IsNull() bool {
	return n == nil || n.Kind == Null
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case String:
		return fmt.Sprintf("%q", n.Str)
	case Integer:
		return fmt.Sprintf("%d", n.Int)
	case Boolean:
		return fmt.Sprintf("%t", n.Bool)
	case Null:
		return "null"
	case Real:
		return n.Str
	case Array:
		return fmt.Sprintf("array[%d]", len(n.items))
	case Object:
		return fmt.Sprintf("object{%d keys}", len(n.pairs))
	default:
		return "?"
	}
}
