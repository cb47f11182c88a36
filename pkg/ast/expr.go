// Package ast is the typed abstract syntax tree the parser emits:
// expressions, statements, and commands. Following the teacher's
// pkg/ast.Node design (a single struct with a Kind discriminant and a flat
// set of named fields, rather than an interface hierarchy with dynamic
// dispatch), every node is one of three struct types — Expr, Stmt, Command
// — each carrying a Kind enum and the union of fields any of its variants
// need. Fields irrelevant to the node's Kind are simply left zero.
//
// The constructors below are the "opaque builders with named fields" the
// specification treats as an external collaborator (§1): they do nothing
// but populate a struct literal. All admissibility, cross-field, and
// vocabulary validation lives in the parser packages (internal/exprparse,
// internal/stmtparse, internal/cmdparse), never here.
package ast

import (
	"github.com/joshuapare/nftkit/internal/location"
	"github.com/joshuapare/nftkit/pkg/types"
)

// ExprKind discriminates the expression node variants named in the
// specification's §3 data model.
type ExprKind int

const (
	ExprImmediate ExprKind = iota
	ExprConstant
	ExprMeta
	ExprPayload
	ExprPayloadRaw
	ExprExthdr
	ExprTCPOption
	ExprRT
	ExprCT
	ExprNumgen
	ExprHash
	ExprFib
	ExprBinop
	ExprConcat
	ExprList
	ExprPrefix
	ExprRange
	ExprWildcard
	ExprVerdict
	ExprSet
	ExprSetElem
	ExprMapping
	ExprMap
	ExprRelational
)

func (k ExprKind) String() string {
	names := [...]string{
		"immediate", "constant", "meta", "payload", "payload-raw", "exthdr",
		"tcp-option", "rt", "ct", "numgen", "hash", "fib", "binop", "concat",
		"list", "prefix", "range", "wildcard", "verdict", "set", "set-elem",
		"mapping", "map", "relational",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// ImmediateKind discriminates the four scalar readings the primitive value
// reader can produce (specification §4.1).
type ImmediateKind int

const (
	ImmSymbol ImmediateKind = iota
	ImmSetReference
	ImmInteger
	ImmBoolean
)

// Expr is every expression node tagged by Kind. See the package doc for why
// this is one struct rather than an interface hierarchy.
type Expr struct {
	Kind ExprKind
	Loc  location.Location

	// Immediate
	ImmKind ImmediateKind
	Str     string // symbol text, set-reference name (sigil stripped), or integer decimal text
	Bool    bool

	// Constant
	Datatype types.Datatype
	Bytes    []byte

	// Meta
	MetaKey string

	// Payload / PayloadRaw
	Proto        string
	Field        string
	Base         string // ll, nh, th (PayloadRaw only)
	Offset       int
	PayloadLen   int
	BigEndian    bool
	Raw          bool

	// Exthdr
	ExthdrDesc   string
	ExthdrField  string // "" => presence probe
	ExthdrOffset int    // rt0 extra integer offset

	// TcpOption
	TCPOptType  string
	TCPOptField string // "" => presence probe

	// Rt
	RTKey    string
	RTFamily types.Family

	// Ct
	CTKey    string
	CTDir    string // "", "original", "reply"
	CTFamily types.Family

	// Numgen
	NumgenMode   string // inc, random
	NumgenMod    int64
	NumgenOffset int64

	// Hash (jhash / symhash)
	HashMode    string
	HashMod     int64
	HashSeed    int64
	HashHasSeed bool
	HashOffset  int64
	HashExpr    *Expr // nil for symhash

	// Fib
	FibFlags  []string
	FibResult string

	// Binop
	BinOp string // |, ^, &, >>, <<
	LHS   *Expr
	RHS   *Expr

	// Concat / List / Set
	Children []*Expr

	// Prefix
	PrefixAddr *Expr
	PrefixLen  int

	// Range
	RangeLo *Expr
	RangeHi *Expr

	// Verdict
	VerdictKind   string // accept, drop, continue, return, queue, jump, goto
	VerdictTarget string

	// SetElem
	ElemValue      *Expr
	ElemTimeoutMS  int64
	ElemHasTimeout bool
	ElemExpiresMS  int64
	ElemHasExpires bool
	ElemComment    string

	// Mapping (set elem key:value) / Map (verdict map)
	MapLHS *Expr
	MapRHS *Expr

	// Relational (op, lhs, rhs) — built by the statement parser's match
	// builder, a distinct node from the statement itself per spec §3.
	RelOp  string
	RelLHS *Expr
	RelRHS *Expr
}

func NewImmediateSymbol(loc location.Location, s string) *Expr {
	return &Expr{Kind: ExprImmediate, ImmKind: ImmSymbol, Str: s, Loc: loc}
}

func NewImmediateSetReference(loc location.Location, name string) *Expr {
	return &Expr{Kind: ExprImmediate, ImmKind: ImmSetReference, Str: name, Loc: loc}
}

func NewImmediateInteger(loc location.Location, text string) *Expr {
	return &Expr{Kind: ExprImmediate, ImmKind: ImmInteger, Str: text, Loc: loc}
}

func NewImmediateBoolean(loc location.Location, b bool) *Expr {
	return &Expr{Kind: ExprImmediate, ImmKind: ImmBoolean, Bool: b, Loc: loc}
}

func NewConstant(loc location.Location, dt types.Datatype, value byte) *Expr {
	return &Expr{Kind: ExprConstant, Datatype: dt, Bytes: []byte{value}, Loc: loc}
}

func NewConstantZero(loc location.Location, dt types.Datatype) *Expr {
	return &Expr{Kind: ExprConstant, Datatype: dt, Loc: loc}
}

func NewMeta(loc location.Location, key string) *Expr {
	return &Expr{Kind: ExprMeta, MetaKey: key, Loc: loc}
}

func NewPayload(loc location.Location, proto, field string) *Expr {
	return &Expr{Kind: ExprPayload, Proto: proto, Field: field, Loc: loc}
}

func NewPayloadRaw(loc location.Location, base string, offset, length int) *Expr {
	return &Expr{
		Kind: ExprPayloadRaw, Base: base, Offset: offset, PayloadLen: length,
		BigEndian: true, Raw: true, Loc: loc,
	}
}

func NewExthdr(loc location.Location, desc, field string, offset int) *Expr {
	return &Expr{Kind: ExprExthdr, ExthdrDesc: desc, ExthdrField: field, ExthdrOffset: offset, Loc: loc}
}

func NewTCPOption(loc location.Location, typ, field string) *Expr {
	return &Expr{Kind: ExprTCPOption, TCPOptType: typ, TCPOptField: field, Loc: loc}
}

func NewRT(loc location.Location, key string, family types.Family) *Expr {
	return &Expr{Kind: ExprRT, RTKey: key, RTFamily: family, Loc: loc}
}

func NewCT(loc location.Location, key, dir string, family types.Family) *Expr {
	return &Expr{Kind: ExprCT, CTKey: key, CTDir: dir, CTFamily: family, Loc: loc}
}

func NewNumgen(loc location.Location, mode string, mod, offset int64) *Expr {
	return &Expr{Kind: ExprNumgen, NumgenMode: mode, NumgenMod: mod, NumgenOffset: offset, Loc: loc}
}

func NewHash(loc location.Location, mode string, mod int64, seed int64, hasSeed bool, offset int64, sub *Expr) *Expr {
	return &Expr{
		Kind: ExprHash, HashMode: mode, HashMod: mod, HashSeed: seed,
		HashHasSeed: hasSeed, HashOffset: offset, HashExpr: sub, Loc: loc,
	}
}

func NewFib(loc location.Location, flags []string, result string) *Expr {
	return &Expr{Kind: ExprFib, FibFlags: flags, FibResult: result, Loc: loc}
}

func NewBinop(loc location.Location, op string, lhs, rhs *Expr) *Expr {
	return &Expr{Kind: ExprBinop, BinOp: op, LHS: lhs, RHS: rhs, Loc: loc}
}

func NewConcat(loc location.Location, children []*Expr) *Expr {
	return &Expr{Kind: ExprConcat, Children: children, Loc: loc}
}

func NewList(loc location.Location, children []*Expr) *Expr {
	return &Expr{Kind: ExprList, Children: children, Loc: loc}
}

func NewPrefix(loc location.Location, addr *Expr, length int) *Expr {
	return &Expr{Kind: ExprPrefix, PrefixAddr: addr, PrefixLen: length, Loc: loc}
}

func NewRange(loc location.Location, lo, hi *Expr) *Expr {
	return &Expr{Kind: ExprRange, RangeLo: lo, RangeHi: hi, Loc: loc}
}

func NewWildcard(loc location.Location) *Expr {
	return &Expr{Kind: ExprWildcard, Loc: loc}
}

func NewVerdict(loc location.Location, kind, target string) *Expr {
	return &Expr{Kind: ExprVerdict, VerdictKind: kind, VerdictTarget: target, Loc: loc}
}

func NewSet(loc location.Location, elems []*Expr) *Expr {
	return &Expr{Kind: ExprSet, Children: elems, Loc: loc}
}

func NewSetElem(loc location.Location, value *Expr) *Expr {
	return &Expr{Kind: ExprSetElem, ElemValue: value, Loc: loc}
}

func NewMapping(loc location.Location, lhs, rhs *Expr) *Expr {
	return &Expr{Kind: ExprMapping, MapLHS: lhs, MapRHS: rhs, Loc: loc}
}

func NewMap(loc location.Location, lhs, rhs *Expr) *Expr {
	return &Expr{Kind: ExprMap, MapLHS: lhs, MapRHS: rhs, Loc: loc}
}

func NewRelational(loc location.Location, op string, lhs, rhs *Expr) *Expr {
	return &Expr{Kind: ExprRelational, RelOp: op, RelLHS: lhs, RelRHS: rhs, Loc: loc}
}
