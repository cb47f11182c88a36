package ast

import (
	"github.com/joshuapare/nftkit/internal/location"
	"github.com/joshuapare/nftkit/pkg/types"
)

// StmtKind discriminates the statement node variants named in the
// specification's §3 data model.
type StmtKind int

const (
	StmtMatch StmtKind = iota
	StmtCounter
	StmtVerdict
	StmtMangle
	StmtQuota
	StmtLimit
	StmtFwd
	StmtNotrack
	StmtDup
	StmtNat
	StmtReject
	StmtSetUpdate
	StmtLog
	StmtCtHelperRef
	StmtMeter
	StmtQueue
	StmtObjRef
)

func (k StmtKind) String() string {
	names := [...]string{
		"match", "counter", "verdict", "mangle", "quota", "limit", "fwd",
		"notrack", "dup", "nat", "reject", "set-update", "log",
		"ct-helper-ref", "meter", "queue", "obj-ref",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// Stmt is every statement node tagged by Kind.
type Stmt struct {
	Kind StmtKind
	Loc  location.Location

	// Match
	Rel *Expr

	// Counter
	CounterIsRef   bool
	CounterPackets int64
	CounterBytes   int64
	CounterRef     *Expr

	// Verdict
	Verdict *Expr

	// Mangle
	MangleKind string // exthdr, payload, meta, ct
	LHS        *Expr
	RHS        *Expr

	// Quota / Limit (shared shape — one of inline fields or Ref)
	IsRef        bool
	Ref          *Expr
	Value        int64 // quota threshold, normalised to bytes
	ValueUnit    string
	QuotaUsed    int64 // quota running total, normalised to bytes
	QuotaHasUsed bool
	Rate         int64
	RateUnit     string // "packets" or "bytes" (normalised byte-multiplier units collapse to this)
	Burst        int64
	BurstUnit    string
	PerSecond    int64 // limit "per" window, stored in seconds
	Inv          bool

	// Fwd
	FwdTo     *Expr
	FwdFamily types.Family

	// Dup
	DupAddr *Expr
	DupDev  *Expr

	// Nat
	NatKind  string // snat, dnat, masquerade, redirect
	NatAddr  *Expr
	NatPort  *Expr
	NatFlags []string

	// Reject
	RejectKind   string
	RejectFamily types.Family
	RejectCode   *Expr

	// SetUpdate
	SetOp   string // add, update
	Elem    *Expr
	SetName string

	// Log
	LogPrefix        string
	LogHasPrefix     bool
	LogGroup         int64
	LogHasGroup      bool
	LogSnaplen       int64
	LogHasSnaplen    bool
	LogQThreshold    int64
	LogHasQThreshold bool
	LogLevel         string
	LogHasLevel      bool
	LogFlags         []string

	// Meter
	MeterName    string
	MeterHasName bool
	MeterKey     *Expr
	MeterInner   *Stmt

	// Queue
	QueueNum   *Expr
	QueueFlags []string

	// ObjRef (counter/quota/ct-helper/limit referenced from mangle "ct helper")
	ObjRefKind string
	ObjRefExpr *Expr
}

func NewMatchStmt(loc location.Location, rel *Expr) *Stmt {
	return &Stmt{Kind: StmtMatch, Rel: rel, Loc: loc}
}

func NewInlineCounterStmt(loc location.Location, packets, bytes int64) *Stmt {
	return &Stmt{Kind: StmtCounter, CounterPackets: packets, CounterBytes: bytes, Loc: loc}
}

func NewCounterRefStmt(loc location.Location, ref *Expr) *Stmt {
	return &Stmt{Kind: StmtCounter, CounterIsRef: true, CounterRef: ref, Loc: loc}
}

func NewVerdictStmt(loc location.Location, v *Expr) *Stmt {
	return &Stmt{Kind: StmtVerdict, Verdict: v, Loc: loc}
}

func NewMangleStmt(loc location.Location, kind string, lhs, rhs *Expr) *Stmt {
	return &Stmt{Kind: StmtMangle, MangleKind: kind, LHS: lhs, RHS: rhs, Loc: loc}
}

func NewQuotaStmt(loc location.Location) *Stmt {
	return &Stmt{Kind: StmtQuota, Loc: loc}
}

func NewLimitStmt(loc location.Location) *Stmt {
	return &Stmt{Kind: StmtLimit, Loc: loc}
}

func NewFwdStmt(loc location.Location, to *Expr, family types.Family) *Stmt {
	return &Stmt{Kind: StmtFwd, FwdTo: to, FwdFamily: family, Loc: loc}
}

func NewNotrackStmt(loc location.Location) *Stmt {
	return &Stmt{Kind: StmtNotrack, Loc: loc}
}

func NewDupStmt(loc location.Location, addr, dev *Expr) *Stmt {
	return &Stmt{Kind: StmtDup, DupAddr: addr, DupDev: dev, Loc: loc}
}

func NewNatStmt(loc location.Location, kind string, addr, port *Expr, flags []string) *Stmt {
	return &Stmt{Kind: StmtNat, NatKind: kind, NatAddr: addr, NatPort: port, NatFlags: flags, Loc: loc}
}

func NewRejectStmt(loc location.Location, kind string, code *Expr) *Stmt {
	return &Stmt{Kind: StmtReject, RejectKind: kind, RejectCode: code, Loc: loc}
}

func NewSetUpdateStmt(loc location.Location, op string, elem *Expr, setName string) *Stmt {
	return &Stmt{Kind: StmtSetUpdate, SetOp: op, Elem: elem, SetName: setName, Loc: loc}
}

func NewLogStmt(loc location.Location) *Stmt {
	return &Stmt{Kind: StmtLog, Loc: loc}
}

func NewCtHelperRefStmt(loc location.Location, ref *Expr) *Stmt {
	return &Stmt{Kind: StmtCtHelperRef, ObjRefExpr: ref, Loc: loc}
}

func NewMeterStmt(loc location.Location, name string, hasName bool, key *Expr, inner *Stmt) *Stmt {
	return &Stmt{Kind: StmtMeter, MeterName: name, MeterHasName: hasName, MeterKey: key, MeterInner: inner, Loc: loc}
}

func NewQueueStmt(loc location.Location, num *Expr, flags []string) *Stmt {
	return &Stmt{Kind: StmtQueue, QueueNum: num, QueueFlags: flags, Loc: loc}
}

func NewObjRefStmt(loc location.Location, kind string, expr *Expr) *Stmt {
	return &Stmt{Kind: StmtObjRef, ObjRefKind: kind, ObjRefExpr: expr, Loc: loc}
}
