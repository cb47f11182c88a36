package ast

import (
	"github.com/joshuapare/nftkit/internal/location"
	"github.com/joshuapare/nftkit/pkg/types"
)

// Op is the top-level command operator.
type Op int

const (
	OpAdd Op = iota
	OpCreate
	OpReplace
	OpInsert
	OpDelete
	OpList
	OpReset
	OpFlush
	OpRename
)

func (o Op) String() string {
	names := [...]string{"add", "create", "replace", "insert", "delete", "list", "reset", "flush", "rename"}
	if int(o) < 0 || int(o) >= len(names) {
		return "unknown"
	}
	return names[o]
}

// ObjKind is the command's target object kind.
type ObjKind int

const (
	ObjTable ObjKind = iota
	ObjChain
	ObjRule
	ObjSet
	ObjMap
	ObjElement
	ObjFlowtable
	ObjCounter
	ObjQuota
	ObjCtHelper
	ObjLimit
	ObjMeter
	ObjRuleset
)

func (k ObjKind) String() string {
	names := [...]string{
		"table", "chain", "rule", "set", "map", "element", "flowtable",
		"counter", "quota", "ct helper", "limit", "meter", "ruleset",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// Command is a single top-level command: {op, target kind, handle, payload}
// per specification §3. Only the fields relevant to ObjKind/Op combination
// are populated.
type Command struct {
	Op      Op
	ObjKind ObjKind
	Handle  types.Handle
	Loc     location.Location

	// chain
	IsBaseChain bool
	ChainType   string
	Hook        string
	Prio        int64
	HasPrio     bool
	ChainDev    string
	HasChainDev bool
	Policy      string
	HasPolicy   bool

	// rule
	Statements []*Stmt
	Comment    string
	HasComment bool

	// rename
	NewName string

	// set / map / meter
	SetType       types.Datatype
	HasSetType    bool
	MapType       types.Datatype
	HasMapType    bool
	MapObjKind    string // counter, quota, ct helper, limit — when map value is an object kind, not a datatype
	HasMapObjKind bool
	SetPolicy     string
	HasSetPolicy  bool
	SetFlags      []string
	TimeoutMS     int64
	HasTimeout    bool
	GCIntervalMS  int64
	HasGCInterval bool
	Size          int64
	HasSize       bool
	Elements      []*Expr

	// flowtable
	FlowtableDev []string

	// counter (inline)
	CounterPackets int64
	CounterBytes   int64

	// quota (inline)
	QuotaValue int64
	QuotaUnit  string
	QuotaUsed  int64
	QuotaInv   bool

	// limit (inline)
	LimitRate      int64
	LimitRateUnit  string
	LimitBurst     int64
	LimitBurstUnit string
	LimitPer       int64
	LimitInv       bool

	// ct helper (inline)
	CtHelperType     string
	CtHelperProtocol string
	CtHelperL3Proto  types.Family
}

func NewCommand(op Op, kind ObjKind, handle types.Handle, loc location.Location) *Command {
	return &Command{Op: op, ObjKind: kind, Handle: handle.Adopt(), Loc: loc}
}
