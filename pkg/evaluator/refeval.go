package evaluator

import (
	"fmt"
	"net/netip"

	"github.com/gaissmai/bart"
	"github.com/joshuapare/nftkit/pkg/ast"
)

// setKey identifies one named set/map within one table within one family —
// the granularity the reference implementation's set cache is keyed at.
type setKey struct {
	Family string
	Table  string
	Name   string
}

// Reference is an Evaluator that keeps a gaissmai/bart longest-prefix-match
// table per interval set declared over an address datatype (ipv4_addr or
// ipv6_addr), so elements added to it are checked for well-formedness the
// way a real evaluation pass would validate them against the set's declared
// type before accepting the command.
//
// Sets not flagged "interval", or typed over a concatenation or a
// non-address leaf datatype, are tracked only well enough to reject element
// adds against an unknown set; they get no bart table, since longest-prefix
// caching has nothing to offer a type it was never built to represent.
type Reference struct {
	sets map[setKey]*setInfo
}

type setInfo struct {
	interval bool
	isV6     bool
	addrs    *bart.Table[struct{}]
}

// NewReference returns a ready-to-use Reference evaluator.
func NewReference() *Reference {
	return &Reference{sets: make(map[setKey]*setInfo)}
}

// Evaluate implements Evaluator. It registers set/map declarations and
// validates element additions against the declared set's cached address
// table, per the command's ObjKind.
func (r *Reference) Evaluate(cmd *ast.Command) error {
	switch cmd.ObjKind {
	case ast.ObjSet, ast.ObjMap, ast.ObjMeter:
		return r.evaluateSetDecl(cmd)
	case ast.ObjElement:
		return r.evaluateElementAdd(cmd)
	default:
		return nil
	}
}

func (r *Reference) evaluateSetDecl(cmd *ast.Command) error {
	switch cmd.Op {
	case ast.OpDelete, ast.OpFlush:
		delete(r.sets, setKey{cmd.Handle.Family.String(), cmd.Handle.Table, cmd.Handle.Name})
		return nil
	case ast.OpList:
		return nil
	}

	k := setKey{cmd.Handle.Family.String(), cmd.Handle.Table, cmd.Handle.Name}
	info := &setInfo{}
	if cmd.HasSetType && isIntervalFlagged(cmd.SetFlags) {
		switch cmd.SetType.Name {
		case "ipv4_addr":
			info.interval, info.isV6 = true, false
			info.addrs = new(bart.Table[struct{}])
		case "ipv6_addr":
			info.interval, info.isV6 = true, true
			info.addrs = new(bart.Table[struct{}])
		}
	}
	r.sets[k] = info

	for _, elem := range cmd.Elements {
		if err := r.insertElement(info, elem); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reference) evaluateElementAdd(cmd *ast.Command) error {
	k := setKey{cmd.Handle.Family.String(), cmd.Handle.Table, cmd.Handle.Name}
	info, known := r.sets[k]
	if !known {
		if cmd.Op == ast.OpDelete {
			return nil
		}
		return fmt.Errorf("element refers to undeclared set %q in table %q", cmd.Handle.Name, cmd.Handle.Table)
	}
	if cmd.Op == ast.OpDelete {
		return nil
	}
	for _, elem := range cmd.Elements {
		if err := r.insertElement(info, elem); err != nil {
			return err
		}
	}
	return nil
}

// isIntervalFlagged reports whether flags names the "interval" set flag —
// the trigger for building an address-range cache at all, per the domain
// stack design: sets without it never represent ranges, only exact values,
// so a bart table would buy nothing.
func isIntervalFlagged(flags []string) bool {
	for _, f := range flags {
		if f == "interval" {
			return true
		}
	}
	return false
}

// insertElement adds one set element's literal value to info's address
// table, when info has one. Elements of sets with no cache (non-interval,
// non-address, or concatenated types) are accepted unconditionally — they
// are outside this evaluator's scope, not malformed.
func (r *Reference) insertElement(info *setInfo, elem *ast.Expr) error {
	if info == nil || info.addrs == nil {
		return nil
	}
	pfx, ok, err := elementPrefix(elem, info.isV6)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	info.addrs.Update(pfx, func(_ struct{}, _ bool) struct{} { return struct{}{} })
	return nil
}

// elementPrefix resolves a set-element expression down to a netip.Prefix,
// when it denotes one of the two shapes the interval cache understands: a
// bare address immediate (implicitly /32 or /128) or an explicit prefix
// node. Anything else (ranges, set references, concatenations) returns
// ok=false so the caller skips caching without failing the command.
func elementPrefix(e *ast.Expr, isV6 bool) (netip.Prefix, bool, error) {
	v := e
	if v.Kind == ast.ExprSetElem {
		v = v.ElemValue
	}
	if v.Kind == ast.ExprMapping {
		v = v.MapLHS
		if v.Kind == ast.ExprSetElem {
			v = v.ElemValue
		}
	}

	switch v.Kind {
	case ast.ExprPrefix:
		addrNode := v.PrefixAddr
		if addrNode.Kind != ast.ExprImmediate || addrNode.ImmKind != ast.ImmSymbol {
			return netip.Prefix{}, false, nil
		}
		addr, err := netip.ParseAddr(addrNode.Str)
		if err != nil {
			return netip.Prefix{}, true, fmt.Errorf("invalid address %q in prefix element: %w", addrNode.Str, err)
		}
		pfx := netip.PrefixFrom(addr, v.PrefixLen)
		if !pfx.IsValid() {
			return netip.Prefix{}, true, fmt.Errorf("invalid prefix length /%d for %q", v.PrefixLen, addrNode.Str)
		}
		return pfx, true, nil

	case ast.ExprImmediate:
		if v.ImmKind != ast.ImmSymbol {
			return netip.Prefix{}, false, nil
		}
		addr, err := netip.ParseAddr(v.Str)
		if err != nil {
			return netip.Prefix{}, false, nil
		}
		bits := 32
		if isV6 {
			bits = 128
		}
		return netip.PrefixFrom(addr, bits), true, nil

	default:
		return netip.Prefix{}, false, nil
	}
}

// Contains reports whether addr falls within any prefix cached for the
// named interval set, for callers (tests, a future `nft get element`
// command) that want to reuse the cache's longest-prefix-match behaviour
// rather than re-deriving it.
func (r *Reference) Contains(family, table, name string, addr netip.Addr) bool {
	info, ok := r.sets[setKey{family, table, name}]
	if !ok || info.addrs == nil {
		return false
	}
	return info.addrs.Contains(addr)
}
