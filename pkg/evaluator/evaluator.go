// Package evaluator declares the external semantic-evaluation collaborator
// the parser hands each built command to, per the specification's scope
// note: "Later passes: semantic evaluation, address-family cache, netlink
// serialisation, rule installation" are out of scope for the core. The
// package holds that interface boundary, the accept-everything Nop, and the
// small Reference evaluator in refeval.go.
package evaluator

import "github.com/joshuapare/nftkit/pkg/ast"

// Evaluator receives a fully-built command and performs whatever semantic
// checks and/or installation the caller wants. Returning a non-nil error
// aborts the whole document per specification §4.5 ("on evaluator
// rejection, release the command and abort the whole document").
type Evaluator interface {
	Evaluate(cmd *ast.Command) error
}

// Nop is an Evaluator that accepts every command unconditionally. Useful
// for tests that only want to exercise parsing, not evaluation.
type Nop struct{}

func (Nop) Evaluate(*ast.Command) error { return nil }
