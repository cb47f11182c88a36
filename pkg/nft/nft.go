// Package nft is the module's public entry point: decode a JSON document,
// drive every element of its top-level "nftables" array through the
// command parser and an Evaluator, and hand back the accepted command list
// or the reason the whole document was rejected.
//
// This mirrors the reference implementation's __json_parse/cmd_evaluate
// pairing (parser_json.c): each array element is parsed in isolation, then
// evaluated before being spliced onto the caller's command list, and a
// failure at either step — parse or evaluate — aborts the entire document
// rather than skipping the offending element.
package nft

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/nftkit/internal/cmdparse"
	"github.com/joshuapare/nftkit/internal/docnode"
	"github.com/joshuapare/nftkit/internal/errqueue"
	"github.com/joshuapare/nftkit/internal/location"
	"github.com/joshuapare/nftkit/internal/parsectx"
	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/evaluator"
)

// Options configures a parse run.
type Options struct {
	// Name is the input descriptor recorded against diagnostics (a file
	// path, or "-" for stdin). Purely cosmetic; defaults to "<input>".
	Name string
	// Evaluator receives every successfully parsed command before it is
	// accepted. Defaults to evaluator.Nop{} (accept everything) when nil.
	Evaluator evaluator.Evaluator
}

// Result is the outcome of parsing one document.
type Result struct {
	Commands []*ast.Command
	Errors   *errqueue.Queue
}

// DocumentError reports the index of the "nftables" array element that
// caused the whole document to be rejected, alongside the accumulated
// diagnostic queue that explains why.
type DocumentError struct {
	Index  int
	Errors *errqueue.Queue
}

func (e *DocumentError) Error() string {
	if e.Errors != nil && !e.Errors.Empty() {
		return fmt.Sprintf("parsing command at index %d failed: %s", e.Index, e.Errors.Records()[e.Errors.Len()-1].Message)
	}
	return fmt.Sprintf("parsing command at index %d failed", e.Index)
}

// ParseFile reads and parses the named file. "-" reads stdin.
func ParseFile(path string, opts Options) (*Result, error) {
	var r io.Reader
	if path == "-" || path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if opts.Name == "" {
		opts.Name = path
	}
	return Parse(r, opts)
}

// ParseBytes parses an in-memory document.
func ParseBytes(b []byte, opts Options) (*Result, error) {
	n, err := docnode.DecodeBytes(b)
	if err != nil {
		return nil, err
	}
	return parseNode(n, opts)
}

// Parse decodes a JSON document from r and drives it through the command
// parser and evaluator, per the package doc.
func Parse(r io.Reader, opts Options) (*Result, error) {
	n, err := docnode.Decode(r)
	if err != nil {
		return nil, err
	}
	return parseNode(n, opts)
}

func parseNode(root *docnode.Node, opts Options) (*Result, error) {
	name := opts.Name
	if name == "" {
		name = "<input>"
	}
	eval := opts.Evaluator
	if eval == nil {
		eval = evaluator.Nop{}
	}
	indesc := &location.Descriptor{Name: name}
	ctx := parsectx.New(indesc, eval)

	tmp, ok := root.Get("nftables")
	if !ok {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "document must have a %q property", "nftables")
		return nil, &DocumentError{Index: -1, Errors: ctx.Errors}
	}
	if tmp.Kind != docnode.Array {
		ctx.Errors.Add(errqueue.Structural, ctx.Loc(), "value of property %q must be an array", "nftables")
		return nil, &DocumentError{Index: -1, Errors: ctx.Errors}
	}

	for i, elem := range tmp.Items() {
		if elem.Kind != docnode.Object {
			ctx.Errors.Add(errqueue.Structural, ctx.Loc(),
				"unexpected command array element of type %s at index %d, expected object", elem.Kind, i)
			return nil, &DocumentError{Index: i, Errors: ctx.Errors}
		}

		cmd, ok := cmdparse.Parse(ctx, elem)
		if !ok {
			return nil, &DocumentError{Index: i, Errors: ctx.Errors}
		}

		if err := ctx.Evaluator.Evaluate(cmd); err != nil {
			ctx.Errors.Add(errqueue.Evaluator, ctx.Loc(), "evaluating command at index %d failed: %s", i, err)
			return nil, &DocumentError{Index: i, Errors: ctx.Errors}
		}

		ctx.Emit(cmd)
	}

	return &Result{Commands: ctx.Commands, Errors: ctx.Errors}, nil
}
