package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/evaluator"
	"github.com/joshuapare/nftkit/pkg/nft"
	"github.com/spf13/cobra"
)

var parseUseRefEval bool

func init() {
	cmd := newParseCmd()
	cmd.Flags().
		BoolVar(&parseUseRefEval, "validate-sets", false, "Validate interval set elements against a reference address cache")
	rootCmd.AddCommand(cmd)
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a JSON nftables document and list its commands",
		Long: `parse reads a JSON document shaped {"nftables": [...]}, runs every
element through the command parser, and prints one line per accepted
command. Use "-" to read from stdin.

Example:
  nftjsonctl parse ruleset.json
  nftjsonctl parse ruleset.json --validate-sets
  cat ruleset.json | nftjsonctl parse -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0])
		},
	}
}

func runParse(path string) error {
	var eval evaluator.Evaluator
	if parseUseRefEval {
		eval = evaluator.NewReference()
	}

	result, err := nft.ParseFile(path, nft.Options{Name: path, Evaluator: eval})
	if err != nil {
		if derr, ok := err.(*nft.DocumentError); ok {
			fmt.Fprint(os.Stderr, derr.Errors.FormatText())
			return derr
		}
		return err
	}

	if !quiet {
		for _, cmd := range result.Commands {
			fmt.Println(describeCommand(cmd))
		}
	}
	return nil
}

func describeCommand(cmd *ast.Command) string {
	h := cmd.Handle
	switch {
	case h.Name != "":
		return fmt.Sprintf("%s %s %s %s/%s", cmd.Op, cmd.ObjKind, h.Name, h.Family, h.Table)
	case h.HasID:
		return fmt.Sprintf("%s %s handle %d %s/%s", cmd.Op, cmd.ObjKind, h.ID, h.Family, h.Table)
	default:
		return fmt.Sprintf("%s %s %s/%s", cmd.Op, cmd.ObjKind, h.Family, h.Table)
	}
}
