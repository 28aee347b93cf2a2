package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SylphxAI/craft/internal/docpath"
	"github.com/SylphxAI/craft/pkg/value"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <document> <path>",
		Short: "Read a value at a path",
		Long: `The get command resolves a dotted path against a document and prints
the value found there.

Example:
  craftctl get config.json "server.port"
  craftctl get users.json "users.0.name"
  craftctl get data.json "users.0" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	docFile := args[0]
	pathArg := args[1]

	printVerbose("Loading document: %s\n", docFile)

	doc, err := loadDocument(docFile)
	if err != nil {
		return err
	}

	path, err := docpath.Parse(pathArg)
	if err != nil {
		return fmt.Errorf("bad path %q: %w", pathArg, err)
	}

	v, err := docpath.Lookup(doc, path)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", pathArg, err)
	}

	if jsonOut {
		return printJSON(v)
	}

	switch tv := v.(type) {
	case *value.Record, *value.Sequence:
		return printJSON(tv)
	default:
		printInfo("%v\n", tv)
	}
	return nil
}
