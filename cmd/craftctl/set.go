package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SylphxAI/craft/draft"
	"github.com/SylphxAI/craft/internal/docpath"
	"github.com/SylphxAI/craft/pkg/craft"
)

var (
	setRaw         bool
	setShowPatches bool
	setOut         string
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().BoolVar(&setRaw, "raw", false, "Treat the value as a plain string, not JSON")
	cmd.Flags().BoolVar(&setShowPatches, "show-patches", false, "Print the patch operations for this edit")
	cmd.Flags().StringVarP(&setOut, "output", "o", "", "Write the result to a file instead of in place (- for stdout)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <document> <path> <value>",
		Short: "Write a value at a path",
		Long: `The set command writes a value at a dotted path and rewrites the
document. The value argument is parsed as JSON when possible; use --raw
to store it as a literal string. An index equal to a sequence's length
appends.

Example:
  craftctl set config.json "server.port" 9090
  craftctl set config.json "server.name" '"api-1"'
  craftctl set users.json "users.0.active" true --show-patches`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	docFile := args[0]
	pathArg := args[1]
	valueArg := args[2]

	printVerbose("Loading document: %s\n", docFile)

	doc, err := loadDocument(docFile)
	if err != nil {
		return err
	}

	path, err := docpath.Parse(pathArg)
	if err != nil {
		return fmt.Errorf("bad path %q: %w", pathArg, err)
	}
	v := parseValueArg(valueArg, setRaw)

	res, ops, _, err := craft.ProduceWithPatches(doc, func(d *draft.Draft) (any, error) {
		return nil, docpath.Set(d, path, v)
	}, craft.WithFreeze(draft.FreezeNone))
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", pathArg, err)
	}

	if err := writeResult(docFile, setOut, res); err != nil {
		return err
	}

	printInfo("✓ Set %s\n", pathArg)
	if setShowPatches {
		return reportPatches(ops)
	}
	return nil
}
