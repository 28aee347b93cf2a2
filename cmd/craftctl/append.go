package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SylphxAI/craft/draft"
	"github.com/SylphxAI/craft/internal/docpath"
	"github.com/SylphxAI/craft/pkg/craft"
)

var (
	appendRaw         bool
	appendShowPatches bool
	appendOut         string
)

func init() {
	cmd := newAppendCmd()
	cmd.Flags().BoolVar(&appendRaw, "raw", false, "Treat values as plain strings, not JSON")
	cmd.Flags().BoolVar(&appendShowPatches, "show-patches", false, "Print the patch operations for this edit")
	cmd.Flags().StringVarP(&appendOut, "output", "o", "", "Write the result to a file instead of in place (- for stdout)")
	rootCmd.AddCommand(cmd)
}

func newAppendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "append <document> <path> <value>...",
		Short: "Append values to a sequence",
		Long: `The append command adds one or more values to the end of the
sequence at a dotted path.

Example:
  craftctl append config.json "server.hosts" '"10.0.0.3"'
  craftctl append users.json "users" '{"name":"Dan"}' --show-patches`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppend(args)
		},
	}
	return cmd
}

func runAppend(args []string) error {
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

	items := make([]any, 0, len(args)-2)
	for _, a := range args[2:] {
		items = append(items, parseValueArg(a, appendRaw))
	}

	res, ops, _, err := craft.ProduceWithPatches(doc, func(d *draft.Draft) (any, error) {
		return nil, docpath.Append(d, path, items...)
	}, craft.WithFreeze(draft.FreezeNone))
	if err != nil {
		return fmt.Errorf("failed to append to %q: %w", pathArg, err)
	}

	if err := writeResult(docFile, appendOut, res); err != nil {
		return err
	}

	printInfo("✓ Appended %d item(s) to %s\n", len(items), pathArg)
	if appendShowPatches {
		return reportPatches(ops)
	}
	return nil
}
