package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SylphxAI/craft/draft"
	"github.com/SylphxAI/craft/internal/docpath"
	"github.com/SylphxAI/craft/pkg/craft"
)

var (
	deleteShowPatches bool
	deleteOut         string
)

func init() {
	cmd := newDeleteCmd()
	cmd.Flags().BoolVar(&deleteShowPatches, "show-patches", false, "Print the patch operations for this edit")
	cmd.Flags().StringVarP(&deleteOut, "output", "o", "", "Write the result to a file instead of in place (- for stdout)")
	rootCmd.AddCommand(cmd)
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <document> <path>",
		Short: "Remove the value at a path",
		Long: `The delete command removes the value at a dotted path and rewrites
the document. Removing a sequence slot shifts later items down.

Example:
  craftctl delete config.json "server.debug"
  craftctl delete users.json "users.2" --show-patches`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
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

	res, ops, _, err := craft.ProduceWithPatches(doc, func(d *draft.Draft) (any, error) {
		return nil, docpath.Delete(d, path)
	}, craft.WithFreeze(draft.FreezeNone))
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", pathArg, err)
	}

	if err := writeResult(docFile, deleteOut, res); err != nil {
		return err
	}

	printInfo("✓ Deleted %s\n", pathArg)
	if deleteShowPatches {
		return reportPatches(ops)
	}
	return nil
}
