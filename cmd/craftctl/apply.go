package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SylphxAI/craft/draft"
	"github.com/SylphxAI/craft/patch"
	"github.com/SylphxAI/craft/pkg/craft"
)

var (
	applyDryRun bool
	applyOut    string
)

func init() {
	cmd := newApplyCmd()
	cmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Print the result without rewriting the document")
	cmd.Flags().StringVarP(&applyOut, "output", "o", "", "Write the result to a file instead of in place (- for stdout)")
	rootCmd.AddCommand(cmd)
}

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <document> <patchfile>",
		Short: "Apply a patch file to a document",
		Long: `The apply command replays an RFC 6902-shaped patch file (a JSON
array of add/replace/remove operations) against a document and rewrites
it. Inverse patch files produced by --show-patches workflows undo the
edits they came from.

Example:
  craftctl apply config.json changes.json
  craftctl apply config.json undo.json --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args)
		},
	}
	return cmd
}

func runApply(args []string) error {
	docFile := args[0]
	patchFile := args[1]

	printVerbose("Loading document: %s\n", docFile)

	doc, err := loadDocument(docFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(patchFile)
	if err != nil {
		return fmt.Errorf("failed to read patch file: %w", err)
	}
	var ops []patch.Op
	if err := json.Unmarshal(data, &ops); err != nil {
		return fmt.Errorf("failed to parse patch file: %w", err)
	}

	printVerbose("Applying %d operation(s)\n", len(ops))

	res, err := craft.ApplyPatches(doc, ops, craft.WithFreeze(draft.FreezeNone))
	if err != nil {
		return fmt.Errorf("failed to apply patches: %w", err)
	}

	if applyDryRun {
		return printJSON(res)
	}
	if err := writeResult(docFile, applyOut, res); err != nil {
		return err
	}

	printInfo("✓ Applied %d operation(s) to %s\n", len(ops), docFile)
	return nil
}
