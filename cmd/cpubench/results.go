package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpubench/internal/ui"
)

var resultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"stats"},
	Short:   "Show all stored benchmark records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showResults(cmd)
	},
}

func init() {
	rootCmd.AddCommand(resultsCmd)
}

func showResults(cmd *cobra.Command) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	records, skipped, err := st.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to read results: %w", err)
	}
	if skipped > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped %d malformed line(s) in %s\n", skipped, st.Path())
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.RenderRecords(records))
	return nil
}
