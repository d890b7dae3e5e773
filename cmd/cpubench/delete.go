package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpubench/internal/ui"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <system-name>",
	Short: "Remove every record for a system name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteSystem(cmd, args[0], deleteYes)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func deleteSystem(cmd *cobra.Command, name string, assumeYes bool) error {
	out := cmd.OutOrStdout()

	st, err := openStore()
	if err != nil {
		return err
	}

	records, _, err := st.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to read results: %w", err)
	}
	count := 0
	for _, rec := range records {
		if rec.SystemName == name {
			count++
		}
	}
	if count == 0 {
		fmt.Fprintf(out, "No records for system %q.\n", name)
		return nil
	}

	if !assumeYes {
		ok, err := ui.ConfirmDelete(name, count)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	removed, err := st.DeleteBySystem(name)
	if err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	fmt.Fprintf(out, "Removed %d record(s) for %q.\n", removed, name)
	return nil
}
