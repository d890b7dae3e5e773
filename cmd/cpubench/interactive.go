package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cpubench/internal/ui"
)

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start the interactive menu",
	Long:  `Shows a menu to run the suite, view stored results, or delete a system.`,
	Run: func(cmd *cobra.Command, args []string) {
		RunInteractive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// RunInteractive loops the main menu until the user quits. Each action is
// the same code path as the corresponding subcommand.
func RunInteractive() {
	for {
		model := ui.NewMenuModel(ui.DefaultMenuItems())
		p := tea.NewProgram(model)

		final, err := p.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: menu failed: %v\n", err)
			return
		}

		menu, ok := final.(ui.MenuModel)
		if !ok || menu.Quitting || menu.Selected == "" || menu.Selected == ui.ActionQuit {
			return
		}

		if err := dispatchMenuAction(menu.Selected); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		fmt.Println()
	}
}

func dispatchMenuAction(action string) error {
	switch action {
	case ui.ActionRun:
		return runSuite(rootCmd, "")
	case ui.ActionResults:
		return showResults(rootCmd)
	case ui.ActionDelete:
		name, err := ui.AskSystemName()
		if err != nil {
			return err
		}
		return deleteSystem(rootCmd, name, false)
	default:
		return fmt.Errorf("unknown menu action %q", action)
	}
}
