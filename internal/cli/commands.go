package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "Show a table of available commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			printCommandTable()
			return nil
		},
	}
}

func printCommandTable() {
	fmt.Println(header("=== Todoster Commands ==="))
	fmt.Println()

	fmt.Printf("%-45s %s\n", "todoster", "List tasks (default)")
	fmt.Printf("%-45s %s\n", "todoster list", "List tasks")

	fmt.Printf("%-45s %s\n", "todoster add \"<text>\"", "Add a new task")
	fmt.Printf("%-45s %s\n", "todoster add \"<text>\" --repeat <days>", "Add repeating task")
	fmt.Printf("%-45s %s\n", "todoster add", "Add interactively")

	fmt.Printf("%-45s %s\n", "todoster complete <i1,i2,1-4>", "Mark task(s) complete (supports ranges)")
	fmt.Printf("%-45s %s\n", "todoster undo <index>", "Mark a task incomplete again")

	fmt.Printf("%-45s %s\n", "todoster edit <index> --text \"<new>\"", "Edit task text")
	fmt.Printf("%-45s %s\n", "todoster edit <index> --repeat <days>", "Change repeat interval")
	fmt.Printf("%-45s %s\n", "todoster edit <index> --clear-repeat", "Remove repeat interval")

	fmt.Printf("%-45s %s\n", "todoster delete <i1,i2,i3>", "Dry-run (shows what would be deleted)")
	fmt.Printf("%-45s %s\n", "todoster delete 1-4,7", "Supports ranges (inclusive)")
	fmt.Printf("%-45s %s\n", "todoster delete 0,2-3,7 --confirm", "Actually perform deletion")

	fmt.Printf("%-45s %s\n", "todoster tui", "Browse and toggle tasks interactively")
	fmt.Printf("%-45s %s\n", "todoster --file <path> <command>", "Use a custom store file")

	fmt.Println()
	fmt.Println("Indexes are 0-based (first item = 0).")
}
