package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <index>",
		Short: "Mark a task as incomplete again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			idx, err := strconv.Atoi(args[0])
			if err != nil || idx < 0 {
				return fmt.Errorf("invalid index: %s", args[0])
			}

			list, err := app.LoadList()
			if err != nil {
				return err
			}
			if idx >= len(list.Items) {
				fmt.Fprintf(os.Stderr, "No task with index %d\n", idx)
				return nil
			}
			list.Items[idx].MarkIncomplete()
			if err := app.SaveList(list); err != nil {
				return err
			}
			fmt.Printf("Task %d marked incomplete.\n", idx)
			return nil
		},
	}
}
