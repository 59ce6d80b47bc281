package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	var (
		text        string
		repeat      int
		clearRepeat bool
	)
	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Edit a task's text or repeat interval",
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
			if cmd.Flags().Changed("repeat") && repeat < 0 {
				return fmt.Errorf("repeat interval must be zero or more days, got %d", repeat)
			}

			list, err := app.LoadList()
			if err != nil {
				return err
			}
			if idx >= len(list.Items) {
				fmt.Fprintf(os.Stderr, "No task with index %d\n", idx)
				return nil
			}
			item := &list.Items[idx]
			if cmd.Flags().Changed("text") {
				item.Text = text
			}
			// Clearing wins over setting; completion state is untouched
			// either way, so a cleared repeat leaves a complete task
			// complete until a manual undo.
			if clearRepeat {
				item.RepeatDays = nil
			} else if cmd.Flags().Changed("repeat") {
				days := repeat
				item.RepeatDays = &days
			}
			if err := app.SaveList(list); err != nil {
				return err
			}
			fmt.Printf("Task %d updated.\n", idx)
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "New text for the task")
	cmd.Flags().IntVar(&repeat, "repeat", 0, "New repeat interval in days")
	cmd.Flags().BoolVar(&clearRepeat, "clear-repeat", false, "Remove the repeat interval")
	return cmd
}
