package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todoster/internal/indexspec"
	"todoster/internal/task"
)

func newDeleteCmd() *cobra.Command {
	var confirm bool
	cmd := &cobra.Command{
		Use:   "delete <indexes>",
		Short: "Delete one or more tasks (dry run without --confirm)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			indexes := indexspec.Descending(indexspec.Parse(args[0]))
			if len(indexes) == 0 {
				fmt.Fprintln(os.Stderr, "No valid indexes supplied.")
				return nil
			}

			list, err := app.LoadList()
			if err != nil {
				return err
			}
			if !confirm {
				fmt.Println("The following tasks would be deleted (run again with --confirm to proceed):")
				fmt.Println()
				for _, idx := range indexes {
					if idx < len(list.Items) {
						fmt.Printf("[%d] %s\n", idx, list.Items[idx].Text)
					} else {
						fmt.Printf("[%d] (does not exist)\n", idx)
					}
				}
				fmt.Println()
				fmt.Println("Nothing deleted. Add --confirm to actually delete.")
				return nil
			}

			removed, skipped := deleteTasks(list, indexes)
			for _, r := range removed {
				fmt.Printf("Deleted [%d] %s\n", r.Index, r.Task.Text)
			}
			for _, idx := range skipped {
				fmt.Fprintf(os.Stderr, "Index %d does not exist, skipping.\n", idx)
			}
			return app.SaveList(list)
		},
	}
	cmd.Flags().BoolVar(&confirm, "confirm", false, "Actually perform deletion")
	return cmd
}

type removedTask struct {
	Index int
	Task  task.Task
}

// deleteTasks removes the given indexes, which must already be sorted
// descending so each removal leaves the remaining targets in place.
func deleteTasks(list *task.List, indexes []int) (removed []removedTask, skipped []int) {
	for _, idx := range indexes {
		if idx >= len(list.Items) {
			skipped = append(skipped, idx)
			continue
		}
		removed = append(removed, removedTask{Index: idx, Task: list.Remove(idx)})
	}
	return removed, skipped
}
