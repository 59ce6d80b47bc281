package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todoster/internal/indexspec"
)

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <indexes>",
		Short: "Mark task(s) complete by index (supports ranges, e.g. \"0,2,5-7\")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			indexes := indexspec.Ascending(indexspec.Parse(args[0]))
			if len(indexes) == 0 {
				fmt.Fprintln(os.Stderr, "No valid indexes supplied.")
				return nil
			}

			list, err := app.LoadList()
			if err != nil {
				return err
			}
			now := app.Now()
			completedAny := false
			for _, idx := range indexes {
				if idx >= len(list.Items) {
					fmt.Fprintf(os.Stderr, "No task with index %d, skipping.\n", idx)
					continue
				}
				item := &list.Items[idx]
				item.MarkComplete(now)
				fmt.Printf("Marked complete [%d] %s\n", idx, item.Text)
				completedAny = true
			}
			if completedAny {
				return app.SaveList(list)
			}
			return nil
		},
	}
}
