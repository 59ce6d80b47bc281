package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"todoster/internal/task"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks (incomplete first, then complete)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			return runList(app)
		},
	}
}

type indexedTask struct {
	Index int
	Task  task.Task
}

func runList(app *App) error {
	list, err := app.LoadList()
	if err != nil {
		return err
	}
	now := app.Now()
	incomplete, complete := splitByCompletion(list)

	fmt.Println(header("=== Incomplete tasks ==="))
	if len(incomplete) == 0 {
		fmt.Println("(none)")
	}
	for _, row := range incomplete {
		if row.Task.RepeatDays != nil {
			fmt.Printf("[%d] %s %s\n", row.Index, row.Task.Text, gray(fmt.Sprintf("(Repeat: %dd)", *row.Task.RepeatDays)))
		} else {
			fmt.Printf("[%d] %s\n", row.Index, row.Task.Text)
		}
	}

	fmt.Println()
	fmt.Println(header("=== Complete tasks ==="))
	if len(complete) == 0 {
		fmt.Println("(none)")
	}
	for _, row := range complete {
		fmt.Printf("[%d] %s %s\n", row.Index, row.Task.Text, gray(repeatInfo(row.Task, now)))
	}
	return nil
}

func splitByCompletion(list *task.List) (incomplete, complete []indexedTask) {
	for i, item := range list.Items {
		row := indexedTask{Index: i, Task: item}
		if item.Complete {
			complete = append(complete, row)
		} else {
			incomplete = append(incomplete, row)
		}
	}
	return incomplete, complete
}

// repeatInfo renders the repeat annotation for a complete task. The due day
// counts from its local midnight, so any remaining time of less than a full
// day still reads "due today" rather than "in 0 days".
func repeatInfo(item task.Task, now time.Time) string {
	diff, ok := item.TimeUntilNextRepeat(now)
	if !ok {
		if item.RepeatDays != nil {
			return "(repeat: no completion date yet)"
		}
		return "(no repeat)"
	}
	if diff <= 0 {
		overdueDays := int((-diff).Hours()) / 24
		if overdueDays <= 0 {
			return "(repeat: due today)"
		}
		return fmt.Sprintf("(repeat: overdue by %dd)", overdueDays)
	}
	days := int(diff.Hours()) / 24
	if days >= 1 {
		hours := int(diff.Hours()) % 24
		return fmt.Sprintf("(repeat in %dd, %dhrs)", days, hours)
	}
	return "(repeat: due today)"
}
