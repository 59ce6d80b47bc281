package cli

import (
	"testing"
	"time"

	"todoster/internal/task"
)

func intPtr(v int) *int { return &v }

func completedTask(text string, at time.Time, repeat *int) task.Task {
	item := task.New(text, repeat)
	item.MarkComplete(at)
	return item
}

func TestRepeatInfo(t *testing.T) {
	loc := time.FixedZone("UTC", 0)
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, loc)

	cases := []struct {
		name string
		item task.Task
		want string
	}{
		{
			name: "no repeat interval",
			item: completedTask("one-off", now.Add(-time.Hour), nil),
			want: "(no repeat)",
		},
		{
			name: "repeat but no completion date",
			item: task.Task{Text: "odd", Complete: true, RepeatDays: intPtr(3)},
			want: "(repeat: no completion date yet)",
		},
		{
			name: "more than a day away",
			item: completedTask("later", time.Date(2026, 1, 10, 8, 0, 0, 0, loc), intPtr(3)),
			want: "(repeat in 2d, 12hrs)",
		},
		{
			name: "due day already started",
			item: completedTask("today", time.Date(2026, 1, 9, 8, 0, 0, 0, loc), intPtr(1)),
			want: "(repeat: due today)",
		},
		{
			name: "less than a day until the due midnight",
			item: completedTask("tonight", time.Date(2026, 1, 10, 8, 0, 0, 0, loc), intPtr(1)),
			want: "(repeat: due today)",
		},
		{
			name: "overdue by days",
			item: completedTask("late", time.Date(2026, 1, 5, 8, 0, 0, 0, loc), intPtr(1)),
			want: "(repeat: overdue by 4d)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := repeatInfo(tc.item, now); got != tc.want {
				t.Fatalf("repeatInfo = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSplitByCompletionKeepsOriginalIndexes(t *testing.T) {
	list := &task.List{}
	list.Add("a", nil)
	list.Add("b", nil)
	list.Add("c", nil)
	list.Items[1].MarkComplete(time.Now())

	incomplete, complete := splitByCompletion(list)
	if len(incomplete) != 2 || incomplete[0].Index != 0 || incomplete[1].Index != 2 {
		t.Fatalf("incomplete rows = %+v", incomplete)
	}
	if len(complete) != 1 || complete[0].Index != 1 || complete[0].Task.Text != "b" {
		t.Fatalf("complete rows = %+v", complete)
	}
}
