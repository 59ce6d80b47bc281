package cli

import (
	"testing"

	"todoster/internal/indexspec"
	"todoster/internal/task"
)

func fiveTasks() *task.List {
	list := &task.List{}
	for _, text := range []string{"zero", "one", "two", "three", "four"} {
		list.Add(text, nil)
	}
	return list
}

func TestDeleteTasksDescendingKeepsTargetsValid(t *testing.T) {
	list := fiveTasks()
	indexes := indexspec.Descending(indexspec.Parse("1,3"))

	removed, skipped := deleteTasks(list, indexes)
	if len(skipped) != 0 {
		t.Fatalf("unexpected skips: %v", skipped)
	}
	if len(removed) != 2 || removed[0].Task.Text != "three" || removed[1].Task.Text != "one" {
		t.Fatalf("removed = %+v", removed)
	}

	want := []string{"zero", "two", "four"}
	if len(list.Items) != len(want) {
		t.Fatalf("remaining = %+v", list.Items)
	}
	for i, text := range want {
		if list.Items[i].Text != text {
			t.Fatalf("remaining[%d] = %q, want %q", i, list.Items[i].Text, text)
		}
	}
}

func TestDeleteTasksSkipsOutOfRange(t *testing.T) {
	list := fiveTasks()
	indexes := indexspec.Descending(indexspec.Parse("2,9"))

	removed, skipped := deleteTasks(list, indexes)
	if len(skipped) != 1 || skipped[0] != 9 {
		t.Fatalf("skipped = %v", skipped)
	}
	if len(removed) != 1 || removed[0].Index != 2 || removed[0].Task.Text != "two" {
		t.Fatalf("removed = %+v", removed)
	}
	if len(list.Items) != 4 {
		t.Fatalf("remaining = %+v", list.Items)
	}
}
