package task

import "time"

// List is the ordered task collection persisted to disk. Indexes shown to the
// user are positions in Items and are not stable across runs.
type List struct {
	Items []Task `json:"items"`
}

func (l *List) Add(text string, repeatDays *int) {
	l.Items = append(l.Items, New(text, repeatDays))
}

// Remove deletes the item at index i and returns it. Callers removing several
// indexes must process them in descending order so earlier removals do not
// shift later targets.
func (l *List) Remove(i int) Task {
	removed := l.Items[i]
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
	return removed
}

// AutoReset applies ResetIfDue to every task and returns how many flipped
// back to incomplete. Commands run this right after load, before anything
// else looks at completion state.
func (l *List) AutoReset(now time.Time) int {
	reset := 0
	for i := range l.Items {
		if l.Items[i].ResetIfDue(now) {
			reset++
		}
	}
	return reset
}
