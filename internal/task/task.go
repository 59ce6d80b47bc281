// Package task holds the to-do list domain model and the repeat scheduling
// rules for tasks that reset to incomplete on a day-count schedule.
package task

import "time"

// Task is a single to-do entry. CompletedAt and RepeatDays are nil when not
// applicable; scheduling logic depends on presence, never on a zero value.
type Task struct {
	Text        string     `json:"text"`
	Complete    bool       `json:"complete"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	RepeatDays  *int       `json:"repeat_days,omitempty"`
}

// New returns an incomplete task with no completion instant.
func New(text string, repeatDays *int) Task {
	return Task{Text: text, RepeatDays: repeatDays}
}

func (t *Task) MarkComplete(now time.Time) {
	t.Complete = true
	at := now
	t.CompletedAt = &at
}

func (t *Task) MarkIncomplete() {
	t.Complete = false
	t.CompletedAt = nil
}

// NextDueStart returns the moment the task becomes due again: local midnight
// of the completion day plus RepeatDays, in the completion instant's
// location. The arithmetic is calendar days, not 24h multiples, so finishing
// a 1-day repeat at 23:00 makes it due roughly 25 hours later. Requires both
// a completion instant and a repeat interval. A midnight that lands in a DST
// spring-forward gap cannot be resolved and yields no due instant.
func (t *Task) NextDueStart() (time.Time, bool) {
	if t.CompletedAt == nil || t.RepeatDays == nil {
		return time.Time{}, false
	}
	done := *t.CompletedAt
	year, month, day := done.Date()
	due := time.Date(year, month, day+*t.RepeatDays, 0, 0, 0, 0, done.Location())
	if due.Hour() != 0 || due.Minute() != 0 {
		// time.Date normalized the midnight away: it fell in a DST gap.
		return time.Time{}, false
	}
	return due, true
}

// ShouldReset reports whether the repeat window has elapsed. Always false for
// incomplete tasks and for tasks without a repeat interval.
func (t *Task) ShouldReset(now time.Time) bool {
	if !t.Complete {
		return false
	}
	due, ok := t.NextDueStart()
	return ok && !now.Before(due)
}

// ResetIfDue flips a due repeating task back to incomplete, clearing its
// completion instant, and reports whether it did. This is the only mutation
// the scheduler performs, and applying it twice with the same now is the
// same as applying it once.
func (t *Task) ResetIfDue(now time.Time) bool {
	if !t.ShouldReset(now) {
		return false
	}
	t.Complete = false
	t.CompletedAt = nil
	return true
}

// TimeUntilNextRepeat returns the duration until the next due midnight.
// Negative once the due day has started. Absent for incomplete tasks and for
// tasks with no resolvable due instant.
func (t *Task) TimeUntilNextRepeat(now time.Time) (time.Duration, bool) {
	if !t.Complete {
		return 0, false
	}
	due, ok := t.NextDueStart()
	if !ok {
		return 0, false
	}
	return due.Sub(now), true
}
