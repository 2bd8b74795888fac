package recurrence_test

import (
	"testing"
	"time"

	"growlog/entities"
	"growlog/pkg/task/recurrence"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	due := date(2024, 1, 1)
	cases := []struct {
		rule string
		want time.Time
		ok   bool
	}{
		{"DAILY", date(2024, 1, 2), true},
		{"WEEKLY", date(2024, 1, 8), true},
		{"EVERY_3_DAYS", date(2024, 1, 4), true},
		{"MONTHLY", date(2024, 2, 1), true},
		{"weekly", date(2024, 1, 8), true},   // case-insensitive
		{" daily ", date(2024, 1, 2), true},  // tolerates whitespace
		{"FORTNIGHTLY", due, false},          // unknown rule: no shift
		{"", due, false},
	}
	for _, c := range cases {
		got, ok := recurrence.NextDueDate(due, c.rule)
		if ok != c.ok || !got.Equal(c.want) {
			t.Errorf("NextDueDate(%q) = (%v, %v), want (%v, %v)", c.rule, got, ok, c.want, c.ok)
		}
	}
}

func TestNextDueDateMonthlyEndOfMonth(t *testing.T) {
	// AddDate semantics: Jan 31 + 1 month normalizes into March
	got, ok := recurrence.NextDueDate(date(2024, 1, 31), "MONTHLY")
	if !ok || !got.Equal(date(2024, 3, 2)) {
		t.Errorf("Jan 31 + MONTHLY = %v, want 2024-03-02", got)
	}
}

func TestSuccessorCopiesFields(t *testing.T) {
	growID, plantID := uint(3), uint(7)
	src := &entities.Task{
		TaskID:        11,
		UserID:        2,
		GrowID:        &growID,
		PlantID:       &plantID,
		Title:         "Feed nutrients",
		Description:   "1.2 EC",
		DueAt:         date(2024, 1, 1),
		RepeatRule:    "WEEKLY",
		Notify:        true,
		LeadTimeHours: 6,
		Priority:      "HIGH",
		Status:        entities.TaskDone,
	}

	next, ok := recurrence.Successor(src)
	if !ok {
		t.Fatal("expected a successor for a weekly task")
	}
	if next.TaskID != 0 {
		t.Errorf("successor carries source id %d, want a fresh row", next.TaskID)
	}
	if next.Status != entities.TaskOpen {
		t.Errorf("successor status = %q, want OPEN", next.Status)
	}
	if !next.DueAt.Equal(date(2024, 1, 8)) {
		t.Errorf("successor due = %v, want 2024-01-08", next.DueAt)
	}
	if next.Title != src.Title || next.Description != src.Description ||
		next.UserID != src.UserID || next.Priority != src.Priority ||
		next.GrowID != src.GrowID || next.PlantID != src.PlantID ||
		next.Notify != src.Notify || next.LeadTimeHours != src.LeadTimeHours {
		t.Errorf("successor did not copy fields verbatim: %+v", next)
	}
	if next.RepeatRule != "WEEKLY" {
		t.Errorf("successor repeat rule = %q, want WEEKLY (chain must continue)", next.RepeatRule)
	}
}

func TestSuccessorUnknownOrEmptyRule(t *testing.T) {
	for _, rule := range []string{"", "YEARLY"} {
		src := &entities.Task{Title: "x", DueAt: date(2024, 1, 1), RepeatRule: rule}
		if _, ok := recurrence.Successor(src); ok {
			t.Errorf("rule %q spawned a successor", rule)
		}
	}
}
