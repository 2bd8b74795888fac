package recurrence

import (
	"strings"
	"time"

	"growlog/entities"
)

// NextDueDate shifts a due date by the task's repeat rule. The shift is
// anchored to the original due date, never to the completion time, so a
// weekly task due on Mondays stays on Mondays however late it is completed.
// Unrecognized rules report ok=false and spawn no successor.
func NextDueDate(due time.Time, rule string) (time.Time, bool) {
	switch strings.ToUpper(strings.TrimSpace(rule)) {
	case entities.RepeatDaily:
		return due.AddDate(0, 0, 1), true
	case entities.RepeatWeekly:
		return due.AddDate(0, 0, 7), true
	case entities.RepeatEvery3Days:
		return due.AddDate(0, 0, 3), true
	case entities.RepeatMonthly:
		return due.AddDate(0, 1, 0), true
	}
	return due, false
}

// Successor builds the follow-up task for a completed repeating task: status
// OPEN, shifted due date, every other field copied verbatim (including the
// repeat rule, so the chain continues).
func Successor(t *entities.Task) (*entities.Task, bool) {
	if t.RepeatRule == "" {
		return nil, false
	}
	next, ok := NextDueDate(t.DueAt, t.RepeatRule)
	if !ok {
		return nil, false
	}
	return &entities.Task{
		UserID:        t.UserID,
		GrowID:        t.GrowID,
		PlantID:       t.PlantID,
		Title:         t.Title,
		Description:   t.Description,
		DueAt:         next,
		RepeatRule:    t.RepeatRule,
		Notify:        t.Notify,
		LeadTimeHours: t.LeadTimeHours,
		Priority:      t.Priority,
		Status:        entities.TaskOpen,
	}, true
}
