package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidateDateOrder(t *testing.T) {
	task := &Task{StartDate: date(2024, 3, 10), DueDate: date(2024, 3, 1)}
	err := task.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "task_date_order", verr.Rule)

	task = &Task{StartDate: date(2024, 3, 1), DueDate: date(2024, 3, 10)}
	assert.NoError(t, task.Validate())
}

func TestTaskMarkInProgressStampsOnce(t *testing.T) {
	first := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	task := &Task{Status: TaskTodo}
	task.MarkInProgress(first)
	assert.Equal(t, TaskInProgress, task.Status)
	require.NotNil(t, task.ActualStartDate)
	assert.Equal(t, first, *task.ActualStartDate)

	// Re-entering in-progress keeps the original stamp.
	task.Status = TaskInReview
	task.MarkInProgress(second)
	assert.Equal(t, first, *task.ActualStartDate)
}

func TestTaskMarkDoneIdempotent(t *testing.T) {
	first := time.Date(2024, 1, 5, 17, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	task := &Task{Status: TaskInProgress, CompletionPercentage: 60}
	task.MarkDone(first)
	assert.Equal(t, TaskDone, task.Status)
	assert.Equal(t, 100.0, task.CompletionPercentage)
	require.NotNil(t, task.ActualEndDate)
	assert.Equal(t, first, *task.ActualEndDate)

	// Saving an already-done task again must not move the end date.
	task.MarkDone(second)
	assert.Equal(t, first, *task.ActualEndDate)
	assert.Equal(t, 100.0, task.CompletionPercentage)
}

func TestTaskTimeTrackingEfficiency(t *testing.T) {
	est := 10.0
	task := &Task{EstimatedHours: &est, LoggedHours: 8}
	eff := task.TimeTrackingEfficiency()
	require.NotNil(t, eff)
	// Estimated over logged: above 1 means under budget on hours.
	assert.InDelta(t, 1.25, *eff, 1e-9)

	task = &Task{LoggedHours: 8}
	assert.Nil(t, task.TimeTrackingEfficiency(), "no estimate, no efficiency")

	task = &Task{EstimatedHours: &est, LoggedHours: 0}
	assert.Nil(t, task.TimeTrackingEfficiency(), "nothing logged yet")
}

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, (&Task{Status: TaskInProgress, DueDate: date(2024, 5, 1)}).IsOverdue(now))
	assert.False(t, (&Task{Status: TaskDone, DueDate: date(2024, 5, 1)}).IsOverdue(now))
	assert.False(t, (&Task{Status: TaskCancelled, DueDate: date(2024, 5, 1)}).IsOverdue(now))
	assert.False(t, (&Task{Status: TaskInProgress, DueDate: date(2024, 7, 1)}).IsOverdue(now))
}
