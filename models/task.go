package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	TaskBacklog    TaskStatus = "backlog"
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskInReview   TaskStatus = "in-review"
	TaskDone       TaskStatus = "done"
	TaskCancelled  TaskStatus = "cancelled"
)

type Task struct {
	ID                   primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	OrganizationID       primitive.ObjectID  `json:"organization_id" bson:"organization_id" validate:"required"`
	ProjectID            primitive.ObjectID  `json:"project_id" bson:"project_id" validate:"required"`
	AssigneeID           *primitive.ObjectID `json:"assignee_id,omitempty" bson:"assignee_id,omitempty"`
	Title                string              `json:"title" bson:"title" validate:"required,max=200"`
	Description          string              `json:"description" bson:"description" validate:"max=5000"`
	Status               TaskStatus          `json:"status" bson:"status" validate:"required,oneof=backlog todo in-progress in-review done cancelled"`
	Priority             string              `json:"priority" bson:"priority" validate:"omitempty,oneof=low medium high critical"`
	StartDate            *time.Time          `json:"start_date,omitempty" bson:"start_date,omitempty"`
	DueDate              *time.Time          `json:"due_date,omitempty" bson:"due_date,omitempty"`
	ActualStartDate      *time.Time          `json:"actual_start_date,omitempty" bson:"actual_start_date,omitempty"`
	ActualEndDate        *time.Time          `json:"actual_end_date,omitempty" bson:"actual_end_date,omitempty"`
	EstimatedHours       *float64            `json:"estimated_hours,omitempty" bson:"estimated_hours,omitempty" validate:"omitempty,min=0"`
	LoggedHours          float64             `json:"logged_hours" bson:"logged_hours" validate:"min=0"`
	CompletionPercentage float64             `json:"completion_percentage" bson:"completion_percentage" validate:"min=0,max=100"`
	IsDeleted            bool                `json:"is_deleted" bson:"is_deleted"`
	Metadata             Metadata            `json:"metadata" bson:"metadata"`
}

func (t *Task) Validate() error {
	if t.StartDate != nil && t.DueDate != nil && !t.StartDate.Before(*t.DueDate) {
		return newValidationError("task_date_order", "task start date must be before due date")
	}
	return nil
}

// MarkInProgress moves the task to in-progress and stamps the actual start
// date the first time only.
func (t *Task) MarkInProgress(now time.Time) {
	t.Status = TaskInProgress
	if t.ActualStartDate == nil {
		t.ActualStartDate = &now
	}
}

// MarkDone moves the task to done, stamps the actual end date the first time
// only, and forces completion to 100.
func (t *Task) MarkDone(now time.Time) {
	t.Status = TaskDone
	if t.ActualEndDate == nil {
		t.ActualEndDate = &now
	}
	t.CompletionPercentage = 100
}

func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && now.After(*t.DueDate) && t.Status != TaskDone && t.Status != TaskCancelled
}

// TimeTrackingEfficiency is estimated over logged hours. The direction is
// deliberate: a value above 1 means the task came in under its estimate.
// Returns nil when there is no estimate or nothing logged yet.
func (t *Task) TimeTrackingEfficiency() *float64 {
	if t.EstimatedHours == nil || t.LoggedHours == 0 {
		return nil
	}
	eff := *t.EstimatedHours / t.LoggedHours
	return &eff
}
