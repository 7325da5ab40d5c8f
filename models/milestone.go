package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Milestone struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID `json:"organization_id" bson:"organization_id" validate:"required"`
	ProjectID      primitive.ObjectID `json:"project_id" bson:"project_id" validate:"required"`
	Title          string             `json:"title" bson:"title" validate:"required,max=200"`
	Description    string             `json:"description" bson:"description" validate:"max=2000"`
	DueDate        *time.Time         `json:"due_date,omitempty" bson:"due_date,omitempty"`
	Completed      bool               `json:"completed" bson:"completed"`
	CompletedAt    *time.Time         `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	Progress       float64            `json:"progress" bson:"progress" validate:"min=0,max=100"`
	Metadata       Metadata           `json:"metadata" bson:"metadata"`
}

// MarkCompleted flips the milestone to completed, forces progress to 100 and
// stamps CompletedAt once. Un-completing later never clears the stamp.
func (m *Milestone) MarkCompleted(now time.Time) {
	m.Completed = true
	m.Progress = 100
	if m.CompletedAt == nil {
		m.CompletedAt = &now
	}
}
