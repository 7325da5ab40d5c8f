package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

type Project struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID  `json:"organization_id" bson:"organization_id" validate:"required"`
	Title          string              `json:"title" bson:"title" validate:"required,max=200"`
	Description    string              `json:"description" bson:"description" validate:"max=2000"`
	Status         ProjectStatus       `json:"status" bson:"status" validate:"required,oneof=planning active on-hold completed cancelled"`
	Priority       string              `json:"priority" bson:"priority" validate:"omitempty,oneof=low medium high critical"`
	TeamID         *primitive.ObjectID `json:"team_id,omitempty" bson:"team_id,omitempty"`
	StartDate      *time.Time          `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate        *time.Time          `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Budget         float64             `json:"budget" bson:"budget" validate:"min=0"`
	ActualCost     float64             `json:"actual_cost" bson:"actual_cost" validate:"min=0"`
	Progress       float64             `json:"progress" bson:"progress" validate:"min=0,max=100"`
	IsDeleted      bool                `json:"is_deleted" bson:"is_deleted"`
	Metadata       Metadata            `json:"metadata" bson:"metadata"`
}

// Validate checks cross-field invariants that struct tags cannot express.
func (p *Project) Validate() error {
	if p.StartDate != nil && p.EndDate != nil && !p.StartDate.Before(*p.EndDate) {
		return newValidationError("project_date_order", "project start date must be before end date")
	}
	return nil
}

// IsOverdue reports whether the project slipped past its end date without
// reaching the completed status.
func (p *Project) IsOverdue(now time.Time) bool {
	return p.EndDate != nil && now.After(*p.EndDate) &&
		p.Status != ProjectCompleted && p.Status != ProjectCancelled
}

// Duration returns the planned length in whole days, rounded up, or nil when
// either date is missing.
func (p *Project) Duration() *int {
	if p.StartDate == nil || p.EndDate == nil {
		return nil
	}
	days := int(math.Ceil(p.EndDate.Sub(*p.StartDate).Hours() / 24))
	return &days
}

// BudgetUtilization returns actual cost as a percentage of budget. The value
// is not clamped: overruns report above 100.
func (p *Project) BudgetUtilization() float64 {
	if p.Budget == 0 {
		return 0
	}
	return p.ActualCost / p.Budget * 100
}
