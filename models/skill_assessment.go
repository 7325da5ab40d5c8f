package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AssessmentStatus string

const (
	AssessmentDraft     AssessmentStatus = "draft"
	AssessmentSubmitted AssessmentStatus = "submitted"
	AssessmentApproved  AssessmentStatus = "approved"
)

type SkillEvidence struct {
	Description string     `json:"description" bson:"description" validate:"required,max=1000"`
	Link        string     `json:"link" bson:"link" validate:"omitempty,url"`
	Date        *time.Time `json:"date,omitempty" bson:"date,omitempty"`
}

type SkillAssessment struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID `json:"organization_id" bson:"organization_id" validate:"required"`
	UserID         primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	AssessorID     primitive.ObjectID `json:"assessor_id" bson:"assessor_id" validate:"required"`
	SkillName      string             `json:"skill_name" bson:"skill_name" validate:"required,max=100"`
	Level          int                `json:"level" bson:"level" validate:"min=1,max=5"`
	Evidence       []SkillEvidence    `json:"evidence" bson:"evidence" validate:"dive"`
	Status         AssessmentStatus   `json:"status" bson:"status" validate:"required,oneof=draft submitted approved"`
	AssessmentDate time.Time          `json:"assessment_date" bson:"assessment_date" validate:"required"`
	NextReviewDate *time.Time         `json:"next_review_date,omitempty" bson:"next_review_date,omitempty"`
	ApprovedAt     *time.Time         `json:"approved_at,omitempty" bson:"approved_at,omitempty"`
	Metadata       Metadata           `json:"metadata" bson:"metadata"`
}

// ApplyDefaults schedules the next review six months out when none was given.
func (s *SkillAssessment) ApplyDefaults() {
	if s.NextReviewDate == nil && !s.AssessmentDate.IsZero() {
		next := s.AssessmentDate.AddDate(0, 6, 0)
		s.NextReviewDate = &next
	}
}

// MarkApproved moves the assessment to approved and stamps ApprovedAt once.
func (s *SkillAssessment) MarkApproved(now time.Time) {
	s.Status = AssessmentApproved
	if s.ApprovedAt == nil {
		s.ApprovedAt = &now
	}
}
