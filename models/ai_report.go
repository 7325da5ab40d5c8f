package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AIReportStatus string

const (
	AIReportGenerating AIReportStatus = "generating"
	AIReportCompleted  AIReportStatus = "completed"
	AIReportFailed     AIReportStatus = "failed"
)

// aiReportTTL is how long a generated report stays available when no explicit
// expiry is set.
const aiReportTTL = 30 * 24 * time.Hour

// AIReport is a generated summary scoped to exactly one of a user or a
// project.
type AIReport struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID  `json:"organization_id" bson:"organization_id" validate:"required"`
	UserID         *primitive.ObjectID `json:"user_id,omitempty" bson:"user_id,omitempty"`
	ProjectID      *primitive.ObjectID `json:"project_id,omitempty" bson:"project_id,omitempty"`
	ReportType     string              `json:"report_type" bson:"report_type" validate:"required,max=50"`
	Content        string              `json:"content" bson:"content"`
	Status         AIReportStatus      `json:"status" bson:"status" validate:"required,oneof=generating completed failed"`
	GeneratedAt    time.Time           `json:"generated_at" bson:"generated_at"`
	ExpiresAt      *time.Time          `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	Metadata       Metadata            `json:"metadata" bson:"metadata"`
}

func (r *AIReport) Validate() error {
	if countOwners(r.UserID, r.ProjectID) != 1 {
		return newValidationError("ai_report_owner", "AI report must belong to either a user or a project")
	}
	return nil
}

// ApplyDefaults fills GeneratedAt and the 30-day expiry on creation when the
// caller did not set them.
func (r *AIReport) ApplyDefaults(now time.Time) {
	if r.GeneratedAt.IsZero() {
		r.GeneratedAt = now
	}
	if r.ExpiresAt == nil {
		expires := r.GeneratedAt.Add(aiReportTTL)
		r.ExpiresAt = &expires
	}
}

func (r *AIReport) IsExpired(now time.Time) bool {
	return r.ExpiresAt != nil && now.After(*r.ExpiresAt)
}
