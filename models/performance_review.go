package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewStatus string

const (
	ReviewDraft     ReviewStatus = "draft"
	ReviewSubmitted ReviewStatus = "submitted"
	ReviewApproved  ReviewStatus = "approved"
)

type OverallRating string

const (
	RatingExcellent        OverallRating = "excellent"
	RatingGood             OverallRating = "good"
	RatingSatisfactory     OverallRating = "satisfactory"
	RatingNeedsImprovement OverallRating = "needs-improvement"
	RatingPoor             OverallRating = "poor"
)

type ReviewCategory struct {
	Name     string  `json:"name" bson:"name" validate:"required,max=100"`
	Score    float64 `json:"score" bson:"score" validate:"min=0"`
	Weight   float64 `json:"weight" bson:"weight" validate:"min=0"`
	Comments string  `json:"comments" bson:"comments" validate:"max=2000"`
}

type PerformanceReview struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID `json:"organization_id" bson:"organization_id" validate:"required"`
	EmployeeID     primitive.ObjectID `json:"employee_id" bson:"employee_id" validate:"required"`
	ReviewerID     primitive.ObjectID `json:"reviewer_id" bson:"reviewer_id" validate:"required"`
	Period         string             `json:"period" bson:"period" validate:"max=50"`
	Score          float64            `json:"score" bson:"score" validate:"min=0"`
	MaxScore       float64            `json:"max_score" bson:"max_score" validate:"min=0"`
	Categories     []ReviewCategory   `json:"categories" bson:"categories" validate:"dive"`
	OverallRating  OverallRating      `json:"overall_rating" bson:"overall_rating"`
	Status         ReviewStatus       `json:"status" bson:"status" validate:"required,oneof=draft submitted approved"`
	SubmittedAt    *time.Time         `json:"submitted_at,omitempty" bson:"submitted_at,omitempty"`
	ApprovedAt     *time.Time         `json:"approved_at,omitempty" bson:"approved_at,omitempty"`
	Summary        string             `json:"summary" bson:"summary" validate:"max=5000"`
	Metadata       Metadata           `json:"metadata" bson:"metadata"`
}

// ScorePercentage is the raw score over the maximum, or 0 when no maximum is
// set.
func (r *PerformanceReview) ScorePercentage() float64 {
	if r.MaxScore == 0 {
		return 0
	}
	return r.Score / r.MaxScore * 100
}

// WeightedScore averages category scores by weight, falling back to the raw
// score when there are no categories or the weights sum to zero.
func (r *PerformanceReview) WeightedScore() float64 {
	if len(r.Categories) == 0 {
		return r.Score
	}
	var weighted, totalWeight float64
	for i := range r.Categories {
		weighted += r.Categories[i].Score * r.Categories[i].Weight
		totalWeight += r.Categories[i].Weight
	}
	if totalWeight == 0 {
		return r.Score
	}
	return weighted / totalWeight
}

// RecomputeRating refreshes the overall rating from the score percentage on
// every save, whether or not the score changed.
func (r *PerformanceReview) RecomputeRating() {
	pct := r.ScorePercentage()
	switch {
	case pct >= 90:
		r.OverallRating = RatingExcellent
	case pct >= 80:
		r.OverallRating = RatingGood
	case pct >= 70:
		r.OverallRating = RatingSatisfactory
	case pct >= 60:
		r.OverallRating = RatingNeedsImprovement
	default:
		r.OverallRating = RatingPoor
	}
}

// MarkSubmitted moves the review to submitted and stamps SubmittedAt once.
func (r *PerformanceReview) MarkSubmitted(now time.Time) {
	r.Status = ReviewSubmitted
	if r.SubmittedAt == nil {
		r.SubmittedAt = &now
	}
}

// MarkApproved moves the review to approved and stamps ApprovedAt once.
func (r *PerformanceReview) MarkApproved(now time.Time) {
	r.Status = ReviewApproved
	if r.ApprovedAt == nil {
		r.ApprovedAt = &now
	}
}
