package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OKRStatus string

const (
	OKRActive    OKRStatus = "active"
	OKRCompleted OKRStatus = "completed"
	OKRArchived  OKRStatus = "archived"
)

type KeyResultStatus string

const (
	KeyResultNotStarted KeyResultStatus = "not-started"
	KeyResultOnTrack    KeyResultStatus = "on-track"
	KeyResultAtRisk     KeyResultStatus = "at-risk"
	KeyResultCompleted  KeyResultStatus = "completed"
)

type KeyResult struct {
	Title        string          `json:"title" bson:"title" validate:"required,max=200"`
	TargetValue  float64         `json:"target_value" bson:"target_value"`
	CurrentValue float64         `json:"current_value" bson:"current_value"`
	Unit         string          `json:"unit" bson:"unit" validate:"max=50"`
	Status       KeyResultStatus `json:"status" bson:"status" validate:"required,oneof=not-started on-track at-risk completed"`
}

// Attainment is the key result's completion percentage, clamped at 100.
// A non-positive target reports 0 rather than dividing by it.
func (kr *KeyResult) Attainment() float64 {
	if kr.TargetValue <= 0 {
		return 0
	}
	pct := kr.CurrentValue / kr.TargetValue * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// OKR belongs to exactly one of a user or a team, never both, never neither.
type OKR struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID  `json:"organization_id" bson:"organization_id" validate:"required"`
	UserID         *primitive.ObjectID `json:"user_id,omitempty" bson:"user_id,omitempty"`
	TeamID         *primitive.ObjectID `json:"team_id,omitempty" bson:"team_id,omitempty"`
	Objective      string              `json:"objective" bson:"objective" validate:"required,max=300"`
	Description    string              `json:"description" bson:"description" validate:"max=2000"`
	Period         string              `json:"period" bson:"period" validate:"max=50"`
	Status         OKRStatus           `json:"status" bson:"status" validate:"required,oneof=active completed archived"`
	KeyResults     []KeyResult         `json:"key_results" bson:"key_results" validate:"dive"`
	Progress       float64             `json:"progress" bson:"progress"`
	Metadata       Metadata            `json:"metadata" bson:"metadata"`
}

func (o *OKR) Validate() error {
	if countOwners(o.UserID, o.TeamID) != 1 {
		return newValidationError("okr_owner", "OKR must belong to either a user or a team")
	}
	return nil
}

// RecomputeProgress refreshes the stored progress from the key results and
// promotes the OKR to completed when every key result is itself completed and
// progress reached 100. Progress alone never completes an OKR.
func (o *OKR) RecomputeProgress() {
	if len(o.KeyResults) == 0 {
		o.Progress = 0
		return
	}
	total := 0.0
	allDone := true
	for i := range o.KeyResults {
		total += o.KeyResults[i].Attainment()
		if o.KeyResults[i].Status != KeyResultCompleted {
			allDone = false
		}
	}
	o.Progress = total / float64(len(o.KeyResults))
	if o.Progress >= 100 && allDone {
		o.Status = OKRCompleted
	}
}

// IsOnTrack holds while fewer than 30% of key results are at risk and fewer
// than 50% have not started.
func (o *OKR) IsOnTrack() bool {
	if len(o.KeyResults) == 0 {
		return true
	}
	atRisk, notStarted := 0, 0
	for i := range o.KeyResults {
		switch o.KeyResults[i].Status {
		case KeyResultAtRisk:
			atRisk++
		case KeyResultNotStarted:
			notStarted++
		}
	}
	n := float64(len(o.KeyResults))
	return float64(atRisk)/n < 0.3 && float64(notStarted)/n < 0.5
}
