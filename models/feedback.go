package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FeedbackType string

const (
	FeedbackPeer    FeedbackType = "peer"
	FeedbackManager FeedbackType = "manager"
	FeedbackSelf    FeedbackType = "self"
	FeedbackUpward  FeedbackType = "upward"
)

type ActionItemStatus string

const (
	ActionItemOpen       ActionItemStatus = "open"
	ActionItemInProgress ActionItemStatus = "in-progress"
	ActionItemDone       ActionItemStatus = "done"
)

// ActionItem tracks a follow-up with its own status, independent of the
// feedback it belongs to.
type ActionItem struct {
	Description string           `json:"description" bson:"description" validate:"required,max=1000"`
	Status      ActionItemStatus `json:"status" bson:"status" validate:"required,oneof=open in-progress done"`
	DueDate     *time.Time       `json:"due_date,omitempty" bson:"due_date,omitempty"`
}

type Feedback struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID `json:"organization_id" bson:"organization_id" validate:"required"`
	GivenBy        primitive.ObjectID `json:"given_by" bson:"given_by" validate:"required"`
	GivenTo        primitive.ObjectID `json:"given_to" bson:"given_to" validate:"required"`
	Type           FeedbackType       `json:"type" bson:"type" validate:"required,oneof=peer manager self upward"`
	Content        string             `json:"content" bson:"content" validate:"required,max=5000"`
	ActionItems    []ActionItem       `json:"action_items" bson:"action_items" validate:"dive"`
	Metadata       Metadata           `json:"metadata" bson:"metadata"`
}

// Validate rejects feedback addressed to its own author unless it is
// explicitly self feedback.
func (f *Feedback) Validate() error {
	if f.GivenBy == f.GivenTo && f.Type != FeedbackSelf {
		return newValidationError("feedback_self", "feedback to yourself must use the self type")
	}
	return nil
}
