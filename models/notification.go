package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID `json:"organization_id" bson:"organization_id" validate:"required"`
	UserID         primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	Type           string             `json:"type" bson:"type" validate:"required,max=50"`
	Title          string             `json:"title" bson:"title" validate:"required,max=200"`
	Message        string             `json:"message" bson:"message" validate:"max=2000"`
	Read           bool               `json:"read" bson:"read"`
	ReadAt         *time.Time         `json:"read_at,omitempty" bson:"read_at,omitempty"`
	ExpiresAt      *time.Time         `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	Metadata       Metadata           `json:"metadata" bson:"metadata"`
}

// MarkRead stamps ReadAt the first time the notification is read.
func (n *Notification) MarkRead(now time.Time) {
	n.Read = true
	if n.ReadAt == nil {
		n.ReadAt = &now
	}
}
