package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationPreferences struct {
	Email   bool `json:"email" bson:"email"`
	InApp   bool `json:"in_app" bson:"in_app"`
	Digest  bool `json:"digest" bson:"digest"`
	Mention bool `json:"mention" bson:"mention"`
}

// Settings holds preferences for exactly one of a user or a team.
type Settings struct {
	ID             primitive.ObjectID      `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID      `json:"organization_id" bson:"organization_id" validate:"required"`
	UserID         *primitive.ObjectID     `json:"user_id,omitempty" bson:"user_id,omitempty"`
	TeamID         *primitive.ObjectID     `json:"team_id,omitempty" bson:"team_id,omitempty"`
	Timezone       string                  `json:"timezone" bson:"timezone" validate:"max=64"`
	Language       string                  `json:"language" bson:"language" validate:"max=16"`
	Notifications  NotificationPreferences `json:"notifications" bson:"notifications"`
	Metadata       Metadata                `json:"metadata" bson:"metadata"`
}

func (s *Settings) Validate() error {
	if countOwners(s.UserID, s.TeamID) != 1 {
		return newValidationError("settings_owner", "settings must belong to either a user or a team")
	}
	return nil
}
