package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment attaches to exactly one of a task or a project.
type Comment struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID  `json:"organization_id" bson:"organization_id" validate:"required"`
	TaskID         *primitive.ObjectID `json:"task_id,omitempty" bson:"task_id,omitempty"`
	ProjectID      *primitive.ObjectID `json:"project_id,omitempty" bson:"project_id,omitempty"`
	AuthorID       primitive.ObjectID  `json:"author_id" bson:"author_id" validate:"required"`
	Content        string              `json:"content" bson:"content" validate:"required,max=5000"`
	Edited         bool                `json:"edited" bson:"edited"`
	EditedAt       *time.Time          `json:"edited_at,omitempty" bson:"edited_at,omitempty"`
	Metadata       Metadata            `json:"metadata" bson:"metadata"`
}

func (c *Comment) Validate() error {
	if countOwners(c.TaskID, c.ProjectID) != 1 {
		return newValidationError("comment_owner", "comment must belong to either a task or a project")
	}
	return nil
}

// MarkEdited records a content change. Only updates call this, never creation.
func (c *Comment) MarkEdited(now time.Time) {
	c.Edited = true
	c.EditedAt = &now
}
