package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attachment is file metadata attached to exactly one of a task, project or
// comment. The bytes live in GridFS under FileID.
type Attachment struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID  `json:"organization_id" bson:"organization_id" validate:"required"`
	TaskID         *primitive.ObjectID `json:"task_id,omitempty" bson:"task_id,omitempty"`
	ProjectID      *primitive.ObjectID `json:"project_id,omitempty" bson:"project_id,omitempty"`
	CommentID      *primitive.ObjectID `json:"comment_id,omitempty" bson:"comment_id,omitempty"`
	FileID         primitive.ObjectID  `json:"file_id" bson:"file_id"`
	Filename       string              `json:"filename" bson:"filename" validate:"required,max=255"`
	ContentType    string              `json:"content_type" bson:"content_type" validate:"max=100"`
	Size           int64               `json:"size" bson:"size" validate:"min=0"`
	ExpiresAt      *time.Time          `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	Metadata       Metadata            `json:"metadata" bson:"metadata"`
}

func (a *Attachment) Validate() error {
	if countOwners(a.TaskID, a.ProjectID, a.CommentID) != 1 {
		return newValidationError("attachment_owner", "attachment must belong to exactly one of a task, project or comment")
	}
	return nil
}
