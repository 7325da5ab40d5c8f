package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentOwner(t *testing.T) {
	c := &Comment{TaskID: oid()}
	assert.NoError(t, c.Validate())

	c = &Comment{ProjectID: oid()}
	assert.NoError(t, c.Validate())

	c = &Comment{TaskID: oid(), ProjectID: oid()}
	assert.Error(t, c.Validate())

	c = &Comment{}
	err := c.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "comment_owner", verr.Rule)
}

func TestCommentMarkEdited(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	c := &Comment{TaskID: oid(), Content: "first pass"}
	assert.False(t, c.Edited)

	c.MarkEdited(now)
	assert.True(t, c.Edited)
	require.NotNil(t, c.EditedAt)
	assert.Equal(t, now, *c.EditedAt)
}

func TestAttachmentOwnerExactlyOne(t *testing.T) {
	assert.NoError(t, (&Attachment{TaskID: oid()}).Validate())
	assert.NoError(t, (&Attachment{ProjectID: oid()}).Validate())
	assert.NoError(t, (&Attachment{CommentID: oid()}).Validate())

	assert.Error(t, (&Attachment{}).Validate())
	assert.Error(t, (&Attachment{TaskID: oid(), CommentID: oid()}).Validate())
	assert.Error(t, (&Attachment{TaskID: oid(), ProjectID: oid(), CommentID: oid()}).Validate())
}

func TestSettingsOwner(t *testing.T) {
	assert.NoError(t, (&Settings{UserID: oid()}).Validate())
	assert.NoError(t, (&Settings{TeamID: oid()}).Validate())
	assert.Error(t, (&Settings{}).Validate())
	assert.Error(t, (&Settings{UserID: oid(), TeamID: oid()}).Validate())
}

func TestAIReportOwner(t *testing.T) {
	assert.NoError(t, (&AIReport{UserID: oid()}).Validate())
	assert.NoError(t, (&AIReport{ProjectID: oid()}).Validate())
	assert.Error(t, (&AIReport{}).Validate())
	assert.Error(t, (&AIReport{UserID: oid(), ProjectID: oid()}).Validate())
}
