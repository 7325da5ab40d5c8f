package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"workpulse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeTaskRepo struct {
	tasks    map[primitive.ObjectID]*models.Task
	comments map[primitive.ObjectID]*models.Comment
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{
		tasks:    make(map[primitive.ObjectID]*models.Task),
		comments: make(map[primitive.ObjectID]*models.Comment),
	}
}

func (f *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	task.ID = primitive.NewObjectID()
	stored := *task
	f.tasks[task.ID] = &stored
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %s not found", id.Hex())
	}
	copied := *task
	return &copied, nil
}

func (f *fakeTaskRepo) GetByProject(_ context.Context, _ primitive.ObjectID, _ int64) ([]models.Task, error) {
	return nil, nil
}

func (f *fakeTaskRepo) GetByAssignee(_ context.Context, _ primitive.ObjectID, _ int64) ([]models.Task, error) {
	return nil, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, id primitive.ObjectID, task *models.Task) error {
	stored := *task
	f.tasks[id] = &stored
	return nil
}

func (f *fakeTaskRepo) SoftDelete(_ context.Context, id primitive.ObjectID, _ string) error {
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskRepo) FindOverdue(_ context.Context, _ primitive.ObjectID, _ time.Time) ([]models.Task, error) {
	return nil, nil
}

func (f *fakeTaskRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	stored := *comment
	f.comments[comment.ID] = &stored
	return nil
}

func (f *fakeTaskRepo) GetCommentByID(_ context.Context, id primitive.ObjectID) (*models.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment %s not found", id.Hex())
	}
	copied := *comment
	return &copied, nil
}

func (f *fakeTaskRepo) GetCommentsByTask(_ context.Context, _ primitive.ObjectID) ([]models.Comment, error) {
	return nil, nil
}

func (f *fakeTaskRepo) GetCommentsByProject(_ context.Context, _ primitive.ObjectID) ([]models.Comment, error) {
	return nil, nil
}

func (f *fakeTaskRepo) UpdateComment(_ context.Context, id primitive.ObjectID, comment *models.Comment) error {
	stored := *comment
	f.comments[id] = &stored
	return nil
}

func (f *fakeTaskRepo) CreateAttachment(_ context.Context, _ *models.Attachment) error { return nil }

func (f *fakeTaskRepo) GetAttachmentByID(_ context.Context, id primitive.ObjectID) (*models.Attachment, error) {
	return nil, fmt.Errorf("attachment %s not found", id.Hex())
}

func (f *fakeTaskRepo) DeleteAttachment(_ context.Context, _ primitive.ObjectID) error { return nil }

func (f *fakeTaskRepo) DeleteExpiredAttachments(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func newTaskFixture(t *testing.T, repo *fakeTaskRepo, svc TaskService) *models.Task {
	t.Helper()
	task, err := svc.CreateTask(context.Background(), &models.Task{
		OrganizationID: primitive.NewObjectID(),
		ProjectID:      primitive.NewObjectID(),
		Title:          "wire the dashboard",
		Status:         models.TaskTodo,
	}, "dev")
	require.NoError(t, err)
	return task
}

func TestTransitionTaskDoneIsIdempotent(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, zap.NewNop().Sugar())
	task := newTaskFixture(t, repo, svc)

	done, err := svc.TransitionTask(context.Background(), task.ID, models.TaskDone, "dev")
	require.NoError(t, err)
	require.NotNil(t, done.ActualEndDate)
	assert.Equal(t, 100.0, done.CompletionPercentage)
	firstStamp := *done.ActualEndDate

	// Saving an already-done task again keeps the original stamp.
	again, err := svc.TransitionTask(context.Background(), task.ID, models.TaskDone, "dev")
	require.NoError(t, err)
	assert.Equal(t, firstStamp, *again.ActualEndDate)
}

func TestTransitionTaskInProgressStampsStart(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, zap.NewNop().Sugar())
	task := newTaskFixture(t, repo, svc)

	started, err := svc.TransitionTask(context.Background(), task.ID, models.TaskInProgress, "dev")
	require.NoError(t, err)
	require.NotNil(t, started.ActualStartDate)
	stamp := *started.ActualStartDate

	// A round trip through review and back keeps the first stamp.
	_, err = svc.TransitionTask(context.Background(), task.ID, models.TaskInReview, "dev")
	require.NoError(t, err)
	back, err := svc.TransitionTask(context.Background(), task.ID, models.TaskInProgress, "dev")
	require.NoError(t, err)
	assert.Equal(t, stamp, *back.ActualStartDate)
}

func TestCreateTaskRejectsBadDates(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), zap.NewNop().Sugar())

	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateTask(context.Background(), &models.Task{
		OrganizationID: primitive.NewObjectID(),
		ProjectID:      primitive.NewObjectID(),
		Title:          "time traveler",
		Status:         models.TaskTodo,
		StartDate:      &start,
		DueDate:        &due,
	}, "dev")
	require.Error(t, err)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "task_date_order", verr.Rule)
}

func TestCommentEditedOnlyOnContentChange(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, zap.NewNop().Sugar())

	taskID := primitive.NewObjectID()
	comment, err := svc.CreateComment(context.Background(), &models.Comment{
		OrganizationID: primitive.NewObjectID(),
		TaskID:         &taskID,
		AuthorID:       primitive.NewObjectID(),
		Content:        "first pass",
	}, "dev")
	require.NoError(t, err)
	assert.False(t, comment.Edited, "creation never marks edited")

	same, err := svc.UpdateCommentContent(context.Background(), comment.ID, "first pass", "dev")
	require.NoError(t, err)
	assert.False(t, same.Edited, "unchanged content is not an edit")

	edited, err := svc.UpdateCommentContent(context.Background(), comment.ID, "second pass", "dev")
	require.NoError(t, err)
	assert.True(t, edited.Edited)
	assert.NotNil(t, edited.EditedAt)
}
