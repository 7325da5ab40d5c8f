package services

import (
	"context"
	"time"

	"workpulse/models"
	repository "workpulse/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type TaskService interface {
	CreateTask(ctx context.Context, task *models.Task, actor string) (*models.Task, error)
	GetTaskByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
	GetTasksByProject(ctx context.Context, projectID primitive.ObjectID, limit int64) ([]models.Task, error)
	GetTasksByAssignee(ctx context.Context, assigneeID primitive.ObjectID, limit int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, id primitive.ObjectID, patch *models.Task, actor string) (*models.Task, error)
	TransitionTask(ctx context.Context, id primitive.ObjectID, status models.TaskStatus, actor string) (*models.Task, error)
	SoftDeleteTask(ctx context.Context, id primitive.ObjectID, actor string) error
	GetOverdueTasks(ctx context.Context, orgID primitive.ObjectID) ([]models.Task, error)
	// Comments
	CreateComment(ctx context.Context, comment *models.Comment, actor string) (*models.Comment, error)
	UpdateCommentContent(ctx context.Context, id primitive.ObjectID, content, actor string) (*models.Comment, error)
	GetCommentsByTask(ctx context.Context, taskID primitive.ObjectID) ([]models.Comment, error)
	// Attachments
	CreateAttachment(ctx context.Context, attachment *models.Attachment, actor string) (*models.Attachment, error)
	DeleteAttachment(ctx context.Context, id primitive.ObjectID) error
}

type taskService struct {
	repo   repository.TaskRepository
	logger *zap.SugaredLogger
}

func NewTaskService(repo repository.TaskRepository, logger *zap.SugaredLogger) TaskService {
	return &taskService{repo: repo, logger: logger}
}

func (s *taskService) CreateTask(ctx context.Context, task *models.Task, actor string) (*models.Task, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}

	task.Metadata.Touch(actor, time.Now())
	task.IsDeleted = false

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Infow("task created", "task_id", task.ID.Hex(), "project_id", task.ProjectID.Hex(), "actor", actor)
	return task, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *taskService) GetTasksByProject(ctx context.Context, projectID primitive.ObjectID, limit int64) ([]models.Task, error) {
	return s.repo.GetByProject(ctx, projectID, limit)
}

func (s *taskService) GetTasksByAssignee(ctx context.Context, assigneeID primitive.ObjectID, limit int64) ([]models.Task, error) {
	return s.repo.GetByAssignee(ctx, assigneeID, limit)
}

func (s *taskService) UpdateTask(ctx context.Context, id primitive.ObjectID, patch *models.Task, actor string) (*models.Task, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != "" {
		existing.Title = patch.Title
	}
	if patch.Description != "" {
		existing.Description = patch.Description
	}
	if patch.Priority != "" {
		existing.Priority = patch.Priority
	}
	if patch.AssigneeID != nil {
		existing.AssigneeID = patch.AssigneeID
	}
	if patch.StartDate != nil {
		existing.StartDate = patch.StartDate
	}
	if patch.DueDate != nil {
		existing.DueDate = patch.DueDate
	}
	if patch.EstimatedHours != nil {
		existing.EstimatedHours = patch.EstimatedHours
	}
	if patch.LoggedHours != 0 {
		existing.LoggedHours = patch.LoggedHours
	}
	if patch.CompletionPercentage != 0 && existing.Status != models.TaskDone {
		existing.CompletionPercentage = patch.CompletionPercentage
	}

	if err := existing.Validate(); err != nil {
		return nil, err
	}

	existing.Metadata.Touch(actor, time.Now())

	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// TransitionTask moves the task to a new status, applying the set-once
// stamping that in-progress and done carry.
func (s *taskService) TransitionTask(ctx context.Context, id primitive.ObjectID, status models.TaskStatus, actor string) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch status {
	case models.TaskInProgress:
		task.MarkInProgress(now)
	case models.TaskDone:
		task.MarkDone(now)
	default:
		task.Status = status
	}

	task.Metadata.Touch(actor, now)

	if err := s.repo.Update(ctx, id, task); err != nil {
		return nil, err
	}

	s.logger.Infow("task transitioned", "task_id", id.Hex(), "status", status, "actor", actor)
	return task, nil
}

func (s *taskService) SoftDeleteTask(ctx context.Context, id primitive.ObjectID, actor string) error {
	return s.repo.SoftDelete(ctx, id, actor)
}

func (s *taskService) GetOverdueTasks(ctx context.Context, orgID primitive.ObjectID) ([]models.Task, error) {
	return s.repo.FindOverdue(ctx, orgID, time.Now())
}

func (s *taskService) CreateComment(ctx context.Context, comment *models.Comment, actor string) (*models.Comment, error) {
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	// Creation never marks a comment edited.
	comment.Edited = false
	comment.EditedAt = nil
	comment.Metadata.Touch(actor, time.Now())

	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *taskService) UpdateCommentContent(ctx context.Context, id primitive.ObjectID, content, actor string) (*models.Comment, error) {
	comment, err := s.repo.GetCommentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if content != comment.Content {
		comment.Content = content
		comment.MarkEdited(now)
	}
	comment.Metadata.Touch(actor, now)

	if err := s.repo.UpdateComment(ctx, id, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *taskService) GetCommentsByTask(ctx context.Context, taskID primitive.ObjectID) ([]models.Comment, error) {
	return s.repo.GetCommentsByTask(ctx, taskID)
}

func (s *taskService) CreateAttachment(ctx context.Context, attachment *models.Attachment, actor string) (*models.Attachment, error) {
	if err := attachment.Validate(); err != nil {
		return nil, err
	}

	attachment.Metadata.Touch(actor, time.Now())

	if err := s.repo.CreateAttachment(ctx, attachment); err != nil {
		return nil, err
	}

	return attachment, nil
}

func (s *taskService) DeleteAttachment(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteAttachment(ctx, id)
}
