package services

import (
	"context"
	"time"

	"workpulse/models"
	repository "workpulse/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProjectService interface {
	CreateProject(ctx context.Context, project *models.Project, actor string) (*models.Project, error)
	GetProjectByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	GetProjectsByOrganization(ctx context.Context, orgID primitive.ObjectID, limit int64) ([]models.Project, error)
	UpdateProject(ctx context.Context, id primitive.ObjectID, patch *models.Project, actor string) (*models.Project, error)
	SoftDeleteProject(ctx context.Context, id primitive.ObjectID, actor string) error
	GetOverdueProjects(ctx context.Context, orgID primitive.ObjectID) ([]models.Project, error)
	// Milestones
	CreateMilestone(ctx context.Context, milestone *models.Milestone, actor string) (*models.Milestone, error)
	GetMilestonesByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Milestone, error)
	CompleteMilestone(ctx context.Context, id primitive.ObjectID, actor string) (*models.Milestone, error)
}

type projectService struct {
	repo   repository.ProjectRepository
	logger *zap.SugaredLogger
}

func NewProjectService(repo repository.ProjectRepository, logger *zap.SugaredLogger) ProjectService {
	return &projectService{repo: repo, logger: logger}
}

func (s *projectService) CreateProject(ctx context.Context, project *models.Project, actor string) (*models.Project, error) {
	if err := project.Validate(); err != nil {
		return nil, err
	}

	project.Metadata.Touch(actor, time.Now())
	project.IsDeleted = false

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Infow("project created", "project_id", project.ID.Hex(), "actor", actor)
	return project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectService) GetProjectsByOrganization(ctx context.Context, orgID primitive.ObjectID, limit int64) ([]models.Project, error) {
	return s.repo.GetByOrganization(ctx, orgID, limit)
}

func (s *projectService) UpdateProject(ctx context.Context, id primitive.ObjectID, patch *models.Project, actor string) (*models.Project, error) {
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
	if patch.Status != "" {
		existing.Status = patch.Status
	}
	if patch.Priority != "" {
		existing.Priority = patch.Priority
	}
	if patch.StartDate != nil {
		existing.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		existing.EndDate = patch.EndDate
	}
	if patch.Budget != 0 {
		existing.Budget = patch.Budget
	}
	if patch.ActualCost != 0 {
		existing.ActualCost = patch.ActualCost
	}
	if patch.Progress != 0 {
		existing.Progress = patch.Progress
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

func (s *projectService) SoftDeleteProject(ctx context.Context, id primitive.ObjectID, actor string) error {
	return s.repo.SoftDelete(ctx, id, actor)
}

func (s *projectService) GetOverdueProjects(ctx context.Context, orgID primitive.ObjectID) ([]models.Project, error) {
	return s.repo.FindOverdue(ctx, orgID, time.Now())
}

func (s *projectService) CreateMilestone(ctx context.Context, milestone *models.Milestone, actor string) (*models.Milestone, error) {
	milestone.Metadata.Touch(actor, time.Now())

	if milestone.Completed {
		milestone.MarkCompleted(time.Now())
	}

	if err := s.repo.CreateMilestone(ctx, milestone); err != nil {
		return nil, err
	}

	return milestone, nil
}

func (s *projectService) GetMilestonesByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Milestone, error) {
	return s.repo.GetMilestonesByProject(ctx, projectID)
}

func (s *projectService) CompleteMilestone(ctx context.Context, id primitive.ObjectID, actor string) (*models.Milestone, error) {
	milestone, err := s.repo.GetMilestoneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	milestone.MarkCompleted(time.Now())
	milestone.Metadata.Touch(actor, time.Now())

	if err := s.repo.UpdateMilestone(ctx, id, milestone); err != nil {
		return nil, err
	}

	s.logger.Infow("milestone completed", "milestone_id", id.Hex(), "actor", actor)
	return milestone, nil
}
