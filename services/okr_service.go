package services

import (
	"context"
	"time"

	"workpulse/models"
	repository "workpulse/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type OKRService interface {
	CreateOKR(ctx context.Context, okr *models.OKR, actor string) (*models.OKR, error)
	GetOKRByID(ctx context.Context, id primitive.ObjectID) (*models.OKR, error)
	GetOKRsByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.OKR, error)
	GetOKRsByTeam(ctx context.Context, teamID primitive.ObjectID, limit int64) ([]models.OKR, error)
	GetOKRsByOrganization(ctx context.Context, orgID primitive.ObjectID, limit int64) ([]models.OKR, error)
	UpdateOKR(ctx context.Context, id primitive.ObjectID, patch *models.OKR, actor string) (*models.OKR, error)
	UpdateKeyResults(ctx context.Context, id primitive.ObjectID, keyResults []models.KeyResult, actor string) (*models.OKR, error)
	DeleteOKR(ctx context.Context, id primitive.ObjectID) error
}

type okrService struct {
	repo   repository.OKRRepository
	logger *zap.SugaredLogger
}

func NewOKRService(repo repository.OKRRepository, logger *zap.SugaredLogger) OKRService {
	return &okrService{repo: repo, logger: logger}
}

func (s *okrService) CreateOKR(ctx context.Context, okr *models.OKR, actor string) (*models.OKR, error) {
	if err := okr.Validate(); err != nil {
		return nil, err
	}

	if okr.Status == "" {
		okr.Status = models.OKRActive
	}

	// Progress is stored, so it is computed on every create.
	okr.RecomputeProgress()
	okr.Metadata.Touch(actor, time.Now())

	if err := s.repo.Create(ctx, okr); err != nil {
		return nil, err
	}

	s.logger.Infow("okr created", "okr_id", okr.ID.Hex(), "progress", okr.Progress, "actor", actor)
	return okr, nil
}

func (s *okrService) GetOKRByID(ctx context.Context, id primitive.ObjectID) (*models.OKR, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *okrService) GetOKRsByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.OKR, error) {
	return s.repo.GetByUser(ctx, userID, limit)
}

func (s *okrService) GetOKRsByTeam(ctx context.Context, teamID primitive.ObjectID, limit int64) ([]models.OKR, error) {
	return s.repo.GetByTeam(ctx, teamID, limit)
}

func (s *okrService) GetOKRsByOrganization(ctx context.Context, orgID primitive.ObjectID, limit int64) ([]models.OKR, error) {
	return s.repo.GetByOrganization(ctx, orgID, limit)
}

func (s *okrService) UpdateOKR(ctx context.Context, id primitive.ObjectID, patch *models.OKR, actor string) (*models.OKR, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Objective != "" {
		existing.Objective = patch.Objective
	}
	if patch.Description != "" {
		existing.Description = patch.Description
	}
	if patch.Period != "" {
		existing.Period = patch.Period
	}
	if patch.Status != "" {
		existing.Status = patch.Status
	}
	if patch.KeyResults != nil {
		existing.KeyResults = patch.KeyResults
	}

	// Recomputed on every save that could have touched key results.
	existing.RecomputeProgress()
	existing.Metadata.Touch(actor, time.Now())

	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// UpdateKeyResults replaces the key results and persists the recomputed
// progress, promoting the OKR to completed when it qualifies.
func (s *okrService) UpdateKeyResults(ctx context.Context, id primitive.ObjectID, keyResults []models.KeyResult, actor string) (*models.OKR, error) {
	okr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	okr.KeyResults = keyResults
	okr.RecomputeProgress()
	okr.Metadata.Touch(actor, time.Now())

	if err := s.repo.Update(ctx, id, okr); err != nil {
		return nil, err
	}

	if okr.Status == models.OKRCompleted {
		s.logger.Infow("okr completed", "okr_id", id.Hex(), "actor", actor)
	}
	return okr, nil
}

func (s *okrService) DeleteOKR(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
