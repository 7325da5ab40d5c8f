package services

import (
	"context"
	"time"

	"workpulse/models"
	repository "workpulse/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, review *models.PerformanceReview, actor string) (*models.PerformanceReview, error)
	GetReviewByID(ctx context.Context, id primitive.ObjectID) (*models.PerformanceReview, error)
	GetReviewsByEmployee(ctx context.Context, employeeID primitive.ObjectID, limit int64) ([]models.PerformanceReview, error)
	UpdateReview(ctx context.Context, id primitive.ObjectID, patch *models.PerformanceReview, actor string) (*models.PerformanceReview, error)
	SubmitReview(ctx context.Context, id primitive.ObjectID, actor string) (*models.PerformanceReview, error)
	ApproveReview(ctx context.Context, id primitive.ObjectID, actor string) (*models.PerformanceReview, error)
	// Skill assessments
	CreateAssessment(ctx context.Context, assessment *models.SkillAssessment, actor string) (*models.SkillAssessment, error)
	GetAssessmentsByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.SkillAssessment, error)
	ApproveAssessment(ctx context.Context, id primitive.ObjectID, actor string) (*models.SkillAssessment, error)
	// Feedback
	CreateFeedback(ctx context.Context, feedback *models.Feedback, actor string) (*models.Feedback, error)
	GetFeedbackForUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Feedback, error)
}

type reviewService struct {
	repo   repository.ReviewRepository
	logger *zap.SugaredLogger
}

func NewReviewService(repo repository.ReviewRepository, logger *zap.SugaredLogger) ReviewService {
	return &reviewService{repo: repo, logger: logger}
}

func (s *reviewService) CreateReview(ctx context.Context, review *models.PerformanceReview, actor string) (*models.PerformanceReview, error) {
	if review.Status == "" {
		review.Status = models.ReviewDraft
	}

	review.RecomputeRating()
	review.Metadata.Touch(actor, time.Now())

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Infow("performance review created",
		"review_id", review.ID.Hex(), "employee_id", review.EmployeeID.Hex(), "rating", review.OverallRating)
	return review, nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, id primitive.ObjectID) (*models.PerformanceReview, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *reviewService) GetReviewsByEmployee(ctx context.Context, employeeID primitive.ObjectID, limit int64) ([]models.PerformanceReview, error) {
	return s.repo.GetByEmployee(ctx, employeeID, limit)
}

func (s *reviewService) UpdateReview(ctx context.Context, id primitive.ObjectID, patch *models.PerformanceReview, actor string) (*models.PerformanceReview, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Period != "" {
		existing.Period = patch.Period
	}
	if patch.Score != 0 {
		existing.Score = patch.Score
	}
	if patch.MaxScore != 0 {
		existing.MaxScore = patch.MaxScore
	}
	if patch.Categories != nil {
		existing.Categories = patch.Categories
	}
	if patch.Summary != "" {
		existing.Summary = patch.Summary
	}

	// The rating tracks the score percentage on every save.
	existing.RecomputeRating()
	existing.Metadata.Touch(actor, time.Now())

	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *reviewService) SubmitReview(ctx context.Context, id primitive.ObjectID, actor string) (*models.PerformanceReview, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	review.MarkSubmitted(now)
	review.RecomputeRating()
	review.Metadata.Touch(actor, now)

	if err := s.repo.Update(ctx, id, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *reviewService) ApproveReview(ctx context.Context, id primitive.ObjectID, actor string) (*models.PerformanceReview, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	review.MarkApproved(now)
	review.RecomputeRating()
	review.Metadata.Touch(actor, now)

	if err := s.repo.Update(ctx, id, review); err != nil {
		return nil, err
	}

	s.logger.Infow("performance review approved", "review_id", id.Hex(), "actor", actor)
	return review, nil
}

func (s *reviewService) CreateAssessment(ctx context.Context, assessment *models.SkillAssessment, actor string) (*models.SkillAssessment, error) {
	if assessment.Status == "" {
		assessment.Status = models.AssessmentDraft
	}
	if assessment.AssessmentDate.IsZero() {
		assessment.AssessmentDate = time.Now()
	}

	assessment.ApplyDefaults()
	assessment.Metadata.Touch(actor, time.Now())

	if err := s.repo.CreateAssessment(ctx, assessment); err != nil {
		return nil, err
	}

	return assessment, nil
}

func (s *reviewService) GetAssessmentsByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.SkillAssessment, error) {
	return s.repo.GetAssessmentsByUser(ctx, userID, limit)
}

func (s *reviewService) ApproveAssessment(ctx context.Context, id primitive.ObjectID, actor string) (*models.SkillAssessment, error) {
	assessment, err := s.repo.GetAssessmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	assessment.MarkApproved(now)
	assessment.Metadata.Touch(actor, now)

	if err := s.repo.UpdateAssessment(ctx, id, assessment); err != nil {
		return nil, err
	}

	return assessment, nil
}

func (s *reviewService) CreateFeedback(ctx context.Context, feedback *models.Feedback, actor string) (*models.Feedback, error) {
	if err := feedback.Validate(); err != nil {
		return nil, err
	}

	feedback.Metadata.Touch(actor, time.Now())

	if err := s.repo.CreateFeedback(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (s *reviewService) GetFeedbackForUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Feedback, error) {
	return s.repo.GetFeedbackForUser(ctx, userID, limit)
}
