package services

import (
	"context"
	"time"

	"workpulse/models"
	repository "workpulse/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// auditRetention is how long low and medium severity audit entries are kept.
const auditRetention = 365 * 24 * time.Hour

type SystemService interface {
	RecordAudit(ctx context.Context, log *models.AuditLog) error
	GetAuditLogs(ctx context.Context, orgID primitive.ObjectID, limit int64) ([]models.AuditLog, error)
	CreateNotification(ctx context.Context, n *models.Notification, actor string) (*models.Notification, error)
	GetNotificationsByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id primitive.ObjectID, actor string) (*models.Notification, error)
	CreateAIReport(ctx context.Context, report *models.AIReport, actor string) (*models.AIReport, error)
	GetActiveAIReports(ctx context.Context, orgID primitive.ObjectID) ([]models.AIReport, error)
	SaveSettings(ctx context.Context, settings *models.Settings, actor string) (*models.Settings, error)
	GetSettingsForUser(ctx context.Context, userID primitive.ObjectID) (*models.Settings, error)
	// SweepExpired runs the retention pass: stale low/medium audit entries,
	// expired notifications, AI reports and attachments.
	SweepExpired(ctx context.Context) error
}

type systemService struct {
	repo     repository.SystemRepository
	taskRepo repository.TaskRepository
	logger   *zap.SugaredLogger
}

func NewSystemService(repo repository.SystemRepository, taskRepo repository.TaskRepository, logger *zap.SugaredLogger) SystemService {
	return &systemService{repo: repo, taskRepo: taskRepo, logger: logger}
}

func (s *systemService) RecordAudit(ctx context.Context, log *models.AuditLog) error {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	log.Classify()

	return s.repo.CreateAuditLog(ctx, log)
}

func (s *systemService) GetAuditLogs(ctx context.Context, orgID primitive.ObjectID, limit int64) ([]models.AuditLog, error) {
	return s.repo.GetAuditLogs(ctx, orgID, limit)
}

func (s *systemService) CreateNotification(ctx context.Context, n *models.Notification, actor string) (*models.Notification, error) {
	n.Read = false
	n.ReadAt = nil
	n.Metadata.Touch(actor, time.Now())

	if err := s.repo.CreateNotification(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

func (s *systemService) GetNotificationsByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Notification, error) {
	return s.repo.GetNotificationsByUser(ctx, userID, limit)
}

func (s *systemService) MarkNotificationRead(ctx context.Context, id primitive.ObjectID, actor string) (*models.Notification, error) {
	n, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	n.MarkRead(now)
	n.Metadata.Touch(actor, now)

	if err := s.repo.UpdateNotification(ctx, id, n); err != nil {
		return nil, err
	}

	return n, nil
}

func (s *systemService) CreateAIReport(ctx context.Context, report *models.AIReport, actor string) (*models.AIReport, error) {
	if err := report.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	report.ApplyDefaults(now)
	if report.Status == "" {
		report.Status = models.AIReportGenerating
	}
	report.Metadata.Touch(actor, now)

	if err := s.repo.CreateAIReport(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *systemService) GetActiveAIReports(ctx context.Context, orgID primitive.ObjectID) ([]models.AIReport, error) {
	return s.repo.FindActiveAIReports(ctx, orgID, time.Now())
}

func (s *systemService) SaveSettings(ctx context.Context, settings *models.Settings, actor string) (*models.Settings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	settings.Metadata.Touch(actor, time.Now())

	if err := s.repo.UpsertSettings(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *systemService) GetSettingsForUser(ctx context.Context, userID primitive.ObjectID) (*models.Settings, error) {
	return s.repo.GetSettingsForUser(ctx, userID)
}

func (s *systemService) SweepExpired(ctx context.Context) error {
	now := time.Now()

	audits, err := s.repo.PurgeAuditLogs(ctx, now.Add(-auditRetention))
	if err != nil {
		return err
	}

	notifications, err := s.repo.DeleteExpiredNotifications(ctx, now)
	if err != nil {
		return err
	}

	reports, err := s.repo.DeleteExpiredAIReports(ctx, now)
	if err != nil {
		return err
	}

	attachments, err := s.taskRepo.DeleteExpiredAttachments(ctx, now)
	if err != nil {
		return err
	}

	s.logger.Infow("retention sweep finished",
		"audit_logs", audits,
		"notifications", notifications,
		"ai_reports", reports,
		"attachments", attachments)
	return nil
}
