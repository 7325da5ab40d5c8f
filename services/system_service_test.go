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

type fakeSystemRepo struct {
	auditLogs     []*models.AuditLog
	notifications map[primitive.ObjectID]*models.Notification
	aiReports     map[primitive.ObjectID]*models.AIReport
	purgedBefore  time.Time
}

func newFakeSystemRepo() *fakeSystemRepo {
	return &fakeSystemRepo{
		notifications: make(map[primitive.ObjectID]*models.Notification),
		aiReports:     make(map[primitive.ObjectID]*models.AIReport),
	}
}

func (f *fakeSystemRepo) CreateAuditLog(_ context.Context, log *models.AuditLog) error {
	log.ID = primitive.NewObjectID()
	stored := *log
	f.auditLogs = append(f.auditLogs, &stored)
	return nil
}

func (f *fakeSystemRepo) GetAuditLogs(_ context.Context, _ primitive.ObjectID, _ int64) ([]models.AuditLog, error) {
	return nil, nil
}

func (f *fakeSystemRepo) PurgeAuditLogs(_ context.Context, olderThan time.Time) (int64, error) {
	f.purgedBefore = olderThan
	var kept []*models.AuditLog
	purged := int64(0)
	for _, l := range f.auditLogs {
		old := l.CreatedAt.Before(olderThan)
		purgeable := l.Severity == models.SeverityLow || l.Severity == models.SeverityMedium
		if old && purgeable {
			purged++
			continue
		}
		kept = append(kept, l)
	}
	f.auditLogs = kept
	return purged, nil
}

func (f *fakeSystemRepo) CreateNotification(_ context.Context, n *models.Notification) error {
	n.ID = primitive.NewObjectID()
	stored := *n
	f.notifications[n.ID] = &stored
	return nil
}

func (f *fakeSystemRepo) GetNotificationByID(_ context.Context, id primitive.ObjectID) (*models.Notification, error) {
	n, ok := f.notifications[id]
	if !ok {
		return nil, fmt.Errorf("notification %s not found", id.Hex())
	}
	copied := *n
	return &copied, nil
}

func (f *fakeSystemRepo) GetNotificationsByUser(_ context.Context, _ primitive.ObjectID, _ int64) ([]models.Notification, error) {
	return nil, nil
}

func (f *fakeSystemRepo) UpdateNotification(_ context.Context, id primitive.ObjectID, n *models.Notification) error {
	stored := *n
	f.notifications[id] = &stored
	return nil
}

func (f *fakeSystemRepo) DeleteExpiredNotifications(_ context.Context, now time.Time) (int64, error) {
	deleted := int64(0)
	for id, n := range f.notifications {
		if n.ExpiresAt != nil && n.ExpiresAt.Before(now) {
			delete(f.notifications, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeSystemRepo) CreateAIReport(_ context.Context, report *models.AIReport) error {
	report.ID = primitive.NewObjectID()
	stored := *report
	f.aiReports[report.ID] = &stored
	return nil
}

func (f *fakeSystemRepo) GetAIReportByID(_ context.Context, id primitive.ObjectID) (*models.AIReport, error) {
	r, ok := f.aiReports[id]
	if !ok {
		return nil, fmt.Errorf("ai report %s not found", id.Hex())
	}
	copied := *r
	return &copied, nil
}

func (f *fakeSystemRepo) FindActiveAIReports(_ context.Context, _ primitive.ObjectID, now time.Time) ([]models.AIReport, error) {
	var out []models.AIReport
	for _, r := range f.aiReports {
		if !r.IsExpired(now) || r.Status == models.AIReportCompleted {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeSystemRepo) UpdateAIReport(_ context.Context, id primitive.ObjectID, report *models.AIReport) error {
	stored := *report
	f.aiReports[id] = &stored
	return nil
}

func (f *fakeSystemRepo) DeleteExpiredAIReports(_ context.Context, now time.Time) (int64, error) {
	deleted := int64(0)
	for id, r := range f.aiReports {
		if r.ExpiresAt != nil && r.ExpiresAt.Before(now) {
			delete(f.aiReports, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeSystemRepo) GetSettingsForUser(_ context.Context, _ primitive.ObjectID) (*models.Settings, error) {
	return nil, fmt.Errorf("not found")
}

func (f *fakeSystemRepo) GetSettingsForTeam(_ context.Context, _ primitive.ObjectID) (*models.Settings, error) {
	return nil, fmt.Errorf("not found")
}

func (f *fakeSystemRepo) UpsertSettings(_ context.Context, _ *models.Settings) error { return nil }

func TestRecordAuditClassifies(t *testing.T) {
	repo := newFakeSystemRepo()
	svc := NewSystemService(repo, newFakeTaskRepo(), zap.NewNop().Sugar())

	err := svc.RecordAudit(context.Background(), &models.AuditLog{
		OrganizationID: primitive.NewObjectID(),
		Action:         "Deleted project Apollo",
	})
	require.NoError(t, err)
	require.Len(t, repo.auditLogs, 1)
	assert.Equal(t, models.SeverityHigh, repo.auditLogs[0].Severity)
	assert.False(t, repo.auditLogs[0].CreatedAt.IsZero())
}

func TestSweepExpiredPurges(t *testing.T) {
	repo := newFakeSystemRepo()
	svc := NewSystemService(repo, newFakeTaskRepo(), zap.NewNop().Sugar())

	now := time.Now()
	stale := now.Add(-400 * 24 * time.Hour)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	repo.auditLogs = []*models.AuditLog{
		{Action: "update settings", Severity: models.SeverityMedium, CreatedAt: stale},
		{Action: "delete user", Severity: models.SeverityHigh, CreatedAt: stale},
	}
	repo.notifications[primitive.NewObjectID()] = &models.Notification{ExpiresAt: &past}
	repo.notifications[primitive.NewObjectID()] = &models.Notification{ExpiresAt: &future}
	repo.aiReports[primitive.NewObjectID()] = &models.AIReport{ExpiresAt: &past}

	require.NoError(t, svc.SweepExpired(context.Background()))

	require.Len(t, repo.auditLogs, 1, "high severity entries survive the purge")
	assert.Equal(t, models.SeverityHigh, repo.auditLogs[0].Severity)
	assert.Len(t, repo.notifications, 1)
	assert.Empty(t, repo.aiReports)
}

func TestMarkNotificationReadOnce(t *testing.T) {
	repo := newFakeSystemRepo()
	svc := NewSystemService(repo, newFakeTaskRepo(), zap.NewNop().Sugar())

	n, err := svc.CreateNotification(context.Background(), &models.Notification{
		OrganizationID: primitive.NewObjectID(),
		UserID:         primitive.NewObjectID(),
		Type:           "mention",
		Title:          "You were mentioned",
	}, "system")
	require.NoError(t, err)

	read, err := svc.MarkNotificationRead(context.Background(), n.ID, "user")
	require.NoError(t, err)
	require.NotNil(t, read.ReadAt)
	first := *read.ReadAt

	again, err := svc.MarkNotificationRead(context.Background(), n.ID, "user")
	require.NoError(t, err)
	assert.Equal(t, first, *again.ReadAt)
}
