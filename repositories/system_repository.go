package repository

import (
	"context"
	"fmt"
	"time"

	"workpulse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SystemRepository covers the operational collections: audit logs,
// notifications, AI reports and settings, including the retention deleters.
type SystemRepository interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	GetAuditLogs(ctx context.Context, orgID primitive.ObjectID, limit int64) ([]models.AuditLog, error)
	// PurgeAuditLogs removes low and medium entries older than the cutoff.
	// High and critical entries are retained indefinitely.
	PurgeAuditLogs(ctx context.Context, olderThan time.Time) (int64, error)
	// Notification methods
	CreateNotification(ctx context.Context, n *models.Notification) error
	GetNotificationByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error)
	GetNotificationsByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Notification, error)
	UpdateNotification(ctx context.Context, id primitive.ObjectID, n *models.Notification) error
	DeleteExpiredNotifications(ctx context.Context, now time.Time) (int64, error)
	// AI report methods
	CreateAIReport(ctx context.Context, report *models.AIReport) error
	GetAIReportByID(ctx context.Context, id primitive.ObjectID) (*models.AIReport, error)
	FindActiveAIReports(ctx context.Context, orgID primitive.ObjectID, now time.Time) ([]models.AIReport, error)
	UpdateAIReport(ctx context.Context, id primitive.ObjectID, report *models.AIReport) error
	DeleteExpiredAIReports(ctx context.Context, now time.Time) (int64, error)
	// Settings methods
	GetSettingsForUser(ctx context.Context, userID primitive.ObjectID) (*models.Settings, error)
	GetSettingsForTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Settings, error)
	UpsertSettings(ctx context.Context, settings *models.Settings) error
}

type systemRepository struct {
	auditLogs     *mongo.Collection
	notifications *mongo.Collection
	aiReports     *mongo.Collection
	settings      *mongo.Collection
}

func NewSystemRepository(db *mongo.Database) SystemRepository {
	return &systemRepository{
		auditLogs:     db.Collection("audit_logs"),
		notifications: db.Collection("notifications"),
		aiReports:     db.Collection("ai_reports"),
		settings:      db.Collection("settings"),
	}
}

func (r *systemRepository) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	log.ID = primitive.NewObjectID()

	_, err := r.auditLogs.InsertOne(ctx, log)
	return err
}

func (r *systemRepository) GetAuditLogs(ctx context.Context, orgID primitive.ObjectID, limit int64) ([]models.AuditLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.auditLogs.Find(ctx, bson.M{"organization_id": orgID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []models.AuditLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *systemRepository) PurgeAuditLogs(ctx context.Context, olderThan time.Time) (int64, error) {
	filter := bson.M{
		"created_at": bson.M{"$lt": olderThan},
		"severity":   bson.M{"$in": []models.Severity{models.SeverityLow, models.SeverityMedium}},
	}

	result, err := r.auditLogs.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (r *systemRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	n.ID = primitive.NewObjectID()

	_, err := r.notifications.InsertOne(ctx, n)
	return err
}

func (r *systemRepository) GetNotificationByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	var n models.Notification
	err := r.notifications.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err != nil {
		return nil, err
	}

	return &n, nil
}

func (r *systemRepository) GetNotificationsByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "metadata.created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.notifications.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Notification
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *systemRepository) UpdateNotification(ctx context.Context, id primitive.ObjectID, n *models.Notification) error {
	result, err := r.notifications.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": n})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no notification found with id %s", id.Hex())
	}

	return nil
}

func (r *systemRepository) DeleteExpiredNotifications(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.notifications.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": now}})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (r *systemRepository) CreateAIReport(ctx context.Context, report *models.AIReport) error {
	report.ID = primitive.NewObjectID()

	_, err := r.aiReports.InsertOne(ctx, report)
	return err
}

func (r *systemRepository) GetAIReportByID(ctx context.Context, id primitive.ObjectID) (*models.AIReport, error) {
	var report models.AIReport
	err := r.aiReports.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		return nil, err
	}

	return &report, nil
}

// FindActiveAIReports excludes expired reports unless they completed.
func (r *systemRepository) FindActiveAIReports(ctx context.Context, orgID primitive.ObjectID, now time.Time) ([]models.AIReport, error) {
	filter := bson.M{
		"organization_id": orgID,
		"$or": []bson.M{
			{"expires_at": bson.M{"$gt": now}},
			{"expires_at": nil},
			{"status": models.AIReportCompleted},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "generated_at", Value: -1}})
	cursor, err := r.aiReports.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []models.AIReport
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *systemRepository) UpdateAIReport(ctx context.Context, id primitive.ObjectID, report *models.AIReport) error {
	result, err := r.aiReports.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": report})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no AI report found with id %s", id.Hex())
	}

	return nil
}

func (r *systemRepository) DeleteExpiredAIReports(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.aiReports.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": now}})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (r *systemRepository) GetSettingsForUser(ctx context.Context, userID primitive.ObjectID) (*models.Settings, error) {
	var settings models.Settings
	err := r.settings.FindOne(ctx, bson.M{"user_id": userID}).Decode(&settings)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *systemRepository) GetSettingsForTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Settings, error) {
	var settings models.Settings
	err := r.settings.FindOne(ctx, bson.M{"team_id": teamID}).Decode(&settings)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *systemRepository) UpsertSettings(ctx context.Context, settings *models.Settings) error {
	filter := bson.M{"organization_id": settings.OrganizationID}
	if settings.UserID != nil {
		filter["user_id"] = settings.UserID
	} else {
		filter["team_id"] = settings.TeamID
	}

	if settings.ID.IsZero() {
		settings.ID = primitive.NewObjectID()
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.settings.ReplaceOne(ctx, filter, settings, opts)
	return err
}
