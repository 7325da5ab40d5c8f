package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes sets up the indexes the query helpers rely on. Safe to call
// on every startup; CreateMany is a no-op for indexes that already exist.
func CreateIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	specs := map[string][]mongo.IndexModel{
		"projects": {
			{
				Keys: bson.D{
					{Key: "organization_id", Value: 1},
					{Key: "is_deleted", Value: 1},
					{Key: "metadata.created_at", Value: -1},
				},
				Options: options.Index().SetName("idx_org_deleted_created"),
			},
			{
				Keys: bson.D{
					{Key: "organization_id", Value: 1},
					{Key: "end_date", Value: 1},
					{Key: "status", Value: 1},
				},
				Options: options.Index().SetName("idx_org_end_date_status"),
			},
		},
		"tasks": {
			{
				Keys: bson.D{
					{Key: "project_id", Value: 1},
					{Key: "is_deleted", Value: 1},
					{Key: "metadata.created_at", Value: -1},
				},
				Options: options.Index().SetName("idx_project_deleted_created"),
			},
			{
				Keys: bson.D{
					{Key: "assignee_id", Value: 1},
					{Key: "is_deleted", Value: 1},
				},
				Options: options.Index().SetName("idx_assignee_deleted"),
			},
			{
				Keys: bson.D{
					{Key: "organization_id", Value: 1},
					{Key: "due_date", Value: 1},
					{Key: "status", Value: 1},
				},
				Options: options.Index().SetName("idx_org_due_date_status"),
			},
		},
		"okrs": {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().SetName("idx_user").SetSparse(true),
			},
			{
				Keys:    bson.D{{Key: "team_id", Value: 1}},
				Options: options.Index().SetName("idx_team").SetSparse(true),
			},
			{
				Keys: bson.D{
					{Key: "organization_id", Value: 1},
					{Key: "metadata.created_at", Value: -1},
				},
				Options: options.Index().SetName("idx_org_created"),
			},
		},
		"performance_reviews": {
			{
				Keys: bson.D{
					{Key: "employee_id", Value: 1},
					{Key: "metadata.created_at", Value: -1},
				},
				Options: options.Index().SetName("idx_employee_created"),
			},
		},
		"budgets": {
			{
				Keys:    bson.D{{Key: "project_id", Value: 1}},
				Options: options.Index().SetName("idx_project").SetUnique(true),
			},
			{
				Keys: bson.D{
					{Key: "project_id", Value: 1},
					{Key: "categories.name", Value: 1},
				},
				Options: options.Index().SetName("idx_project_category"),
			},
		},
		"budget_transactions": {
			{
				Keys: bson.D{
					{Key: "project_id", Value: 1},
					{Key: "date", Value: -1},
				},
				Options: options.Index().SetName("idx_project_date"),
			},
		},
		"audit_logs": {
			{
				Keys: bson.D{
					{Key: "organization_id", Value: 1},
					{Key: "created_at", Value: -1},
				},
				Options: options.Index().SetName("idx_org_created"),
			},
			{
				Keys: bson.D{
					{Key: "severity", Value: 1},
					{Key: "created_at", Value: 1},
				},
				Options: options.Index().SetName("idx_severity_created"),
			},
		},
		"notifications": {
			{
				Keys: bson.D{
					{Key: "user_id", Value: 1},
					{Key: "metadata.created_at", Value: -1},
				},
				Options: options.Index().SetName("idx_user_created"),
			},
			{
				Keys:    bson.D{{Key: "expires_at", Value: 1}},
				Options: options.Index().SetName("idx_expires").SetSparse(true),
			},
		},
		"ai_reports": {
			{
				Keys: bson.D{
					{Key: "organization_id", Value: 1},
					{Key: "expires_at", Value: 1},
					{Key: "status", Value: 1},
				},
				Options: options.Index().SetName("idx_org_expires_status"),
			},
		},
		"attachments": {
			{
				Keys:    bson.D{{Key: "expires_at", Value: 1}},
				Options: options.Index().SetName("idx_expires").SetSparse(true),
			},
		},
	}

	for collection, indexes := range specs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %v", collection, err)
		}
	}

	return nil
}
