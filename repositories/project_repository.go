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

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	GetByOrganization(ctx context.Context, orgID primitive.ObjectID, limit int64) ([]models.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, project *models.Project) error
	SoftDelete(ctx context.Context, id primitive.ObjectID, updatedBy string) error
	FindOverdue(ctx context.Context, orgID primitive.ObjectID, now time.Time) ([]models.Project, error)
	// Milestone methods
	CreateMilestone(ctx context.Context, milestone *models.Milestone) error
	GetMilestoneByID(ctx context.Context, id primitive.ObjectID) (*models.Milestone, error)
	GetMilestonesByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Milestone, error)
	UpdateMilestone(ctx context.Context, id primitive.ObjectID, milestone *models.Milestone) error
}

type projectRepository struct {
	projects   *mongo.Collection
	milestones *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{
		projects:   db.Collection("projects"),
		milestones: db.Collection("milestones"),
	}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()

	_, err := r.projects.InsertOne(ctx, project)
	return err
}

func (r *projectRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.projects.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *projectRepository) GetByOrganization(ctx context.Context, orgID primitive.ObjectID, limit int64) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "metadata.created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.projects.Find(ctx, bson.M{"organization_id": orgID, "is_deleted": bson.M{"$ne": true}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, id primitive.ObjectID, project *models.Project) error {
	filter := bson.M{"_id": id}
	result, err := r.projects.UpdateOne(ctx, filter, bson.M{"$set": project})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no project found with id %s", id.Hex())
	}

	return nil
}

func (r *projectRepository) SoftDelete(ctx context.Context, id primitive.ObjectID, updatedBy string) error {
	update := bson.M{
		"$set": bson.M{
			"is_deleted":          true,
			"metadata.updated_at": time.Now(),
			"metadata.updated_by": updatedBy,
		},
	}

	filter := bson.M{"_id": id, "is_deleted": bson.M{"$ne": true}}
	result, err := r.projects.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no project found with id %s or already deleted", id.Hex())
	}

	return nil
}

func (r *projectRepository) FindOverdue(ctx context.Context, orgID primitive.ObjectID, now time.Time) ([]models.Project, error) {
	filter := bson.M{
		"organization_id": orgID,
		"is_deleted":      bson.M{"$ne": true},
		"end_date":        bson.M{"$lt": now},
		"status":          bson.M{"$nin": []models.ProjectStatus{models.ProjectCompleted, models.ProjectCancelled}},
	}

	opts := options.Find().SetSort(bson.D{{Key: "end_date", Value: 1}})
	cursor, err := r.projects.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *projectRepository) CreateMilestone(ctx context.Context, milestone *models.Milestone) error {
	milestone.ID = primitive.NewObjectID()

	_, err := r.milestones.InsertOne(ctx, milestone)
	return err
}

func (r *projectRepository) GetMilestoneByID(ctx context.Context, id primitive.ObjectID) (*models.Milestone, error) {
	var milestone models.Milestone
	err := r.milestones.FindOne(ctx, bson.M{"_id": id}).Decode(&milestone)
	if err != nil {
		return nil, err
	}

	return &milestone, nil
}

func (r *projectRepository) GetMilestonesByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Milestone, error) {
	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})
	cursor, err := r.milestones.Find(ctx, bson.M{"project_id": projectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var milestones []models.Milestone
	if err = cursor.All(ctx, &milestones); err != nil {
		return nil, err
	}

	return milestones, nil
}

func (r *projectRepository) UpdateMilestone(ctx context.Context, id primitive.ObjectID, milestone *models.Milestone) error {
	result, err := r.milestones.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": milestone})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no milestone found with id %s", id.Hex())
	}

	return nil
}
