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

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
	GetByProject(ctx context.Context, projectID primitive.ObjectID, limit int64) ([]models.Task, error)
	GetByAssignee(ctx context.Context, assigneeID primitive.ObjectID, limit int64) ([]models.Task, error)
	Update(ctx context.Context, id primitive.ObjectID, task *models.Task) error
	SoftDelete(ctx context.Context, id primitive.ObjectID, updatedBy string) error
	FindOverdue(ctx context.Context, orgID primitive.ObjectID, now time.Time) ([]models.Task, error)
	// Comment methods
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	GetCommentsByTask(ctx context.Context, taskID primitive.ObjectID) ([]models.Comment, error)
	GetCommentsByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Comment, error)
	UpdateComment(ctx context.Context, id primitive.ObjectID, comment *models.Comment) error
	// Attachment methods
	CreateAttachment(ctx context.Context, attachment *models.Attachment) error
	GetAttachmentByID(ctx context.Context, id primitive.ObjectID) (*models.Attachment, error)
	DeleteAttachment(ctx context.Context, id primitive.ObjectID) error
	DeleteExpiredAttachments(ctx context.Context, now time.Time) (int64, error)
}

type taskRepository struct {
	tasks       *mongo.Collection
	comments    *mongo.Collection
	attachments *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) TaskRepository {
	return &taskRepository{
		tasks:       db.Collection("tasks"),
		comments:    db.Collection("comments"),
		attachments: db.Collection("attachments"),
	}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	task.ID = primitive.NewObjectID()

	_, err := r.tasks.InsertOne(ctx, task)
	return err
}

func (r *taskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var task models.Task
	err := r.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *taskRepository) findTasks(ctx context.Context, filter bson.M, limit int64) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "metadata.created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.tasks.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *taskRepository) GetByProject(ctx context.Context, projectID primitive.ObjectID, limit int64) ([]models.Task, error) {
	return r.findTasks(ctx, bson.M{"project_id": projectID, "is_deleted": bson.M{"$ne": true}}, limit)
}

func (r *taskRepository) GetByAssignee(ctx context.Context, assigneeID primitive.ObjectID, limit int64) ([]models.Task, error) {
	return r.findTasks(ctx, bson.M{"assignee_id": assigneeID, "is_deleted": bson.M{"$ne": true}}, limit)
}

func (r *taskRepository) Update(ctx context.Context, id primitive.ObjectID, task *models.Task) error {
	result, err := r.tasks.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": task})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no task found with id %s", id.Hex())
	}

	return nil
}

func (r *taskRepository) SoftDelete(ctx context.Context, id primitive.ObjectID, updatedBy string) error {
	update := bson.M{
		"$set": bson.M{
			"is_deleted":          true,
			"metadata.updated_at": time.Now(),
			"metadata.updated_by": updatedBy,
		},
	}

	filter := bson.M{"_id": id, "is_deleted": bson.M{"$ne": true}}
	result, err := r.tasks.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no task found with id %s or already deleted", id.Hex())
	}

	return nil
}

func (r *taskRepository) FindOverdue(ctx context.Context, orgID primitive.ObjectID, now time.Time) ([]models.Task, error) {
	filter := bson.M{
		"organization_id": orgID,
		"is_deleted":      bson.M{"$ne": true},
		"due_date":        bson.M{"$lt": now},
		"status":          bson.M{"$nin": []models.TaskStatus{models.TaskDone, models.TaskCancelled}},
	}
	return r.findTasks(ctx, filter, 0)
}

func (r *taskRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()

	_, err := r.comments.InsertOne(ctx, comment)
	return err
}

func (r *taskRepository) GetCommentByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := r.comments.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *taskRepository) findComments(ctx context.Context, filter bson.M) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "metadata.created_at", Value: -1}})
	cursor, err := r.comments.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *taskRepository) GetCommentsByTask(ctx context.Context, taskID primitive.ObjectID) ([]models.Comment, error) {
	return r.findComments(ctx, bson.M{"task_id": taskID})
}

func (r *taskRepository) GetCommentsByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Comment, error) {
	return r.findComments(ctx, bson.M{"project_id": projectID})
}

func (r *taskRepository) UpdateComment(ctx context.Context, id primitive.ObjectID, comment *models.Comment) error {
	result, err := r.comments.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": comment})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no comment found with id %s", id.Hex())
	}

	return nil
}

func (r *taskRepository) CreateAttachment(ctx context.Context, attachment *models.Attachment) error {
	attachment.ID = primitive.NewObjectID()

	_, err := r.attachments.InsertOne(ctx, attachment)
	return err
}

func (r *taskRepository) GetAttachmentByID(ctx context.Context, id primitive.ObjectID) (*models.Attachment, error) {
	var attachment models.Attachment
	err := r.attachments.FindOne(ctx, bson.M{"_id": id}).Decode(&attachment)
	if err != nil {
		return nil, err
	}

	return &attachment, nil
}

func (r *taskRepository) DeleteAttachment(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.attachments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no attachment found with id %s", id.Hex())
	}

	return nil
}

func (r *taskRepository) DeleteExpiredAttachments(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.attachments.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": now}})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
