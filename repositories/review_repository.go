package repository

import (
	"context"
	"fmt"

	"workpulse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.PerformanceReview) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.PerformanceReview, error)
	GetByEmployee(ctx context.Context, employeeID primitive.ObjectID, limit int64) ([]models.PerformanceReview, error)
	Update(ctx context.Context, id primitive.ObjectID, review *models.PerformanceReview) error
	// Skill assessment methods
	CreateAssessment(ctx context.Context, assessment *models.SkillAssessment) error
	GetAssessmentByID(ctx context.Context, id primitive.ObjectID) (*models.SkillAssessment, error)
	GetAssessmentsByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.SkillAssessment, error)
	UpdateAssessment(ctx context.Context, id primitive.ObjectID, assessment *models.SkillAssessment) error
	// Feedback methods
	CreateFeedback(ctx context.Context, feedback *models.Feedback) error
	GetFeedbackByID(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error)
	GetFeedbackForUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Feedback, error)
	UpdateFeedback(ctx context.Context, id primitive.ObjectID, feedback *models.Feedback) error
}

type reviewRepository struct {
	reviews     *mongo.Collection
	assessments *mongo.Collection
	feedback    *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{
		reviews:     db.Collection("performance_reviews"),
		assessments: db.Collection("skill_assessments"),
		feedback:    db.Collection("feedback"),
	}
}

func newestFirst(limit int64) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "metadata.created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}

func (r *reviewRepository) Create(ctx context.Context, review *models.PerformanceReview) error {
	review.ID = primitive.NewObjectID()

	_, err := r.reviews.InsertOne(ctx, review)
	return err
}

func (r *reviewRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.PerformanceReview, error) {
	var review models.PerformanceReview
	err := r.reviews.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *reviewRepository) GetByEmployee(ctx context.Context, employeeID primitive.ObjectID, limit int64) ([]models.PerformanceReview, error) {
	cursor, err := r.reviews.Find(ctx, bson.M{"employee_id": employeeID}, newestFirst(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.PerformanceReview
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, id primitive.ObjectID, review *models.PerformanceReview) error {
	result, err := r.reviews.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": review})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no performance review found with id %s", id.Hex())
	}

	return nil
}

func (r *reviewRepository) CreateAssessment(ctx context.Context, assessment *models.SkillAssessment) error {
	assessment.ID = primitive.NewObjectID()

	_, err := r.assessments.InsertOne(ctx, assessment)
	return err
}

func (r *reviewRepository) GetAssessmentByID(ctx context.Context, id primitive.ObjectID) (*models.SkillAssessment, error) {
	var assessment models.SkillAssessment
	err := r.assessments.FindOne(ctx, bson.M{"_id": id}).Decode(&assessment)
	if err != nil {
		return nil, err
	}

	return &assessment, nil
}

func (r *reviewRepository) GetAssessmentsByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.SkillAssessment, error) {
	cursor, err := r.assessments.Find(ctx, bson.M{"user_id": userID}, newestFirst(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []models.SkillAssessment
	if err = cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}

	return assessments, nil
}

func (r *reviewRepository) UpdateAssessment(ctx context.Context, id primitive.ObjectID, assessment *models.SkillAssessment) error {
	result, err := r.assessments.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": assessment})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no skill assessment found with id %s", id.Hex())
	}

	return nil
}

func (r *reviewRepository) CreateFeedback(ctx context.Context, feedback *models.Feedback) error {
	feedback.ID = primitive.NewObjectID()

	_, err := r.feedback.InsertOne(ctx, feedback)
	return err
}

func (r *reviewRepository) GetFeedbackByID(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error) {
	var fb models.Feedback
	err := r.feedback.FindOne(ctx, bson.M{"_id": id}).Decode(&fb)
	if err != nil {
		return nil, err
	}

	return &fb, nil
}

func (r *reviewRepository) GetFeedbackForUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Feedback, error) {
	cursor, err := r.feedback.Find(ctx, bson.M{"given_to": userID}, newestFirst(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Feedback
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *reviewRepository) UpdateFeedback(ctx context.Context, id primitive.ObjectID, feedback *models.Feedback) error {
	result, err := r.feedback.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": feedback})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no feedback found with id %s", id.Hex())
	}

	return nil
}
