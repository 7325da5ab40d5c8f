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

type OKRRepository interface {
	Create(ctx context.Context, okr *models.OKR) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.OKR, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.OKR, error)
	GetByTeam(ctx context.Context, teamID primitive.ObjectID, limit int64) ([]models.OKR, error)
	GetByOrganization(ctx context.Context, orgID primitive.ObjectID, limit int64) ([]models.OKR, error)
	Update(ctx context.Context, id primitive.ObjectID, okr *models.OKR) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type okrRepository struct {
	collection *mongo.Collection
}

func NewOKRRepository(db *mongo.Database) OKRRepository {
	return &okrRepository{
		collection: db.Collection("okrs"),
	}
}

func (r *okrRepository) Create(ctx context.Context, okr *models.OKR) error {
	okr.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, okr)
	return err
}

func (r *okrRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.OKR, error) {
	var okr models.OKR
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&okr)
	if err != nil {
		return nil, err
	}

	return &okr, nil
}

func (r *okrRepository) find(ctx context.Context, filter bson.M, limit int64) ([]models.OKR, error) {
	opts := options.Find().SetSort(bson.D{{Key: "metadata.created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var okrs []models.OKR
	if err = cursor.All(ctx, &okrs); err != nil {
		return nil, err
	}

	return okrs, nil
}

func (r *okrRepository) GetByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.OKR, error) {
	return r.find(ctx, bson.M{"user_id": userID}, limit)
}

func (r *okrRepository) GetByTeam(ctx context.Context, teamID primitive.ObjectID, limit int64) ([]models.OKR, error) {
	return r.find(ctx, bson.M{"team_id": teamID}, limit)
}

func (r *okrRepository) GetByOrganization(ctx context.Context, orgID primitive.ObjectID, limit int64) ([]models.OKR, error) {
	return r.find(ctx, bson.M{"organization_id": orgID}, limit)
}

func (r *okrRepository) Update(ctx context.Context, id primitive.ObjectID, okr *models.OKR) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": okr})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no OKR found with id %s", id.Hex())
	}

	return nil
}

func (r *okrRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no OKR found with id %s", id.Hex())
	}

	return nil
}
