package repository

import (
	"context"
	"errors"
	"fmt"

	"workpulse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrCategoryNotFound reports a ledger adjustment against a category name the
// budget does not have. Callers surface this rather than skipping silently.
var ErrCategoryNotFound = errors.New("budget category not found")

type BudgetRepository interface {
	CreateBudget(ctx context.Context, budget *models.Budget) error
	GetBudgetByID(ctx context.Context, id primitive.ObjectID) (*models.Budget, error)
	GetBudgetByProject(ctx context.Context, projectID primitive.ObjectID) (*models.Budget, error)
	UpdateBudget(ctx context.Context, id primitive.ObjectID, budget *models.Budget) error
	// ApplyCategoryAdjustment atomically moves a category's spent amount by
	// delta via a positional $inc, so concurrent postings cannot lose updates.
	ApplyCategoryAdjustment(ctx context.Context, projectID primitive.ObjectID, category string, delta float64) error
	// Transaction methods
	CreateTransaction(ctx context.Context, tx *models.BudgetTransaction) error
	GetTransactionByID(ctx context.Context, id primitive.ObjectID) (*models.BudgetTransaction, error)
	GetTransactionsByProject(ctx context.Context, projectID primitive.ObjectID, limit int64) ([]models.BudgetTransaction, error)
	UpdateTransaction(ctx context.Context, id primitive.ObjectID, tx *models.BudgetTransaction) error
	DeleteTransaction(ctx context.Context, id primitive.ObjectID) error
}

type budgetRepository struct {
	budgets      *mongo.Collection
	transactions *mongo.Collection
}

func NewBudgetRepository(db *mongo.Database) BudgetRepository {
	return &budgetRepository{
		budgets:      db.Collection("budgets"),
		transactions: db.Collection("budget_transactions"),
	}
}

func (r *budgetRepository) CreateBudget(ctx context.Context, budget *models.Budget) error {
	budget.ID = primitive.NewObjectID()

	_, err := r.budgets.InsertOne(ctx, budget)
	return err
}

func (r *budgetRepository) GetBudgetByID(ctx context.Context, id primitive.ObjectID) (*models.Budget, error) {
	var budget models.Budget
	err := r.budgets.FindOne(ctx, bson.M{"_id": id}).Decode(&budget)
	if err != nil {
		return nil, err
	}

	return &budget, nil
}

func (r *budgetRepository) GetBudgetByProject(ctx context.Context, projectID primitive.ObjectID) (*models.Budget, error) {
	var budget models.Budget
	err := r.budgets.FindOne(ctx, bson.M{"project_id": projectID}).Decode(&budget)
	if err != nil {
		return nil, err
	}

	return &budget, nil
}

func (r *budgetRepository) UpdateBudget(ctx context.Context, id primitive.ObjectID, budget *models.Budget) error {
	result, err := r.budgets.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": budget})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no budget found with id %s", id.Hex())
	}

	return nil
}

func (r *budgetRepository) ApplyCategoryAdjustment(ctx context.Context, projectID primitive.ObjectID, category string, delta float64) error {
	filter := bson.M{"project_id": projectID, "categories.name": category}
	update := bson.M{"$inc": bson.M{"categories.$.spent_amount": delta}}

	result, err := r.budgets.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %q in project %s", ErrCategoryNotFound, category, projectID.Hex())
	}

	return nil
}

func (r *budgetRepository) CreateTransaction(ctx context.Context, tx *models.BudgetTransaction) error {
	tx.ID = primitive.NewObjectID()

	_, err := r.transactions.InsertOne(ctx, tx)
	return err
}

func (r *budgetRepository) GetTransactionByID(ctx context.Context, id primitive.ObjectID) (*models.BudgetTransaction, error) {
	var tx models.BudgetTransaction
	err := r.transactions.FindOne(ctx, bson.M{"_id": id}).Decode(&tx)
	if err != nil {
		return nil, err
	}

	return &tx, nil
}

func (r *budgetRepository) GetTransactionsByProject(ctx context.Context, projectID primitive.ObjectID, limit int64) ([]models.BudgetTransaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.transactions.Find(ctx, bson.M{"project_id": projectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var txs []models.BudgetTransaction
	if err = cursor.All(ctx, &txs); err != nil {
		return nil, err
	}

	return txs, nil
}

func (r *budgetRepository) UpdateTransaction(ctx context.Context, id primitive.ObjectID, tx *models.BudgetTransaction) error {
	result, err := r.transactions.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": tx})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no transaction found with id %s", id.Hex())
	}

	return nil
}

func (r *budgetRepository) DeleteTransaction(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.transactions.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no transaction found with id %s", id.Hex())
	}

	return nil
}
