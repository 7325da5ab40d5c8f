package services

import (
	"context"
	"fmt"
	"testing"

	"workpulse/models"
	repository "workpulse/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeBudgetRepo keeps budgets and transactions in memory and mirrors the
// atomic increment semantics of the mongo implementation.
type fakeBudgetRepo struct {
	budgets      map[primitive.ObjectID]*models.Budget
	transactions map[primitive.ObjectID]*models.BudgetTransaction
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{
		budgets:      make(map[primitive.ObjectID]*models.Budget),
		transactions: make(map[primitive.ObjectID]*models.BudgetTransaction),
	}
}

func (f *fakeBudgetRepo) CreateBudget(_ context.Context, b *models.Budget) error {
	b.ID = primitive.NewObjectID()
	f.budgets[b.ID] = b
	return nil
}

func (f *fakeBudgetRepo) GetBudgetByID(_ context.Context, id primitive.ObjectID) (*models.Budget, error) {
	b, ok := f.budgets[id]
	if !ok {
		return nil, fmt.Errorf("budget %s not found", id.Hex())
	}
	return b, nil
}

func (f *fakeBudgetRepo) GetBudgetByProject(_ context.Context, projectID primitive.ObjectID) (*models.Budget, error) {
	for _, b := range f.budgets {
		if b.ProjectID == projectID {
			return b, nil
		}
	}
	return nil, fmt.Errorf("no budget for project %s", projectID.Hex())
}

func (f *fakeBudgetRepo) UpdateBudget(_ context.Context, id primitive.ObjectID, b *models.Budget) error {
	f.budgets[id] = b
	return nil
}

func (f *fakeBudgetRepo) ApplyCategoryAdjustment(_ context.Context, projectID primitive.ObjectID, category string, delta float64) error {
	for _, b := range f.budgets {
		if b.ProjectID != projectID {
			continue
		}
		for i := range b.Categories {
			if b.Categories[i].Name == category {
				b.Categories[i].SpentAmount += delta
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %q", repository.ErrCategoryNotFound, category)
}

func (f *fakeBudgetRepo) CreateTransaction(_ context.Context, tx *models.BudgetTransaction) error {
	tx.ID = primitive.NewObjectID()
	f.transactions[tx.ID] = tx
	return nil
}

func (f *fakeBudgetRepo) GetTransactionByID(_ context.Context, id primitive.ObjectID) (*models.BudgetTransaction, error) {
	tx, ok := f.transactions[id]
	if !ok {
		return nil, fmt.Errorf("transaction %s not found", id.Hex())
	}
	return tx, nil
}

func (f *fakeBudgetRepo) GetTransactionsByProject(_ context.Context, projectID primitive.ObjectID, _ int64) ([]models.BudgetTransaction, error) {
	var out []models.BudgetTransaction
	for _, tx := range f.transactions {
		if tx.ProjectID == projectID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (f *fakeBudgetRepo) UpdateTransaction(_ context.Context, id primitive.ObjectID, tx *models.BudgetTransaction) error {
	f.transactions[id] = tx
	return nil
}

func (f *fakeBudgetRepo) DeleteTransaction(_ context.Context, id primitive.ObjectID) error {
	delete(f.transactions, id)
	return nil
}

func seedBudget(t *testing.T, repo *fakeBudgetRepo) (primitive.ObjectID, *models.Budget) {
	t.Helper()
	projectID := primitive.NewObjectID()
	budget := &models.Budget{
		ProjectID: projectID,
		Categories: []models.BudgetCategory{
			{Name: "Development", AllocatedAmount: 1000, SpentAmount: 200},
			{Name: "Marketing", AllocatedAmount: 500, SpentAmount: 0},
		},
	}
	require.NoError(t, repo.CreateBudget(context.Background(), budget))
	return projectID, budget
}

func newBudgetService(repo repository.BudgetRepository) BudgetService {
	return NewBudgetService(repo, zap.NewNop().Sugar())
}

func TestPostApprovedExpenseMovesLedger(t *testing.T) {
	repo := newFakeBudgetRepo()
	projectID, budget := seedBudget(t, repo)
	svc := newBudgetService(repo)

	_, err := svc.PostTransaction(context.Background(), &models.BudgetTransaction{
		ProjectID: projectID,
		Category:  "Development",
		Amount:    150,
		Type:      models.TransactionExpense,
		Status:    models.TransactionApproved,
	}, "finance")
	require.NoError(t, err)
	assert.Equal(t, 350.0, budget.Categories[0].SpentAmount)

	// Income backs spend out of the same category.
	_, err = svc.PostTransaction(context.Background(), &models.BudgetTransaction{
		ProjectID: projectID,
		Category:  "Development",
		Amount:    50,
		Type:      models.TransactionIncome,
		Status:    models.TransactionApproved,
	}, "finance")
	require.NoError(t, err)
	assert.Equal(t, 300.0, budget.Categories[0].SpentAmount)
	assert.Equal(t, 0.0, budget.Categories[1].SpentAmount, "other categories untouched")
}

func TestPostPendingTransactionLeavesLedgerAlone(t *testing.T) {
	repo := newFakeBudgetRepo()
	projectID, budget := seedBudget(t, repo)
	svc := newBudgetService(repo)

	_, err := svc.PostTransaction(context.Background(), &models.BudgetTransaction{
		ProjectID: projectID,
		Category:  "Development",
		Amount:    150,
		Type:      models.TransactionExpense,
	}, "finance")
	require.NoError(t, err)
	assert.Equal(t, 200.0, budget.Categories[0].SpentAmount)
}

func TestPostTransactionUnknownCategoryFails(t *testing.T) {
	repo := newFakeBudgetRepo()
	projectID, budget := seedBudget(t, repo)
	svc := newBudgetService(repo)

	_, err := svc.PostTransaction(context.Background(), &models.BudgetTransaction{
		ProjectID: projectID,
		Category:  "Travel",
		Amount:    150,
		Type:      models.TransactionExpense,
		Status:    models.TransactionApproved,
	}, "finance")
	require.ErrorIs(t, err, repository.ErrCategoryNotFound)
	assert.Equal(t, 200.0, budget.Categories[0].SpentAmount)
	assert.Empty(t, repo.transactions, "a rejected posting leaves no transaction behind")
}

func TestApproveTransactionIdempotent(t *testing.T) {
	repo := newFakeBudgetRepo()
	projectID, budget := seedBudget(t, repo)
	svc := newBudgetService(repo)

	tx, err := svc.PostTransaction(context.Background(), &models.BudgetTransaction{
		ProjectID: projectID,
		Category:  "Development",
		Amount:    100,
		Type:      models.TransactionExpense,
	}, "finance")
	require.NoError(t, err)

	_, err = svc.ApproveTransaction(context.Background(), tx.ID, "manager")
	require.NoError(t, err)
	assert.Equal(t, 300.0, budget.Categories[0].SpentAmount)

	// A second approval must not double-post.
	_, err = svc.ApproveTransaction(context.Background(), tx.ID, "manager")
	require.NoError(t, err)
	assert.Equal(t, 300.0, budget.Categories[0].SpentAmount)
}

func TestRejectApprovedTransactionReverses(t *testing.T) {
	repo := newFakeBudgetRepo()
	projectID, budget := seedBudget(t, repo)
	svc := newBudgetService(repo)

	tx, err := svc.PostTransaction(context.Background(), &models.BudgetTransaction{
		ProjectID: projectID,
		Category:  "Development",
		Amount:    100,
		Type:      models.TransactionExpense,
		Status:    models.TransactionApproved,
	}, "finance")
	require.NoError(t, err)
	assert.Equal(t, 300.0, budget.Categories[0].SpentAmount)

	_, err = svc.RejectTransaction(context.Background(), tx.ID, "manager")
	require.NoError(t, err)
	assert.Equal(t, 200.0, budget.Categories[0].SpentAmount)
}

func TestDeleteApprovedTransactionReverses(t *testing.T) {
	repo := newFakeBudgetRepo()
	projectID, budget := seedBudget(t, repo)
	svc := newBudgetService(repo)

	tx, err := svc.PostTransaction(context.Background(), &models.BudgetTransaction{
		ProjectID: projectID,
		Category:  "Development",
		Amount:    80,
		Type:      models.TransactionExpense,
		Status:    models.TransactionApproved,
	}, "finance")
	require.NoError(t, err)
	assert.Equal(t, 280.0, budget.Categories[0].SpentAmount)

	require.NoError(t, svc.DeleteTransaction(context.Background(), tx.ID, "manager"))
	assert.Equal(t, 200.0, budget.Categories[0].SpentAmount)
	assert.Empty(t, repo.transactions)
}
