package services

import (
	"context"
	"fmt"
	"time"

	"workpulse/models"
	repository "workpulse/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type BudgetService interface {
	CreateBudget(ctx context.Context, budget *models.Budget, actor string) (*models.Budget, error)
	GetBudgetByProject(ctx context.Context, projectID primitive.ObjectID) (*models.Budget, error)
	// PostTransaction records a transaction. Approved transactions move the
	// matching category's spent amount atomically; an unknown category is an
	// error, not a silent skip.
	PostTransaction(ctx context.Context, tx *models.BudgetTransaction, actor string) (*models.BudgetTransaction, error)
	ApproveTransaction(ctx context.Context, id primitive.ObjectID, actor string) (*models.BudgetTransaction, error)
	RejectTransaction(ctx context.Context, id primitive.ObjectID, actor string) (*models.BudgetTransaction, error)
	DeleteTransaction(ctx context.Context, id primitive.ObjectID, actor string) error
	GetTransactionsByProject(ctx context.Context, projectID primitive.ObjectID, limit int64) ([]models.BudgetTransaction, error)
}

type budgetService struct {
	repo   repository.BudgetRepository
	logger *zap.SugaredLogger
}

func NewBudgetService(repo repository.BudgetRepository, logger *zap.SugaredLogger) BudgetService {
	return &budgetService{repo: repo, logger: logger}
}

func (s *budgetService) CreateBudget(ctx context.Context, budget *models.Budget, actor string) (*models.Budget, error) {
	budget.Metadata.Touch(actor, time.Now())

	if err := s.repo.CreateBudget(ctx, budget); err != nil {
		return nil, err
	}

	return budget, nil
}

func (s *budgetService) GetBudgetByProject(ctx context.Context, projectID primitive.ObjectID) (*models.Budget, error) {
	return s.repo.GetBudgetByProject(ctx, projectID)
}

func (s *budgetService) PostTransaction(ctx context.Context, tx *models.BudgetTransaction, actor string) (*models.BudgetTransaction, error) {
	if tx.Status == "" {
		tx.Status = models.TransactionPending
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}

	// The category must exist before anything is written, so a bad posting
	// leaves no trace.
	budget, err := s.repo.GetBudgetByProject(ctx, tx.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("budget lookup for project %s: %w", tx.ProjectID.Hex(), err)
	}
	if !hasCategory(budget, tx.Category) {
		return nil, fmt.Errorf("%w: %q in project %s", repository.ErrCategoryNotFound, tx.Category, tx.ProjectID.Hex())
	}

	tx.Metadata.Touch(actor, time.Now())

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if tx.Status == models.TransactionApproved {
		if err := s.repo.ApplyCategoryAdjustment(ctx, tx.ProjectID, tx.Category, tx.LedgerDelta()); err != nil {
			// The category vanished between the check and the increment.
			// Remove the orphaned transaction so the ledger stays consistent.
			if delErr := s.repo.DeleteTransaction(ctx, tx.ID); delErr != nil {
				s.logger.Errorw("failed to remove transaction after ledger error",
					"transaction_id", tx.ID.Hex(), "error", delErr)
			}
			return nil, err
		}
		s.logger.Infow("ledger adjusted",
			"project_id", tx.ProjectID.Hex(), "category", tx.Category, "delta", tx.LedgerDelta())
	}

	return tx, nil
}

func (s *budgetService) ApproveTransaction(ctx context.Context, id primitive.ObjectID, actor string) (*models.BudgetTransaction, error) {
	tx, err := s.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Approving twice must not double-post the adjustment.
	if tx.Status == models.TransactionApproved {
		return tx, nil
	}

	tx.Status = models.TransactionApproved
	tx.Metadata.Touch(actor, time.Now())

	if err := s.repo.UpdateTransaction(ctx, id, tx); err != nil {
		return nil, err
	}

	if err := s.repo.ApplyCategoryAdjustment(ctx, tx.ProjectID, tx.Category, tx.LedgerDelta()); err != nil {
		return nil, err
	}

	s.logger.Infow("transaction approved", "transaction_id", id.Hex(), "actor", actor)
	return tx, nil
}

func (s *budgetService) RejectTransaction(ctx context.Context, id primitive.ObjectID, actor string) (*models.BudgetTransaction, error) {
	tx, err := s.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasApproved := tx.Status == models.TransactionApproved
	tx.Status = models.TransactionRejected
	tx.Metadata.Touch(actor, time.Now())

	if err := s.repo.UpdateTransaction(ctx, id, tx); err != nil {
		return nil, err
	}

	// Rejecting a previously approved transaction backs its adjustment out.
	if wasApproved {
		if err := s.repo.ApplyCategoryAdjustment(ctx, tx.ProjectID, tx.Category, -tx.LedgerDelta()); err != nil {
			return nil, err
		}
	}

	return tx, nil
}

func (s *budgetService) DeleteTransaction(ctx context.Context, id primitive.ObjectID, actor string) error {
	tx, err := s.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return err
	}

	// Deleting an approved transaction reverses its ledger effect first.
	if tx.Status == models.TransactionApproved {
		if err := s.repo.ApplyCategoryAdjustment(ctx, tx.ProjectID, tx.Category, -tx.LedgerDelta()); err != nil {
			return err
		}
	}

	if err := s.repo.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("transaction deleted", "transaction_id", id.Hex(), "actor", actor)
	return nil
}

func (s *budgetService) GetTransactionsByProject(ctx context.Context, projectID primitive.ObjectID, limit int64) ([]models.BudgetTransaction, error) {
	return s.repo.GetTransactionsByProject(ctx, projectID, limit)
}

func hasCategory(budget *models.Budget, name string) bool {
	for i := range budget.Categories {
		if budget.Categories[i].Name == name {
			return true
		}
	}
	return false
}
