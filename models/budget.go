package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionType string

const (
	TransactionExpense TransactionType = "expense"
	TransactionIncome  TransactionType = "income"
)

type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "pending"
	TransactionApproved TransactionStatus = "approved"
	TransactionRejected TransactionStatus = "rejected"
)

// BudgetCategory is a named bucket of a project budget with its own
// allocated/spent tracking.
type BudgetCategory struct {
	Name            string  `json:"name" bson:"name" validate:"required,max=100"`
	AllocatedAmount float64 `json:"allocated_amount" bson:"allocated_amount" validate:"min=0"`
	SpentAmount     float64 `json:"spent_amount" bson:"spent_amount"`
}

func (c *BudgetCategory) Utilization() float64 {
	if c.AllocatedAmount == 0 {
		return 0
	}
	return c.SpentAmount / c.AllocatedAmount * 100
}

type Budget struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID `json:"organization_id" bson:"organization_id" validate:"required"`
	ProjectID      primitive.ObjectID `json:"project_id" bson:"project_id" validate:"required"`
	Currency       string             `json:"currency" bson:"currency" validate:"omitempty,len=3"`
	Categories     []BudgetCategory   `json:"categories" bson:"categories" validate:"dive"`
	Metadata       Metadata           `json:"metadata" bson:"metadata"`
}

func (b *Budget) TotalAllocated() float64 {
	total := 0.0
	for i := range b.Categories {
		total += b.Categories[i].AllocatedAmount
	}
	return total
}

func (b *Budget) TotalSpent() float64 {
	total := 0.0
	for i := range b.Categories {
		total += b.Categories[i].SpentAmount
	}
	return total
}

// Utilization is total spent over total allocated as a percentage, unclamped.
func (b *Budget) Utilization() float64 {
	allocated := b.TotalAllocated()
	if allocated == 0 {
		return 0
	}
	return b.TotalSpent() / allocated * 100
}

type BudgetTransaction struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID `json:"organization_id" bson:"organization_id" validate:"required"`
	ProjectID      primitive.ObjectID `json:"project_id" bson:"project_id" validate:"required"`
	Category       string             `json:"category" bson:"category" validate:"required,max=100"`
	Amount         float64            `json:"amount" bson:"amount" validate:"required,gt=0"`
	Type           TransactionType    `json:"type" bson:"type" validate:"required,oneof=expense income"`
	Status         TransactionStatus  `json:"status" bson:"status" validate:"required,oneof=pending approved rejected"`
	Description    string             `json:"description" bson:"description" validate:"max=1000"`
	Date           time.Time          `json:"date" bson:"date"`
	Metadata       Metadata           `json:"metadata" bson:"metadata"`
}

// LedgerDelta is the signed amount this transaction contributes to its
// category's spent total: expenses add, income subtracts.
func (t *BudgetTransaction) LedgerDelta() float64 {
	if t.Type == TransactionIncome {
		return -t.Amount
	}
	return t.Amount
}
