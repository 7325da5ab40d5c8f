package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestProjectValidateDateOrder(t *testing.T) {
	p := &Project{StartDate: date(2024, 3, 10), EndDate: date(2024, 3, 1)}
	err := p.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "project_date_order", verr.Rule)

	p = &Project{StartDate: date(2024, 3, 1), EndDate: date(2024, 3, 10)}
	assert.NoError(t, p.Validate())

	// Equal dates are rejected too.
	p = &Project{StartDate: date(2024, 3, 1), EndDate: date(2024, 3, 1)}
	assert.Error(t, p.Validate())

	// Missing dates skip the check.
	assert.NoError(t, (&Project{StartDate: date(2024, 3, 1)}).Validate())
	assert.NoError(t, (&Project{}).Validate())
}

func TestProjectBudgetUtilization(t *testing.T) {
	p := &Project{Budget: 100, ActualCost: 150}
	assert.Equal(t, 150.0, p.BudgetUtilization(), "utilization is not clamped at 100")

	p = &Project{Budget: 200, ActualCost: 50}
	assert.Equal(t, 25.0, p.BudgetUtilization())

	p = &Project{Budget: 0, ActualCost: 50}
	assert.Equal(t, 0.0, p.BudgetUtilization(), "zero budget reports zero utilization")
}

func TestProjectDuration(t *testing.T) {
	p := &Project{StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 11)}
	d := p.Duration()
	require.NotNil(t, d)
	assert.Equal(t, 10, *d)

	// Partial days round up.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	p = &Project{StartDate: &start, EndDate: &end}
	d = p.Duration()
	require.NotNil(t, d)
	assert.Equal(t, 2, *d)

	assert.Nil(t, (&Project{StartDate: date(2024, 1, 1)}).Duration())
	assert.Nil(t, (&Project{}).Duration())
}

func TestProjectIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	p := &Project{Status: ProjectActive, EndDate: date(2024, 5, 1)}
	assert.True(t, p.IsOverdue(now))

	p = &Project{Status: ProjectCompleted, EndDate: date(2024, 5, 1)}
	assert.False(t, p.IsOverdue(now), "completed projects are never overdue")

	p = &Project{Status: ProjectCancelled, EndDate: date(2024, 5, 1)}
	assert.False(t, p.IsOverdue(now), "cancelled projects are never overdue")

	p = &Project{Status: ProjectActive, EndDate: date(2024, 7, 1)}
	assert.False(t, p.IsOverdue(now))

	p = &Project{Status: ProjectActive}
	assert.False(t, p.IsOverdue(now), "no end date means no overdue")
}
