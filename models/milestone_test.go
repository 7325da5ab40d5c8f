package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMilestoneMarkCompleted(t *testing.T) {
	first := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	m := &Milestone{Progress: 40}
	m.MarkCompleted(first)
	assert.True(t, m.Completed)
	assert.Equal(t, 100.0, m.Progress)
	require.NotNil(t, m.CompletedAt)
	assert.Equal(t, first, *m.CompletedAt)

	// Un-completing does not clear the stamp, and re-completing keeps it.
	m.Completed = false
	m.MarkCompleted(second)
	assert.Equal(t, first, *m.CompletedAt)
}
