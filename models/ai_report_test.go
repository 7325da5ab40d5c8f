package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIReportApplyDefaults(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	r := &AIReport{UserID: oid()}
	r.ApplyDefaults(now)
	assert.Equal(t, now, r.GeneratedAt)
	require.NotNil(t, r.ExpiresAt)
	assert.Equal(t, now.Add(30*24*time.Hour), *r.ExpiresAt)

	// An explicit expiry is left alone.
	explicit := now.Add(time.Hour)
	r = &AIReport{UserID: oid(), GeneratedAt: now, ExpiresAt: &explicit}
	r.ApplyDefaults(now.Add(time.Minute))
	assert.Equal(t, explicit, *r.ExpiresAt)
	assert.Equal(t, now, r.GeneratedAt)
}

func TestAIReportIsExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, (&AIReport{ExpiresAt: &past}).IsExpired(now))
	assert.False(t, (&AIReport{ExpiresAt: &future}).IsExpired(now))
	assert.False(t, (&AIReport{}).IsExpired(now), "no expiry never expires")
}

func TestNotificationMarkReadOnce(t *testing.T) {
	first := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	n := &Notification{}
	n.MarkRead(first)
	assert.True(t, n.Read)
	require.NotNil(t, n.ReadAt)

	n.MarkRead(first.Add(time.Hour))
	assert.Equal(t, first, *n.ReadAt)
}
