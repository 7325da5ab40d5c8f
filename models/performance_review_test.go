package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewScorePercentage(t *testing.T) {
	r := &PerformanceReview{Score: 45, MaxScore: 50}
	assert.InDelta(t, 90.0, r.ScorePercentage(), 1e-9)

	r = &PerformanceReview{Score: 45, MaxScore: 0}
	assert.Equal(t, 0.0, r.ScorePercentage(), "zero max score reports zero")
}

func TestReviewWeightedScore(t *testing.T) {
	r := &PerformanceReview{
		Score: 70,
		Categories: []ReviewCategory{
			{Name: "delivery", Score: 80, Weight: 3},
			{Name: "collaboration", Score: 60, Weight: 1},
		},
	}
	assert.InDelta(t, 75.0, r.WeightedScore(), 1e-9)

	// No categories falls back to the raw score.
	r = &PerformanceReview{Score: 70}
	assert.Equal(t, 70.0, r.WeightedScore())

	// Zero total weight falls back to the raw score.
	r = &PerformanceReview{
		Score:      70,
		Categories: []ReviewCategory{{Name: "delivery", Score: 80, Weight: 0}},
	}
	assert.Equal(t, 70.0, r.WeightedScore())
}

func TestReviewRatingThresholds(t *testing.T) {
	cases := []struct {
		score  float64
		rating OverallRating
	}{
		{90, RatingExcellent},
		{95, RatingExcellent},
		{80, RatingGood},
		{89.99, RatingGood},
		{70, RatingSatisfactory},
		{60, RatingNeedsImprovement},
		{59.99, RatingPoor},
		{0, RatingPoor},
	}
	for _, tc := range cases {
		r := &PerformanceReview{Score: tc.score, MaxScore: 100}
		r.RecomputeRating()
		assert.Equalf(t, tc.rating, r.OverallRating, "score %v", tc.score)
	}
}

func TestReviewRatingRecomputedEverySave(t *testing.T) {
	r := &PerformanceReview{Score: 95, MaxScore: 100, OverallRating: RatingPoor}
	r.RecomputeRating()
	assert.Equal(t, RatingExcellent, r.OverallRating, "stale rating is overwritten")
}

func TestReviewSubmitApproveStampOnce(t *testing.T) {
	first := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	r := &PerformanceReview{Status: ReviewDraft}
	r.MarkSubmitted(first)
	assert.Equal(t, ReviewSubmitted, r.Status)
	require.NotNil(t, r.SubmittedAt)
	assert.Equal(t, first, *r.SubmittedAt)

	r.MarkSubmitted(second)
	assert.Equal(t, first, *r.SubmittedAt)

	r.MarkApproved(first)
	require.NotNil(t, r.ApprovedAt)
	r.MarkApproved(second)
	assert.Equal(t, first, *r.ApprovedAt)
}
