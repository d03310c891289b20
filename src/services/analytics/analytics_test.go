package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"Backend-FormBuilder/src/models"
	"Backend-FormBuilder/test"
)

const budget = 50 * time.Millisecond

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregate(t *testing.T) {
	suite := test.NewTestSuiteResult("Analytics")
	defer suite.Log(t)

	suite.Run(t, "Empty", budget, func(t *testing.T) {
		got := Aggregate(nil)
		assert.Equal(t, models.FormAnalytics{
			TotalResponses:        0,
			AverageScore:          0,
			AverageCompletionTime: 0,
			ResponsesByDay:        map[string]int{},
			ScoreDistribution:     models.ScoreDistribution{},
		}, got)
		assert.NotNil(t, got.ResponsesByDay)
	})

	suite.Run(t, "AverageOfPercentages", budget, func(t *testing.T) {
		got := Aggregate([]models.Response{
			{Score: 9, MaxScore: 10, SubmittedAt: at("2025-03-11T10:00:00Z")},
			{Score: 5, MaxScore: 10, SubmittedAt: at("2025-03-11T12:00:00Z")},
		})
		assert.Equal(t, 2, got.TotalResponses)
		assert.InDelta(t, 70.0, got.AverageScore, 1e-9)
		// 90% sits on the excellent boundary.
		assert.Equal(t, models.ScoreDistribution{Excellent: 1, Good: 0, Average: 1, Poor: 0}, got.ScoreDistribution)
	})

	suite.Run(t, "GoodAndAverage", budget, func(t *testing.T) {
		got := Aggregate([]models.Response{
			{Score: 8, MaxScore: 10},
			{Score: 6, MaxScore: 10},
		})
		assert.InDelta(t, 70.0, got.AverageScore, 1e-9)
		assert.Equal(t, models.ScoreDistribution{Good: 1, Average: 1}, got.ScoreDistribution)
	})

	suite.Run(t, "VaryingMaxScore", budget, func(t *testing.T) {
		// 1/1 = 100%, 1/4 = 25%: mean of percentages is 62.5, not 2/5.
		got := Aggregate([]models.Response{
			{Score: 1, MaxScore: 1},
			{Score: 1, MaxScore: 4},
		})
		assert.InDelta(t, 62.5, got.AverageScore, 1e-9)
		assert.Equal(t, 1, got.ScoreDistribution.Excellent)
		assert.Equal(t, 1, got.ScoreDistribution.Poor)
	})

	suite.Run(t, "ZeroMaxScoreCountsAsZeroPercent", budget, func(t *testing.T) {
		got := Aggregate([]models.Response{
			{Score: 0, MaxScore: 0, CompletionTime: 30},
			{Score: 2, MaxScore: 2, CompletionTime: 90},
		})
		assert.InDelta(t, 50.0, got.AverageScore, 1e-9)
		assert.InDelta(t, 60.0, got.AverageCompletionTime, 1e-9)
		assert.Equal(t, 1, got.ScoreDistribution.Poor)
		assert.Equal(t, 1, got.ScoreDistribution.Excellent)
	})

	suite.Run(t, "ResponsesByUTCDay", budget, func(t *testing.T) {
		bangkok := time.FixedZone("ICT", 7*3600)
		got := Aggregate([]models.Response{
			{SubmittedAt: at("2025-03-11T23:30:00Z")},
			// 2025-03-12 05:00 local is still 2025-03-11 in UTC.
			{SubmittedAt: time.Date(2025, 3, 12, 5, 0, 0, 0, bangkok)},
			{SubmittedAt: at("2025-03-12T00:00:00Z")},
		})
		assert.Equal(t, map[string]int{"2025-03-11": 2, "2025-03-12": 1}, got.ResponsesByDay)
	})

	suite.Run(t, "RemovedResponseIsGone", budget, func(t *testing.T) {
		all := []models.Response{
			{Score: 10, MaxScore: 10, SubmittedAt: at("2025-01-01T09:00:00Z")},
			{Score: 0, MaxScore: 10, SubmittedAt: at("2025-01-02T09:00:00Z")},
		}
		before := Aggregate(all)
		after := Aggregate(all[:1])

		assert.Equal(t, 2, before.TotalResponses)
		assert.Equal(t, 1, after.TotalResponses)
		assert.InDelta(t, 100.0, after.AverageScore, 1e-9)
		assert.Equal(t, map[string]int{"2025-01-01": 1}, after.ResponsesByDay)
		assert.Equal(t, models.ScoreDistribution{Excellent: 1}, after.ScoreDistribution)
	})
}

func TestBand(t *testing.T) {
	cases := []struct {
		pct  float64
		want models.ScoreBand
	}{
		{100, models.BandExcellent},
		{90, models.BandExcellent},
		{89.999, models.BandGood},
		{70, models.BandGood},
		{69.9, models.BandAverage},
		{50, models.BandAverage},
		{49.99, models.BandPoor},
		{0, models.BandPoor},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, Band(c.pct), "Band(%v)", c.pct)
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 0.0, Percentage(0, -1))
	assert.InDelta(t, 66.666, Percentage(2, 3), 1e-3)
	assert.Equal(t, 100.0, Percentage(4, 4))
}
