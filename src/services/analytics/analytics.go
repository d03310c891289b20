// Package analytics summarises the responses of a form. Nothing is cached:
// callers pass the current response set and get a fresh summary.
package analytics

import (
	"Backend-FormBuilder/src/models"
)

// DayLayout is the key format of FormAnalytics.ResponsesByDay. Days are UTC
// calendar dates.
const DayLayout = "2006-01-02"

// Aggregate computes the summary statistics of responses.
func Aggregate(responses []models.Response) models.FormAnalytics {
	out := models.FormAnalytics{
		TotalResponses: len(responses),
		ResponsesByDay: map[string]int{},
	}
	if len(responses) == 0 {
		return out
	}

	var pctSum, timeSum float64
	for _, r := range responses {
		pct := Percentage(r.Score, r.MaxScore)
		pctSum += pct
		timeSum += r.CompletionTime

		out.ResponsesByDay[r.SubmittedAt.UTC().Format(DayLayout)]++
		out.ScoreDistribution.Add(Band(pct))
	}

	n := float64(len(responses))
	out.AverageScore = pctSum / n
	out.AverageCompletionTime = timeSum / n
	return out
}

// Percentage returns score as a percentage of maxScore, or 0 when maxScore
// is not positive.
func Percentage(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * 100
}

// Band classifies a percentage.
func Band(pct float64) models.ScoreBand {
	switch {
	case pct >= 90:
		return models.BandExcellent
	case pct >= 70:
		return models.BandGood
	case pct >= 50:
		return models.BandAverage
	default:
		return models.BandPoor
	}
}
