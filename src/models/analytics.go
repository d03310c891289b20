package models

// ScoreBand is one of the four percentage ranges used in analytics.
type ScoreBand string

const (
	BandExcellent ScoreBand = "excellent" // >= 90
	BandGood      ScoreBand = "good"      // >= 70
	BandAverage   ScoreBand = "average"   // >= 50
	BandPoor      ScoreBand = "poor"      // < 50
)

// FormAnalytics is derived on demand from a form's responses and never stored.
type FormAnalytics struct {
	TotalResponses        int               `json:"totalResponses"`
	AverageScore          float64           `json:"averageScore"` // percent, 0-100
	AverageCompletionTime float64           `json:"averageCompletionTime"`
	ResponsesByDay        map[string]int    `json:"responsesByDay"`
	ScoreDistribution     ScoreDistribution `json:"scoreDistribution"`
}

type ScoreDistribution struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Average   int `json:"average"`
	Poor      int `json:"poor"`
}

// Add counts one response in band b.
func (d *ScoreDistribution) Add(b ScoreBand) {
	switch b {
	case BandExcellent:
		d.Excellent++
	case BandGood:
		d.Good++
	case BandAverage:
		d.Average++
	default:
		d.Poor++
	}
}
