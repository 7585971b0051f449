package models

// TrendPoint is one day in a mood trend. Avg is nil when the day has no
// samples, which is distinct from an average of zero.
type TrendPoint struct {
	Date string   `json:"date"`
	Avg  *float64 `json:"avg"`
}

// AssessmentSummary is the most recent result for one questionnaire type.
type AssessmentSummary struct {
	Score    *float64 `json:"score"`
	Severity string   `json:"severity"`
}

type LatestAssessments struct {
	PHQ9 *AssessmentSummary `json:"phq9"`
	GAD7 *AssessmentSummary `json:"gad7"`
}

type AppointmentInsights struct {
	MoodTrend   []TrendPoint      `json:"moodTrend"`
	Assessments LatestAssessments `json:"assessments"`
}
