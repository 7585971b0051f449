package assessment

import (
	"fmt"

	"github.com/lekithkishore/MINDLY/internal/models"
)

// Scorer turns questionnaire responses into a severity classification. The
// default implementation applies the published PHQ-9 and GAD-7 cutoffs.
type Scorer interface {
	ScorePHQ9(responses []int) (*models.AssessmentResult, error)
	ScoreGAD7(responses []int) (*models.AssessmentResult, error)
}

const (
	PHQ9Questions = 9
	GAD7Questions = 7
)

type StandardScorer struct{}

func NewStandardScorer() *StandardScorer {
	return &StandardScorer{}
}

func (s *StandardScorer) ScorePHQ9(responses []int) (*models.AssessmentResult, error) {
	score, err := sumResponses(responses, PHQ9Questions)
	if err != nil {
		return nil, err
	}

	var severity string
	switch {
	case score <= 4:
		severity = "minimal"
	case score <= 9:
		severity = "mild"
	case score <= 14:
		severity = "moderate"
	case score <= 19:
		severity = "moderately severe"
	default:
		severity = "severe"
	}

	return &models.AssessmentResult{
		Score:           score,
		Severity:        severity,
		Recommendations: recommendationsFor(severity),
	}, nil
}

func (s *StandardScorer) ScoreGAD7(responses []int) (*models.AssessmentResult, error) {
	score, err := sumResponses(responses, GAD7Questions)
	if err != nil {
		return nil, err
	}

	var severity string
	switch {
	case score <= 4:
		severity = "minimal"
	case score <= 9:
		severity = "mild"
	case score <= 14:
		severity = "moderate"
	default:
		severity = "severe"
	}

	return &models.AssessmentResult{
		Score:           score,
		Severity:        severity,
		Recommendations: recommendationsFor(severity),
	}, nil
}

func sumResponses(responses []int, want int) (int, error) {
	if len(responses) != want {
		return 0, fmt.Errorf("expected %d responses, got %d", want, len(responses))
	}
	total := 0
	for i, r := range responses {
		if r < 0 || r > 3 {
			return 0, fmt.Errorf("response %d out of range: %d", i, r)
		}
		total += r
	}
	return total, nil
}

func recommendationsFor(severity string) []string {
	switch severity {
	case "minimal":
		return []string{
			"Keep up your current self-care routines.",
			"Check in with the mood tracker regularly.",
		}
	case "mild":
		return []string{
			"Try guided breathing or journaling exercises in the app.",
			"Consider talking through recent stressors with someone you trust.",
		}
	case "moderate":
		return []string{
			"Booking a session with a counsellor is recommended.",
			"Keep a daily mood log to share with your counsellor.",
		}
	case "moderately severe":
		return []string{
			"Please book a counselling session soon.",
			"Reach out to your support network; you don't need to manage this alone.",
		}
	default:
		return []string{
			"Please contact a counsellor or mental health professional promptly.",
			"If you are in crisis, use the escalation option or a crisis line immediately.",
		}
	}
}
