package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lekithkishore/MINDLY/internal/models"
)

const (
	minInsightDays = 7
	maxInsightDays = 30
)

var legacyUserIDFields = []string{"user_id", "userId"}

type appointmentReader interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
}

type moodScoreReader interface {
	ListByUser(ctx context.Context, userID string) ([]models.MoodScore, error)
}

type moodSampleReader interface {
	ListByUserField(ctx context.Context, field, userID string) ([]models.MoodSample, error)
}

type conversationReader interface {
	ListByUser(ctx context.Context, userID string) ([]models.ChatConversation, error)
}

type assessmentReader interface {
	ListByUserField(ctx context.Context, field, userID string) ([]models.AssessmentRecord, error)
}

// InsightsService builds the read-only mood trend and latest-assessment view
// a counsellor sees for an appointment's student.
type InsightsService struct {
	appointments appointmentReader
	moodScores   moodScoreReader
	moodSamples  moodSampleReader
	chats        conversationReader
	assessments  assessmentReader
	log          zerolog.Logger
}

func NewInsightsService(
	appointments appointmentReader,
	moodScores moodScoreReader,
	moodSamples moodSampleReader,
	chats conversationReader,
	assessments assessmentReader,
	log zerolog.Logger,
) *InsightsService {
	return &InsightsService{
		appointments: appointments,
		moodScores:   moodScores,
		moodSamples:  moodSamples,
		chats:        chats,
		assessments:  assessments,
		log:          log,
	}
}

// Get returns the trailing daily mood averages and the newest PHQ-9/GAD-7
// results for the student on the appointment. days is clamped to [7,30].
// When fallback is set and no primary sample lands in the window, the legacy
// moods and chat-sentiment sources are merged into the same daily buckets;
// if any primary sample is in-window the legacy sources are never consulted.
func (s *InsightsService) Get(ctx context.Context, appointmentID, counsellorID string, days int, fallback bool) (*models.AppointmentInsights, error) {
	if counsellorID == "" {
		return nil, ErrInvalidInput
	}

	appt, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if appt.CounsellorID != counsellorID {
		return nil, ErrForbidden
	}
	studentID := appt.StudentRef()
	if studentID == "" {
		return nil, fmt.Errorf("%w: appointment missing studentId", ErrInvalidInput)
	}

	if days < minInsightDays {
		days = minInsightDays
	}
	if days > maxInsightDays {
		days = maxInsightDays
	}

	now := time.Now().UTC()
	start := now.AddDate(0, 0, -days)

	daily := make(map[string]float64)
	counts := make(map[string]int)
	addPoint := func(ts *time.Time, score *float64) bool {
		if ts == nil || score == nil {
			return false
		}
		t := ts.UTC()
		if t.Before(start) {
			return false
		}
		day := t.Format("2006-01-02")
		daily[day] += *score
		counts[day]++
		return true
	}

	// Primary source: the mood_scores collection the student UI writes.
	primaryPoints := 0
	scores, err := s.moodScores.ListByUser(ctx, studentID)
	if err != nil {
		s.log.Warn().Err(err).Msg("insights: mood_scores read failed")
	}
	for i := range scores {
		if addPoint(scores[i].Timestamp(), scores[i].Score) {
			primaryPoints++
		}
	}

	if fallback && primaryPoints == 0 {
		s.mergeLegacySources(ctx, studentID, addPoint)
	}

	trend := make([]models.TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		point := models.TrendPoint{Date: day}
		if counts[day] > 0 {
			avg := math.Round(daily[day]/float64(counts[day])*100) / 100
			point.Avg = &avg
		}
		trend = append(trend, point)
	}

	return &models.AppointmentInsights{
		MoodTrend:   trend,
		Assessments: s.latestAssessments(ctx, studentID),
	}, nil
}

func (s *InsightsService) mergeLegacySources(ctx context.Context, studentID string, addPoint func(*time.Time, *float64) bool) {
	for _, field := range legacyUserIDFields {
		samples, err := s.moodSamples.ListByUserField(ctx, field, studentID)
		if err != nil {
			s.log.Warn().Err(err).Msg("insights: moods read failed")
			continue
		}
		for i := range samples {
			addPoint(samples[i].Timestamp(), samples[i].Value())
		}
	}

	chats, err := s.chats.ListByUser(ctx, studentID)
	if err != nil {
		s.log.Warn().Err(err).Msg("insights: chat_conversations read failed")
		return
	}
	for i := range chats {
		if chats[i].Sentiment == nil || chats[i].Sentiment.Score == nil {
			continue
		}
		norm := normalizeSentimentScore(*chats[i].Sentiment.Score)
		addPoint(chats[i].Timestamp(), &norm)
	}
}

// normalizeSentimentScore maps sentiment values onto the 0-100 mood scale.
// Values in [-1,1] (which covers the [0,1] shape too) are rescaled linearly;
// anything else is assumed to already be on the 0-100 scale.
func normalizeSentimentScore(v float64) float64 {
	if v >= -1.0 && v <= 1.0 {
		return (v + 1.0) / 2.0 * 100.0
	}
	return v
}

func (s *InsightsService) latestAssessments(ctx context.Context, studentID string) models.LatestAssessments {
	latest := map[string]*models.AssessmentSummary{}
	latestTS := map[string]*time.Time{}

	for _, field := range legacyUserIDFields {
		records, err := s.assessments.ListByUserField(ctx, field, studentID)
		if err != nil {
			s.log.Warn().Err(err).Msg("insights: assessments read failed")
			continue
		}
		for i := range records {
			t := strings.ToUpper(strings.TrimSpace(records[i].Type))
			if t != models.AssessmentTypePHQ9 && t != models.AssessmentTypeGAD7 {
				continue
			}
			ts := records[i].Timestamp()
			prev := latestTS[t]
			if prev != nil && (ts == nil || !ts.After(*prev)) {
				continue
			}
			latestTS[t] = ts
			latest[t] = &models.AssessmentSummary{
				Score:    records[i].Score,
				Severity: records[i].Severity,
			}
		}
	}

	return models.LatestAssessments{
		PHQ9: latest[models.AssessmentTypePHQ9],
		GAD7: latest[models.AssessmentTypeGAD7],
	}
}
