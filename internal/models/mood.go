package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodScore is the primary mood sample the student UI writes.
type MoodScore struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID     string             `bson:"userId" json:"userId"`
	Score      *float64           `bson:"score,omitempty" json:"score,omitempty"`
	RecordedAt *time.Time         `bson:"recordedAt,omitempty" json:"recordedAt,omitempty"`
	CreatedAt  *time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

func (m *MoodScore) Timestamp() *time.Time {
	if m.RecordedAt != nil {
		return m.RecordedAt
	}
	return m.CreatedAt
}

// MoodSample is the legacy moods collection, which used inconsistent field
// names across app versions.
type MoodSample struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID     string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	UserIDAlt  string             `bson:"userId,omitempty" json:"userId,omitempty"`
	Score      *float64           `bson:"score,omitempty" json:"score,omitempty"`
	MoodScore  *float64           `bson:"mood_score,omitempty" json:"mood_score,omitempty"`
	OccurredAt *time.Time         `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
	CreatedAt  *time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

func (m *MoodSample) Timestamp() *time.Time {
	if m.OccurredAt != nil {
		return m.OccurredAt
	}
	return m.CreatedAt
}

func (m *MoodSample) Value() *float64 {
	if m.Score != nil {
		return m.Score
	}
	return m.MoodScore
}
