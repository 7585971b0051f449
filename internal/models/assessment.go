package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AssessmentTypePHQ9 = "PHQ-9"
	AssessmentTypeGAD7 = "GAD-7"
)

// AssessmentRecord is a stored questionnaire result. Legacy documents carry
// the user id under user_id or userId depending on the app version.
type AssessmentRecord struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID          string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	UserIDAlt       string             `bson:"userId,omitempty" json:"userId,omitempty"`
	Type            string             `bson:"type,omitempty" json:"type,omitempty"`
	Responses       []int              `bson:"responses,omitempty" json:"responses,omitempty"`
	Score           *float64           `bson:"score,omitempty" json:"score,omitempty"`
	Severity        string             `bson:"severity,omitempty" json:"severity,omitempty"`
	Recommendations []string           `bson:"recommendations,omitempty" json:"recommendations,omitempty"`
	OccurredAt      *time.Time         `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
	CreatedAt       *time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

func (a *AssessmentRecord) Timestamp() *time.Time {
	if a.OccurredAt != nil {
		return a.OccurredAt
	}
	return a.CreatedAt
}

// AssessmentResult is the scored outcome returned to the client.
type AssessmentResult struct {
	Score           int      `json:"score"`
	Severity        string   `json:"severity"`
	Recommendations []string `json:"recommendations"`
}
