package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Escalation is a flagged high-risk interaction requiring human follow-up.
type Escalation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          string             `bson:"user_id" json:"user_id"`
	EscalationLevel string             `bson:"escalation_level" json:"escalation_level"`
	Message         string             `bson:"message,omitempty" json:"message,omitempty"`
	Status          string             `bson:"status" json:"status"`
	OccurredAt      time.Time          `bson:"timestamp" json:"timestamp"`
}
