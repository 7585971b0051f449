package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Sentiment struct {
	Label string   `bson:"label,omitempty" json:"label"`
	Score *float64 `bson:"score,omitempty" json:"score"`
}

// ChatConversation is one user message / agent reply exchange.
type ChatConversation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID          string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	SessionID       string             `bson:"session_id,omitempty" json:"session_id,omitempty"`
	UserMessage     string             `bson:"user_message,omitempty" json:"user_message,omitempty"`
	AIResponse      string             `bson:"ai_response,omitempty" json:"ai_response,omitempty"`
	Sentiment       *Sentiment         `bson:"sentiment,omitempty" json:"sentiment,omitempty"`
	EscalationLevel string             `bson:"escalation_level,omitempty" json:"escalation_level,omitempty"`
	OccurredAt      *time.Time         `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
	CreatedAt       *time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

func (c *ChatConversation) Timestamp() *time.Time {
	if c.OccurredAt != nil {
		return c.OccurredAt
	}
	return c.CreatedAt
}

// AgentReply is what the conversational agent produces for a user message.
type AgentReply struct {
	Response        string    `json:"response"`
	Sentiment       Sentiment `json:"sentiment"`
	EscalationLevel string    `json:"escalation_level"`
}
