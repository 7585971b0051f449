package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lekithkishore/MINDLY/internal/agent"
	"github.com/lekithkishore/MINDLY/internal/models"
)

type conversationWriter interface {
	Insert(ctx context.Context, conversation models.ChatConversation) error
}

// ChatService glues the conversational agent to conversation persistence.
type ChatService struct {
	agent         agent.Responder
	conversations conversationWriter
	log           zerolog.Logger
}

func NewChatService(responder agent.Responder, conversations conversationWriter, log zerolog.Logger) *ChatService {
	return &ChatService{
		agent:         responder,
		conversations: conversations,
		log:           log,
	}
}

type ChatOutcome struct {
	Reply     *models.AgentReply
	SessionID string
}

// Handle produces the agent reply and records the exchange. A session id is
// minted when an identified user starts chatting without one. Persistence is
// best-effort; the reply is returned regardless.
func (s *ChatService) Handle(ctx context.Context, userID, sessionID, message string) (*ChatOutcome, error) {
	if message == "" {
		return nil, ErrInvalidInput
	}

	reply, err := s.agent.Respond(ctx, message)
	if err != nil {
		return nil, err
	}

	if sessionID == "" && userID != "" {
		sessionID = uuid.NewString()
	}

	if sessionID != "" {
		now := time.Now().UTC()
		sentiment := reply.Sentiment
		conversation := models.ChatConversation{
			UserID:          userID,
			SessionID:       sessionID,
			UserMessage:     message,
			AIResponse:      reply.Response,
			Sentiment:       &sentiment,
			EscalationLevel: reply.EscalationLevel,
			OccurredAt:      &now,
		}
		if err := s.conversations.Insert(ctx, conversation); err != nil {
			s.log.Warn().Err(err).Msg("failed to save conversation")
		}
	}

	return &ChatOutcome{Reply: reply, SessionID: sessionID}, nil
}
