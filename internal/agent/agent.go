package agent

import (
	"context"
	"strings"

	"github.com/lekithkishore/MINDLY/internal/models"
)

// Responder produces a supportive reply and a sentiment estimate for a user
// message. The rule-based implementation below is the default; a smarter
// agent can be swapped in behind the same interface.
type Responder interface {
	Respond(ctx context.Context, message string) (*models.AgentReply, error)
}

type RuleBasedAgent struct{}

func NewRuleBasedAgent() *RuleBasedAgent {
	return &RuleBasedAgent{}
}

var crisisTerms = []string{
	"suicide", "kill myself", "end my life", "self harm", "self-harm",
	"hurt myself", "want to die", "no reason to live",
}

var negativeTerms = []string{
	"sad", "depressed", "anxious", "worried", "stressed", "hopeless",
	"lonely", "tired", "overwhelmed", "scared", "angry", "worthless",
	"crying", "panic", "afraid", "exhausted",
}

var positiveTerms = []string{
	"happy", "great", "good", "better", "hopeful", "calm", "relaxed",
	"excited", "grateful", "proud", "improving",
}

func (a *RuleBasedAgent) Respond(_ context.Context, message string) (*models.AgentReply, error) {
	lower := strings.ToLower(message)

	if containsAny(lower, crisisTerms) {
		score := -1.0
		return &models.AgentReply{
			Response: "I'm really concerned about what you're sharing. You don't have to face this alone — " +
				"please reach out to a crisis line right now, or use the escalation option in the app to " +
				"connect with a counsellor immediately.",
			Sentiment:       models.Sentiment{Label: "negative", Score: &score},
			EscalationLevel: "high",
		}, nil
	}

	negatives := countMatches(lower, negativeTerms)
	positives := countMatches(lower, positiveTerms)

	label := "neutral"
	score := 0.0
	escalation := "low"
	reply := "Thanks for checking in. How has your day been so far? I'm here whenever you want to talk things through."

	switch {
	case negatives > positives:
		label = "negative"
		score = -minFloat(1, 0.3+0.2*float64(negatives))
		reply = "That sounds really hard, and it's okay to feel this way. Would you like to tell me more " +
			"about what's been weighing on you? Sometimes a short breathing exercise or booking a session " +
			"with a counsellor can help."
		if negatives >= 3 {
			escalation = "medium"
		}
	case positives > negatives:
		label = "positive"
		score = minFloat(1, 0.3+0.2*float64(positives))
		reply = "I'm glad to hear that! Keeping track of what's going well can really help on tougher days. " +
			"Is there anything you'd like to build on?"
	}

	return &models.AgentReply{
		Response:        reply,
		Sentiment:       models.Sentiment{Label: label, Score: &score},
		EscalationLevel: escalation,
	}, nil
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func countMatches(s string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(s, term) {
			count++
		}
	}
	return count
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
