package agent

import (
	"context"
	"testing"
)

func TestRespondDetectsCrisisLanguage(t *testing.T) {
	a := NewRuleBasedAgent()

	reply, err := a.Respond(context.Background(), "Lately I feel like I want to die")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.EscalationLevel != "high" {
		t.Fatalf("expected escalation high, got %q", reply.EscalationLevel)
	}
	if reply.Sentiment.Label != "negative" || reply.Sentiment.Score == nil || *reply.Sentiment.Score != -1.0 {
		t.Fatalf("expected sentiment negative/-1, got %+v", reply.Sentiment)
	}
	if reply.Response == "" {
		t.Fatal("expected a crisis response")
	}
}

func TestRespondNegativeSentiment(t *testing.T) {
	a := NewRuleBasedAgent()

	reply, err := a.Respond(context.Background(), "I'm so stressed and anxious and overwhelmed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Sentiment.Label != "negative" {
		t.Fatalf("expected negative label, got %q", reply.Sentiment.Label)
	}
	if reply.EscalationLevel != "medium" {
		t.Fatalf("three negative terms should escalate to medium, got %q", reply.EscalationLevel)
	}
	if reply.Sentiment.Score == nil || *reply.Sentiment.Score >= 0 || *reply.Sentiment.Score < -1 {
		t.Fatalf("expected score in [-1,0), got %v", reply.Sentiment.Score)
	}
}

func TestRespondPositiveSentiment(t *testing.T) {
	a := NewRuleBasedAgent()

	reply, err := a.Respond(context.Background(), "Today was great, I feel happy and hopeful")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Sentiment.Label != "positive" {
		t.Fatalf("expected positive label, got %q", reply.Sentiment.Label)
	}
	if reply.EscalationLevel != "low" {
		t.Fatalf("expected escalation low, got %q", reply.EscalationLevel)
	}
	if reply.Sentiment.Score == nil || *reply.Sentiment.Score <= 0 || *reply.Sentiment.Score > 1 {
		t.Fatalf("expected score in (0,1], got %v", reply.Sentiment.Score)
	}
}

func TestRespondNeutralByDefault(t *testing.T) {
	a := NewRuleBasedAgent()

	reply, err := a.Respond(context.Background(), "What's the weather like")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Sentiment.Label != "neutral" {
		t.Fatalf("expected neutral label, got %q", reply.Sentiment.Label)
	}
	if reply.Sentiment.Score == nil || *reply.Sentiment.Score != 0 {
		t.Fatalf("expected score 0, got %v", reply.Sentiment.Score)
	}
}
