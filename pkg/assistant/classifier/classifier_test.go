package classifier

import (
	"testing"
)

func newFixed() *Classifier {
	// Always pick the first canned variant so assertions are stable.
	return NewWithPicker(func(n int) int { return 0 })
}

func TestClassifyCategories(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantCategory Category
	}{
		{
			name:         "plain greeting",
			query:        "hello there",
			wantCategory: CategoryGreeting,
		},
		{
			name:         "greeting with punctuation and case",
			query:        "  Namaste!  ",
			wantCategory: CategoryGreeting,
		},
		{
			name:         "gratitude",
			query:        "thank you so much",
			wantCategory: CategoryGratitude,
		},
		{
			name:         "gratitude in hindi",
			query:        "dhanyawad",
			wantCategory: CategoryGratitude,
		},
		{
			name:         "gratitude wins over farewell",
			query:        "thanks, bye",
			wantCategory: CategoryGratitude,
		},
		{
			name:         "farewell",
			query:        "goodbye for now",
			wantCategory: CategoryFarewell,
		},
		{
			name:         "casual how are you",
			query:        "how are you doing today?",
			wantCategory: CategoryCasual,
		},
		{
			name:         "casual identity",
			query:        "who are you exactly",
			wantCategory: CategoryCasual,
		},
		{
			name:         "casual capabilities",
			query:        "what can you do",
			wantCategory: CategoryCasual,
		},
		{
			name:         "health symptom",
			query:        "my head hurts and I cannot sleep",
			wantCategory: CategoryHealthQuery,
		},
		{
			name:         "health third person",
			query:        "my mother has diabetes",
			wantCategory: CategoryHealthQuery,
		},
		{
			name:         "health dosha term",
			query:        "how do I balance my vata",
			wantCategory: CategoryHealthQuery,
		},
		{
			name:         "off topic",
			query:        "what is the capital of France?",
			wantCategory: CategoryOffTopic,
		},
	}

	c := newFixed()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.query)

			if result.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", result.Category, tt.wantCategory)
			}

			if tt.wantCategory == CategoryHealthQuery && result.Reply != "" {
				t.Errorf("health query should have no canned reply, got %q", result.Reply)
			}
			if tt.wantCategory != CategoryHealthQuery && result.Reply == "" {
				t.Errorf("expected a canned reply for category %q", tt.wantCategory)
			}
		})
	}
}

func TestClassifyCannedVariants(t *testing.T) {
	c := newFixed()

	if got := c.Classify("thanks").Reply; got != gratitudeReplies[0] {
		t.Errorf("gratitude reply = %q, want first variant", got)
	}
	if got := c.Classify("bye").Reply; got != farewellReplies[0] {
		t.Errorf("farewell reply = %q, want first variant", got)
	}
	if got := c.Classify("hello").Reply; got != greetingReplies[0] {
		t.Errorf("greeting reply = %q, want first variant", got)
	}
	if got := c.Classify("how are you").Reply; got != howAreYouReply {
		t.Errorf("how-are-you reply = %q", got)
	}
	if got := c.Classify("nonsense about trains").Reply; got != offTopicReply {
		t.Errorf("off-topic reply = %q", got)
	}
}

func TestClassifyPickerSelectsVariant(t *testing.T) {
	c := NewWithPicker(func(n int) int { return n - 1 })

	if got := c.Classify("thank you").Reply; got != gratitudeReplies[len(gratitudeReplies)-1] {
		t.Errorf("picker not honored, got %q", got)
	}
}

func TestClassifyCasualWithoutDedicatedAnswerFallsThrough(t *testing.T) {
	c := newFixed()

	// "nice to meet you" is a casual phrase without its own canned answer.
	// It must keep cascading and land on off-topic.
	result := c.Classify("nice to meet you")
	if result.Category != CategoryOffTopic {
		t.Errorf("Category = %q, want %q", result.Category, CategoryOffTopic)
	}
}
