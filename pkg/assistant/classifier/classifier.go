package classifier

import (
	"math/rand"
	"strings"
	"time"
)

// Category is the outcome of routing a raw user query.
type Category string

const (
	CategoryGratitude   Category = "gratitude"
	CategoryFarewell    Category = "farewell"
	CategoryCasual      Category = "casual"
	CategoryGreeting    Category = "greeting"
	CategoryHealthQuery Category = "health_query"
	CategoryOffTopic    Category = "off_topic"
)

// Result carries the routing decision. Reply is the canned text for every
// category except CategoryHealthQuery, which is answered by the model.
type Result struct {
	Category Category
	Reply    string
}

// Classifier routes queries by keyword matching. It is deterministic apart
// from which canned variant it picks, which goes through the injected picker.
type Classifier struct {
	pick func(n int) int
}

func New() *Classifier {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Classifier{pick: rng.Intn}
}

// NewWithPicker injects the variant picker. Tests pass a fixed function.
func NewWithPicker(pick func(n int) int) *Classifier {
	return &Classifier{pick: pick}
}

// Classify normalizes the query and walks the match cascade. Gratitude wins
// over farewell, farewell over casual, casual over greeting, so "thanks, bye"
// gets a gratitude reply.
func (c *Classifier) Classify(query string) Result {
	normalized := strings.ToLower(strings.TrimSpace(query))

	if containsAny(normalized, gratitudeWords) {
		return Result{Category: CategoryGratitude, Reply: c.pickFrom(gratitudeReplies)}
	}

	if containsAny(normalized, farewells) {
		return Result{Category: CategoryFarewell, Reply: c.pickFrom(farewellReplies)}
	}

	if containsAny(normalized, casualPhrases) {
		// Only the phrases with a dedicated answer short-circuit here. The
		// rest fall through to the greeting and health checks.
		switch {
		case strings.Contains(normalized, "how are you"):
			return Result{Category: CategoryCasual, Reply: howAreYouReply}
		case strings.Contains(normalized, "who are you") || strings.Contains(normalized, "what are you"):
			return Result{Category: CategoryCasual, Reply: whoAreYouReply}
		case strings.Contains(normalized, "what can you do"):
			return Result{Category: CategoryCasual, Reply: capabilitiesReply}
		}
	}

	if isGreeting(normalized) {
		return Result{Category: CategoryGreeting, Reply: c.pickFrom(greetingReplies)}
	}

	if containsAny(normalized, healthKeywords) {
		return Result{Category: CategoryHealthQuery}
	}

	return Result{Category: CategoryOffTopic, Reply: offTopicReply}
}

func (c *Classifier) pickFrom(replies []string) string {
	return replies[c.pick(len(replies))]
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func isGreeting(text string) bool {
	for _, g := range greetings {
		if strings.Contains(text, g) || strings.HasPrefix(text, g) {
			return true
		}
	}
	return false
}
