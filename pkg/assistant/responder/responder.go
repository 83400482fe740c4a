package responder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nirogya-be/internal/pkg/logger"
	"nirogya-be/pkg/assistant/classifier"
	"nirogya-be/pkg/assistant/prompt"
	"nirogya-be/pkg/llm"
)

var (
	// ErrMissingQuery means the query was empty after trimming.
	ErrMissingQuery = errors.New("query is required")

	// ErrUpstream wraps a model failure. The Reply returned alongside it
	// still carries the user-facing fallback text.
	ErrUpstream = errors.New("upstream model failure")
)

const fallbackReply = "I apologize, but I'm experiencing some technical difficulties right now. Please try asking your health question again in a moment. I'm here to help with your Ayurvedic wellness needs! 🌿"

// Reply source markers.
const (
	SourceCanned   = "canned"
	SourceModel    = "model"
	SourceFallback = "fallback"
)

type Reply struct {
	Text     string
	Source   string
	Category classifier.Category
}

// Responder decides whether a query gets a canned answer or a model
// consultation, and shields callers from upstream failures.
type Responder struct {
	classifier *classifier.Classifier
	builder    *prompt.Builder
	provider   llm.LLMProvider
	logger     logger.ILogger
	timeout    time.Duration
}

func New(c *classifier.Classifier, b *prompt.Builder, provider llm.LLMProvider, log logger.ILogger, timeout time.Duration) *Responder {
	return &Responder{
		classifier: c,
		builder:    b,
		provider:   provider,
		logger:     log,
		timeout:    timeout,
	}
}

func (r *Responder) Respond(ctx context.Context, query string) (Reply, error) {
	if strings.TrimSpace(query) == "" {
		return Reply{}, ErrMissingQuery
	}

	result := r.classifier.Classify(query)
	if result.Category != classifier.CategoryHealthQuery {
		return Reply{
			Text:     result.Reply,
			Source:   SourceCanned,
			Category: result.Category,
		}, nil
	}

	consultationPrompt := r.builder.Build(query)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.provider.Generate(ctx, consultationPrompt)
	if err != nil {
		r.logger.Error("responder", "Model call failed", map[string]interface{}{
			"error": err.Error(),
		})
		return Reply{
			Text:     fallbackReply,
			Source:   SourceFallback,
			Category: result.Category,
		}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return Reply{
		Text:     text,
		Source:   SourceModel,
		Category: result.Category,
	}, nil
}
