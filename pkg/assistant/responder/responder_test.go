package responder

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"nirogya-be/pkg/assistant/classifier"
	"nirogya-be/pkg/assistant/prompt"
	"nirogya-be/pkg/llm"
)

type fakeProvider struct {
	lastPrompt string
	reply      string
	err        error
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if len(history) > 0 {
		f.lastPrompt = history[len(history)-1].Content
	}
	return f.reply, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, p string, opts ...llm.Option) (string, error) {
	f.lastPrompt = p
	return f.reply, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{}) {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                 { return nil }

func newResponder(p *fakeProvider) *Responder {
	c := classifier.NewWithPicker(func(n int) int { return 0 })
	return New(c, prompt.NewBuilder(), p, nopLogger{}, 5*time.Second)
}

func TestRespondEmptyQuery(t *testing.T) {
	r := newResponder(&fakeProvider{})

	for _, q := range []string{"", "   ", "\t\n"} {
		if _, err := r.Respond(context.Background(), q); !errors.Is(err, ErrMissingQuery) {
			t.Errorf("Respond(%q) error = %v, want ErrMissingQuery", q, err)
		}
	}
}

func TestRespondCannedSkipsModel(t *testing.T) {
	p := &fakeProvider{reply: "should not be used"}
	r := newResponder(p)

	reply, err := r.Respond(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Respond returned error: %v", err)
	}
	if reply.Source != SourceCanned {
		t.Errorf("Source = %q, want %q", reply.Source, SourceCanned)
	}
	if reply.Category != classifier.CategoryGreeting {
		t.Errorf("Category = %q, want greeting", reply.Category)
	}
	if p.lastPrompt != "" {
		t.Error("model was called for a canned reply")
	}
}

func TestRespondHealthQueryUsesModel(t *testing.T) {
	p := &fakeProvider{reply: "Ayurvedic Name\n- Ardhavabhedaka (Migraine)"}
	r := newResponder(p)

	reply, err := r.Respond(context.Background(), "I get frequent migraine attacks")
	if err != nil {
		t.Fatalf("Respond returned error: %v", err)
	}
	if reply.Source != SourceModel {
		t.Errorf("Source = %q, want %q", reply.Source, SourceModel)
	}
	if reply.Text != p.reply {
		t.Errorf("Text = %q, want model output", reply.Text)
	}
	if !strings.Contains(p.lastPrompt, "User query: I get frequent migraine attacks") {
		t.Error("model prompt does not embed the user query")
	}
	if !strings.Contains(p.lastPrompt, "knowledgeable Ayurveda assistant") {
		t.Error("model prompt missing the persona preamble")
	}
}

func TestRespondUpstreamFailure(t *testing.T) {
	p := &fakeProvider{err: errors.New("503 service unavailable")}
	r := newResponder(p)

	reply, err := r.Respond(context.Background(), "my stomach ache will not stop")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("error = %v, want ErrUpstream", err)
	}
	if reply.Source != SourceFallback {
		t.Errorf("Source = %q, want %q", reply.Source, SourceFallback)
	}
	if reply.Text != fallbackReply {
		t.Errorf("Text = %q, want fallback text", reply.Text)
	}
}

func TestRespondOffTopicIsCanned(t *testing.T) {
	p := &fakeProvider{}
	r := newResponder(p)

	reply, err := r.Respond(context.Background(), "recommend me a good movie")
	if err != nil {
		t.Fatalf("Respond returned error: %v", err)
	}
	if reply.Category != classifier.CategoryOffTopic {
		t.Errorf("Category = %q, want off_topic", reply.Category)
	}
	if reply.Source != SourceCanned {
		t.Errorf("Source = %q, want %q", reply.Source, SourceCanned)
	}
	if p.lastPrompt != "" {
		t.Error("model was called for an off-topic query")
	}
}
