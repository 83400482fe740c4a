package conversation

import "strings"

// Message senders.
const (
	FromUser = "user"
	FromBot  = "bot"
)

// TypingPlaceholder is the transient bot message shown while a reply is in
// flight. It is always replaced before Send returns and never persisted.
const TypingPlaceholder = "Nirogya is typing..."

const summaryLimit = 30

type Message struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// Conversation is one ordered thread of user/bot exchanges.
type Conversation []Message

// IsEmpty reports whether the conversation is still in its welcome state.
func (c Conversation) IsEmpty() bool {
	return len(c) == 0
}

// Summary returns a short sidebar label: the first user message truncated,
// falling back to the first message of any kind.
func (c Conversation) Summary() string {
	for _, m := range c {
		if m.From == FromUser {
			return truncate(m.Text)
		}
	}
	if len(c) > 0 {
		return truncate(c[0].Text)
	}
	return ""
}

func truncate(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= summaryLimit {
		return string(runes)
	}
	return string(runes[:summaryLimit]) + "..."
}

// Set is the ordered list of conversations belonging to one identity.
type Set []Conversation

// NonEmpty returns the conversations worth persisting, in original order.
func (s Set) NonEmpty() Set {
	out := make(Set, 0, len(s))
	for _, c := range s {
		if !c.IsEmpty() {
			out = append(out, c)
		}
	}
	return out
}
