package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"nirogya-be/pkg/kvstore"
)

var (
	// ErrEmptyMessage means Send was called with nothing but whitespace.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrIndexOutOfRange means a switch/delete targeted a missing slot.
	ErrIndexOutOfRange = errors.New("conversation index out of range")
)

// sendFailureReply replaces the typing placeholder when the responder errors
// and hands back no fallback text of its own.
const sendFailureReply = "Sorry, I couldn't process your request. Please try again."

// RespondFunc produces the bot reply for one user message. The returned text
// is used even when err is non-nil, so responders can pair a user-facing
// fallback with a diagnostic error.
type RespondFunc func(ctx context.Context, query string) (string, error)

// Store is the per-identity conversation state machine. It keeps the active
// set in memory and writes a filtered full snapshot to the key/value backend
// after every mutation.
type Store struct {
	kv       kvstore.Store
	respond  RespondFunc
	identity string
	set      Set
	active   int
	pending  bool
}

func NewStore(kv kvstore.Store, respond RespondFunc) *Store {
	return &Store{
		kv:      kv,
		respond: respond,
		set:     Set{Conversation{}},
	}
}

// StorageKey returns the per-identity persistence key.
func StorageKey(identity string) string {
	return fmt.Sprintf("ayurveda_all_chats_%s", identity)
}

// Load swaps in the persisted set for identity, or a single empty
// conversation when nothing is stored or identity is anonymous. The active
// index always resets to 0.
func (s *Store) Load(ctx context.Context, identity string) error {
	s.identity = identity
	s.active = 0
	s.pending = false

	if identity == "" {
		s.set = Set{Conversation{}}
		return nil
	}

	set, err := LoadSet(ctx, s.kv, identity)
	if err != nil {
		return err
	}
	if len(set) == 0 {
		set = Set{Conversation{}}
	}
	s.set = set
	return nil
}

// Send appends the user message to the active conversation, shows the typing
// placeholder, awaits the responder and swaps the placeholder for the real
// reply. The placeholder is replaced on every path, success or failure.
func (s *Store) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	if s.pending || len(s.set) == 0 {
		// A fresh slot was requested via NewChat (or the set is somehow
		// empty). Fill it instead of growing the set again.
		if len(s.set) == 0 {
			s.set = Set{Conversation{}}
			s.active = 0
		}
		s.pending = false
	}

	idx := s.active
	s.set[idx] = append(s.set[idx], Message{From: FromUser, Text: text})
	s.set[idx] = append(s.set[idx], Message{From: FromBot, Text: TypingPlaceholder})

	reply, err := s.respond(ctx, text)
	if err != nil && reply == "" {
		reply = sendFailureReply
	}

	// Replace the placeholder, never stack a second bot message on it.
	last := len(s.set[idx]) - 1
	s.set[idx][last] = Message{From: FromBot, Text: reply}

	return s.persist(ctx)
}

// NewChat appends an empty conversation and makes it active. The next Send
// fills this slot.
func (s *Store) NewChat(ctx context.Context) error {
	s.set = append(s.set, Conversation{})
	s.active = len(s.set) - 1
	s.pending = true
	return s.persist(ctx)
}

// SwitchChat changes the active index.
func (s *Store) SwitchChat(idx int) error {
	if idx < 0 || idx >= len(s.set) {
		return ErrIndexOutOfRange
	}
	s.active = idx
	return nil
}

// DeleteChat removes the conversation at idx. A drained set collapses back
// to a single empty conversation; the active index shifts down when the
// removed slot was at or before it, floored at 0.
func (s *Store) DeleteChat(ctx context.Context, idx int) error {
	if idx < 0 || idx >= len(s.set) {
		return ErrIndexOutOfRange
	}

	s.set = append(s.set[:idx:idx], s.set[idx+1:]...)

	if len(s.set) == 0 {
		s.set = Set{Conversation{}}
		s.active = 0
	} else if idx <= s.active {
		s.active = max(0, s.active-1)
	}
	s.pending = false

	return s.persist(ctx)
}

// ClearAll resets the set to a single empty conversation.
func (s *Store) ClearAll(ctx context.Context) error {
	s.set = Set{Conversation{}}
	s.active = 0
	s.pending = false
	return s.persist(ctx)
}

// Active returns the current conversation index.
func (s *Store) Active() int {
	return s.active
}

// Conversations returns the full set, empty slots included.
func (s *Store) Conversations() Set {
	return s.set
}

// ActiveMessages returns the messages of the active conversation.
func (s *Store) ActiveMessages() Conversation {
	return s.set[s.active]
}

// persist writes the filtered snapshot. Anonymous identities keep their
// state in memory only.
func (s *Store) persist(ctx context.Context) error {
	if s.identity == "" {
		return nil
	}
	return SaveSet(ctx, s.kv, s.identity, s.set)
}

// LoadSet reads the persisted set for identity from the backend.
func LoadSet(ctx context.Context, kv kvstore.Store, identity string) (Set, error) {
	raw, found, err := kv.Get(ctx, StorageKey(identity))
	if err != nil {
		return nil, fmt.Errorf("load conversations: %w", err)
	}
	if !found {
		return Set{}, nil
	}
	var set Set
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("decode conversations: %w", err)
	}
	return set, nil
}

// SaveSet writes the full snapshot for identity, filtered to non-empty
// conversations. Snapshots are idempotent full-state overwrites.
func SaveSet(ctx context.Context, kv kvstore.Store, identity string, set Set) error {
	raw, err := json.Marshal(set.NonEmpty())
	if err != nil {
		return fmt.Errorf("encode conversations: %w", err)
	}
	if err := kv.Set(ctx, StorageKey(identity), raw); err != nil {
		return fmt.Errorf("save conversations: %w", err)
	}
	return nil
}
