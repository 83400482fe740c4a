package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain value implementation of Event.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewUserLoginEvent is raised after a successful credential check.
func NewUserLoginEvent(userID, email string) BaseEvent {
	return BaseEvent{
		Type: "USER_LOGIN",
		Data: map[string]interface{}{
			"user_id": userID,
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

// NewChatGeneratedEvent is raised after the assistant produces a reply.
func NewChatGeneratedEvent(username, conversationID, source string) BaseEvent {
	return BaseEvent{
		Type: "CHAT_GENERATED",
		Data: map[string]interface{}{
			"username":        username,
			"conversation_id": conversationID,
			"source":          source,
		},
		OccurredAt: time.Now(),
	}
}
