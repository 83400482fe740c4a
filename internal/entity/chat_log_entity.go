package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatLog is one persisted user/bot exchange. Conversation and session ids
// group exchanges the same way the client groups them locally.
type ChatLog struct {
	Id              uuid.UUID
	Username        string
	UserMessage     string
	UserMessageTime time.Time
	BotReply        string
	BotReplyTime    time.Time
	ConversationId  string
	SessionId       string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
