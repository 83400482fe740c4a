package dto

import (
	"time"

	"github.com/google/uuid"

	"nirogya-be/pkg/conversation"
)

type GenerateRequest struct {
	Query          string `json:"query"`
	ConversationId string `json:"conversation_id,omitempty"`
	SessionId      string `json:"session_id,omitempty"`
}

type GenerateResponse struct {
	Reply string `json:"reply"`
}

// HistoryQuery narrows a chat-history listing. Zero values mean no
// session filter and no pagination.
type HistoryQuery struct {
	SessionId string
	Limit     int
	Offset    int
}

// ChatExchangeMessage travels over the in-process bus from the responder to
// the persistence consumer.
type ChatExchangeMessage struct {
	Username        string    `json:"username"`
	UserMessage     string    `json:"user_message"`
	UserMessageTime time.Time `json:"user_message_time"`
	BotReply        string    `json:"bot_reply"`
	BotReplyTime    time.Time `json:"bot_reply_time"`
	ConversationId  string    `json:"conversation_id"`
	SessionId       string    `json:"session_id"`
}

type ChatLogResponse struct {
	Id              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	UserMessage     string    `json:"user_message"`
	UserMessageTime time.Time `json:"user_message_time"`
	BotReply        string    `json:"bot_reply"`
	BotReplyTime    time.Time `json:"bot_reply_time"`
	ConversationId  string    `json:"conversation_id"`
	SessionId       string    `json:"session_id"`
}

type ConversationsResponse struct {
	Conversations conversation.Set `json:"conversations"`
}

type PutConversationsRequest struct {
	Conversations conversation.Set `json:"conversations"`
}
