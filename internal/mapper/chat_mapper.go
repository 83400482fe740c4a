package mapper

import (
	"time"

	"nirogya-be/internal/entity"
	"nirogya-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ChatLogToEntity(l *model.ChatLog) *entity.ChatLog {
	if l == nil {
		return nil
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.ChatLog{
		Id:              l.Id,
		Username:        l.Username,
		UserMessage:     l.UserMessage,
		UserMessageTime: l.UserMessageTime,
		BotReply:        l.BotReply,
		BotReplyTime:    l.BotReplyTime,
		ConversationId:  l.ConversationId,
		SessionId:       l.SessionId,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ChatMapper) ChatLogToModel(l *entity.ChatLog) *model.ChatLog {
	if l == nil {
		return nil
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	return &model.ChatLog{
		Id:              l.Id,
		Username:        l.Username,
		UserMessage:     l.UserMessage,
		UserMessageTime: l.UserMessageTime,
		BotReply:        l.BotReply,
		BotReplyTime:    l.BotReplyTime,
		ConversationId:  l.ConversationId,
		SessionId:       l.SessionId,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}
