package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatLog struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username        string    `gorm:"type:varchar(255);not null;index:idx_chat_logs_user_time,priority:1;index:idx_chat_logs_user_conv,priority:1"`
	UserMessage     string    `gorm:"type:text;not null"`
	UserMessageTime time.Time `gorm:"not null;index:idx_chat_logs_user_time,priority:2"`
	BotReply        string    `gorm:"type:text;not null"`
	BotReplyTime    time.Time `gorm:"not null"`
	ConversationId  string    `gorm:"type:varchar(64);not null;index:idx_chat_logs_user_conv,priority:2"`
	SessionId       string    `gorm:"type:varchar(64);not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (ChatLog) TableName() string {
	return "chat_logs"
}
