package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"nirogya-be/internal/dto"
	"nirogya-be/internal/entity"
	"nirogya-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the chat-exchange topic and writes one ChatLog row
// per exchange, off the request path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ChatExchangeMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal chat exchange: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	chatLog := &entity.ChatLog{
		Id:              uuid.New(),
		Username:        payload.Username,
		UserMessage:     payload.UserMessage,
		UserMessageTime: payload.UserMessageTime,
		BotReply:        payload.BotReply,
		BotReplyTime:    payload.BotReplyTime,
		ConversationId:  payload.ConversationId,
		SessionId:       payload.SessionId,
		CreatedAt:       time.Now(),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}

	if err := uow.ChatLogRepository().Create(ctx, chatLog); err != nil {
		log.Printf("[ERROR] Failed to persist chat log for %s: %v", payload.Username, err)
		uow.Rollback()
		msg.Nack() // Nack for retriable errors
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit chat log: %v", err)
		msg.Nack()
		return
	}

	msg.Ack()
}
