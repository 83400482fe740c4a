package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nirogya-be/internal/dto"
	"nirogya-be/internal/entity"
	"nirogya-be/internal/pkg/logger"
	"nirogya-be/internal/repository/specification"
	"nirogya-be/internal/repository/unitofwork"

	"nirogya-be/pkg/assistant/responder"
	"nirogya-be/pkg/conversation"
	"nirogya-be/pkg/events"
	"nirogya-be/pkg/kvstore"
	pktNats "nirogya-be/pkg/nats"
)

type IChatbotService interface {
	Generate(ctx context.Context, username string, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
	History(ctx context.Context, username string, q *dto.HistoryQuery) ([]dto.ChatLogResponse, error)
	HistoryByConversation(ctx context.Context, username, conversationID string) ([]dto.ChatLogResponse, error)
	ClearHistory(ctx context.Context, username string) error
	GetConversations(ctx context.Context, email string) (conversation.Set, error)
	PutConversations(ctx context.Context, email string, set conversation.Set) error
}

type chatbotService struct {
	responder        *responder.Responder
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	kv               kvstore.Store
	logger           logger.ILogger
}

func NewChatbotService(
	r *responder.Responder,
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	kv kvstore.Store,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		responder:        r,
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		kv:               kv,
		logger:           log,
	}
}

func (s *chatbotService) Generate(ctx context.Context, username string, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	askedAt := time.Now()

	reply, err := s.responder.Respond(ctx, req.Query)
	if err != nil && reply.Text == "" {
		// Only the missing-query case carries no user-facing text.
		return nil, err
	}

	s.recordExchange(ctx, username, req, askedAt, reply)

	if s.eventPublisher != nil {
		go func() {
			evtCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			evt := events.NewChatGeneratedEvent(username, req.ConversationId, reply.Source)
			if pubErr := s.eventPublisher.Publish(evtCtx, evt); pubErr != nil {
				s.logger.Warn("chatbot", "Failed to publish chat event", map[string]interface{}{
					"error": pubErr.Error(),
				})
			}
		}()
	}

	// err is the upstream sentinel here; the reply already holds the
	// user-facing fallback text and the controller maps the status code.
	return &dto.GenerateResponse{Reply: reply.Text}, err
}

// recordExchange hands the finished exchange to the persistence pipeline.
// A publish failure only costs the history row, never the reply.
func (s *chatbotService) recordExchange(ctx context.Context, username string, req *dto.GenerateRequest, askedAt time.Time, reply responder.Reply) {
	msg := dto.ChatExchangeMessage{
		Username:        username,
		UserMessage:     req.Query,
		UserMessageTime: askedAt,
		BotReply:        reply.Text,
		BotReplyTime:    time.Now(),
		ConversationId:  req.ConversationId,
		SessionId:       req.SessionId,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("chatbot", "Failed to marshal chat exchange", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Error("chatbot", "Failed to publish chat exchange", map[string]interface{}{
			"error":    err.Error(),
			"username": username,
		})
	}
}

func (s *chatbotService) History(ctx context.Context, username string, q *dto.HistoryQuery) ([]dto.ChatLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByUsername{Username: username},
	}
	if q != nil && q.SessionId != "" {
		specs = append(specs, specification.BySessionID{SessionID: q.SessionId})
	}
	specs = append(specs, specification.OrderBy{Field: "user_message_time", Desc: false})
	if q != nil && q.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: q.Limit, Offset: q.Offset})
	}

	logs, err := uow.ChatLogRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}

	return toChatLogResponses(logs), nil
}

func (s *chatbotService) ClearHistory(ctx context.Context, username string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatLogRepository().DeleteAllByUsername(ctx, username); err != nil {
		return fmt.Errorf("clear chat history: %w", err)
	}

	return uow.Commit()
}

func (s *chatbotService) HistoryByConversation(ctx context.Context, username, conversationID string) ([]dto.ChatLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.ChatLogRepository().FindAll(ctx,
		specification.ByUsername{Username: username},
		specification.ByConversationID{ConversationID: conversationID},
		specification.OrderBy{Field: "user_message_time", Desc: false},
	)
	if err != nil {
		return nil, fmt.Errorf("load conversation history: %w", err)
	}

	return toChatLogResponses(logs), nil
}

func (s *chatbotService) GetConversations(ctx context.Context, email string) (conversation.Set, error) {
	return conversation.LoadSet(ctx, s.kv, email)
}

func (s *chatbotService) PutConversations(ctx context.Context, email string, set conversation.Set) error {
	return conversation.SaveSet(ctx, s.kv, email, set)
}

func toChatLogResponses(logs []*entity.ChatLog) []dto.ChatLogResponse {
	out := make([]dto.ChatLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ChatLogResponse{
			Id:              l.Id,
			Username:        l.Username,
			UserMessage:     l.UserMessage,
			UserMessageTime: l.UserMessageTime,
			BotReply:        l.BotReply,
			BotReplyTime:    l.BotReplyTime,
			ConversationId:  l.ConversationId,
			SessionId:       l.SessionId,
		})
	}
	return out
}
