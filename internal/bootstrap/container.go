package bootstrap

import (
	"context"
	"log"

	"nirogya-be/internal/config"
	"nirogya-be/internal/controller"
	"nirogya-be/internal/pkg/logger"
	"nirogya-be/internal/pkg/mailer"
	"nirogya-be/internal/repository/unitofwork"
	"nirogya-be/internal/service"
	"nirogya-be/pkg/assistant/classifier"
	"nirogya-be/pkg/assistant/prompt"
	"nirogya-be/pkg/assistant/responder"
	"nirogya-be/pkg/kvstore"
	"nirogya-be/pkg/llm/factory"

	pktNats "nirogya-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	ChatbotController controller.IChatbotController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS (best effort: the app runs without it)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Conversation snapshots: Redis when configured, in-process otherwise
	var kv kvstore.Store
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		kv = kvstore.NewRedisStore(rdb)
		log.Println("[INFO] Using Redis conversation store")
	} else {
		kv = kvstore.NewMemoryStore()
		log.Println("[INFO] Using in-memory conversation store")
	}

	// 3. Assistant pipeline
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.GoogleGemini,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	chatResponder := responder.New(
		classifier.New(),
		prompt.NewBuilder(),
		llmProvider,
		sysLogger,
		cfg.Ai.Timeout,
	)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.ChatExchangeTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.ChatExchangeTopic,
		uowFactory,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, cfg.Auth)
	chatbotService := service.NewChatbotService(
		chatResponder,
		uowFactory,
		publisherService,
		natsPub,
		kv,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService, cfg.Auth),
		ChatbotController: controller.NewChatbotController(chatbotService, cfg.Auth),

		ConsumerService: consumerService,
	}
}
