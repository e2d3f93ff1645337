package bootstrap

import (
	"context"
	"fmt"
	"log"

	"ai-notetaking-be/internal/config"
	"ai-notetaking-be/internal/controller"
	"ai-notetaking-be/internal/handler"
	"ai-notetaking-be/internal/pkg/logger"
	"ai-notetaking-be/internal/pkg/serverutils"
	"ai-notetaking-be/internal/repository/contract"
	"ai-notetaking-be/internal/repository/implementation"
	"ai-notetaking-be/internal/repository/memory"
	"ai-notetaking-be/internal/service"
	"ai-notetaking-be/internal/websocket"
	"ai-notetaking-be/pkg/assistant"
	"ai-notetaking-be/pkg/llm/factory"

	pktNats "ai-notetaking-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendRedis    = "redis"
	StorageBackendMemory   = "memory"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	ThemeController     controller.IThemeController
	ShellController     controller.IShellController
	AssistantController controller.IAssistantController
	WorkspaceController controller.IWorkspaceController

	// Handlers
	EventsHandler *handler.EventsHandler
	PageHandler   *handler.PageHandler

	JwtMiddleware fiber.Handler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	WebSocketHub    *websocket.Hub

	Logger logger.ILogger

	closers []func()
}

// NewContainer wires every dependency. db may be nil unless the storage
// backend is postgres.
func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	c := &Container{}

	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c.Logger = sysLogger
	c.closers = append(c.closers, func() { _ = sysLogger.Sync() })

	// 2. Event Bus (in-process prompt dispatch)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermillLogger)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	var eventPublisher service.IEventPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	store, err := newKeyValueStore(cfg.Database.StorageBackend, db, rdb)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] Using storage backend: %s", cfg.Database.StorageBackend)

	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL)
	toastRepo := memory.NewToastRepository(cfg.Session.ToastTTL)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/websocket.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()
	c.WebSocketHub = wsHub

	// 4. AI
	llmProvider, err := factory.NewLLMProvider(context.Background(), factory.Settings{
		Provider: cfg.Ai.LLMProvider,
		Model:    cfg.Ai.LLMModel,
		BaseURL:  cfg.Ai.OllamaBaseURL,
		APIKey:   cfg.Keys.GoogleGemini,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	if llmProvider == nil {
		log.Printf("[WARN] No AI credential configured; the assistant will answer with the unavailable notice")
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (model: %q, empty means provider default)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}
	aiClient := assistant.NewClient(llmProvider, cfg.Ai.LLMModel, cfg.Ai.RequestTimeout, sysLogger)

	// 5. Services
	profileService := service.NewProfileService(store, cfg.App.Namespace, sysLogger)
	themeService := service.NewThemeService(store, cfg.App.Namespace, wsHub)
	workspaceService := service.NewWorkspaceService(profileService)
	shellService := service.NewShellService(profileService, themeService, sessionRepo, toastRepo, wsHub)

	publisherService := service.NewPublisherService(cfg.Assistant.PromptTopic, pubSub)
	assistantService := service.NewAssistantService(publisherService, eventPublisher, wsHub, sysLogger)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Assistant.PromptTopic, aiClient, assistantService, sysLogger)

	authService := service.NewAuthService(
		sessionRepo,
		profileService,
		shellService,
		assistantService,
		eventPublisher,
		sysLogger,
		service.AuthOptions{
			JwtSecret:  cfg.Keys.JwtSecret,
			LoginDelay: cfg.Session.LoginDelay,
			TokenTTL:   cfg.Session.TTL,
		},
	)

	// 6. Controllers & Handlers
	c.JwtMiddleware = serverutils.JwtMiddleware(authService)
	c.AuthController = controller.NewAuthController(authService)
	c.ThemeController = controller.NewThemeController(themeService)
	c.ShellController = controller.NewShellController(shellService)
	c.AssistantController = controller.NewAssistantController(assistantService)
	c.WorkspaceController = controller.NewWorkspaceController(workspaceService)
	c.EventsHandler = handler.NewEventsHandler(authService, wsHub, sysLogger)
	c.PageHandler = handler.NewPageHandler(authService, shellService, assistantService, themeService, cfg.Session.ToastTTL)

	return c, nil
}

func newKeyValueStore(backend string, db *gorm.DB, rdb *redis.Client) (contract.KeyValueRepository, error) {
	switch backend {
	case StorageBackendPostgres:
		if db == nil {
			return nil, fmt.Errorf("storage backend %q needs DB_CONNECTION_STRING", backend)
		}
		return implementation.NewKeyValueRepository(db), nil
	case StorageBackendRedis:
		if rdb == nil {
			return nil, fmt.Errorf("storage backend %q needs REDIS_URL", backend)
		}
		return implementation.NewRedisKeyValueRepository(rdb), nil
	case StorageBackendMemory, "":
		return memory.NewKeyValueRepository(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
