package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	cacheadapter "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/cache/adapter"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/config"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/database"
	graphadapter "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/graph/adapter"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/logger"
	queueadapter "github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/queue/adapter"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/realtime"

	v1 "github.com/kharedevansh11/RichPanel-Assignment/cmd/api/router/v1"
	authadapter "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/persistence/repository/adapter"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/token"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/task"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/usecase"
	inboxadapter "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/persistence/repository/adapter"
	inboxHandler "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/presentation/http"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the database on startup
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pool, err := database.Connect(connectCtx, cfg.DBURL)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	cache, err := cacheadapter.NewRedisCache(cfg.RedisURL)
	if err != nil {
		zlog.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer func() { _ = cache.Close() }()

	queueClient, err := queueadapter.NewAsynqClient(cfg.RedisURL)
	if err != nil {
		zlog.Fatal("failed to create queue client", zap.Error(err))
	}
	defer func() { _ = queueClient.Close() }()

	queueServer, err := queueadapter.NewAsynqServer(cfg.RedisURL, zlog)
	if err != nil {
		zlog.Fatal("failed to create queue server", zap.Error(err))
	}

	gateway := graphadapter.NewHTTPGateway(cfg.Facebook.GraphBaseURL, cfg.Facebook.GraphVersion, cfg.Facebook.SendTimeout)
	hub := realtime.NewHub()
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	accounts := authadapter.NewPgAccountRepository(pool)
	conversations := inboxadapter.NewPgConversationRepository(pool)
	messages := inboxadapter.NewPgMessageRepository(pool)

	resolver := usecase.NewResolveThreadUseCase(conversations, gateway, cache, zlog)
	inboxDeps := inboxHandler.Deps{
		Ingest:            usecase.NewIngestWebhookUseCase(accounts, resolver, conversations, messages, cache, hub, zlog),
		ListConversations: usecase.NewListConversationsUseCase(conversations),
		GetMessages:       usecase.NewGetMessagesUseCase(conversations, messages),
		SendReply:         usecase.NewSendReplyUseCase(accounts, conversations, messages, gateway, hub, cfg.Facebook.SendTimeout),
		ConnectPage:       usecase.NewConnectPageUseCase(accounts, queueClient, zlog),
		GetPageLink:       usecase.NewGetPageLinkUseCase(accounts),
		DisconnectPage:    usecase.NewDisconnectPageUseCase(accounts),
		Hub:               hub,
		Tokens:            tokens,
		VerifyToken:       cfg.Facebook.VerifyToken,
		Timeout:           cfg.RequestTimeout,
		Log:               zlog,
	}

	task.RegisterSubscribePageTask(queueServer, gateway, zlog)
	go func() {
		if err := queueServer.Run(ctx); err != nil {
			zlog.Error("queue server stopped", zap.Error(err))
		}
	}()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	v1.RegisterRoutes(r, accounts, tokens, cfg.RequestTimeout, inboxDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		zlog.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("http shutdown failed", zap.Error(err))
	}
}
