package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/avalondental/scheduling-agent/internal/api/router"
	"github.com/avalondental/scheduling-agent/internal/booking"
	"github.com/avalondental/scheduling-agent/internal/bookinglog"
	"github.com/avalondental/scheduling-agent/internal/config"
	"github.com/avalondental/scheduling-agent/internal/conversation"
	"github.com/avalondental/scheduling-agent/internal/gcal"
	"github.com/avalondental/scheduling-agent/internal/http/handlers"
	"github.com/avalondental/scheduling-agent/internal/knowledge"
	"github.com/avalondental/scheduling-agent/internal/notify"
	"github.com/avalondental/scheduling-agent/internal/observability/metrics"
	"github.com/avalondental/scheduling-agent/internal/schedule"
	"github.com/avalondental/scheduling-agent/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting scheduling-agent API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	loc, err := time.LoadLocation(cfg.BusinessTimezone)
	if err != nil {
		logger.Error("invalid business timezone", "timezone", cfg.BusinessTimezone, "error", err)
		os.Exit(1)
	}

	m := metrics.NewSchedulingMetrics(nil)

	calClient, err := gcal.NewClient(ctx, gcal.Options{
		CredentialsJSON: cfg.GoogleCredentialsJSON,
		CredentialsFile: cfg.GoogleCredentialsFile,
		Location:        loc,
	})
	if err != nil {
		logger.Error("failed to create calendar client", "error", err)
		os.Exit(1)
	}
	cal := gcal.WithTimeout(gcal.Instrument(calClient, m), cfg.CalendarRequestTimeout)

	generator := schedule.NewGenerator(cal, cfg.CalendarID, loc)
	committer := booking.NewCommitter(cal, cfg.CalendarID, cfg.BusinessTimezone)
	resolver := booking.NewResolver(generator, committer, cfg.HorizonDays, logger)

	// Office facts live in Redis when configured so the front desk can edit
	// them without a deploy; otherwise the compiled-in set serves reads.
	var knowledgeRepo knowledge.Repository = knowledge.NewStaticRepository(knowledge.Facts)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		redisRepo := knowledge.NewRedisRepository(rdb)
		if err := redisRepo.Seed(ctx, knowledge.Facts); err != nil {
			logger.Warn("failed to seed knowledge store, using static facts", "error", err)
		} else {
			knowledgeRepo = redisRepo
		}
	}
	retriever := knowledge.NewRetriever(knowledgeRepo)

	llm, err := conversation.NewGeminiLLMClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
	if err != nil {
		logger.Error("failed to create Gemini client", "error", err)
		os.Exit(1)
	}
	defer func() { _ = llm.Close() }()

	agentCfg := conversation.AgentConfig{
		LLM:            llm,
		Retriever:      retriever,
		Slots:          generator,
		Resolver:       resolver,
		FrontDeskEmail: cfg.FrontDeskEmail,
		FrontDeskName:  cfg.FrontDeskEmailName,
		Metrics:        m,
		Logger:         logger,
		HorizonDays:    cfg.HorizonDays,
		LLMTimeout:     cfg.LLMRequestTimeout,
		MaxTokens:      int32(cfg.GeminiMaxTokens),
		Temperature:    float32(cfg.GeminiTemperature),
	}

	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to Postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		agentCfg.AuditLog = bookinglog.NewRepository(pool)
	}

	if sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sender != nil {
		agentCfg.Emailer = sender
	}

	agent := conversation.NewAgent(agentCfg)

	chatHandler := handlers.NewChatHandler(agent, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(generator, cfg.HorizonDays, logger)

	r := router.New(&router.Config{
		Logger:              logger,
		ChatHandler:         chatHandler,
		AvailabilityHandler: availabilityHandler,
		MetricsHandler:      promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
