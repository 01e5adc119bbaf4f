package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"insightdeck/internal/app"
	"insightdeck/internal/cache"
	"insightdeck/internal/config"
	"insightdeck/internal/logger"
	"insightdeck/internal/repository"
	"insightdeck/internal/service"
	"insightdeck/internal/transport/rest"
	"insightdeck/internal/transport/ws"
)

func main() {
	cfg := config.Load()
	log := logger.New()
	log.Info("starting insightdeck server")

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.WithError(err).Fatal("failed to ping MongoDB")
	}
	log.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.WithError(err).Fatal("failed to ping Redis")
	}
	log.Info("connected to Redis")

	// WebSocket hub
	wsHub := ws.NewHub()

	// Repositories and caches
	deps := &app.App{
		SurveyRepo:   repository.NewSurveyRepo(db),
		ResponseRepo: repository.NewResponseRepo(db),
		ReportCache:  cache.NewReportCache(rdb),
	}

	// Services
	authSvc := service.NewAuthService(cfg)
	surveySvc := service.NewSurveyService(deps.SurveyRepo, deps.ReportCache)
	responseSvc := service.NewResponseService(deps.SurveyRepo, deps.ResponseRepo)
	insightSvc := service.NewInsightService(deps.SurveyRepo, deps.ResponseRepo, deps.ReportCache, log.WithComponent("insights"))
	generatorSvc := service.NewGeneratorService()

	// Inject the hub as the live event sink
	responseSvc.SetBroadcaster(wsHub)
	insightSvc.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		AuthService:      authSvc,
		SurveyService:    surveySvc,
		ResponseService:  responseSvc,
		InsightService:   insightSvc,
		GeneratorService: generatorSvc,
		WSHub:            wsHub,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.HTTPPort).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("ListenAndServe")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("forced shutdown")
	}

	log.Info("server exited")
}
