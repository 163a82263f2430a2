package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/kranthi-07/Dab/internal/cache"
	"github.com/kranthi-07/Dab/internal/config"
	h "github.com/kranthi-07/Dab/internal/http"
	"github.com/kranthi-07/Dab/internal/repository"
	"github.com/kranthi-07/Dab/internal/service"
	"github.com/kranthi-07/Dab/internal/session"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	if cfg.Production() {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	logger := log.WithField("service", "storefront")

	// Set up MongoDB connection
	ctx := context.Background()
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to MongoDB")
	}

	repo := repository.NewMongoRepository(mongoDB)
	if err := repository.CreateIndexes(ctx, mongoDB); err != nil {
		logger.WithError(err).Fatal("failed to create indexes")
	}
	logger.WithField("uri", cfg.MongoURI).Info("connected to MongoDB")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Fatal("redis connection failed")
	}
	logger.Info("redis ping succeeded")

	accountCache := cache.NewRedisCache(redisClient)
	sessions := session.NewRedisStore(redisClient, cfg.SessionTTL)

	authService := service.NewAuthService(repo, accountCache, logger)
	cartService := service.NewCartService(repo, accountCache, logger)
	favoritesService := service.NewFavoritesService(repo, accountCache, logger)

	authHandler := h.NewAuthHandler(authService, sessions, cfg.SessionTTL, cfg.Production(), logger)
	cartHandler := h.NewCartHandler(cartService)
	favoritesHandler := h.NewFavoritesHandler(favoritesService)

	router := h.NewRouter(authHandler, cartHandler, favoritesHandler, sessions, cfg.RequestTimeout, cfg.MaxRequestBodySize)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.HTTPPort).Info("storefront API starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Fatal("server forced to shutdown")
	}

	if err := mongoDB.Client().Disconnect(ctx); err != nil {
		logger.WithError(err).Warn("mongo disconnect failed")
	}

	logger.Info("server exited")
}
