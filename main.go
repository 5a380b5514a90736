package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"videotube/infrastructure/cache"
	"videotube/infrastructure/clients/assethost"
	"videotube/infrastructure/configuration"
	"videotube/infrastructure/logger"
	"videotube/infrastructure/persistence"
	httpHandler "videotube/interfaces/http"
	"videotube/server"
	"videotube/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	app := configuration.C.App

	mongoClient, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to MongoDB")
		os.Exit(1)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB ping failed")
		os.Exit(1)
	}
	logger.GetLogger().Info("MongoDB connected successfully")

	db := mongoClient.Database(configuration.C.Database.Mongo.Name)
	if err := persistence.EnsureIndexes(ctx, db); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while ensuring indexes")
		os.Exit(1)
	}

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - dashboard stats will be computed live")
		redisClient = nil
	} else {
		logger.GetLogger().Info("Redis client initialized successfully")
	}

	assetStore := assethost.NewClient(configuration.C.AssetHost.BaseURL, configuration.C.AssetHost.APIKey)

	userRepository := persistence.NewUserRepository(db)
	videoRepository := persistence.NewVideoRepository(mongoClient, db)
	playlistRepository := persistence.NewPlaylistRepository(db)
	commentRepository := persistence.NewCommentRepository(db)
	likeRepository := persistence.NewLikeRepository(db)
	subscriptionRepository := persistence.NewSubscriptionRepository(db)
	tweetRepository := persistence.NewTweetRepository(db)
	statsCache := cache.NewStatsCache(redisClient)

	watchHistory := usecase.NewWatchHistoryMaintainer(playlistRepository)
	userUsecase := usecase.NewUserUsecase(userRepository, playlistRepository, assetStore, app.SecretKey)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, likeRepository, subscriptionRepository, assetStore, watchHistory, statsCache)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepository, videoRepository)
	commentUsecase := usecase.NewCommentUsecase(commentRepository, videoRepository)
	likeUsecase := usecase.NewLikeUsecase(likeRepository, videoRepository, commentRepository, tweetRepository)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepository, userRepository)
	tweetUsecase := usecase.NewTweetUsecase(tweetRepository)
	dashboardUsecase := usecase.NewDashboardUsecase(videoRepository, likeRepository, subscriptionRepository, statsCache)

	router := server.InitiateRouter(
		httpHandler.NewUserHandler(userUsecase),
		httpHandler.NewVideoHandler(videoUsecase),
		httpHandler.NewPlaylistHandler(playlistUsecase),
		httpHandler.NewCommentHandler(commentUsecase),
		httpHandler.NewLikeHandler(likeUsecase),
		httpHandler.NewSubscriptionHandler(subscriptionUsecase),
		httpHandler.NewTweetHandler(tweetUsecase),
		httpHandler.NewDashboardHandler(dashboardUsecase),
		httpHandler.NewHealthHandler(mongoClient),
	)

	logger.GetLogger().WithField("port", app.Port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", app.Port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error while disconnecting from MongoDB")
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
