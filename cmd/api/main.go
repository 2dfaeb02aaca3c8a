package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/waritphon/devconnect-api/internal/auth"
	"github.com/waritphon/devconnect-api/internal/config"
	"github.com/waritphon/devconnect-api/internal/github"
	"github.com/waritphon/devconnect-api/internal/handler"
	"github.com/waritphon/devconnect-api/internal/mailer"
	"github.com/waritphon/devconnect-api/internal/repository"
	"github.com/waritphon/devconnect-api/internal/usecase"
	"github.com/waritphon/devconnect-api/internal/validation"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongodb")
	}

	db := client.Database(cfg.MongoDatabase)

	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	profileRepo := repository.NewProfileMongoRepository(db)
	postRepo := repository.NewPostMongoRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenIssuer, cfg.TokenLifetime)

	var welcomeMailer usecase.WelcomeMailer
	if m := mailer.New(cfg.SMTP); m != nil {
		welcomeMailer = m
	}

	authUsecase := usecase.NewAuthUsecase(userRepo, tokens, welcomeMailer, &logger)
	profileUsecase := usecase.NewProfileUsecase(profileRepo, postRepo, userRepo)
	postUsecase := usecase.NewPostUsecase(postRepo, userRepo)

	validator := validation.New()
	githubClient := github.NewClient(cfg.GithubClientID, cfg.GithubSecret)

	router := handler.NewRouter(
		tokens,
		handler.NewAuthHandler(authUsecase, validator, &logger),
		handler.NewProfileHandler(profileUsecase, githubClient, validator, &logger),
		handler.NewPostHandler(postUsecase, validator, &logger),
		&logger,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-shutdownCtx.Done()
	logger.Info().Msg("shutting down")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer stopCancel()

	if err := server.Shutdown(stopCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
