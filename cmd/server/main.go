package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nmartinas/theater-box-office/internal/config"
	"github.com/nmartinas/theater-box-office/internal/handler"
	"github.com/nmartinas/theater-box-office/internal/middleware"
	"github.com/nmartinas/theater-box-office/internal/model"
	"github.com/nmartinas/theater-box-office/internal/queue"
	"github.com/nmartinas/theater-box-office/internal/repository"
	"github.com/nmartinas/theater-box-office/internal/router"
	"github.com/nmartinas/theater-box-office/internal/service"
	"github.com/nmartinas/theater-box-office/internal/theater"
)

func main() {
	_ = godotenv.Load() // load .env if present, ignore error

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg := config.Load()

	var schedule []*model.Showing
	if cfg.ScheduleFile != "" {
		loaded, err := theater.LoadSchedule(cfg.ScheduleFile, time.Now())
		if err != nil {
			logger.Fatal().Err(err).Str("file", cfg.ScheduleFile).Msg("could not load schedule")
		}
		schedule = loaded
	} else {
		schedule = theater.DefaultSchedule(time.Now())
	}

	th := theater.New(schedule)
	store := repository.NewReservationStore()

	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn().Msg("redis unavailable, cache and rate limiting disabled")
	}

	var publish func(context.Context, queue.ReservationConfirmedEvent) error
	if cfg.EventsEnabled {
		publish = service.PublishReservationConfirmed
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e,
		&handler.ScheduleHandler{Theater: th},
		&handler.ReservationHandler{Theater: th, Store: store, Logger: logger, Publish: publish},
	)

	logger.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Int("showings", len(schedule)).
		Msg("box office listening")

	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
