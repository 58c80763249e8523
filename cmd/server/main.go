package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/joypop/joypop-api/internal/auth"
	"github.com/joypop/joypop-api/internal/cache"
	"github.com/joypop/joypop-api/internal/config"
	"github.com/joypop/joypop-api/internal/database"
	"github.com/joypop/joypop-api/internal/handler"
	"github.com/joypop/joypop-api/internal/prefs"
	"github.com/joypop/joypop-api/internal/queue"
	"github.com/joypop/joypop-api/internal/ratelimit"
	"github.com/joypop/joypop-api/internal/repository"
	"github.com/joypop/joypop-api/internal/router"
	"github.com/joypop/joypop-api/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	rlCfg := config.LoadRateLimitConfig()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connect failed")
	}
	defer func() { _ = db.Close() }()

	st, err := store.NewMySQL(db, cfg.StarKeyHex)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		// OTP login and preferences both live in Redis.
		log.Fatal().Msg("redis connect failed")
	}

	c := cache.New()
	limiter := ratelimit.New(st, rlCfg.Quota, rlCfg.Window, log)

	stars := repository.NewStarRepo(st, c, limiter, log)
	jars := repository.NewJarRepo(st, c)
	sessions := auth.NewSessions(db)
	profiles := repository.NewProfileRepo(st, c, sessions, log)

	otp := auth.NewOTP(rdb, auth.LogSender{Log: log}, time.Duration(cfg.OTPTTLMin)*time.Minute, cfg.BcryptCost, log)
	prefStore := prefs.NewRedisStore(rdb)

	go func() {
		if err := queue.StartEventsConsumer(log); err != nil {
			log.Warn().Err(err).Msg("events consumer stopped")
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	router.Register(e, router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, st, sessions, otp, log),
		Stars:    handler.NewStarHandler(stars, log),
		Jars:     handler.NewJarHandler(jars, stars, log),
		Profile:  handler.NewProfileHandler(profiles, prefStore, log),
		Insights: handler.NewInsightsHandler(stars),
		Prefs:    handler.NewPrefsHandler(prefStore),
	}, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
