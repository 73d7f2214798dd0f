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
	"github.com/rs/zerolog"

	"github.com/marciopitersena/clinca-neuro/internal/ai"
	"github.com/marciopitersena/clinca-neuro/internal/api"
	"github.com/marciopitersena/clinca-neuro/internal/clinic"
	"github.com/marciopitersena/clinca-neuro/internal/config"
	"github.com/marciopitersena/clinca-neuro/internal/dialog"
	"github.com/marciopitersena/clinca-neuro/internal/patient"
	"github.com/marciopitersena/clinca-neuro/internal/schedule"
	redisclient "github.com/marciopitersena/clinca-neuro/internal/redis"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("config load error")
	}

	log := newLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Str("http_port", cfg.HTTPPort).Msg("api-server starting up")

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis is optional; without it the AI cache is simply off.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = redisclient.NewRedisClient(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, AI response cache disabled")
		} else {
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Error().Err(err).Msg("error closing redis")
				}
			}()
			log.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")
		}
	}

	ds, err := clinic.LoadDataset(cfg.DatasetPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatasetPath).Msg("dataset load error")
	}
	store := clinic.NewStore(ds, clinic.UUIDGen)
	log.Info().
		Int("patients", store.PatientCount()).
		Int("appointments", len(store.Appointments())).
		Msg("dataset loaded")

	var cache ai.Cache
	if rc := redisclient.NewResponseCache(rdb, cfg.AICacheTTL); rc != nil {
		cache = rc
	}
	aiClient := ai.NewClient(ai.Options{
		BaseURL:    cfg.GeminiBaseURL,
		APIKey:     cfg.GeminiAPIKey,
		FlashModel: cfg.GeminiFlashModel,
		ProModel:   cfg.GeminiProModel,
		Timeout:    cfg.AITimeout,
		Cache:      cache,
		Log:        log,
	})
	if !aiClient.Configured() {
		log.Warn().Msg("GEMINI_API_KEY not set, AI operations will answer with fallback text")
	}

	today := time.Now().Format(schedule.DateLayout)
	agenda := schedule.NewAgenda(store, log, today)
	nav := patient.NewNavigator(store, dialog.LogNotifier{Log: log}, log)

	router := api.NewRouter(api.RouterConfig{
		Store:     store,
		Agenda:    agenda,
		Navigator: nav,
		AI:        aiClient,
		Redis:     rdb,
		Log:       log,
		Env:       cfg.Env,
		Version:   version,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-rootCtx.Done()
	log.Info().Msg("shutting down api-server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func newLogger(env string) zerolog.Logger {
	if env == "dev" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
