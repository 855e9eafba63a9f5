package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"settingsd/internal/catalog"
	"settingsd/internal/config"
	"settingsd/internal/httpapi"
	"settingsd/internal/persist"
	"settingsd/internal/settings"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("SETTINGSD_ADDR", ":8090"), "HTTP listen address, e.g. :8090")
	storePath := flag.String("store", envOr("SETTINGSD_STORE", "~/.config/settingsd/settings.json"), "Path of the persisted settings file")
	configPath := flag.String("config", envOr("SETTINGSD_CONFIG", ""), "Optional service config file (.yaml/.json/.toml)")
	logLevel := flag.String("log-level", envOr("SETTINGSD_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	flag.Parse()

	// Config file fills fields the flags left at their defaults; explicit
	// flags win.
	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "settingsd").Logger()

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
		if cfg.Addr != "" && !explicit["addr"] {
			*addr = cfg.Addr
		}
		if cfg.StorePath != "" && !explicit["store"] {
			*storePath = cfg.StorePath
		}
		if cfg.LogLevel != "" && !explicit["log-level"] {
			*logLevel = cfg.LogLevel
		}
		if cfg.CORSEnabled {
			httpapi.SetCORSOptions(true, cfg.CORSOrigins,
				[]string{"GET", "PATCH", "PUT", "POST"},
				[]string{"Content-Type", "X-Log-Level"})
		}
	}

	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		logger = logger.Level(lvl)
	}
	httpapi.SetLogger(logger)

	file, err := persist.NewFile(*storePath, catalog.DefaultSettings())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to resolve settings path")
	}
	loaded := file.Load()

	store := settings.NewWithConfig(settings.StoreConfig{
		Defaults:         catalog.DefaultSettings(),
		Initial:          &loaded,
		ChatCatalog:      catalog.ChatModels(),
		EmbeddingCatalog: catalog.EmbeddingModels(),
	})

	// Persist every successful write.
	store.Subscribe(func() {
		if err := file.Save(store.Get()); err != nil {
			logger.Error().Err(err).Str("path", file.Path()).Msg("failed to persist settings")
		}
	})

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	mux := httpapi.NewMux(store)
	srv := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", *addr).Str("store", file.Path()).Msg("settingsd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}
