package main

import (
	"contact_service/internal/config"
	"contact_service/internal/handler"
	"contact_service/internal/lib/logger/sl"
	"contact_service/internal/service"
	"contact_service/internal/storage"
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	//PARSE ARGS
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")

	flag.Parse()
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		log.Fatal("failed get config path from flags")
	}

	_ = godotenv.Load()

	cfg := config.MustLoadConfig(configPath)

	lgr := setupLogger(cfg.Env)
	lgr.Info("started contact service", slog.String("env", cfg.Env))

	//INIT DB
	st, err := storage.NewPostgresStorage(context.Background(), cfg.DbURL)
	if err != nil {
		lgr.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}
	defer st.Close()

	//INIT SERVER
	srvc := service.NewService(lgr, st)
	h := handler.NewHandler(srvc, lgr, []byte(cfg.JWT.Secret), cfg.JWT.TokenTTL)

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      h.InitRoutes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		lgr.Info("http server listening", slog.String("address", cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lgr.Error("failed to start http server", sl.Err(err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		lgr.Error("failed to stop http server", sl.Err(err))
	}

	lgr.Info("gracefully stopped")
}

func setupLogger(env string) *slog.Logger {
	var lgr *slog.Logger

	switch env {
	case envDev:
		lgr = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		lgr = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default: // envLocal
		lgr = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}
	return lgr
}
