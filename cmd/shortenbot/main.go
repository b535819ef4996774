package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Totarae/shortenbot/internal/auth"
	"github.com/Totarae/shortenbot/internal/config"
	"github.com/Totarae/shortenbot/internal/handlers"
	"github.com/Totarae/shortenbot/internal/httpclient"
	"github.com/Totarae/shortenbot/internal/repositories"
	"github.com/Totarae/shortenbot/internal/router"
	"github.com/Totarae/shortenbot/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Инициализация конфигурации
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		logger.Fatal("Ошибка конфигурации", zap.Error(err))
	}

	client := httpclient.New(httpclient.Config{
		MaxRetries: cfg.RetryMax,
		RetryWait:  cfg.RetryWait,
		Timeout:    cfg.RequestTimeout,
	}, logger)
	defer client.Close()

	repo := repositories.NewLinkRepository(client, cfg.APIBaseURL, cfg.APIKey, cfg.AppName)
	svc := service.NewShortenerService(repo, logger)
	handler := handlers.NewHandler(auth.New(cfg.SigningSecret, cfg.SignatureMaxAge), svc, logger)

	srv := newServer(cfg, router.NewRouter(handler, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Ошибка при остановке сервера", zap.Error(err))
		}
	}()

	logger.Info("Сервер запущен", zap.String("address", cfg.ServerAddress), zap.String("api", cfg.APIBaseURL))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Ошибка при запуске сервера", zap.Error(err))
	}
	logger.Info("Сервер остановлен")
}

// newServer создаёт HTTP-сервер. WriteTimeout покрывает все попытки запроса к API вместе с паузами.
func newServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout*time.Duration(cfg.RetryMax+1) + cfg.RetryWait<<cfg.RetryMax,
	}
}
