package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Totarae/shortenbot/internal/handlers"
	"github.com/Totarae/shortenbot/internal/middleware"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(chimw.Recoverer)

	r.Post("/", handler.SlashCommand)
	r.Post("/slack/shorten", handler.SlashCommand)
	r.Get("/ping", handler.Ping)
	return r
}
