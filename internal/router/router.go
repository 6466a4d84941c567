package router

import (
	"github.com/ToriTreat/Astral/internal/handlers"
	"github.com/ToriTreat/Astral/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware(logger))

	r.Post("/", handler.ReceiveURL)
	r.Post("/api/generate", handler.ReceiveGenerate)
	return r
}
