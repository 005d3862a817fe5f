package handlers

import (
	"ItemKeeper/internal/middleware"
	"ItemKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler wires middleware and routes.
func NewHandler(
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.WithLogging)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5, "application/json"))

	itemHandler := NewItemHandler(itemService, logger)

	r.Route("/api/items", func(r chi.Router) {
		r.Get("/", itemHandler.List)
		r.Post("/", itemHandler.Create)
		r.Put("/{id}", itemHandler.Update)
		r.Delete("/{id}", itemHandler.Delete)
	})

	return &Handler{Router: r}
}
