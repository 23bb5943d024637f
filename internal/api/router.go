package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/health-tracker/docs"
	"github.com/blaisecz/health-tracker/internal/api/handler"
	"github.com/blaisecz/health-tracker/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	recordHandler *handler.RecordHandler
	syncHandler   *handler.SyncHandler
	adviceHandler *handler.AdviceHandler
}

func NewRouter(recordHandler *handler.RecordHandler, syncHandler *handler.SyncHandler, adviceHandler *handler.AdviceHandler) *Router {
	return &Router{
		recordHandler: recordHandler,
		syncHandler:   syncHandler,
		adviceHandler: adviceHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/records", func(r chi.Router) {
			r.Post("/", rt.recordHandler.Save)
			r.Get("/", rt.recordHandler.List)
			r.Post("/import", rt.recordHandler.Import)
			r.Get("/export", rt.recordHandler.Export)
			r.Delete("/{recordId}", rt.recordHandler.Delete)
		})

		r.Post("/sync/fit", rt.syncHandler.SyncFit)
		r.Post("/advice", rt.adviceHandler.Generate)
	})

	return r
}
