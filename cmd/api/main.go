// Health Tracker API
//
// REST API for tracking weight, sleep, and food records.
//
//	@title			Health Tracker API
//	@version		1.0
//	@description	Track weight, sleep, and food records with daily merge rules, fitness-provider sync, and LLM-generated advice.
//
//	@BasePath	/v1
//
//	@tag.name			records
//	@tag.description	Health record endpoints
//
//	@tag.name			sync
//	@tag.description	Fitness-provider synchronization endpoints
//
//	@tag.name			advice
//	@tag.description	Health advice endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/blaisecz/health-tracker/internal/api"
	"github.com/blaisecz/health-tracker/internal/api/handler"
	"github.com/blaisecz/health-tracker/internal/config"
	"github.com/blaisecz/health-tracker/internal/fit"
	"github.com/blaisecz/health-tracker/internal/llm"
	"github.com/blaisecz/health-tracker/internal/seed"
	"github.com/blaisecz/health-tracker/internal/service"
	"github.com/blaisecz/health-tracker/internal/sleep"
	"github.com/blaisecz/health-tracker/internal/store"
	"github.com/blaisecz/health-tracker/internal/telemetry"
	"golang.org/x/oauth2"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when no OTLP endpoint is configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "health-tracker-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Open the persistence slot
	slot, err := newSlot(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	// Rehydrate the record store
	recordStore := store.New(ctx, slot)

	if cfg.Seed {
		log.Println("Seeding store with sample data (SEED=true)...")
		if err := seed.Run(ctx, recordStore); err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}
	}

	// Initialize services
	recordService := service.NewRecordService(recordStore)
	syncService := service.NewSyncService(recordStore, sleep.NewAggregator(0))

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIAdviceModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, advice endpoint will be unavailable")
	}
	adviceService := service.NewAdviceService(recordStore, openaiClient)

	// Initialize handlers
	recordHandler := handler.NewRecordHandler(recordService)
	syncHandler := handler.NewSyncHandler(syncService, newFitSource)
	adviceHandler := handler.NewAdviceHandler(adviceService)

	// Setup router
	router := api.NewRouter(recordHandler, syncHandler, adviceHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func newSlot(cfg *config.Config) (store.Slot, error) {
	if cfg.StorageDriver == config.StoragePostgres {
		db, err := config.NewDatabase(cfg)
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(&store.RecordSlot{}); err != nil {
			return nil, err
		}
		return store.NewGormSlot(db, store.SlotName), nil
	}
	return store.NewFileSlot(cfg.RecordsFile), nil
}

// newFitSource builds a Google Fit client from the caller's bearer token.
func newFitSource(r *http.Request, accessToken string) service.FitSource {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	return fit.NewClient(r.Context(), ts)
}
