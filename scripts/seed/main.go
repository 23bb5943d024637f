package main

import (
	"context"
	"log"

	"github.com/blaisecz/health-tracker/internal/config"
	"github.com/blaisecz/health-tracker/internal/seed"
	"github.com/blaisecz/health-tracker/internal/store"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	var slot store.Slot
	if cfg.StorageDriver == config.StoragePostgres {
		db, err := config.NewDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&store.RecordSlot{}); err != nil {
			log.Fatalf("Failed to migrate: %v", err)
		}
		slot = store.NewGormSlot(db, store.SlotName)
	} else {
		slot = store.NewFileSlot(cfg.RecordsFile)
	}

	recordStore := store.New(ctx, slot)
	if err := seed.Run(ctx, recordStore); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
}
