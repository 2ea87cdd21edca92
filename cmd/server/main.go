package main

import (
	"fmt"
	"log"

	"github.com/maximvlah/ntf/internal/adapter"
	_ "github.com/maximvlah/ntf/internal/adapter/natif"
	"github.com/maximvlah/ntf/internal/config"
	"github.com/maximvlah/ntf/internal/handler"
	"github.com/maximvlah/ntf/internal/registry/inmemory"
	"github.com/maximvlah/ntf/internal/router"
	"github.com/maximvlah/ntf/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	docAdapter, err := adapter.New(cfg.Batch.Adapter)
	if err != nil {
		return fmt.Errorf("failed to resolve document adapter: %w", err)
	}

	// Initialize registry and services
	jobRegistry := inmemory.New()
	batchSvc := service.NewBatchService(docAdapter, jobRegistry, cfg.Storage.ArtifactDir, service.BatchConfig{
		MaxDocuments: cfg.Batch.MaxDocuments,
		Concurrency:  cfg.Batch.Concurrency,
	})

	// Initialize handlers
	batchH := handler.NewBatchHandler(batchSvc, jobRegistry, &cfg.Storage)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, batchH, healthH)

	log.Printf("Server starting on %s (adapter=%s, batch cap=%d)",
		cfg.Server.Port, docAdapter.Name(), cfg.Batch.MaxDocuments)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
