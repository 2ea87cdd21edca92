package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maximvlah/ntf/internal/domain"
	"github.com/maximvlah/ntf/internal/export"
	"github.com/maximvlah/ntf/internal/port"
)

// BatchConfig holds settings for batch processing.
type BatchConfig struct {
	// MaxDocuments caps how many documents one batch run will process;
	// documents beyond the cap are dropped from the run.
	MaxDocuments int
	// Concurrency bounds the worker pool. Zero means runtime.NumCPU().
	Concurrency int
}

// BatchService turns a batch of parser-output documents into one spreadsheet
// artifact published under a fresh job identifier.
type BatchService interface {
	RunBatch(ctx context.Context, paths []string) (*domain.Job, error)
}

type batchService struct {
	adapter     port.DocumentAdapter
	registry    port.JobRegistry
	artifactDir string
	cfg         BatchConfig
}

// NewBatchService creates a BatchService implementation.
func NewBatchService(adapter port.DocumentAdapter, registry port.JobRegistry, artifactDir string, cfg BatchConfig) BatchService {
	if cfg.MaxDocuments <= 0 {
		cfg.MaxDocuments = 100
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.NumCPU()
	}
	return &batchService{
		adapter:     adapter,
		registry:    registry,
		artifactDir: artifactDir,
		cfg:         cfg,
	}
}

func (s *batchService) RunBatch(ctx context.Context, paths []string) (*domain.Job, error) {
	job := &domain.Job{ID: uuid.New(), CreatedAt: time.Now()}

	accepted := paths
	if len(accepted) > s.cfg.MaxDocuments {
		log.Printf("batchService.RunBatch: job %s: batch of %d capped at %d documents, skipping %d",
			job.ID, len(paths), s.cfg.MaxDocuments, len(paths)-s.cfg.MaxDocuments)
		accepted = accepted[:s.cfg.MaxDocuments]
	}
	job.DocumentCount = len(accepted)

	if err := os.MkdirAll(s.artifactDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating artifact dir: %w", err)
	}
	csvPath := filepath.Join(s.artifactDir, job.ID.String()+".csv")
	writer, err := export.NewTableWriter(csvPath)
	if err != nil {
		return nil, fmt.Errorf("opening output table: %w", err)
	}

	results := s.dispatch(ctx, accepted)

	// Drain completions as they arrive; the table is only ever appended from
	// this loop (single-writer). Completion order across documents is
	// non-deterministic; row order within one document is preserved.
	var sinkErr error
	for res := range results {
		if sinkErr != nil || ctx.Err() != nil {
			continue // keep draining so in-flight workers can finish
		}
		if err := writer.Append(res.Rows); err != nil {
			sinkErr = err
		}
	}

	if err := ctx.Err(); err != nil {
		_ = writer.Discard()
		return nil, fmt.Errorf("batch %s canceled: %w", job.ID, err)
	}
	if sinkErr != nil {
		_ = writer.Discard()
		return nil, fmt.Errorf("writing output table: %w", sinkErr)
	}

	job.RowCount = writer.RowCount()
	if _, err := writer.Finalize(); err != nil {
		_ = os.Remove(csvPath)
		return nil, fmt.Errorf("finalizing output table: %w", err)
	}

	xlsxPath := strings.TrimSuffix(csvPath, ".csv") + ".xlsx"
	if err := export.ConvertToXLSX(csvPath, xlsxPath); err != nil {
		_ = os.Remove(csvPath)
		return nil, fmt.Errorf("converting artifact: %w", err)
	}
	if err := os.Remove(csvPath); err != nil {
		log.Printf("batchService.RunBatch: job %s: removing intermediate csv: %v", job.ID, err)
	}

	job.ArtifactPath = xlsxPath
	s.registry.Publish(job)

	log.Printf("batchService.RunBatch: job %s: %d documents, %d rows, artifact %s",
		job.ID, job.DocumentCount, job.RowCount, xlsxPath)
	return job, nil
}

// dispatch fans the accepted documents out to a bounded worker pool and
// returns the completion channel. The channel closes once every dispatched
// worker has finished or been abandoned due to cancellation.
func (s *batchService) dispatch(ctx context.Context, paths []string) <-chan DocumentResult {
	results := make(chan DocumentResult)
	sem := make(chan struct{}, s.cfg.Concurrency)

	go func() {
		var wg sync.WaitGroup
		defer func() {
			wg.Wait()
			close(results)
		}()

		for _, path := range paths {
			select {
			case sem <- struct{}{}: // acquire
			case <-ctx.Done():
				return
			}
			wg.Add(1)
			go func(path string) {
				defer wg.Done()
				defer func() { <-sem }() // release
				defer func() {
					if r := recover(); r != nil {
						// A defect in one worker drops that document's
						// contribution; the batch continues.
						log.Printf("batchService: worker panic on %s: %v", filepath.Base(path), r)
					}
				}()
				select {
				case results <- ProcessDocument(path, s.adapter):
				case <-ctx.Done():
				}
			}(path)
		}
	}()

	return results
}
