package port

import (
	"github.com/google/uuid"

	"github.com/maximvlah/ntf/internal/domain"
)

// JobRegistry is the process-wide mapping from job identifier to finished
// batch artifact. Entries are added only by a completed coordinator run.
type JobRegistry interface {
	// Publish records a completed job. Readers never observe a partially
	// published entry.
	Publish(job *domain.Job)
	// Take looks up a job and removes it in one step (one-shot retrieval).
	// An unknown or already-taken id fails with domain.ErrJobNotFound.
	Take(id uuid.UUID) (*domain.Job, error)
}
