// Package inmemory provides the process-lifetime job registry. Entries live
// until retrieved once; there is no durable storage behind it.
package inmemory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/maximvlah/ntf/internal/domain"
)

// Registry is a mutex-guarded map from job id to completed job. It implements
// port.JobRegistry.
type Registry struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*domain.Job
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{jobs: make(map[uuid.UUID]*domain.Job)}
}

// Publish records a completed job.
func (r *Registry) Publish(job *domain.Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
}

// Take looks up a job and removes it atomically. A second Take for the same
// id fails with domain.ErrJobNotFound.
func (r *Registry) Take(id uuid.UUID) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return job, nil
}
