package inmemory

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maximvlah/ntf/internal/domain"
)

func TestRegistry_PublishAndTake(t *testing.T) {
	r := New()
	job := &domain.Job{ID: uuid.New(), RowCount: 3, ArtifactPath: "/tmp/x.xlsx"}

	r.Publish(job)

	got, err := r.Take(job.ID)
	require.NoError(t, err)
	assert.Equal(t, job, got)
}

func TestRegistry_TakeUnknown(t *testing.T) {
	r := New()
	_, err := r.Take(uuid.New())
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestRegistry_TakeIsOneShot(t *testing.T) {
	r := New()
	job := &domain.Job{ID: uuid.New()}
	r.Publish(job)

	_, err := r.Take(job.ID)
	require.NoError(t, err)

	_, err = r.Take(job.ID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestRegistry_ConcurrentTakeYieldsOneWinner(t *testing.T) {
	r := New()
	job := &domain.Job{ID: uuid.New()}
	r.Publish(job)

	const takers = 16
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < takers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Take(job.ID); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
