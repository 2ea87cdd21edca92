package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job represents one completed batch-processing run. It is mutated only by
// the batch coordinator and becomes immutable once published to the registry.
type Job struct {
	ID            uuid.UUID `json:"id"`
	DocumentCount int       `json:"document_count"`
	RowCount      int       `json:"row_count"`
	ArtifactPath  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
