package port

import "github.com/maximvlah/ntf/internal/domain"

// DocumentAdapter converts one vendor's parsed-document shape into the
// normalized StructuredReceipt form. Implementations are pure: no network or
// file I/O, deterministic for a given input.
type DocumentAdapter interface {
	// Name reports the adapter identifier used for registration and config.
	Name() string
	// Normalize extracts header and line-item fields from a decoded document.
	// Absent fields yield the empty string; a structure the extraction logic
	// cannot traverse at all yields domain.ErrNormalizationFailed.
	Normalize(doc map[string]any) (*domain.StructuredReceipt, error)
}
