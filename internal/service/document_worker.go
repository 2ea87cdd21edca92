package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/maximvlah/ntf/internal/domain"
	"github.com/maximvlah/ntf/internal/flatten"
	"github.com/maximvlah/ntf/internal/port"
)

// DocumentResult is one document's contribution to a batch. Row order within
// a result matches line-item order in the source document.
type DocumentResult struct {
	Filename string
	Rows     []domain.FlatRow
}

// ProcessDocument reads and normalizes one parser-output document. It never
// fails: any read, decode, or normalization error is absorbed into a single
// sentinel row so one bad document cannot abort the batch. Failed documents
// are not retried.
func ProcessDocument(path string, adapter port.DocumentAdapter) DocumentResult {
	base := filepath.Base(path)

	rows, err := documentRows(path, adapter)
	if err != nil {
		log.Printf("documentWorker: %s: %v", base, err)
		return DocumentResult{Filename: base, Rows: []domain.FlatRow{domain.FailureRow(base)}}
	}

	for _, row := range rows {
		row["filename"] = base
	}
	return DocumentResult{Filename: base, Rows: rows}
}

func documentRows(path string, adapter port.DocumentAdapter) ([]domain.FlatRow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	receipt, err := adapter.Normalize(doc)
	if err != nil {
		return nil, err
	}
	return flatten.Flatten(receipt), nil
}
