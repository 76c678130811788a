// Package store reads and writes snapshot documents. The whole document is
// loaded resident; snapshot sizes are bounded by one user's history.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/carson-networks/budget-snapshot/internal/snapshot"
)

// Load reads and decodes a snapshot document from path.
func Load(path string) (*snapshot.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var doc snapshot.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return &doc, nil
}

// Save encodes the document with two-space indentation and writes it to
// path, replacing any existing file.
func Save(path string, doc *snapshot.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	raw = append(raw, '\n')

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}
