package store

import (
	"context"

	"github.com/GregMSThompson/bank-closures/internal/models"
)

type extractionFileStore struct {
	path string
}

func NewExtractionFileStore(path string) *extractionFileStore {
	return &extractionFileStore{path: path}
}

func (s *extractionFileStore) List(_ context.Context) ([]models.Extraction, error) {
	return readJSONL[models.Extraction](s.path)
}

// Save appends one extraction so a crash mid-run keeps earlier results.
func (s *extractionFileStore) Save(_ context.Context, ext models.Extraction) error {
	return appendJSONL(s.path, ext)
}
