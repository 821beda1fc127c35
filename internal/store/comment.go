package store

import (
	"context"

	"github.com/GregMSThompson/bank-closures/internal/models"
)

// commentStore keeps the comment dump as JSON lines, oldest first.
type commentStore struct {
	path string
}

func NewCommentStore(path string) *commentStore {
	return &commentStore{path: path}
}

func (s *commentStore) List(_ context.Context) ([]models.Comment, error) {
	return readJSONL[models.Comment](s.path)
}

// Replace rewrites the whole dump.
func (s *commentStore) Replace(_ context.Context, comments []models.Comment) error {
	return writeJSONL(s.path, comments)
}
