package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/GregMSThompson/bank-closures/internal/errs"
	"github.com/GregMSThompson/bank-closures/internal/models"
)

type extractionStore struct {
	client *firestore.Client
}

func NewExtractionStore(client *firestore.Client) *extractionStore {
	return &extractionStore{client: client}
}

func (s *extractionStore) collection() *firestore.CollectionRef {
	return s.client.Collection("closure_extractions")
}

func (s *extractionStore) Save(ctx context.Context, ext models.Extraction) error {
	_, err := s.collection().Doc(ext.CommentID).Set(ctx, ext)
	if err != nil {
		return errs.NewDatabaseError("write", "failed to save extraction", err)
	}
	return nil
}

func (s *extractionStore) List(ctx context.Context) ([]models.Extraction, error) {
	iter := s.collection().OrderBy("date", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []models.Extraction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list extractions", err)
		}
		var ext models.Extraction
		if err := doc.DataTo(&ext); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse extraction data", err)
		}
		out = append(out, ext)
	}
	return out, nil
}
