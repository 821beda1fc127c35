package services

import (
	"context"
	"time"

	"github.com/GregMSThompson/bank-closures/internal/models"
	"github.com/GregMSThompson/bank-closures/pkg/logger"
)

type staticWriter interface {
	WriteJSON(ctx context.Context, name string, v any) error
}

type metadataService struct {
	static   staticWriter
	clockNow func() time.Time
}

func NewMetadataService(static staticWriter) *metadataService {
	return &metadataService{
		static:   static,
		clockNow: time.Now,
	}
}

// Stamp overwrites metadata.json with the current time in epoch millis.
func (s *metadataService) Stamp(ctx context.Context) (models.Metadata, error) {
	meta := models.Metadata{LastUpdated: float64(s.clockNow().UnixMilli())}
	if err := s.static.WriteJSON(ctx, MetadataFile, meta); err != nil {
		return models.Metadata{}, err
	}

	logger.FromContext(ctx).Info("metadata stamped", "last_updated", meta.LastUpdated)
	return meta, nil
}
