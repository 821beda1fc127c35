package services

import (
	"context"

	"github.com/GregMSThompson/bank-closures/internal/dto"
	"github.com/GregMSThompson/bank-closures/internal/models"
	"github.com/GregMSThompson/bank-closures/pkg/logger"
)

type commentUpdater interface {
	UpdateComments(ctx context.Context) (int, error)
}

type commentExtractor interface {
	ExtractNew(ctx context.Context) (int, error)
}

type bankAggregator interface {
	Aggregate(ctx context.Context) (models.BankData, bool, error)
}

type metadataStamper interface {
	Stamp(ctx context.Context) (models.Metadata, error)
}

type refreshService struct {
	scrape     commentUpdater
	extract    commentExtractor
	aggregate  bankAggregator
	stamp      metadataStamper
	forceStamp bool
}

func NewRefreshService(scrape commentUpdater, extract commentExtractor, aggregate bankAggregator, stamp metadataStamper, forceStamp bool) *refreshService {
	return &refreshService{
		scrape:     scrape,
		extract:    extract,
		aggregate:  aggregate,
		stamp:      stamp,
		forceStamp: forceStamp,
	}
}

// Run scrapes, extracts and aggregates, then stamps metadata when the
// published bank data changed. The first failing step aborts the run.
func (s *refreshService) Run(ctx context.Context) (dto.RefreshResult, error) {
	var res dto.RefreshResult
	var err error

	_, sctx := logger.With(ctx, "step", "scrape")
	if res.NewComments, err = s.scrape.UpdateComments(sctx); err != nil {
		return res, err
	}

	_, ectx := logger.With(ctx, "step", "extract")
	if res.NewExtractions, err = s.extract.ExtractNew(ectx); err != nil {
		return res, err
	}

	_, actx := logger.With(ctx, "step", "aggregate")
	data, changed, err := s.aggregate.Aggregate(actx)
	if err != nil {
		return res, err
	}
	res.Banks = len(data)
	res.Changed = changed

	if changed || s.forceStamp {
		_, mctx := logger.With(ctx, "step", "stamp")
		meta, err := s.stamp.Stamp(mctx)
		if err != nil {
			return res, err
		}
		res.Stamped = true
		res.LastUpdated = meta.LastUpdated
	}

	logger.FromContext(ctx).Info("refresh complete",
		"new_comments", res.NewComments,
		"new_extractions", res.NewExtractions,
		"banks", res.Banks,
		"changed", res.Changed,
		"stamped", res.Stamped)
	return res, nil
}
