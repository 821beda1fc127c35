package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/GregMSThompson/bank-closures/internal/dto"
	"github.com/GregMSThompson/bank-closures/internal/models"
	"github.com/GregMSThompson/bank-closures/pkg/logger"
)

const (
	BankDataFile = "by_bank.json"
	MetadataFile = "metadata.json"

	bankDataPath = "/" + BankDataFile
	metadataPath = "/" + MetadataFile
)

type siteFetcher interface {
	GetJSON(ctx context.Context, path string, out any) error
}

type pageDataService struct {
	site siteFetcher
}

func NewPageDataService(site siteFetcher) *pageDataService {
	return &pageDataService{site: site}
}

// Load fetches the bank data and, if requested, the metadata document.
// Both requests run concurrently and either failure fails the whole load.
func (s *pageDataService) Load(ctx context.Context, opts dto.PageDataOptions) (dto.PageData, error) {
	var (
		banks models.BankData
		meta  models.Metadata
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.site.GetJSON(gctx, bankDataPath, &banks)
	})
	if opts.IncludeMetadata {
		g.Go(func() error {
			return s.site.GetJSON(gctx, metadataPath, &meta)
		})
	}
	if err := g.Wait(); err != nil {
		return dto.PageData{}, err
	}

	out := dto.PageData{Banks: banks}
	if opts.IncludeMetadata {
		out.Metadata = &meta
	}

	logger.FromContext(ctx).Debug("page data loaded", "banks", len(banks), "metadata", opts.IncludeMetadata)
	return out, nil
}
