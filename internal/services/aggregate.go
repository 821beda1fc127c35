package services

import (
	"context"
	"sort"
	"strings"

	"github.com/GregMSThompson/bank-closures/internal/models"
	"github.com/GregMSThompson/bank-closures/pkg/logger"
)

type extractionLister interface {
	List(ctx context.Context) ([]models.Extraction, error)
}

type bankDataWriter interface {
	WriteJSONIfChanged(ctx context.Context, name string, v any) (bool, error)
}

type aggregateService struct {
	extractions extractionLister
	static      bankDataWriter
}

func NewAggregateService(extractions extractionLister, static bankDataWriter) *aggregateService {
	return &aggregateService{extractions: extractions, static: static}
}

// Aggregate rebuilds by_bank.json and reports whether its content changed.
func (s *aggregateService) Aggregate(ctx context.Context) (models.BankData, bool, error) {
	exts, err := s.extractions.List(ctx)
	if err != nil {
		return nil, false, err
	}

	data := BuildBankData(exts)
	changed, err := s.static.WriteJSONIfChanged(ctx, BankDataFile, data)
	if err != nil {
		return nil, false, err
	}

	logger.FromContext(ctx).Info("bank data aggregated", "extractions", len(exts), "banks", len(data), "changed", changed)
	return data, changed, nil
}

// BuildBankData groups every extracted attempt under its bank, oldest
// comment first.
func BuildBankData(exts []models.Extraction) models.BankData {
	ordered := append([]models.Extraction(nil), exts...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Date != ordered[j].Date {
			return ordered[i].Date < ordered[j].Date
		}
		return ordered[i].CommentID < ordered[j].CommentID
	})

	data := make(models.BankData)
	for _, ext := range ordered {
		for _, a := range ext.ExtractedData.ClosureAttempts {
			bank := strings.TrimSpace(a.BankName)
			if bank == "" {
				continue
			}
			data[bank] = append(data[bank], models.BankAttempt{
				CommentID: ext.CommentID,
				Method:    a.Method,
				Success:   a.Success,
				Timestamp: float64(ext.Date),
			})
		}
	}
	return data
}
