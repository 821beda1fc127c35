package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/GregMSThompson/bank-closures/internal/dto"
	"github.com/GregMSThompson/bank-closures/internal/errs"
	"github.com/GregMSThompson/bank-closures/internal/models"
	"github.com/GregMSThompson/bank-closures/pkg/helpers"
	"github.com/GregMSThompson/bank-closures/pkg/logger"
)

type vertexClient interface {
	GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error)
}

type commentLister interface {
	List(ctx context.Context) ([]models.Comment, error)
}

type extractionStore interface {
	List(ctx context.Context) ([]models.Extraction, error)
	Save(ctx context.Context, ext models.Extraction) error
}

type extractService struct {
	vertex      vertexClient
	comments    commentLister
	extractions extractionStore
}

func NewExtractService(vertex vertexClient, comments commentLister, extractions extractionStore) *extractService {
	return &extractService{
		vertex:      vertex,
		comments:    comments,
		extractions: extractions,
	}
}

// ExtractNew runs the model over every comment that has no extraction yet,
// saving each result as soon as it is available.
func (s *extractService) ExtractNew(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	comments, err := s.comments.List(ctx)
	if err != nil {
		return 0, err
	}
	done, err := s.extractions.List(ctx)
	if err != nil {
		return 0, err
	}
	extracted := make(map[string]bool, len(done))
	for _, ext := range done {
		extracted[ext.CommentID] = true
	}

	count := 0
	for _, c := range comments {
		if extracted[c.ID] {
			continue
		}
		ext, err := s.ExtractComment(ctx, c)
		if err != nil {
			return count, err
		}
		if err := s.extractions.Save(ctx, ext); err != nil {
			return count, err
		}
		extracted[c.ID] = true
		count++
		log.Info("extracted closure data", "comment_id", c.ID, "attempts", len(ext.ExtractedData.ClosureAttempts))
	}

	log.Info("extraction finished", "comments", len(comments), "new", count)
	return count, nil
}

func (s *extractService) ExtractComment(ctx context.Context, c models.Comment) (models.Extraction, error) {
	resp, err := s.vertex.GenerateContent(ctx, dto.VertexGenerateRequest{
		System:           extractionSystemPrompt,
		UserMessage:      extractionUserPrompt(c),
		ResponseMIMEType: "application/json",
		ResponseSchema:   extractionSchema(),
		Temperature:      helpers.Ptr(float32(0)),
	})
	if err != nil {
		return models.Extraction{}, err
	}

	data, err := parseClosureData(resp.Text)
	if err != nil {
		return models.Extraction{}, err
	}

	kept := data.ClosureAttempts[:0]
	for _, a := range data.ClosureAttempts {
		a.BankName = strings.TrimSpace(a.BankName)
		a.Method = strings.ToLower(strings.TrimSpace(a.Method))
		if !models.IsClosureMethod(a.Method) {
			logger.FromContext(ctx).Warn("dropping attempt with unknown method",
				"comment_id", c.ID, "bank", a.BankName, "method", a.Method)
			continue
		}
		kept = append(kept, a)
	}
	data.ClosureAttempts = kept

	return models.Extraction{
		CommentID:     c.ID,
		Date:          c.Timestamp,
		ExtractedData: data,
	}, nil
}

func parseClosureData(text string) (models.ClosureData, error) {
	var data models.ClosureData
	text = strings.TrimSpace(text)
	if text == "" {
		return data, errs.NewDecodeError("vertex response", errs.NewValidationError("empty response"))
	}
	// some responses still arrive fenced despite the JSON mime type
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &data); err != nil {
		return models.ClosureData{}, errs.NewDecodeError("vertex response", err)
	}
	if data.ClosureAttempts == nil {
		data.ClosureAttempts = []models.ClosureAttempt{}
	}
	return data, nil
}
