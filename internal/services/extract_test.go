package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/GregMSThompson/bank-closures/internal/dto"
	"github.com/GregMSThompson/bank-closures/internal/errs"
	"github.com/GregMSThompson/bank-closures/internal/models"
	"github.com/GregMSThompson/bank-closures/pkg/helpers"
)

type fakeVertex struct {
	responses map[string]string // keyed by a substring of the user message
	err       error
	reqs      []dto.VertexGenerateRequest
}

func (f *fakeVertex) GenerateContent(_ context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return dto.VertexGenerateResponse{}, f.err
	}
	for key, text := range f.responses {
		if strings.Contains(req.UserMessage, key) {
			return dto.VertexGenerateResponse{Text: text}, nil
		}
	}
	return dto.VertexGenerateResponse{Text: `{"closure_attempts":[]}`}, nil
}

type fakeCommentLister struct {
	comments []models.Comment
	err      error
}

func (f *fakeCommentLister) List(context.Context) ([]models.Comment, error) {
	return f.comments, f.err
}

type fakeExtractionStore struct {
	existing []models.Extraction
	saved    []models.Extraction
	saveErr  error
}

func (f *fakeExtractionStore) List(context.Context) ([]models.Extraction, error) {
	return f.existing, nil
}

func (f *fakeExtractionStore) Save(_ context.Context, ext models.Extraction) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, ext)
	return nil
}

func TestExtractNewSkipsExtractedComments(t *testing.T) {
	vertex := &fakeVertex{responses: map[string]string{
		"closed by phone": `{"closure_attempts":[{"success":true,"bank_name":" Chase ","method":"Phone"}]}`,
	}}
	comments := &fakeCommentLister{comments: []models.Comment{
		{ID: "1", Timestamp: 100, Text: "already done"},
		{ID: "2", Timestamp: 200, Text: "closed by phone in five minutes"},
		{ID: "3", Timestamp: 300, Text: "just a question"},
	}}
	store := &fakeExtractionStore{existing: []models.Extraction{{CommentID: "1", Date: 100}}}
	svc := NewExtractService(vertex, comments, store)

	n, err := svc.ExtractNew(helpers.TestCtx())
	if err != nil {
		t.Fatalf("ExtractNew returned error: %v", err)
	}
	if n != 2 || len(vertex.reqs) != 2 {
		t.Fatalf("extracted %d with %d model calls, want 2 and 2", n, len(vertex.reqs))
	}

	want := []models.Extraction{
		{
			CommentID: "2", Date: 200,
			ExtractedData: models.ClosureData{ClosureAttempts: []models.ClosureAttempt{
				{Success: true, BankName: "Chase", Method: models.MethodPhone},
			}},
		},
		{CommentID: "3", Date: 300, ExtractedData: models.ClosureData{ClosureAttempts: []models.ClosureAttempt{}}},
	}
	if !reflect.DeepEqual(store.saved, want) {
		t.Fatalf("saved = %#v, want %#v", store.saved, want)
	}
}

func TestExtractCommentRequest(t *testing.T) {
	vertex := &fakeVertex{}
	svc := NewExtractService(vertex, &fakeCommentLister{}, &fakeExtractionStore{})

	if _, err := svc.ExtractComment(helpers.TestCtx(), models.Comment{ID: "9", Text: "Closed Citi via chat"}); err != nil {
		t.Fatalf("ExtractComment returned error: %v", err)
	}

	req := vertex.reqs[0]
	if req.ResponseMIMEType != "application/json" || req.ResponseSchema == nil {
		t.Fatalf("expected JSON response mode with schema, got %#v", req)
	}
	if !strings.HasSuffix(req.UserMessage, "Comment:'Closed Citi via chat'") {
		t.Fatalf("user message does not end with the comment: %q", req.UserMessage)
	}
	if !strings.Contains(req.UserMessage, "Navy Federal Credit Union (NFCU)") {
		t.Fatal("user message should list preferred banks")
	}
	items := req.ResponseSchema.Properties["closure_attempts"].Items
	if !reflect.DeepEqual(items.Properties["method"].Enum, models.ClosureMethods) {
		t.Fatalf("method enum = %#v", items.Properties["method"].Enum)
	}
}

func TestExtractCommentDropsUnknownMethods(t *testing.T) {
	vertex := &fakeVertex{responses: map[string]string{
		"": "```json\n{\"closure_attempts\":[{\"success\":true,\"bank_name\":\"Ally\",\"method\":\"carrier pigeon\"},{\"success\":false,\"bank_name\":\"Ally\",\"method\":\"0-balance\"}]}\n```",
	}}
	svc := NewExtractService(vertex, &fakeCommentLister{}, &fakeExtractionStore{})

	ext, err := svc.ExtractComment(helpers.TestCtx(), models.Comment{ID: "7", Timestamp: 70})
	if err != nil {
		t.Fatalf("ExtractComment returned error: %v", err)
	}
	want := []models.ClosureAttempt{{Success: false, BankName: "Ally", Method: models.MethodZeroBalance}}
	if !reflect.DeepEqual(ext.ExtractedData.ClosureAttempts, want) {
		t.Fatalf("attempts = %#v, want %#v", ext.ExtractedData.ClosureAttempts, want)
	}
}

func TestExtractCommentInvalidResponse(t *testing.T) {
	for _, text := range []string{"", "not json"} {
		vertex := &fakeVertex{responses: map[string]string{"": text}}
		svc := NewExtractService(vertex, &fakeCommentLister{}, &fakeExtractionStore{})

		_, err := svc.ExtractComment(helpers.TestCtx(), models.Comment{ID: "7"})
		var decodeErr *errs.DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("response %q: error = %v, want DecodeError", text, err)
		}
	}
}

func TestExtractNewStopsOnModelError(t *testing.T) {
	modelErr := errs.NewExternalServiceError("vertex", 0, true, errors.New("quota exceeded"))
	store := &fakeExtractionStore{}
	svc := NewExtractService(&fakeVertex{err: modelErr},
		&fakeCommentLister{comments: []models.Comment{{ID: "1"}, {ID: "2"}}}, store)

	n, err := svc.ExtractNew(helpers.TestCtx())
	if !errors.Is(err, modelErr) {
		t.Fatalf("ExtractNew error = %v, want %v", err, modelErr)
	}
	if n != 0 || len(store.saved) != 0 {
		t.Fatalf("expected nothing saved, got n=%d saved=%#v", n, store.saved)
	}
}
